package transfer

import (
	"fmt"
	"strings"
	"time"

	"github.com/toolstack/addressit/internal/i18n"
	"github.com/toolstack/addressit/internal/metrics"
	"github.com/toolstack/addressit/internal/model"
)

// Report renders the printable overview as Markdown: header, metrics,
// address profile and one table per section.
func Report(state model.ApplicationState, profile model.Profile, m metrics.Metrics, now time.Time) string {
	L := i18n.For(state.Lang)
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", L.ReportTitle)
	if org := strings.TrimSpace(profile.Org); org != "" {
		b.WriteString(org)
		if user := strings.TrimSpace(profile.User); user != "" {
			fmt.Fprintf(&b, " · %s", user)
		}
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "%s: %s  \n", L.Country, L.CountryName(state.Country))
	fmt.Fprintf(&b, "%s: %s\n\n", L.Generated, now.Format("2006-01-02 15:04"))

	fmt.Fprintf(&b, "## %s\n\n", L.Progress)
	fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n", L.Progress, L.Done, L.Total, L.DueSoon, L.Overdue, L.MissingRec)
	b.WriteString("|---|---|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %d%% | %d | %d | %d | %d | %d |\n\n", m.ProgressPct, m.Done, m.Total, m.DueSoon, m.Overdue, m.MissingRecommendedCount)

	writeProfile(&b, L, state.AddressProfile, state.Lang)

	if len(state.Sections) == 0 {
		fmt.Fprintf(&b, "_%s_\n", L.Empty)
		return b.String()
	}
	for _, sec := range state.Sections {
		done := 0
		for _, it := range sec.Items {
			if it.Done {
				done++
			}
		}
		fmt.Fprintf(&b, "## %s (%d/%d)\n\n", mdEscape(sec.Name), done, len(sec.Items))
		if len(sec.Items) == 0 {
			b.WriteString("—\n\n")
			continue
		}
		fmt.Fprintf(&b, "| | %s | %s | %s |\n", L.Title, L.Due, L.Notes)
		b.WriteString("|---|---|---|---|\n")
		for _, it := range sec.Items {
			check := "☐"
			if it.Done {
				check = "☑"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				check,
				mdEscape(it.Title),
				metrics.DateLabel(it.Due, state.Lang),
				mdEscape(flattenNotes(it.Notes)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeProfile(b *strings.Builder, L i18n.Strings, p model.AddressProfile, lang model.Lang) {
	rows := [][2]string{
		{L.FullName, p.FullName},
		{L.Email, p.Email},
		{L.Phone, p.Phone},
		{L.EffectiveDate, metrics.DateLabel(p.EffectiveDate, lang)},
		{L.OldAddress, p.OldAddress.Line()},
		{L.NewAddress, p.NewAddress.Line()},
	}
	empty := true
	for _, r := range rows {
		if strings.TrimSpace(r[1]) != "" {
			empty = false
			break
		}
	}
	if empty {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", L.Profile)
	for _, r := range rows {
		if strings.TrimSpace(r[1]) == "" {
			continue
		}
		fmt.Fprintf(b, "- **%s:** %s\n", r[0], mdEscape(r[1]))
	}
	b.WriteString("\n")
}

var mdEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

func mdEscape(s string) string {
	return mdEscaper.Replace(s)
}

type FileKind string

const (
	FileJSON     FileKind = "json"
	FileCSV      FileKind = "csv"
	FileXLSX     FileKind = "xlsx"
	FileMarkdown FileKind = "md"
)

// FileName is the default name for an export written on the given day.
func FileName(kind FileKind, now time.Time) string {
	return fmt.Sprintf("address-it_%s.%s", now.Format("2006-01-02"), kind)
}
