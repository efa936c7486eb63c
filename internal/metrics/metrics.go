package metrics

import (
	"math"
	"strings"
	"time"

	"github.com/toolstack/addressit/internal/model"
)

const (
	isoDateLayout = "2006-01-02"
	DueSoonDays   = 7
)

type Metrics struct {
	Total                   int
	Done                    int
	Remaining               int
	ProgressPct             int
	DueSoon                 int
	Overdue                 int
	SuggestedRemaining      int
	MissingRecommendedCount int
}

// ParseDue reads a YYYY-MM-DD date at local midnight in loc.
func ParseDue(iso string, loc *time.Location) (time.Time, bool) {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(isoDateLayout, iso, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DaysUntil counts calendar days from now's date to the due date, both taken
// at midnight in now's location. ok is false for empty or unparseable input.
func DaysUntil(iso string, now time.Time) (int, bool) {
	due, ok := ParseDue(iso, now.Location())
	if !ok {
		return 0, false
	}
	// Calendar arithmetic in UTC keeps DST days at 24h.
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	dy, dm, dd := due.Date()
	target := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	return int(math.Round(target.Sub(today).Hours() / 24)), true
}

// Compute derives all counters from scratch. presets must be the catalog
// for state.Lang and state.Country.
func Compute(state model.ApplicationState, presetList []model.PresetSection, now time.Time) Metrics {
	var out Metrics
	for _, sec := range state.Sections {
		for _, it := range sec.Items {
			out.Total++
			if it.Done {
				out.Done++
				continue
			}
			if it.IsSuggested {
				out.SuggestedRemaining++
			}
			days, ok := DaysUntil(it.Due, now)
			if !ok {
				continue
			}
			switch {
			case days < 0:
				out.Overdue++
			case days <= DueSoonDays:
				out.DueSoon++
			}
		}
	}
	out.Remaining = out.Total - out.Done
	if out.Total > 0 {
		out.ProgressPct = int(math.Round(100 * float64(out.Done) / float64(out.Total)))
	}
	out.MissingRecommendedCount = MissingRecommended(state, presetList)
	return out
}

// MissingRecommended counts suggested titles of recommended presets that the
// checklist lacks. Matching is by trimmed, lower-cased title text against the
// first section carrying the preset key.
func MissingRecommended(state model.ApplicationState, presetList []model.PresetSection) int {
	missing := 0
	for _, p := range presetList {
		if !p.Recommended {
			continue
		}
		sec, ok := state.SectionByKey(p.Key)
		if !ok {
			missing += len(p.Items)
			continue
		}
		have := sec.TitleSet()
		for _, title := range p.Items {
			k := model.TitleKey(title)
			if k == "" {
				continue
			}
			if !have[k] {
				missing++
			}
		}
	}
	return missing
}

// DateLabel formats an ISO date for display, returning the input unchanged
// when it cannot be parsed.
func DateLabel(iso string, lang model.Lang) string {
	t, ok := ParseDue(iso, time.UTC)
	if !ok {
		return iso
	}
	if lang == model.LangDE {
		return t.Format("02.01.2006")
	}
	return t.Format("02 Jan 2006")
}
