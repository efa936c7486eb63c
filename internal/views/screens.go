package views

import (
	"fmt"
	"strings"
)

type ItemRowData struct {
	Title    string
	Done     bool
	DueLabel string
	// DueState is "overdue", "soon" or "".
	DueState string
	HasNotes bool
	Selected bool
}

type SectionRowData struct {
	Name             string
	Done             int
	Total            int
	Collapsed        bool
	SuggestedMissing int
	Selected         bool
	Items            []ItemRowData
}

type ChecklistPanelData struct {
	EmptyText string
	Sections  []SectionRowData
}

type MetricsData struct {
	ProgressLabel string
	ProgressView  string
	Labels        []string
	Values        []int
	HideDone      bool
	HideDoneLabel string
	CountryLabel  string
	LanguageLabel string
}

type PresetRowData struct {
	Key         string
	Name        string
	Recommended bool
	Added       bool
	Preview     string
}

type PresetPanelData struct {
	Title     string
	Collapsed bool
	Rows      []PresetRowData
}

type ProfileRowData struct {
	Label string
	Value string
}

type ProfilePanelData struct {
	Title     string
	Collapsed bool
	Rows      []ProfileRowData
}

type WizardOptionData struct {
	Label       string
	Detail      string
	Selected    bool
	Cursor      bool
	Recommended bool
}

type WizardPanelData struct {
	Title   string
	Intro   string
	Step    string
	Options []WizardOptionData
	Hint    string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderChecklistPanel(data ChecklistPanelData) string {
	if len(data.Sections) == 0 {
		return data.EmptyText
	}
	var b strings.Builder
	for _, sec := range data.Sections {
		cursor := "  "
		if sec.Selected {
			cursor = "> "
		}
		fold := "▾"
		if sec.Collapsed {
			fold = "▸"
		}
		line := fmt.Sprintf("%s%s %s (%d/%d)", cursor, fold, sec.Name, sec.Done, sec.Total)
		if sec.SuggestedMissing > 0 {
			line += fmt.Sprintf(" +%d", sec.SuggestedMissing)
		}
		b.WriteString(sectionStyle.Render(line))
		b.WriteString("\n")
		if sec.Collapsed {
			continue
		}
		for _, it := range sec.Items {
			b.WriteString(renderItemRow(it))
			b.WriteString("\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderItemRow(it ItemRowData) string {
	cursor := "    "
	if it.Selected {
		cursor = "  > "
	}
	box := "☐"
	if it.Done {
		box = "☑"
	}
	title := it.Title
	if title == "" {
		title = "…"
	}
	line := fmt.Sprintf("%s%s %s", cursor, box, title)
	if it.HasNotes {
		line += " ✎"
	}
	if it.DueLabel != "" {
		due := it.DueLabel
		switch it.DueState {
		case "overdue":
			due = errorStyle.Render(due)
		case "soon":
			due = warnStyle.Render(due)
		}
		line += "  " + due
	}
	if it.Done {
		return doneStyle.Render(line)
	}
	return line
}

func RenderMetrics(data MetricsData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", data.CountryLabel, data.LanguageLabel))
	b.WriteString(fmt.Sprintf("%s: %s\n", data.ProgressLabel, data.ProgressView))
	for i, label := range data.Labels {
		if i < len(data.Values) {
			b.WriteString(fmt.Sprintf("%-22s %d\n", label+":", data.Values[i]))
		}
	}
	if data.HideDone {
		b.WriteString(data.HideDoneLabel)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderPresetPanel(data PresetPanelData) string {
	if data.Collapsed {
		return "▸ " + data.Title
	}
	var b strings.Builder
	b.WriteString("▾ " + data.Title + "\n")
	for _, r := range data.Rows {
		mark := " "
		if r.Added {
			mark = "✓"
		}
		star := ""
		if r.Recommended {
			star = " ★"
		}
		b.WriteString(fmt.Sprintf("%s %-8s %s%s\n", mark, r.Key, r.Name, star))
		if r.Preview != "" {
			b.WriteString(footerStyle.Render("    "+r.Preview) + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderProfilePanel(data ProfilePanelData) string {
	if data.Collapsed {
		return "▸ " + data.Title
	}
	var b strings.Builder
	b.WriteString("▾ " + data.Title + "\n")
	for _, r := range data.Rows {
		value := r.Value
		if value == "" {
			value = "-"
		}
		b.WriteString(fmt.Sprintf("%s: %s\n", r.Label, value))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderWizard(data WizardPanelData) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(data.Title) + "\n")
	b.WriteString(data.Intro + "\n\n")
	b.WriteString(data.Step + "\n")
	for _, o := range data.Options {
		cursor := "  "
		if o.Cursor {
			cursor = "> "
		}
		box := "( )"
		if o.Selected {
			box = "(x)"
		}
		star := ""
		if o.Recommended {
			star = " ★"
		}
		b.WriteString(fmt.Sprintf("%s%s %s%s\n", cursor, box, o.Label, star))
		if o.Detail != "" {
			b.WriteString(footerStyle.Render("      "+o.Detail) + "\n")
		}
	}
	if data.Hint != "" {
		b.WriteString("\n" + footerStyle.Render(data.Hint))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderConfirm(message, prompt string) string {
	if message == "" {
		return ""
	}
	return confirmStyle.Render(message + "\n" + prompt)
}

func RenderEditor(active bool, view string) string {
	if !active {
		return ""
	}
	return view
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
