package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/toolstack/addressit/internal/app"
	"github.com/toolstack/addressit/internal/metrics"
	"github.com/toolstack/addressit/internal/model"
	"github.com/toolstack/addressit/internal/views"
)

func (m Model) renderChecklistView() string {
	s := m.Session
	state := s.State()
	lang := state.Lang
	rows := m.rows()
	var selected Row
	if m.Cursor >= 0 && m.Cursor < len(rows) {
		selected = rows[m.Cursor]
	}

	data := views.ChecklistPanelData{EmptyText: s.Strings().Empty}
	for _, sec := range state.Sections {
		done := 0
		for _, it := range sec.Items {
			if it.Done {
				done++
			}
		}
		sr := views.SectionRowData{
			Name:             sec.Name,
			Done:             done,
			Total:            len(sec.Items),
			Collapsed:        sec.Collapsed,
			SuggestedMissing: s.MissingSuggested(sec),
			Selected:         selected.Kind == RowSection && selected.SectionID == sec.ID,
		}
		for _, it := range sec.Items {
			if state.UI.HideDone && it.Done {
				continue
			}
			sr.Items = append(sr.Items, views.ItemRowData{
				Title:    it.Title,
				Done:     it.Done,
				DueLabel: metrics.DateLabel(it.Due, lang),
				DueState: dueState(it, m),
				HasNotes: strings.TrimSpace(it.Notes) != "",
				Selected: selected.Kind == RowItem && selected.ItemID == it.ID,
			})
		}
		data.Sections = append(data.Sections, sr)
	}
	return views.RenderChecklistPanel(data)
}

func (m Model) renderSidePane() string {
	s := m.Session
	str := s.Strings()
	state := s.State()
	mt := s.Metrics()

	metricsView := views.RenderMetrics(views.MetricsData{
		ProgressLabel: str.Progress,
		ProgressView:  m.progressBar.ViewAs(float64(mt.ProgressPct) / 100),
		Labels:        []string{str.Total, str.Done, str.Remaining, str.DueSoon, str.Overdue, str.MissingRec, str.SuggestedOpen},
		Values:        []int{mt.Total, mt.Done, mt.Remaining, mt.DueSoon, mt.Overdue, mt.MissingRecommendedCount, mt.SuggestedRemaining},
		HideDone:      state.UI.HideDone,
		HideDoneLabel: "(" + str.Done + ": hidden)",
		CountryLabel:  fmt.Sprintf("%s: %s", str.Country, str.CountryName(state.Country)),
		LanguageLabel: string(state.Lang),
	})

	presetRows := make([]views.PresetRowData, 0, len(s.Presets()))
	for _, st := range s.PresetStatus() {
		presetRows = append(presetRows, views.PresetRowData{
			Key:         st.Preset.Key,
			Name:        st.Preset.Name,
			Recommended: st.Preset.Recommended,
			Added:       st.Added,
		})
	}
	presetView := views.RenderPresetPanel(views.PresetPanelData{
		Title:     "Presets",
		Collapsed: state.UI.PresetsCollapsed,
		Rows:      presetRows,
	})

	ap := state.AddressProfile
	profileView := views.RenderProfilePanel(views.ProfilePanelData{
		Title:     str.Profile,
		Collapsed: state.UI.ProfileCollapsed,
		Rows: []views.ProfileRowData{
			{Label: str.FullName, Value: ap.FullName},
			{Label: str.Email, Value: ap.Email},
			{Label: str.Phone, Value: ap.Phone},
			{Label: str.EffectiveDate, Value: ap.EffectiveDate},
			{Label: str.OldAddress, Value: ap.OldAddress.Line()},
			{Label: str.NewAddress, Value: ap.NewAddress.Line()},
		},
	})

	parts := []string{metricsView, presetView, profileView}
	if help := m.renderHelpIfVisible(); help != "" {
		parts = append(parts, help)
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) renderWizardView() string {
	s := m.Session
	str := s.Strings()
	w, ok := s.Wizard()
	if !ok {
		return ""
	}
	data := views.WizardPanelData{
		Title: str.WizardTitle,
		Intro: str.WizardIntro,
	}
	if w.Step == model.WizardStepCountry {
		data.Step = "1/2 " + str.PickCountry
		for i, c := range wizardCountries {
			data.Options = append(data.Options, views.WizardOptionData{
				Label:    str.CountryName(c),
				Selected: w.Draft.Country == c,
				Cursor:   m.WizardCursor == i,
			})
		}
		data.Hint = fmt.Sprintf("enter: %s | esc: %s", str.Next, str.Close)
		return views.RenderWizard(data)
	}

	data.Step = "2/2 " + str.ChooseSections
	state := s.State()
	for i, p := range s.WizardPresets() {
		label := p.Name
		if state.HasSectionKey(p.Key) {
			label += " (" + str.Added + ")"
		}
		data.Options = append(data.Options, views.WizardOptionData{
			Label:       label,
			Detail:      p.Preview(3),
			Selected:    w.IsSelected(p.Key),
			Cursor:      m.WizardCursor == i,
			Recommended: p.Recommended,
		})
	}
	data.Hint = fmt.Sprintf("space: %s | enter: %s | b: %s | esc: %s", str.Include, str.Finish, str.Back, str.Close)
	return views.RenderWizard(data)
}

func (m Model) renderConfirm() string {
	action, ok := m.Session.Pending()
	if !ok {
		return ""
	}
	return views.RenderConfirm(m.confirmMessage(action), m.Session.Strings().ConfirmPrompt)
}

func (m Model) confirmMessage(action app.PendingAction) string {
	str := m.Session.Strings()
	state := m.Session.State()
	switch action.Kind {
	case app.ActionDeleteSection:
		if i, ok := state.FindSection(action.SectionID); ok {
			return fmt.Sprintf("%s: %s", str.DeleteSection, state.Sections[i].Name)
		}
		return str.DeleteSection
	case app.ActionDeleteItem:
		return str.DeleteItem
	case app.ActionImport:
		return fmt.Sprintf("%s\n%s", str.ConfirmImport, action.Source)
	case app.ActionReset:
		return str.ConfirmReset
	default:
		return string(action.Kind)
	}
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	m.Notifications = append(m.Notifications, Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	})
	limit := m.cfg.NotificationLimit
	if limit <= 0 {
		limit = 40
	}
	if len(m.Notifications) > limit {
		m.Notifications = m.Notifications[len(m.Notifications)-limit:]
	}
}
