package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toolstack/addressit/internal/model"
)

var wizardCountries = []model.Country{model.CountryDE, model.CountryWorld}

func (m Model) openWizardScreen() Model {
	w := m.Session.OpenWizard()
	m.Screen = ScreenWizard
	m.WizardCursor = 0
	for i, c := range wizardCountries {
		if c == w.Draft.Country {
			m.WizardCursor = i
		}
	}
	return m
}

func (m Model) handleWizardKey(msg tea.KeyMsg) Model {
	s := m.Session
	w, ok := s.Wizard()
	if !ok {
		m.Screen = ScreenChecklist
		return m
	}

	limit := len(wizardCountries)
	if w.Step == model.WizardStepSections {
		limit = len(s.WizardPresets())
	}

	switch msg.String() {
	case "j", "down":
		if m.WizardCursor < limit-1 {
			m.WizardCursor++
		}
	case "k", "up":
		if m.WizardCursor > 0 {
			m.WizardCursor--
		}
	case "esc":
		s.CloseWizard()
		m.Screen = ScreenChecklist
	case "b", "backspace", "left":
		if w.CanGoBack() {
			_, _ = s.UpdateWizard(model.Wizard.Back)
			m.WizardCursor = 0
		}
	case " ":
		if w.Step == model.WizardStepCountry {
			m = m.pickWizardCountry()
			return m
		}
		list := s.WizardPresets()
		if m.WizardCursor < len(list) {
			key := list[m.WizardCursor].Key
			_, _ = s.UpdateWizard(func(w model.Wizard) model.Wizard { return w.Toggle(key) })
		}
	case "enter", "right":
		if w.Step == model.WizardStepCountry {
			m = m.pickWizardCountry()
			_, _ = s.UpdateWizard(model.Wizard.Next)
			m.WizardCursor = 0
			return m
		}
		added, err := s.FinishWizard(m.ctx)
		if err != nil {
			return m.fail(err)
		}
		m.Screen = ScreenChecklist
		m.Cursor = 0
		str := s.Strings()
		m.Status = StatusBar{Text: fmt.Sprintf("%s (+%d)", str.SetupApplied, added)}
		m.notify("Setup", m.Status.Text, "info")
	}
	return m
}

func (m Model) pickWizardCountry() Model {
	if m.WizardCursor >= len(wizardCountries) {
		return m
	}
	c := wizardCountries[m.WizardCursor]
	_, _ = m.Session.UpdateWizard(func(w model.Wizard) model.Wizard { return w.WithCountry(c) })
	return m
}
