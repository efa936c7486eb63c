package app

import (
	"context"

	"github.com/toolstack/addressit/internal/checklist"
	"github.com/toolstack/addressit/internal/model"
	"github.com/toolstack/addressit/internal/presets"
)

// OpenWizard starts a fresh draft seeded with the current country.
func (s *Session) OpenWizard() model.Wizard {
	s.openWizard(s.state.Country)
	return *s.wizard
}

func (s *Session) openWizard(country model.Country) {
	w := model.NewWizard(country)
	s.wizard = &w
}

func (s *Session) Wizard() (model.Wizard, bool) {
	if s.wizard == nil {
		return model.Wizard{}, false
	}
	return *s.wizard, true
}

func (s *Session) WizardOpen() bool { return s.wizard != nil }

// UpdateWizard applies one transition to the open wizard.
func (s *Session) UpdateWizard(step func(model.Wizard) model.Wizard) (model.Wizard, error) {
	if s.wizard == nil {
		return model.Wizard{}, ErrWizardClosed
	}
	w := step(*s.wizard)
	s.wizard = &w
	return w, nil
}

// WizardPresets lists the presets for the draft's country in the current
// language, which is what the sections step offers.
func (s *Session) WizardPresets() []model.PresetSection {
	if s.wizard == nil {
		return nil
	}
	return presets.For(s.state.Lang, s.wizard.Draft.Country)
}

// FinishWizard applies the draft and closes the wizard. It returns how many
// sections were added.
func (s *Session) FinishWizard(ctx context.Context) (int, error) {
	if s.wizard == nil {
		return 0, ErrWizardClosed
	}
	draft := s.wizard.Finish()
	s.wizard = nil
	next, added := checklist.ApplyWizard(s.state, draft)
	s.commit(ctx, next)
	return added, nil
}

// CloseWizard discards the draft.
func (s *Session) CloseWizard() {
	s.wizard = nil
}
