// Package checklist holds the state transitions of the address-change
// checklist. Every function takes the current state by value and returns the
// next one; the input is never modified. On error the input is returned as is.
package checklist

import (
	"errors"

	"github.com/toolstack/addressit/internal/model"
	"github.com/toolstack/addressit/internal/presets"
)

var (
	ErrSectionNotFound = errors.New("checklist: section not found")
	ErrItemNotFound    = errors.New("checklist: item not found")
	ErrSectionExists   = errors.New("checklist: section already added")
	ErrUnknownPreset   = errors.New("checklist: unknown preset")
	ErrNoPresetKey     = errors.New("checklist: section has no preset key")
	ErrNothingMissing  = errors.New("checklist: no suggestions missing")
	ErrEmptyPatch      = errors.New("checklist: nothing to update")
)

// AddSectionFromPreset appends an empty section bound to the preset key. The
// suggestions are pulled in separately with AddSuggestedMissing.
func AddSectionFromPreset(state model.ApplicationState, list []model.PresetSection, key string) (model.ApplicationState, error) {
	p, ok := presets.Find(list, key)
	if !ok {
		return state, ErrUnknownPreset
	}
	if state.HasSectionKey(key) {
		return state, ErrSectionExists
	}
	next := state.Clone()
	next.Sections = append(next.Sections, model.Section{
		ID:    model.NewID(),
		Key:   model.KeyPtr(p.Key),
		Name:  p.Name,
		Items: []model.ChecklistItem{},
	})
	return next.Normalized(), nil
}

// AddCustomSection appends a section with no preset key. name is the
// localized default; blank names fall back to "Untitled" during normalization.
func AddCustomSection(state model.ApplicationState, name string) (model.ApplicationState, string) {
	next := state.Clone()
	id := model.NewID()
	next.Sections = append(next.Sections, model.Section{
		ID:    id,
		Name:  name,
		Items: []model.ChecklistItem{},
	})
	return next.Normalized(), id
}

// RenameSection stores name verbatim. Trimming happens the next time the
// state is normalized.
func RenameSection(state model.ApplicationState, sectionID, name string) (model.ApplicationState, error) {
	idx, ok := state.FindSection(sectionID)
	if !ok {
		return state, ErrSectionNotFound
	}
	next := state.Clone()
	next.Sections[idx].Name = name
	return next, nil
}

func DeleteSection(state model.ApplicationState, sectionID string) (model.ApplicationState, error) {
	idx, ok := state.FindSection(sectionID)
	if !ok {
		return state, ErrSectionNotFound
	}
	next := state.Clone()
	next.Sections = append(next.Sections[:idx], next.Sections[idx+1:]...)
	return next.Normalized(), nil
}

func ToggleSectionCollapsed(state model.ApplicationState, sectionID string) (model.ApplicationState, error) {
	idx, ok := state.FindSection(sectionID)
	if !ok {
		return state, ErrSectionNotFound
	}
	next := state.Clone()
	next.Sections[idx].Collapsed = !next.Sections[idx].Collapsed
	return next, nil
}

// ApplyWizard sets the chosen country and appends one populated section per
// selected preset key that is not on the checklist yet. Presets are resolved
// for the state's language and the draft's country; unknown keys are skipped.
func ApplyWizard(state model.ApplicationState, draft model.WizardDraft) (model.ApplicationState, int) {
	country := model.ParseCountry(string(draft.Country))
	list := presets.For(state.Lang, country)

	next := state.Clone()
	next.Country = country
	added := 0
	for _, key := range draft.SelectedKeys {
		if next.HasSectionKey(key) {
			continue
		}
		p, ok := presets.Find(list, key)
		if !ok {
			continue
		}
		next.Sections = append(next.Sections, model.Section{
			ID:    model.NewID(),
			Key:   model.KeyPtr(p.Key),
			Name:  p.Name,
			Items: suggestedItems(p.Items),
		})
		added++
	}
	return next.Normalized(), added
}

func suggestedItems(titles []string) []model.ChecklistItem {
	out := make([]model.ChecklistItem, 0, len(titles))
	for _, title := range titles {
		out = append(out, model.ChecklistItem{
			ID:          model.NewID(),
			Title:       title,
			IsSuggested: true,
		})
	}
	return out
}
