package checklist

import (
	"github.com/toolstack/addressit/internal/model"
	"github.com/toolstack/addressit/internal/presets"
)

// ItemPatch carries the fields to overwrite on an item. Nil fields are left
// alone.
type ItemPatch struct {
	Title *string
	Notes *string
	Due   *string
	Done  *bool
}

func (p ItemPatch) IsEmpty() bool {
	return p.Title == nil && p.Notes == nil && p.Due == nil && p.Done == nil
}

func (p ItemPatch) apply(it model.ChecklistItem) model.ChecklistItem {
	if p.Title != nil {
		it.Title = *p.Title
	}
	if p.Notes != nil {
		it.Notes = *p.Notes
	}
	if p.Due != nil {
		it.Due = *p.Due
	}
	if p.Done != nil {
		it.Done = *p.Done
	}
	return it
}

// AddItem prepends a blank user-authored item and returns its id.
func AddItem(state model.ApplicationState, sectionID string) (model.ApplicationState, string, error) {
	idx, ok := state.FindSection(sectionID)
	if !ok {
		return state, "", ErrSectionNotFound
	}
	next := state.Clone()
	it := model.ChecklistItem{ID: model.NewID()}
	next.Sections[idx].Items = append([]model.ChecklistItem{it}, next.Sections[idx].Items...)
	return next.Normalized(), it.ID, nil
}

// AddSuggestedMissing prepends one suggested item for every preset title the
// section does not contain yet, keeping the preset's order. It returns how
// many items were added.
func AddSuggestedMissing(state model.ApplicationState, list []model.PresetSection, sectionID string) (model.ApplicationState, int, error) {
	idx, ok := state.FindSection(sectionID)
	if !ok {
		return state, 0, ErrSectionNotFound
	}
	sec := state.Sections[idx]
	if sec.Key == nil {
		return state, 0, ErrNoPresetKey
	}
	p, ok := presets.Find(list, *sec.Key)
	if !ok {
		return state, 0, ErrUnknownPreset
	}
	missing := presets.MissingTitles(sec, p)
	if len(missing) == 0 {
		return state, 0, ErrNothingMissing
	}
	next := state.Clone()
	next.Sections[idx].Items = append(suggestedItems(missing), next.Sections[idx].Items...)
	return next.Normalized(), len(missing), nil
}

// UpdateItem merges patch onto the item in place. Values are stored as given.
// UpdateItem applies patch to one item. An empty patch fails with
// ErrEmptyPatch so callers skip the save.
func UpdateItem(state model.ApplicationState, sectionID, itemID string, patch ItemPatch) (model.ApplicationState, error) {
	if patch.IsEmpty() {
		return state, ErrEmptyPatch
	}
	si, ii, err := locateItem(state, sectionID, itemID)
	if err != nil {
		return state, err
	}
	next := state.Clone()
	next.Sections[si].Items[ii] = patch.apply(next.Sections[si].Items[ii])
	return next, nil
}

func ToggleItemDone(state model.ApplicationState, sectionID, itemID string) (model.ApplicationState, error) {
	si, ii, err := locateItem(state, sectionID, itemID)
	if err != nil {
		return state, err
	}
	done := !state.Sections[si].Items[ii].Done
	return UpdateItem(state, sectionID, itemID, ItemPatch{Done: &done})
}

func DeleteItem(state model.ApplicationState, sectionID, itemID string) (model.ApplicationState, error) {
	si, ii, err := locateItem(state, sectionID, itemID)
	if err != nil {
		return state, err
	}
	next := state.Clone()
	items := next.Sections[si].Items
	next.Sections[si].Items = append(items[:ii], items[ii+1:]...)
	return next.Normalized(), nil
}

func locateItem(state model.ApplicationState, sectionID, itemID string) (int, int, error) {
	si, ok := state.FindSection(sectionID)
	if !ok {
		return -1, -1, ErrSectionNotFound
	}
	for ii, it := range state.Sections[si].Items {
		if it.ID == itemID {
			return si, ii, nil
		}
	}
	return -1, -1, ErrItemNotFound
}

// FindItem returns a copy of the item with the given ids.
func FindItem(state model.ApplicationState, sectionID, itemID string) (model.ChecklistItem, error) {
	si, ii, err := locateItem(state, sectionID, itemID)
	if err != nil {
		return model.ChecklistItem{}, err
	}
	return state.Sections[si].Items[ii], nil
}
