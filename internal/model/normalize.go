package model

import "strings"

// Normalize repairs an untrusted payload into a valid ApplicationState.
// It never fails: non-objects become the empty state, broken sections and
// items are dropped or filled in.
func Normalize(u Untrusted) ApplicationState {
	return decodeState(u).Normalized()
}

// Normalized applies the repair rules to an already typed state. It is
// idempotent: calling it on its own output returns an equal value.
func (s ApplicationState) Normalized() ApplicationState {
	out := ApplicationState{
		Lang:           ParseLang(string(s.Lang)),
		Country:        ParseCountry(string(s.Country)),
		AddressProfile: s.AddressProfile.Clone(),
		Sections:       make([]Section, 0, len(s.Sections)),
		UI:             s.UI,
	}
	for _, sec := range s.Sections {
		out.Sections = append(out.Sections, normalizeSection(sec))
	}
	return out
}

func normalizeSection(in Section) Section {
	out := Section{
		ID:        in.ID,
		Name:      strings.TrimSpace(in.Name),
		Collapsed: in.Collapsed,
		Items:     make([]ChecklistItem, 0, len(in.Items)),
	}
	if out.ID == "" {
		out.ID = NewID()
	}
	if in.Key != nil && *in.Key != "" {
		out.Key = KeyPtr(*in.Key)
	}
	if out.Name == "" {
		out.Name = UntitledSection
	}
	for _, it := range in.Items {
		out.Items = append(out.Items, normalizeItem(it))
	}
	return out
}

func normalizeItem(in ChecklistItem) ChecklistItem {
	out := in
	if out.ID == "" {
		out.ID = NewID()
	}
	out.Title = strings.TrimSpace(in.Title)
	return out
}
