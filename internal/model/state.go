package model

import (
	"strings"
)

type Lang string

const (
	LangEN Lang = "EN"
	LangDE Lang = "DE"
)

func (l Lang) IsValid() bool {
	switch l {
	case LangEN, LangDE:
		return true
	default:
		return false
	}
}

// ParseLang returns LangDE only for the exact value "DE"; everything else is LangEN.
func ParseLang(v any) Lang {
	if s, ok := v.(string); ok && Lang(s) == LangDE {
		return LangDE
	}
	if l, ok := v.(Lang); ok && l == LangDE {
		return LangDE
	}
	return LangEN
}

type Country string

const (
	CountryDE    Country = "DE"
	CountryWorld Country = "WORLD"
)

func (c Country) IsValid() bool {
	switch c {
	case CountryDE, CountryWorld:
		return true
	default:
		return false
	}
}

// ParseCountry returns CountryWorld only for the exact value "WORLD"; everything else is CountryDE.
func ParseCountry(v any) Country {
	if s, ok := v.(string); ok && Country(s) == CountryWorld {
		return CountryWorld
	}
	if c, ok := v.(Country); ok && c == CountryWorld {
		return CountryWorld
	}
	return CountryDE
}

const UntitledSection = "Untitled"

type ChecklistItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Notes       string `json:"notes"`
	Due         string `json:"due"`
	Done        bool   `json:"done"`
	IsSuggested bool   `json:"isSuggested"`
}

type Section struct {
	ID        string          `json:"id"`
	Key       *string         `json:"key"`
	Name      string          `json:"name"`
	Collapsed bool            `json:"collapsed"`
	Items     []ChecklistItem `json:"items"`
}

func (s Section) HasKey(key string) bool {
	return s.Key != nil && *s.Key == key
}

func (s Section) PresetKey() string {
	if s.Key == nil {
		return ""
	}
	return *s.Key
}

// TitleSet holds the case-folded, trimmed titles of the section's items.
func (s Section) TitleSet() map[string]bool {
	out := make(map[string]bool, len(s.Items))
	for _, it := range s.Items {
		out[TitleKey(it.Title)] = true
	}
	return out
}

// TitleKey is the comparison form used when matching item titles against
// preset suggestions.
func TitleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

type UIFlags struct {
	HideDone         bool `json:"hideDone"`
	PresetsCollapsed bool `json:"presetsCollapsed"`
	ProfileCollapsed bool `json:"profileCollapsed"`
}

type ApplicationState struct {
	Lang           Lang           `json:"lang"`
	Country        Country        `json:"country"`
	AddressProfile AddressProfile `json:"addressProfile"`
	Sections       []Section      `json:"sections"`
	UI             UIFlags        `json:"ui"`
}

// Empty is the default state before normalization.
func Empty() ApplicationState {
	return ApplicationState{
		Lang:           LangEN,
		Country:        CountryDE,
		AddressProfile: DefaultAddressProfile(),
		Sections:       []Section{},
	}
}

func (s ApplicationState) FindSection(id string) (int, bool) {
	for i, sec := range s.Sections {
		if sec.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s ApplicationState) SectionByKey(key string) (Section, bool) {
	for _, sec := range s.Sections {
		if sec.HasKey(key) {
			return sec, true
		}
	}
	return Section{}, false
}

func (s ApplicationState) HasSectionKey(key string) bool {
	_, ok := s.SectionByKey(key)
	return ok
}

func (s ApplicationState) ItemCount() int {
	n := 0
	for _, sec := range s.Sections {
		n += len(sec.Items)
	}
	return n
}

// Clone deep-copies sections, items and address extras so transforms never
// share backing arrays with their input.
func (s ApplicationState) Clone() ApplicationState {
	out := s
	out.AddressProfile = s.AddressProfile.Clone()
	out.Sections = make([]Section, len(s.Sections))
	for i, sec := range s.Sections {
		out.Sections[i] = sec.Clone()
	}
	return out
}

func (s Section) Clone() Section {
	out := s
	if s.Key != nil {
		k := *s.Key
		out.Key = &k
	}
	out.Items = make([]ChecklistItem, len(s.Items))
	copy(out.Items, s.Items)
	return out
}

func KeyPtr(key string) *string {
	if key == "" {
		return nil
	}
	return &key
}

// PresetSection is derived from the catalog for a (lang, country) pair and is
// never persisted.
type PresetSection struct {
	Key         string
	Name        string
	Recommended bool
	Items       []string
}

// Preview joins the first n suggested titles for list displays.
func (p PresetSection) Preview(n int) string {
	if n <= 0 || len(p.Items) == 0 {
		return ""
	}
	if len(p.Items) <= n {
		return strings.Join(p.Items, " • ")
	}
	return strings.Join(p.Items[:n], " • ") + "…"
}
