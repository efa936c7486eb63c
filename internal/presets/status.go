package presets

import "github.com/toolstack/addressit/internal/model"

// Status pairs a preset with whether the checklist already has a section
// for its key. The preset picker renders this list.
type Status struct {
	Preset model.PresetSection
	Added  bool
}

func StatusFor(state model.ApplicationState, list []model.PresetSection) []Status {
	out := make([]Status, 0, len(list))
	for _, p := range list {
		out = append(out, Status{Preset: p, Added: state.HasSectionKey(p.Key)})
	}
	return out
}

// MissingTitles lists the preset's suggested titles that the section does not
// contain yet, compared case-insensitively after trimming. Blank suggestions
// are ignored.
func MissingTitles(sec model.Section, p model.PresetSection) []string {
	have := sec.TitleSet()
	out := make([]string, 0, len(p.Items))
	for _, title := range p.Items {
		k := model.TitleKey(title)
		if k == "" || have[k] {
			continue
		}
		out = append(out, title)
	}
	return out
}

// MissingSuggested counts suggestions absent from a preset-bound section.
// Sections without a key, or whose key is not in the list, report zero.
func MissingSuggested(sec model.Section, list []model.PresetSection) int {
	if sec.Key == nil {
		return 0
	}
	p, ok := Find(list, *sec.Key)
	if !ok {
		return 0
	}
	return len(MissingTitles(sec, p))
}
