package model

type WizardStep int

const (
	WizardStepCountry WizardStep = iota
	WizardStepSections
)

func (s WizardStep) String() string {
	switch s {
	case WizardStepCountry:
		return "country"
	case WizardStepSections:
		return "sections"
	default:
		return "unknown"
	}
}

type WizardDraft struct {
	Country      Country
	SelectedKeys []string
}

// Wizard is the two-step setup flow: pick a country, then pick preset
// sections. Transitions return new values; the caller decides when to apply
// the draft.
type Wizard struct {
	Step  WizardStep
	Draft WizardDraft
}

func NewWizard(country Country) Wizard {
	return Wizard{
		Step:  WizardStepCountry,
		Draft: WizardDraft{Country: ParseCountry(string(country)), SelectedKeys: []string{}},
	}
}

func (w Wizard) Next() Wizard {
	if w.Step < WizardStepSections {
		w.Step++
	}
	return w
}

func (w Wizard) Back() Wizard {
	if w.Step > WizardStepCountry {
		w.Step--
	}
	return w
}

func (w Wizard) CanGoBack() bool { return w.Step > WizardStepCountry }

func (w Wizard) IsLastStep() bool { return w.Step == WizardStepSections }

func (w Wizard) WithCountry(c Country) Wizard {
	w.Draft.Country = ParseCountry(string(c))
	return w
}

func (w Wizard) IsSelected(key string) bool {
	for _, k := range w.Draft.SelectedKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Toggle adds or removes a preset key while keeping selection order.
func (w Wizard) Toggle(key string) Wizard {
	keys := make([]string, 0, len(w.Draft.SelectedKeys)+1)
	found := false
	for _, k := range w.Draft.SelectedKeys {
		if k == key {
			found = true
			continue
		}
		keys = append(keys, k)
	}
	if !found {
		keys = append(keys, key)
	}
	w.Draft.SelectedKeys = keys
	return w
}

// Finish hands back the draft to apply. The wizard itself is discarded by
// the caller afterwards.
func (w Wizard) Finish() WizardDraft {
	keys := make([]string, len(w.Draft.SelectedKeys))
	copy(keys, w.Draft.SelectedKeys)
	return WizardDraft{Country: w.Draft.Country, SelectedKeys: keys}
}
