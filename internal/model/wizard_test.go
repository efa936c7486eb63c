package model

import "testing"

func TestWizardStepTransitions(t *testing.T) {
	w := NewWizard(CountryWorld)
	if w.Step != WizardStepCountry {
		t.Fatalf("expected initial step country, got %s", w.Step)
	}
	if w.CanGoBack() {
		t.Fatal("expected back to be disabled on first step")
	}

	w = w.Back()
	if w.Step != WizardStepCountry {
		t.Fatalf("back on first step must stay, got %s", w.Step)
	}

	w = w.Next()
	if w.Step != WizardStepSections || !w.IsLastStep() {
		t.Fatalf("expected sections step, got %s", w.Step)
	}
	w = w.Next()
	if w.Step != WizardStepSections {
		t.Fatalf("next on last step must stay, got %s", w.Step)
	}

	w = w.Back()
	if w.Step != WizardStepCountry {
		t.Fatalf("expected country after back, got %s", w.Step)
	}
}

func TestWizardDraftSelection(t *testing.T) {
	w := NewWizard(Country("FR"))
	if w.Draft.Country != CountryDE {
		t.Fatalf("unknown country should coerce to DE, got %s", w.Draft.Country)
	}
	w = w.WithCountry(CountryWorld).Toggle("gov").Toggle("bank").Toggle("gov").Toggle("medical")

	draft := w.Finish()
	if draft.Country != CountryWorld {
		t.Fatalf("unexpected draft country: %s", draft.Country)
	}
	want := []string{"bank", "medical"}
	if len(draft.SelectedKeys) != len(want) {
		t.Fatalf("unexpected selection: %#v", draft.SelectedKeys)
	}
	for i := range want {
		if draft.SelectedKeys[i] != want[i] {
			t.Fatalf("selection[%d] = %q, want %q", i, draft.SelectedKeys[i], want[i])
		}
	}
	if !w.IsSelected("bank") || w.IsSelected("gov") {
		t.Fatal("unexpected IsSelected result")
	}

	draft.SelectedKeys[0] = "changed"
	if w.Draft.SelectedKeys[0] != "bank" {
		t.Fatal("finish must return a copy of the selection")
	}
}
