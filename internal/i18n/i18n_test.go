package i18n

import (
	"testing"

	"github.com/toolstack/addressit/internal/model"
)

func TestDetectLang(t *testing.T) {
	cases := map[string]model.Lang{
		"":            model.LangEN,
		"de_DE.UTF-8": model.LangDE,
		"DE":          model.LangDE,
		"  de-AT":     model.LangDE,
		"en_US.UTF-8": model.LangEN,
		"C":           model.LangEN,
		"fr_FR":       model.LangEN,
	}
	for in, want := range cases {
		if got := DetectLang(in); got != want {
			t.Fatalf("DetectLang(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestEnvLocalePrecedence(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE.UTF-8")
	if got := EnvLocale(); got != "de_DE.UTF-8" {
		t.Fatalf("expected LANG fallback, got %q", got)
	}
	t.Setenv("LC_ALL", "en_GB.UTF-8")
	if got := EnvLocale(); got != "en_GB.UTF-8" {
		t.Fatalf("expected LC_ALL to win, got %q", got)
	}
}

func TestForFallsBackToEnglish(t *testing.T) {
	if For(model.Lang("fr")).NewSection != "New section" {
		t.Fatalf("unknown language should use English")
	}
	if For(model.LangDE).NewSection != "Neuer Bereich" {
		t.Fatalf("expected German table")
	}
	if For(model.LangDE).CountryName(model.CountryWorld) != "Weltweit" {
		t.Fatalf("unexpected country label")
	}
}
