// Package i18n carries the EN/DE user-facing strings.
package i18n

import (
	"os"
	"strings"

	"github.com/toolstack/addressit/internal/model"
)

type Strings struct {
	AppName        string
	Tagline        string
	Country        string
	Germany        string
	Worldwide      string
	Setup          string
	Preview        string
	Export         string
	Import         string
	CSV            string
	Help           string
	Reset          string
	Sections       string
	AddSection     string
	AddItem        string
	NewSection     string
	Suggested      string
	AddSuggested   string
	Items          string
	Done           string
	Due            string
	Notes          string
	Title          string
	Optional       string
	Delete         string
	DeleteSection  string
	DeleteItem     string
	Empty          string
	Progress       string
	Total          string
	Remaining      string
	DueSoon        string
	Overdue        string
	MissingRec     string
	SuggestedOpen  string
	WizardTitle    string
	WizardIntro    string
	Next           string
	Back           string
	Finish         string
	ChooseSections string
	PickCountry    string
	Recommended    string
	Include        string
	Added          string
	SectionAlready string
	NothingMissing string
	SetupApplied   string
	Imported       string
	InvalidJSON    string
	Exported       string
	ResetDone      string
	Declined       string
	ConfirmPrompt  string
	ConfirmImport  string
	ConfirmReset   string
	Close          string
	ReportTitle    string
	Generated      string
	Profile        string
	FullName       string
	Email          string
	Phone          string
	EffectiveDate  string
	OldAddress     string
	NewAddress     string
	Yes            string
	No             string
}

var en = Strings{
	AppName:        "Address-It",
	Tagline:        "Manage your address change when moving",
	Country:        "Country",
	Germany:        "Germany",
	Worldwide:      "Worldwide",
	Setup:          "Setup",
	Preview:        "Preview",
	Export:         "Export",
	Import:         "Import",
	CSV:            "CSV",
	Help:           "Help",
	Reset:          "Reset",
	Sections:       "Sections",
	AddSection:     "+ Add section",
	AddItem:        "+ Add item",
	NewSection:     "New section",
	Suggested:      "Suggested items",
	AddSuggested:   "Add suggested",
	Items:          "Items",
	Done:           "Done",
	Due:            "Due",
	Notes:          "Notes",
	Title:          "Title",
	Optional:       "optional",
	Delete:         "Delete",
	DeleteSection:  "Delete section",
	DeleteItem:     "Delete item",
	Empty:          "No sections yet. Use Setup or Add section to start.",
	Progress:       "Progress",
	Total:          "Total",
	Remaining:      "Remaining",
	DueSoon:        "Due soon",
	Overdue:        "Overdue",
	MissingRec:     "Missing recommended",
	SuggestedOpen:  "Suggested open",
	WizardTitle:    "Setup wizard",
	WizardIntro:    "Pick country + preset sections. You can add/edit everything later.",
	Next:           "Next",
	Back:           "Back",
	Finish:         "Finish",
	ChooseSections: "Choose sections",
	PickCountry:    "Pick country",
	Recommended:    "Recommended",
	Include:        "Include",
	Added:          "Added",
	SectionAlready: "Section already added",
	NothingMissing: "Nothing missing",
	SetupApplied:   "Setup applied",
	Imported:       "Imported",
	InvalidJSON:    "Invalid JSON",
	Exported:       "Exported",
	ResetDone:      "Reset",
	Declined:       "Cancelled",
	ConfirmPrompt:  "Are you sure? (y/n)",
	ConfirmImport:  "Import replaces your current checklist.",
	ConfirmReset:   "Reset deletes all saved data.",
	Close:          "Close",
	ReportTitle:    "Address-It report",
	Generated:      "Generated",
	Profile:        "Address profile",
	FullName:       "Full name",
	Email:          "Email",
	Phone:          "Phone",
	EffectiveDate:  "Effective date",
	OldAddress:     "Old address",
	NewAddress:     "New address",
	Yes:            "yes",
	No:             "no",
}

var de = Strings{
	AppName:        "Address-It",
	Tagline:        "Adressänderung beim Umzug organisieren",
	Country:        "Land",
	Germany:        "Deutschland",
	Worldwide:      "Weltweit",
	Setup:          "Setup",
	Preview:        "Vorschau",
	Export:         "Export",
	Import:         "Import",
	CSV:            "CSV",
	Help:           "Hilfe",
	Reset:          "Reset",
	Sections:       "Bereiche",
	AddSection:     "+ Bereich hinzufügen",
	AddItem:        "+ Punkt hinzufügen",
	NewSection:     "Neuer Bereich",
	Suggested:      "Vorschläge",
	AddSuggested:   "Vorschläge hinzufügen",
	Items:          "Punkte",
	Done:           "Erledigt",
	Due:            "Fällig",
	Notes:          "Notizen",
	Title:          "Titel",
	Optional:       "optional",
	Delete:         "Löschen",
	DeleteSection:  "Bereich löschen",
	DeleteItem:     "Punkt löschen",
	Empty:          "Noch keine Bereiche. Starte mit Setup oder Bereich hinzufügen.",
	Progress:       "Fortschritt",
	Total:          "Gesamt",
	Remaining:      "Offen",
	DueSoon:        "Bald fällig",
	Overdue:        "Überfällig",
	MissingRec:     "Empfohlen fehlt",
	SuggestedOpen:  "Vorschläge offen",
	WizardTitle:    "Setup-Assistent",
	WizardIntro:    "Land + Preset-Bereiche wählen. Du kannst später alles anpassen.",
	Next:           "Weiter",
	Back:           "Zurück",
	Finish:         "Fertig",
	ChooseSections: "Bereiche wählen",
	PickCountry:    "Land wählen",
	Recommended:    "Empfohlen",
	Include:        "Übernehmen",
	Added:          "Hinzugefügt",
	SectionAlready: "Bereich bereits hinzugefügt",
	NothingMissing: "Nichts fehlt",
	SetupApplied:   "Setup angewendet",
	Imported:       "Importiert",
	InvalidJSON:    "Ungültiges JSON",
	Exported:       "Exportiert",
	ResetDone:      "Zurückgesetzt",
	Declined:       "Abgebrochen",
	ConfirmPrompt:  "Bist du sicher? (j/n)",
	ConfirmImport:  "Import ersetzt deine aktuelle Checkliste.",
	ConfirmReset:   "Reset löscht alle gespeicherten Daten.",
	Close:          "Schließen",
	ReportTitle:    "Address-It Bericht",
	Generated:      "Erstellt",
	Profile:        "Adressprofil",
	FullName:       "Name",
	Email:          "E-Mail",
	Phone:          "Telefon",
	EffectiveDate:  "Stichtag",
	OldAddress:     "Alte Adresse",
	NewAddress:     "Neue Adresse",
	Yes:            "ja",
	No:             "nein",
}

// For returns the table for lang; anything but DE gets English.
func For(lang model.Lang) Strings {
	if model.ParseLang(string(lang)) == model.LangDE {
		return de
	}
	return en
}

// CountryName is the display label for a country choice.
func (s Strings) CountryName(c model.Country) string {
	if model.ParseCountry(string(c)) == model.CountryWorld {
		return s.Worldwide
	}
	return s.Germany
}

// DetectLang applies the locale heuristic: a locale starting with "de" means
// German, anything else English.
func DetectLang(locale string) model.Lang {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(locale)), "de") {
		return model.LangDE
	}
	return model.LangEN
}

// EnvLocale reads the POSIX locale variables in precedence order.
func EnvLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}
