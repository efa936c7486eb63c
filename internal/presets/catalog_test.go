package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolstack/addressit/internal/model"
)

func keysOf(list []model.PresetSection) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.Key)
	}
	return out
}

func TestForGermanyInsertsHousingAfterFirstTwo(t *testing.T) {
	list := For(model.LangEN, model.CountryDE)
	assert.Equal(t, []string{"gov", "bank", "wohn", "insurance", "work", "utilities", "delivery", "medical", "subscriptions"}, keysOf(list))

	wohn, ok := Find(list, "wohn")
	require.True(t, ok)
	assert.True(t, wohn.Recommended)
	assert.Equal(t, "Housing", wohn.Name)

	for _, key := range []string{"insurance", "utilities"} {
		p, _ := Find(list, key)
		assert.True(t, p.Recommended, "%s should be recommended in DE", key)
	}
}

func TestForWorldAppendsSchools(t *testing.T) {
	list := For(model.LangEN, model.CountryWorld)
	assert.Equal(t, []string{"gov", "bank", "insurance", "work", "utilities", "delivery", "medical", "subscriptions", "schools"}, keysOf(list))

	schools, _ := Find(list, "schools")
	assert.False(t, schools.Recommended)
	assert.Equal(t, []string{"Update address"}, schools.Items)

	for _, key := range []string{"insurance", "utilities", "medical", "subscriptions"} {
		p, _ := Find(list, key)
		assert.False(t, p.Recommended, "%s should not be recommended outside DE", key)
	}
	_, hasHousing := Find(list, "wohn")
	assert.False(t, hasHousing)
}

func TestForLocalizesNamesAndItems(t *testing.T) {
	de := For(model.LangDE, model.CountryDE)
	gov, _ := Find(de, "gov")
	assert.Equal(t, "Behörden", gov.Name)
	assert.Len(t, gov.Items, 5)
	assert.Equal(t, "Ummeldung / Anmeldung (Bürgerbüro)", gov.Items[0])

	bank, _ := Find(de, "bank")
	assert.Equal(t, "Bank(en) Adresse ändern", bank.Items[0])

	world := For(model.LangEN, model.CountryWorld)
	gov, _ = Find(world, "gov")
	assert.Equal(t, "Government", gov.Name)
	assert.Equal(t, []string{
		"Update ID / license address",
		"Vehicle registration address update",
		"Tax authority address update",
		"Mail redirection / postal service",
	}, gov.Items)

	schools, _ := Find(For(model.LangDE, model.CountryWorld), "schools")
	assert.Equal(t, "Schule/Uni", schools.Name)
}

func TestForIsDeterministicAndDetached(t *testing.T) {
	a := For(model.LangEN, model.CountryDE)
	b := For(model.LangEN, model.CountryDE)
	assert.Equal(t, a, b)

	a[0].Items[0] = "mutated"
	c := For(model.LangEN, model.CountryDE)
	assert.NotEqual(t, "mutated", c[0].Items[0])
}

func TestForCoercesUnknownInputs(t *testing.T) {
	assert.Equal(t, For(model.LangEN, model.CountryDE), For(model.Lang("fr"), model.Country("FR")))
}

func TestEveryPresetHasKeyNameAndItems(t *testing.T) {
	for _, lang := range []model.Lang{model.LangEN, model.LangDE} {
		for _, country := range []model.Country{model.CountryDE, model.CountryWorld} {
			for _, p := range For(lang, country) {
				assert.NotEmpty(t, p.Key)
				assert.NotEmpty(t, p.Name)
				assert.NotEmpty(t, p.Items, "%s/%s/%s", lang, country, p.Key)
			}
		}
	}
}

func TestParseCatalogRejectsDuplicateKeys(t *testing.T) {
	_, err := parseCatalog([]byte("[[category]]\nkey = \"a\"\n[[category]]\nkey = \"a\"\n"))
	require.Error(t, err)

	_, err = parseCatalog([]byte("[[category]]\nrecommended = true\n"))
	require.Error(t, err)
}

func TestMissingTitlesMatchesCaseAndWhitespaceInsensitively(t *testing.T) {
	p := model.PresetSection{Key: "k", Items: []string{"X", "Y", "Z"}}
	sec := model.Section{Key: model.KeyPtr("k"), Items: []model.ChecklistItem{{Title: "  x "}}}

	assert.Equal(t, []string{"Y", "Z"}, MissingTitles(sec, p))
	assert.Equal(t, 2, MissingSuggested(sec, []model.PresetSection{p}))

	sec.Key = nil
	assert.Equal(t, 0, MissingSuggested(sec, []model.PresetSection{p}))
}

func TestStatusForMarksAddedPresets(t *testing.T) {
	state := model.Empty()
	state.Sections = []model.Section{{ID: "s", Key: model.KeyPtr("bank"), Name: "Banking"}}
	list := For(model.LangEN, model.CountryDE)

	for _, st := range StatusFor(state, list) {
		assert.Equal(t, st.Preset.Key == "bank", st.Added, st.Preset.Key)
	}
}
