package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/toolstack/addressit/internal/checklist"
	"github.com/toolstack/addressit/internal/model"
	"github.com/toolstack/addressit/internal/storage"
	"github.com/toolstack/addressit/internal/transfer"
)

const (
	appKey     = "toolstack.addressit.v1"
	langKey    = "toolstack.addressit.v1.lang"
	profileKey = "toolstack.profile.v1"
)

var fixedNow = time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

func newStore(kv storage.KV) *storage.Store {
	return storage.NewStore(storage.NewAdapter(kv, "memory", zap.NewNop()), storage.DefaultNamespace(), zap.NewNop())
}

func openSession(t *testing.T, kv *storage.MemoryKV, locale string) *Session {
	t.Helper()
	return Open(context.Background(), newStore(kv), Options{
		Locale: locale,
		Now:    func() time.Time { return fixedNow },
	})
}

func TestOpenEmptyStoreUsesLocaleAndOpensWizard(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := openSession(t, kv, "de_DE.UTF-8")

	assert.Equal(t, model.LangDE, s.Lang())
	assert.Equal(t, model.CountryDE, s.State().Country)
	assert.Empty(t, s.State().Sections)
	assert.True(t, s.WizardOpen())
	assert.Equal(t, model.DefaultProfile(), s.Profile())

	_, err := kv.Get(context.Background(), appKey)
	assert.ErrorIs(t, err, storage.ErrNotFound, "opening alone does not write")
}

func TestOpenStoredLanguagePreferenceWins(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, appKey, `{"lang":"EN","country":"WORLD","sections":[{"name":"A"}]}`))
	require.NoError(t, kv.Set(ctx, langKey, "DE"))

	s := openSession(t, kv, "en_US")
	assert.Equal(t, model.LangDE, s.Lang())
	assert.Equal(t, model.CountryWorld, s.State().Country)
	assert.False(t, s.WizardOpen())
	require.Len(t, s.State().Sections, 1)
}

func TestOpenWithoutPreferenceKeepsPayloadLanguage(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, appKey, `{"lang":"DE"}`))

	s := openSession(t, kv, "en_US")
	assert.Equal(t, model.LangDE, s.Lang())
}

func TestOpenCorruptPayloadNormalizesToEmpty(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, appKey, `{"sections": [`))

	s := openSession(t, kv, "")
	assert.Equal(t, model.LangEN, s.Lang())
	assert.Empty(t, s.State().Sections)
	assert.False(t, s.WizardOpen(), "a stored payload, even broken, is not a first run")
}

func TestMutationsAutosave(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	s := openSession(t, kv, "")

	id := s.AddCustomSection(ctx)
	raw, err := kv.Get(ctx, appKey)
	require.NoError(t, err)
	assert.Contains(t, raw, id)
	assert.Contains(t, raw, "New section")

	lang, err := kv.Get(ctx, langKey)
	require.NoError(t, err)
	assert.Equal(t, "EN", lang)

	s.SetLang(ctx, model.LangDE)
	lang, _ = kv.Get(ctx, langKey)
	assert.Equal(t, "DE", lang)
	assert.Equal(t, "Neuer Bereich", s.Strings().NewSection)

	reopened := openSession(t, kv, "")
	assert.Equal(t, s.State(), reopened.State())
}

func TestAddSectionFromPresetTwiceKeepsOne(t *testing.T) {
	ctx := context.Background()
	s := openSession(t, storage.NewMemoryKV(), "")

	require.NoError(t, s.AddSectionFromPreset(ctx, "gov"))
	err := s.AddSectionFromPreset(ctx, "gov")
	require.ErrorIs(t, err, checklist.ErrSectionExists)

	n := 0
	for _, sec := range s.State().Sections {
		if sec.HasKey("gov") {
			n++
		}
	}
	assert.Equal(t, 1, n)

	var added bool
	for _, st := range s.PresetStatus() {
		if st.Preset.Key == "gov" {
			added = st.Added
		}
	}
	assert.True(t, added)
}

func TestItemLifecycleAndMetrics(t *testing.T) {
	ctx := context.Background()
	s := openSession(t, storage.NewMemoryKV(), "")
	require.NoError(t, s.AddSectionFromPreset(ctx, "bank"))
	sec := s.State().Sections[0]

	n, err := s.AddSuggestedMissing(ctx, sec.ID)
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, 0, s.MissingSuggested(s.State().Sections[0]))

	itemID, err := s.AddItem(ctx, sec.ID)
	require.NoError(t, err)
	due := fixedNow.AddDate(0, 0, 3).Format("2006-01-02")
	title := "Call advisor"
	require.NoError(t, s.UpdateItem(ctx, sec.ID, itemID, checklist.ItemPatch{Title: &title, Due: &due}))
	require.NoError(t, s.ToggleItemDone(ctx, sec.ID, s.State().Sections[0].Items[1].ID))

	m := s.Metrics()
	assert.Equal(t, n+1, m.Total)
	assert.Equal(t, 1, m.Done)
	assert.Equal(t, 1, m.DueSoon)
	assert.Equal(t, n-1, m.SuggestedRemaining)
}

func TestDestructiveActionsNeedConfirmation(t *testing.T) {
	ctx := context.Background()
	s := openSession(t, storage.NewMemoryKV(), "")
	id := s.AddCustomSection(ctx)
	itemID, err := s.AddItem(ctx, id)
	require.NoError(t, err)

	_, err = s.RequestDeleteItem(id, itemID)
	require.NoError(t, err)
	_, err = s.RequestDeleteSection(id)
	assert.ErrorIs(t, err, ErrConfirmationPending)
	assert.Len(t, s.State().Sections[0].Items, 1, "requesting does not delete")

	require.NoError(t, s.Decline())
	assert.Len(t, s.State().Sections[0].Items, 1)
	assert.ErrorIs(t, s.Decline(), ErrNoPendingAction)

	_, err = s.RequestDeleteSection(id)
	require.NoError(t, err)
	action, err := s.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, ActionDeleteSection, action.Kind)
	assert.Empty(t, s.State().Sections)

	_, err = s.Confirm(ctx)
	assert.ErrorIs(t, err, ErrNoPendingAction)

	_, err = s.RequestDeleteSection("ghost")
	assert.ErrorIs(t, err, checklist.ErrSectionNotFound)
	_, ok := s.Pending()
	assert.False(t, ok)
}

func TestImportReplacesSectionsAndCountry(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	s := openSession(t, kv, "de_DE")
	s.SetProfile(ctx, model.Profile{Org: "Keep", Language: "DE"})
	require.NoError(t, s.AddSectionFromPreset(ctx, "gov"))
	require.NoError(t, s.AddSectionFromPreset(ctx, "bank"))

	payload := []byte(`{"data":{"app":{"country":"WORLD","sections":[{"id":"x","name":"Imported","items":[{"id":"i","title":"t"}]}]}}}`)
	_, err := s.RequestImport(payload, "file.json")
	require.NoError(t, err)
	_, err = s.Confirm(ctx)
	require.NoError(t, err)

	state := s.State()
	assert.Equal(t, model.CountryWorld, state.Country)
	require.Len(t, state.Sections, 1)
	assert.Equal(t, "Imported", state.Sections[0].Name)
	assert.Equal(t, model.LangDE, state.Lang, "language survives an import that does not name one")
	assert.Equal(t, "Keep", s.Profile().Org, "missing profile keeps the current one")

	raw, err := kv.Get(ctx, profileKey)
	require.NoError(t, err)
	assert.Contains(t, raw, "Keep")

	require.NoError(t, s.Import(ctx, []byte(`{"profile":{"org":"New"},"app":{"lang":"EN"}}`)))
	assert.Equal(t, "New", s.Profile().Org)
	assert.Equal(t, model.LangEN, s.Lang())
	assert.Empty(t, s.State().Sections)
}

func TestProfileOnlyImportKeepsChecklist(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, appKey, `{"lang":"EN","country":"WORLD","sections":[{"id":"s1","name":"Keep me","items":[{"id":"i1","title":"t"}]}]}`))
	s := openSession(t, kv, "en_US")
	before, err := kv.Get(ctx, appKey)
	require.NoError(t, err)

	_, err = s.RequestImport([]byte(`{"meta":{"app":"addressit","version":"v1"},"data":{"profile":{"org":"Acme"}}}`), "profile.json")
	require.NoError(t, err)
	_, err = s.Confirm(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Acme", s.Profile().Org)
	state := s.State()
	assert.Equal(t, model.CountryWorld, state.Country)
	require.Len(t, state.Sections, 1)
	assert.Equal(t, "Keep me", state.Sections[0].Name)

	after, err := kv.Get(ctx, appKey)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestInvalidImportLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	s := openSession(t, storage.NewMemoryKV(), "")
	s.AddCustomSection(ctx)
	before := s.State()

	_, err := s.RequestImport([]byte("{broken"), "stdin")
	require.NoError(t, err)
	_, err = s.Confirm(ctx)
	require.ErrorIs(t, err, transfer.ErrInvalidPayload)
	assert.Equal(t, before, s.State())
	_, pending := s.Pending()
	assert.False(t, pending)
}

func TestResetClearsPersistedData(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	s := openSession(t, kv, "en_US")
	s.SetLang(ctx, model.LangDE)
	s.SetCountry(ctx, model.CountryWorld)
	require.NoError(t, s.AddSectionFromPreset(ctx, "schools"))
	s.SetProfile(ctx, model.Profile{Org: "Acme"})

	_, err := s.RequestReset()
	require.NoError(t, err)
	_, err = s.Confirm(ctx)
	require.NoError(t, err)

	_, err = kv.Get(ctx, appKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	want := model.Empty().Normalized()
	want.Lang = model.LangDE
	assert.Equal(t, want, s.State())
	assert.True(t, s.WizardOpen())
	assert.Equal(t, "Acme", s.Profile().Org)
}

func TestWizardLifecycle(t *testing.T) {
	ctx := context.Background()
	s := openSession(t, storage.NewMemoryKV(), "")
	require.True(t, s.WizardOpen())

	_, err := s.UpdateWizard(func(w model.Wizard) model.Wizard {
		return w.WithCountry(model.CountryWorld).Next()
	})
	require.NoError(t, err)
	keys := make([]string, 0)
	for _, p := range s.WizardPresets() {
		keys = append(keys, p.Key)
	}
	assert.Contains(t, keys, "schools")
	assert.NotContains(t, keys, "wohn")

	_, err = s.UpdateWizard(func(w model.Wizard) model.Wizard { return w.Toggle("schools").Toggle("gov") })
	require.NoError(t, err)

	added, err := s.FinishWizard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.False(t, s.WizardOpen())
	assert.Equal(t, model.CountryWorld, s.State().Country)
	assert.Equal(t, "schools", s.State().Sections[0].PresetKey())

	_, err = s.FinishWizard(ctx)
	assert.ErrorIs(t, err, ErrWizardClosed)

	s.OpenWizard()
	_, err = s.UpdateWizard(func(w model.Wizard) model.Wizard { return w.Toggle("bank") })
	require.NoError(t, err)
	s.CloseWizard()
	assert.Len(t, s.State().Sections, 2, "closing discards the draft")
}

func TestExportsUseSessionState(t *testing.T) {
	ctx := context.Background()
	s := openSession(t, storage.NewMemoryKV(), "")
	require.NoError(t, s.AddSectionFromPreset(ctx, "gov"))

	raw, err := s.Export()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"app": "addressit"`)
	assert.Contains(t, string(raw), `"exportedAt": "2026-05-04T09:00:00.000Z"`)

	assert.Equal(t, `"section","item","done","due","notes"`, string(s.ExportCSV()))

	_, err = s.ExportXLSX()
	require.NoError(t, err)
	assert.Contains(t, s.Report(), "Generated: 2026-05-04 09:00")
}

func TestExportFileNamesAndKinds(t *testing.T) {
	s := openSession(t, storage.NewMemoryKV(), "")

	for kind, name := range map[transfer.FileKind]string{
		transfer.FileJSON:     "address-it_2026-05-04.json",
		transfer.FileCSV:      "address-it_2026-05-04.csv",
		transfer.FileXLSX:     "address-it_2026-05-04.xlsx",
		transfer.FileMarkdown: "address-it_2026-05-04.md",
	} {
		data, got, err := s.ExportFile(kind)
		require.NoError(t, err, kind)
		assert.Equal(t, name, got)
		assert.NotEmpty(t, data)
	}

	_, _, err := s.ExportFile(transfer.FileKind("pdf"))
	assert.Error(t, err)
}
