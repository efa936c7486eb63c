// Package app drives one editing session: it loads the checklist, applies
// mutations, saves after every change and gates destructive operations
// behind a confirmation step. A Session is not safe for concurrent use; the
// TUI calls it from its update loop only.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/toolstack/addressit/internal/checklist"
	"github.com/toolstack/addressit/internal/i18n"
	"github.com/toolstack/addressit/internal/metrics"
	"github.com/toolstack/addressit/internal/model"
	"github.com/toolstack/addressit/internal/presets"
	"github.com/toolstack/addressit/internal/storage"
	"github.com/toolstack/addressit/internal/transfer"
)

type Options struct {
	// Locale feeds the startup language heuristic when no preference is stored.
	Locale string
	Now    func() time.Time
	Logger *zap.Logger
}

type Session struct {
	store       *storage.Store
	logger      *zap.Logger
	now         func() time.Time
	startupLang model.Lang

	state   model.ApplicationState
	profile model.Profile
	presets []model.PresetSection

	wizard  *model.Wizard
	pending *PendingAction
}

// Open loads the profile and the checklist. The stored language preference
// wins over the payload's own lang; without any stored payload the state
// starts empty in the startup language and the wizard opens.
func Open(ctx context.Context, store *storage.Store, opts Options) *Session {
	s := &Session{
		store:  store,
		logger: opts.Logger,
		now:    opts.Now,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}

	pref, hasPref := store.LoadLang(ctx)
	if hasPref {
		s.startupLang = pref
	} else {
		s.startupLang = i18n.DetectLang(opts.Locale)
	}

	s.profile = store.LoadProfile(ctx)
	raw, stored := store.LoadApp(ctx)
	state := model.Normalize(raw)
	switch {
	case !stored:
		state.Lang = s.startupLang
		s.openWizard(state.Country)
	case hasPref:
		state.Lang = pref
	}
	s.setState(state)

	s.logger.Info("session opened",
		zap.String("lang", string(s.state.Lang)),
		zap.String("country", string(s.state.Country)),
		zap.Int("sections", len(s.state.Sections)),
		zap.Bool("stored", stored))
	return s
}

func (s *Session) State() model.ApplicationState { return s.state.Clone() }

func (s *Session) Profile() model.Profile { return s.profile }

func (s *Session) Lang() model.Lang { return s.state.Lang }

// Presets is the catalog for the current language and country.
func (s *Session) Presets() []model.PresetSection { return s.presets }

func (s *Session) PresetStatus() []presets.Status {
	return presets.StatusFor(s.state, s.presets)
}

func (s *Session) Strings() i18n.Strings { return i18n.For(s.state.Lang) }

func (s *Session) Metrics() metrics.Metrics {
	return metrics.Compute(s.state, s.presets, s.now())
}

func (s *Session) MissingSuggested(sec model.Section) int {
	return presets.MissingSuggested(sec, s.presets)
}

func (s *Session) Now() time.Time { return s.now() }

func (s *Session) setState(state model.ApplicationState) {
	s.state = state
	s.presets = presets.For(state.Lang, state.Country)
}

// commit installs the next state and saves it together with the language
// preference.
func (s *Session) commit(ctx context.Context, next model.ApplicationState) {
	s.setState(next)
	s.store.SaveApp(ctx, s.state)
	s.store.SaveLang(ctx, s.state.Lang)
}

func (s *Session) AddSectionFromPreset(ctx context.Context, key string) error {
	next, err := checklist.AddSectionFromPreset(s.state, s.presets, key)
	if err != nil {
		return err
	}
	s.commit(ctx, next)
	return nil
}

func (s *Session) AddCustomSection(ctx context.Context) string {
	next, id := checklist.AddCustomSection(s.state, s.Strings().NewSection)
	s.commit(ctx, next)
	return id
}

func (s *Session) RenameSection(ctx context.Context, sectionID, name string) error {
	next, err := checklist.RenameSection(s.state, sectionID, name)
	if err != nil {
		return err
	}
	s.commit(ctx, next)
	return nil
}

func (s *Session) ToggleSectionCollapsed(ctx context.Context, sectionID string) error {
	next, err := checklist.ToggleSectionCollapsed(s.state, sectionID)
	if err != nil {
		return err
	}
	s.commit(ctx, next)
	return nil
}

func (s *Session) AddItem(ctx context.Context, sectionID string) (string, error) {
	next, id, err := checklist.AddItem(s.state, sectionID)
	if err != nil {
		return "", err
	}
	s.commit(ctx, next)
	return id, nil
}

func (s *Session) AddSuggestedMissing(ctx context.Context, sectionID string) (int, error) {
	next, n, err := checklist.AddSuggestedMissing(s.state, s.presets, sectionID)
	if err != nil {
		return 0, err
	}
	s.commit(ctx, next)
	return n, nil
}

func (s *Session) UpdateItem(ctx context.Context, sectionID, itemID string, patch checklist.ItemPatch) error {
	next, err := checklist.UpdateItem(s.state, sectionID, itemID, patch)
	if err != nil {
		return err
	}
	s.commit(ctx, next)
	return nil
}

func (s *Session) ToggleItemDone(ctx context.Context, sectionID, itemID string) error {
	next, err := checklist.ToggleItemDone(s.state, sectionID, itemID)
	if err != nil {
		return err
	}
	s.commit(ctx, next)
	return nil
}

func (s *Session) SetLang(ctx context.Context, lang model.Lang) {
	s.commit(ctx, checklist.SetLang(s.state, lang))
}

func (s *Session) SetCountry(ctx context.Context, country model.Country) {
	s.commit(ctx, checklist.SetCountry(s.state, country))
}

func (s *Session) SetHideDone(ctx context.Context, hide bool) {
	s.commit(ctx, checklist.SetHideDone(s.state, hide))
}

func (s *Session) TogglePanel(ctx context.Context, panel checklist.Panel) {
	s.commit(ctx, checklist.TogglePanel(s.state, panel))
}

func (s *Session) UpdateAddress(ctx context.Context, path, value string) error {
	next, err := checklist.UpdateAddress(s.state, path, value)
	if err != nil {
		return err
	}
	s.commit(ctx, next)
	return nil
}

// SetProfile replaces the shared org profile.
func (s *Session) SetProfile(ctx context.Context, p model.Profile) {
	s.profile = p
	s.store.SaveProfile(ctx, p)
}

func (s *Session) RequestDeleteSection(sectionID string) (PendingAction, error) {
	if _, ok := s.state.FindSection(sectionID); !ok {
		return PendingAction{}, checklist.ErrSectionNotFound
	}
	return s.request(PendingAction{Kind: ActionDeleteSection, SectionID: sectionID})
}

func (s *Session) RequestDeleteItem(sectionID, itemID string) (PendingAction, error) {
	if _, err := checklist.FindItem(s.state, sectionID, itemID); err != nil {
		return PendingAction{}, err
	}
	return s.request(PendingAction{Kind: ActionDeleteItem, SectionID: sectionID, ItemID: itemID})
}

// RequestImport holds the raw file until the user confirms. The bytes are
// parsed only on Confirm.
func (s *Session) RequestImport(raw []byte, source string) (PendingAction, error) {
	payload := make([]byte, len(raw))
	copy(payload, raw)
	return s.request(PendingAction{Kind: ActionImport, Payload: payload, Source: source})
}

func (s *Session) RequestReset() (PendingAction, error) {
	return s.request(PendingAction{Kind: ActionReset})
}

// Confirm runs the pending action and clears it, whether or not it
// succeeds. A failed import leaves the state untouched.
func (s *Session) Confirm(ctx context.Context) (PendingAction, error) {
	if s.pending == nil {
		return PendingAction{}, ErrNoPendingAction
	}
	action := *s.pending
	s.pending = nil

	switch action.Kind {
	case ActionDeleteSection:
		next, err := checklist.DeleteSection(s.state, action.SectionID)
		if err != nil {
			return action, err
		}
		s.commit(ctx, next)
	case ActionDeleteItem:
		next, err := checklist.DeleteItem(s.state, action.SectionID, action.ItemID)
		if err != nil {
			return action, err
		}
		s.commit(ctx, next)
	case ActionImport:
		if err := s.Import(ctx, action.Payload); err != nil {
			return action, err
		}
	case ActionReset:
		s.Reset(ctx)
	}
	return action, nil
}

// Import replaces the checklist with the file's application data and the
// org profile, each only when the file has it. The current language is kept
// unless the file names one.
func (s *Session) Import(ctx context.Context, raw []byte) error {
	in, err := transfer.ParseImport(raw)
	if err != nil {
		s.logger.Info("import rejected", zap.Error(err))
		return err
	}
	if in.Profile != nil {
		s.SetProfile(ctx, *in.Profile)
	}
	if in.HasApp {
		s.commit(ctx, in.Apply(s.state))
	}
	s.logger.Info("import applied",
		zap.Int("sections", len(s.state.Sections)),
		zap.Bool("app", in.HasApp),
		zap.Bool("profile", in.Profile != nil))
	return nil
}

// Reset drops the stored checklist, starts over with an empty state in the
// startup language and reopens the wizard. The language preference and the
// org profile are kept.
func (s *Session) Reset(ctx context.Context) {
	s.store.ClearApp(ctx)
	if pref, ok := s.store.LoadLang(ctx); ok {
		s.startupLang = pref
	}
	state := model.Empty().Normalized()
	state.Lang = s.startupLang
	s.setState(state)
	s.openWizard(state.Country)
	s.logger.Info("checklist reset")
}

func (s *Session) Export() ([]byte, error) {
	ns := s.store.Namespace()
	return transfer.Export(ns.AppID, ns.Version, s.profile, s.state, s.now())
}

func (s *Session) ExportCSV() []byte {
	return transfer.ExportCSV(s.state)
}

func (s *Session) ExportXLSX() ([]byte, error) {
	return transfer.ExportXLSX(s.state, s.Metrics())
}

func (s *Session) Report() string {
	return transfer.Report(s.state, s.profile, s.Metrics(), s.now())
}

// ExportFile renders the checklist in the given format together with its
// default file name.
func (s *Session) ExportFile(kind transfer.FileKind) ([]byte, string, error) {
	name := transfer.FileName(kind, s.now())
	switch kind {
	case transfer.FileJSON:
		b, err := s.Export()
		return b, name, err
	case transfer.FileCSV:
		return s.ExportCSV(), name, nil
	case transfer.FileXLSX:
		b, err := s.ExportXLSX()
		return b, name, err
	case transfer.FileMarkdown:
		return []byte(s.Report()), name, nil
	default:
		return nil, "", fmt.Errorf("app: unknown export kind %q", kind)
	}
}
