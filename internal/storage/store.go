package storage

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/toolstack/addressit/internal/model"
)

type Namespace struct {
	AppID      string
	Version    string
	ProfileKey string
}

func DefaultNamespace() Namespace {
	return Namespace{AppID: "addressit", Version: "v1", ProfileKey: "toolstack.profile.v1"}
}

func (n Namespace) AppKey() string {
	return "toolstack." + n.AppID + "." + n.Version
}

func (n Namespace) LangKey() string {
	return n.AppKey() + ".lang"
}

// Store reads and writes the three persisted documents: application data,
// language preference and the shared org profile.
type Store struct {
	adapter *Adapter
	ns      Namespace
	logger  *zap.Logger
}

func NewStore(adapter *Adapter, ns Namespace, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{adapter: adapter, ns: ns, logger: logger}
}

func (s *Store) Namespace() Namespace { return s.ns }

func (s *Store) Close() error { return s.adapter.Close() }

// LoadApp returns the stored payload as untrusted input. ok is false when
// nothing is stored; text that does not parse comes back as a null value
// with ok set, so the caller normalizes it to the empty state.
func (s *Store) LoadApp(ctx context.Context) (model.Untrusted, bool) {
	raw, ok := s.adapter.Get(ctx, s.ns.AppKey())
	if !ok {
		return model.UntrustedFrom(nil), false
	}
	u, err := model.ParseUntrusted([]byte(raw))
	if err != nil {
		s.logger.Warn("stored app data is not valid json", zap.String("key", s.ns.AppKey()), zap.Error(err))
		return model.UntrustedFrom(nil), true
	}
	return u, true
}

func (s *Store) SaveApp(ctx context.Context, state model.ApplicationState) {
	s.saveJSON(ctx, s.ns.AppKey(), state)
}

func (s *Store) ClearApp(ctx context.Context) {
	s.adapter.Remove(ctx, s.ns.AppKey())
}

// LoadLang returns the stored language preference. Only the exact values
// "EN" and "DE" count.
func (s *Store) LoadLang(ctx context.Context) (model.Lang, bool) {
	raw, ok := s.adapter.Get(ctx, s.ns.LangKey())
	if !ok {
		return "", false
	}
	lang := model.Lang(strings.TrimSpace(raw))
	if !lang.IsValid() {
		return "", false
	}
	return lang, true
}

func (s *Store) SaveLang(ctx context.Context, lang model.Lang) {
	s.adapter.Set(ctx, s.ns.LangKey(), string(model.ParseLang(string(lang))))
}

// LoadProfile falls back to the default profile when nothing usable is stored.
func (s *Store) LoadProfile(ctx context.Context) model.Profile {
	raw, ok := s.adapter.Get(ctx, s.ns.ProfileKey)
	if !ok {
		return model.DefaultProfile()
	}
	u, err := model.ParseUntrusted([]byte(raw))
	if err != nil {
		return model.DefaultProfile()
	}
	p, _ := model.DecodeProfile(u)
	return p
}

func (s *Store) SaveProfile(ctx context.Context, p model.Profile) {
	s.saveJSON(ctx, s.ns.ProfileKey, p)
}

func (s *Store) saveJSON(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("encode for storage failed", zap.String("key", key), zap.Error(err))
		return
	}
	s.adapter.Set(ctx, key, string(raw))
}
