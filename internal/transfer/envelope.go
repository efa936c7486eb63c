// Package transfer moves checklist data in and out of files: the JSON
// export envelope and its tolerant import, CSV and XLSX exports, and the
// Markdown report.
package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/toolstack/addressit/internal/model"
)

var ErrInvalidPayload = errors.New("transfer: invalid payload")

type Meta struct {
	App        string `json:"app"`
	Version    string `json:"version"`
	ExportedAt string `json:"exportedAt"`
}

type EnvelopeData struct {
	Profile model.Profile          `json:"profile"`
	App     model.ApplicationState `json:"app"`
}

type Envelope struct {
	Meta Meta         `json:"meta"`
	Data EnvelopeData `json:"data"`
}

// Export renders the export file. exportedAt is written in UTC with
// millisecond precision.
func Export(appID, version string, profile model.Profile, state model.ApplicationState, now time.Time) ([]byte, error) {
	env := Envelope{
		Meta: Meta{
			App:        appID,
			Version:    version,
			ExportedAt: now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		},
		Data: EnvelopeData{Profile: profile, App: state},
	}
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return append(out, '\n'), nil
}

// Imported is a parsed import file. App is normalized already and only
// meaningful when HasApp is set; a file without application data leaves the
// checklist alone. Profile is nil when the file carries none, in which case
// the current profile stays.
type Imported struct {
	App     model.ApplicationState
	HasApp  bool
	HasLang bool
	Profile *model.Profile
}

// ParseImport accepts the export envelope and the looser shapes older
// exports used. Application data is looked up as data.app, then app, then a
// bare data object, then the whole payload when it has top-level application
// keys. Anything that is not a JSON
// object is rejected with ErrInvalidPayload.
func ParseImport(raw []byte) (Imported, error) {
	payload, err := model.ParseUntrusted(raw)
	if err != nil {
		return Imported{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if _, ok := payload.Object(); !ok {
		return Imported{}, ErrInvalidPayload
	}

	var out Imported
	if appSrc, ok := locateApp(payload); ok {
		out.App = model.Normalize(appSrc)
		out.HasApp = true
		out.HasLang = appSrc.Has("lang")
	}
	if p, ok := locateProfile(payload); ok {
		out.Profile = &p
	}
	return out, nil
}

// Apply replaces current with the imported data. The display language is a
// device preference and only changes when the file names one.
func (in Imported) Apply(current model.ApplicationState) model.ApplicationState {
	next := in.App.Clone()
	if !in.HasLang {
		next.Lang = model.ParseLang(string(current.Lang))
	}
	return next
}

var appKeys = []string{"lang", "country", "addressProfile", "sections", "ui"}

func locateApp(payload model.Untrusted) (model.Untrusted, bool) {
	data := payload.Field("data")
	if app := data.Field("app"); isObject(app) {
		return app, true
	}
	if app := payload.Field("app"); isObject(app) {
		return app, true
	}
	if isObject(data) && !data.Has("app") && !data.Has("profile") {
		return data, true
	}
	for _, key := range appKeys {
		if payload.Has(key) {
			return payload, true
		}
	}
	return model.Untrusted{}, false
}

func locateProfile(payload model.Untrusted) (model.Profile, bool) {
	for _, candidate := range []model.Untrusted{
		payload.Field("data").Field("profile"),
		payload.Field("profile"),
	} {
		if p, ok := model.DecodeProfile(candidate); ok {
			return p, true
		}
	}
	return model.Profile{}, false
}

func isObject(u model.Untrusted) bool {
	_, ok := u.Object()
	return ok
}
