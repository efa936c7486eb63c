package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Untrusted wraps whatever came out of a JSON decoder (storage, import files).
// The only way to turn it into an ApplicationState is Normalize.
type Untrusted struct {
	value any
}

func UntrustedFrom(v any) Untrusted {
	return Untrusted{value: v}
}

// ParseUntrusted decodes JSON text. A decode failure is reported; callers
// that want the storage semantics ("unparseable means empty") ignore it.
func ParseUntrusted(data []byte) (Untrusted, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Untrusted{}, err
	}
	if dec.More() {
		return Untrusted{}, &json.SyntaxError{Offset: dec.InputOffset()}
	}
	return Untrusted{value: v}, nil
}

func (u Untrusted) Value() any { return u.value }

func (u Untrusted) IsNull() bool { return u.value == nil }

// Object returns the payload as a JSON object when it is one.
func (u Untrusted) Object() (map[string]any, bool) {
	m, ok := u.value.(map[string]any)
	return m, ok
}

// Field returns a nested untrusted value; missing keys yield a null value.
func (u Untrusted) Field(name string) Untrusted {
	m, ok := u.value.(map[string]any)
	if !ok {
		return Untrusted{}
	}
	return Untrusted{value: m[name]}
}

func (u Untrusted) Has(name string) bool {
	m, ok := u.value.(map[string]any)
	if !ok {
		return false
	}
	_, present := m[name]
	return present
}

// truthy follows JSON-ish truthiness: null, false, 0, NaN and "" are false.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t.String() != "" && t.String() != "0"
		}
		return f != 0 && !math.IsNaN(f)
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	default:
		return true
	}
}

// coerceString renders any decoded value as text; null becomes "".
// Objects and arrays are rendered as compact JSON.
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func asSlice(v any) []any {
	s, ok := v.([]any)
	if !ok {
		return nil
	}
	return s
}

func decodeAddressEntry(raw any) AddressEntry {
	m, ok := raw.(map[string]any)
	if !ok {
		return AddressEntry{}
	}
	var out AddressEntry
	for k, v := range m {
		f := AddressField(k)
		if f.IsValid() {
			out, _ = out.With(f, coerceString(v))
			continue
		}
		if out.Extra == nil {
			out.Extra = make(map[string]any)
		}
		out.Extra[k] = v
	}
	return out
}

func decodeAddressProfile(raw any) AddressProfile {
	m, ok := raw.(map[string]any)
	if !ok {
		return DefaultAddressProfile()
	}
	out := DefaultAddressProfile()
	for k, v := range m {
		switch k {
		case "oldAddress":
			out.OldAddress = decodeAddressEntry(v)
			continue
		case "newAddress":
			out.NewAddress = decodeAddressEntry(v)
			continue
		}
		f := ProfileField(k)
		if f.IsValid() {
			out, _ = out.With(f, coerceString(v))
			continue
		}
		if out.Extra == nil {
			out.Extra = make(map[string]any)
		}
		out.Extra[k] = v
	}
	return out
}

func decodeItem(raw any) (ChecklistItem, bool) {
	if !truthy(raw) {
		return ChecklistItem{}, false
	}
	m, _ := raw.(map[string]any)
	it := ChecklistItem{
		Title:       coerceString(m["title"]),
		Notes:       coerceString(m["notes"]),
		Done:        truthy(m["done"]),
		IsSuggested: truthy(m["isSuggested"]),
	}
	if truthy(m["id"]) {
		it.ID = coerceString(m["id"])
	}
	if due, ok := m["due"].(string); ok {
		it.Due = due
	}
	return it, true
}

func decodeSection(raw any) (Section, bool) {
	if !truthy(raw) {
		return Section{}, false
	}
	m, _ := raw.(map[string]any)
	sec := Section{
		Name:      coerceString(m["name"]),
		Collapsed: truthy(m["collapsed"]),
	}
	if truthy(m["id"]) {
		sec.ID = coerceString(m["id"])
	}
	if truthy(m["key"]) {
		sec.Key = KeyPtr(coerceString(m["key"]))
	}
	rawItems := asSlice(m["items"])
	sec.Items = make([]ChecklistItem, 0, len(rawItems))
	for _, ri := range rawItems {
		if it, ok := decodeItem(ri); ok {
			sec.Items = append(sec.Items, it)
		}
	}
	return sec, true
}

// decodeState maps an untrusted value onto the typed shape without applying
// the repair rules; Normalize does that afterwards.
func decodeState(u Untrusted) ApplicationState {
	m, ok := u.Object()
	if !ok {
		return Empty()
	}
	st := ApplicationState{
		Lang:           ParseLang(m["lang"]),
		Country:        ParseCountry(m["country"]),
		AddressProfile: decodeAddressProfile(m["addressProfile"]),
	}
	rawSections := asSlice(m["sections"])
	st.Sections = make([]Section, 0, len(rawSections))
	for _, rs := range rawSections {
		if sec, ok := decodeSection(rs); ok {
			st.Sections = append(st.Sections, sec)
		}
	}
	if ui, ok := m["ui"].(map[string]any); ok {
		st.UI = UIFlags{
			HideDone:         truthy(ui["hideDone"]),
			PresetsCollapsed: truthy(ui["presetsCollapsed"]),
			ProfileCollapsed: truthy(ui["profileCollapsed"]),
		}
	}
	return st
}
