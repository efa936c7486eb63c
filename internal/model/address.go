package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownField = errors.New("model: unknown address field")

type AddressEntry struct {
	Street     string
	HouseNo    string
	PostalCode string
	City       string
	State      string
	Country    string
	// Extra keeps unknown fields from imported payloads so they survive a
	// round trip. Nothing reads them.
	Extra map[string]any
}

type AddressProfile struct {
	FullName      string
	Email         string
	Phone         string
	EffectiveDate string
	OldAddress    AddressEntry
	NewAddress    AddressEntry
	Extra         map[string]any
}

func DefaultAddressProfile() AddressProfile {
	return AddressProfile{}
}

type AddressField string

const (
	AddressStreet     AddressField = "street"
	AddressHouseNo    AddressField = "houseNo"
	AddressPostalCode AddressField = "postalCode"
	AddressCity       AddressField = "city"
	AddressState      AddressField = "state"
	AddressCountry    AddressField = "country"
)

var addressFields = []AddressField{AddressStreet, AddressHouseNo, AddressPostalCode, AddressCity, AddressState, AddressCountry}

func (f AddressField) IsValid() bool {
	for _, known := range addressFields {
		if f == known {
			return true
		}
	}
	return false
}

type ProfileField string

const (
	ProfileFullName      ProfileField = "fullName"
	ProfileEmail         ProfileField = "email"
	ProfilePhone         ProfileField = "phone"
	ProfileEffectiveDate ProfileField = "effectiveDate"
)

var profileFields = []ProfileField{ProfileFullName, ProfileEmail, ProfilePhone, ProfileEffectiveDate}

func (f ProfileField) IsValid() bool {
	for _, known := range profileFields {
		if f == known {
			return true
		}
	}
	return false
}

func (e AddressEntry) Get(field AddressField) string {
	switch field {
	case AddressStreet:
		return e.Street
	case AddressHouseNo:
		return e.HouseNo
	case AddressPostalCode:
		return e.PostalCode
	case AddressCity:
		return e.City
	case AddressState:
		return e.State
	case AddressCountry:
		return e.Country
	default:
		return ""
	}
}

// With returns a copy of e with one field replaced.
func (e AddressEntry) With(field AddressField, value string) (AddressEntry, error) {
	out := e.Clone()
	switch field {
	case AddressStreet:
		out.Street = value
	case AddressHouseNo:
		out.HouseNo = value
	case AddressPostalCode:
		out.PostalCode = value
	case AddressCity:
		out.City = value
	case AddressState:
		out.State = value
	case AddressCountry:
		out.Country = value
	default:
		return e, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return out, nil
}

func (e AddressEntry) IsZero() bool {
	for _, f := range addressFields {
		if e.Get(f) != "" {
			return false
		}
	}
	return true
}

// Line renders the entry as a single postal line, skipping empty parts.
func (e AddressEntry) Line() string {
	street := strings.TrimSpace(strings.Join([]string{e.Street, e.HouseNo}, " "))
	city := strings.TrimSpace(strings.Join([]string{e.PostalCode, e.City}, " "))
	parts := make([]string, 0, 4)
	for _, p := range []string{street, city, e.State, e.Country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func (e AddressEntry) Clone() AddressEntry {
	out := e
	out.Extra = cloneExtra(e.Extra)
	return out
}

func (p AddressProfile) Get(field ProfileField) string {
	switch field {
	case ProfileFullName:
		return p.FullName
	case ProfileEmail:
		return p.Email
	case ProfilePhone:
		return p.Phone
	case ProfileEffectiveDate:
		return p.EffectiveDate
	default:
		return ""
	}
}

func (p AddressProfile) With(field ProfileField, value string) (AddressProfile, error) {
	out := p.Clone()
	switch field {
	case ProfileFullName:
		out.FullName = value
	case ProfileEmail:
		out.Email = value
	case ProfilePhone:
		out.Phone = value
	case ProfileEffectiveDate:
		out.EffectiveDate = value
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return out, nil
}

func (p AddressProfile) WithOldAddress(field AddressField, value string) (AddressProfile, error) {
	entry, err := p.OldAddress.With(field, value)
	if err != nil {
		return p, err
	}
	out := p.Clone()
	out.OldAddress = entry
	return out, nil
}

func (p AddressProfile) WithNewAddress(field AddressField, value string) (AddressProfile, error) {
	entry, err := p.NewAddress.With(field, value)
	if err != nil {
		return p, err
	}
	out := p.Clone()
	out.NewAddress = entry
	return out, nil
}

func (p AddressProfile) Clone() AddressProfile {
	out := p
	out.OldAddress = p.OldAddress.Clone()
	out.NewAddress = p.NewAddress.Clone()
	out.Extra = cloneExtra(p.Extra)
	return out
}

type AddressGroup string

const (
	GroupProfile    AddressGroup = "profile"
	GroupOldAddress AddressGroup = "oldAddress"
	GroupNewAddress AddressGroup = "newAddress"
)

// AddressPath is a parsed "fullName", "oldAddress.city" or "new.street"
// reference. Profile is set for GroupProfile, Address for the two address
// groups.
type AddressPath struct {
	Group   AddressGroup
	Profile ProfileField
	Address AddressField
}

// ParseAddressPath reads the text form used by the command line and the
// palette. Unknown groups and fields fail with ErrUnknownField.
func ParseAddressPath(path string) (AddressPath, error) {
	head, tail, nested := strings.Cut(strings.TrimSpace(path), ".")
	if !nested {
		f := ProfileField(head)
		if !f.IsValid() {
			return AddressPath{}, fmt.Errorf("%w: %q", ErrUnknownField, path)
		}
		return AddressPath{Group: GroupProfile, Profile: f}, nil
	}
	var group AddressGroup
	switch head {
	case "oldAddress", "old":
		group = GroupOldAddress
	case "newAddress", "new":
		group = GroupNewAddress
	default:
		return AddressPath{}, fmt.Errorf("%w: %q", ErrUnknownField, path)
	}
	f := AddressField(tail)
	if !f.IsValid() {
		return AddressPath{}, fmt.Errorf("%w: %q", ErrUnknownField, path)
	}
	return AddressPath{Group: group, Address: f}, nil
}

// ApplyPath sets the field named by a text path.
func (p AddressProfile) ApplyPath(path, value string) (AddressProfile, error) {
	ap, err := ParseAddressPath(path)
	if err != nil {
		return p, err
	}
	switch ap.Group {
	case GroupOldAddress:
		return p.WithOldAddress(ap.Address, value)
	case GroupNewAddress:
		return p.WithNewAddress(ap.Address, value)
	default:
		return p.With(ap.Profile, value)
	}
}

func (e AddressEntry) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Extra)+len(addressFields))
	for k, v := range e.Extra {
		out[k] = v
	}
	for _, f := range addressFields {
		out[string(f)] = e.Get(f)
	}
	return json.Marshal(out)
}

func (e *AddressEntry) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = decodeAddressEntry(raw)
	return nil
}

func (p AddressProfile) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extra)+len(profileFields)+2)
	for k, v := range p.Extra {
		out[k] = v
	}
	for _, f := range profileFields {
		out[string(f)] = p.Get(f)
	}
	out["oldAddress"] = p.OldAddress
	out["newAddress"] = p.NewAddress
	return json.Marshal(out)
}

func (p *AddressProfile) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = decodeAddressProfile(raw)
	return nil
}

func cloneExtra(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
