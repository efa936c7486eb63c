package model

import (
	"errors"
	"testing"
	"time"
)

func TestAddressProfileTypedUpdates(t *testing.T) {
	p := DefaultAddressProfile()
	next, err := p.WithNewAddress(AddressCity, "Berlin")
	if err != nil {
		t.Fatalf("set new city: %v", err)
	}
	next, err = next.With(ProfileEffectiveDate, "2026-03-01")
	if err != nil {
		t.Fatalf("set effective date: %v", err)
	}
	if next.NewAddress.City != "Berlin" || next.EffectiveDate != "2026-03-01" {
		t.Fatalf("unexpected profile: %#v", next)
	}
	if p.NewAddress.City != "" {
		t.Fatal("original profile must not change")
	}
}

func TestAddressProfileApplyPath(t *testing.T) {
	cases := []struct {
		path  string
		check func(AddressProfile) string
	}{
		{"newAddress.city", func(p AddressProfile) string { return p.NewAddress.City }},
		{"oldAddress.street", func(p AddressProfile) string { return p.OldAddress.Street }},
		{"new.postalCode", func(p AddressProfile) string { return p.NewAddress.PostalCode }},
		{"fullName", func(p AddressProfile) string { return p.FullName }},
	}
	for _, tc := range cases {
		got, err := DefaultAddressProfile().ApplyPath(tc.path, "v")
		if err != nil {
			t.Fatalf("apply %q: %v", tc.path, err)
		}
		if tc.check(got) != "v" {
			t.Fatalf("apply %q did not set the field: %#v", tc.path, got)
		}
	}

	for _, bad := range []string{"newAddress.planet", "middle.city", "nickname"} {
		if _, err := DefaultAddressProfile().ApplyPath(bad, "v"); !errors.Is(err, ErrUnknownField) {
			t.Fatalf("expected ErrUnknownField for %q, got %v", bad, err)
		}
	}
}

func TestParseAddressPath(t *testing.T) {
	cases := map[string]AddressPath{
		"email":             {Group: GroupProfile, Profile: ProfileEmail},
		" fullName ":        {Group: GroupProfile, Profile: ProfileFullName},
		"old.state":         {Group: GroupOldAddress, Address: AddressState},
		"newAddress.street": {Group: GroupNewAddress, Address: AddressStreet},
	}
	for in, want := range cases {
		got, err := ParseAddressPath(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q = %+v, want %+v", in, got, want)
		}
	}
	for _, bad := range []string{"", "old.", "new.planet", "phone.city"} {
		if _, err := ParseAddressPath(bad); !errors.Is(err, ErrUnknownField) {
			t.Fatalf("expected ErrUnknownField for %q, got %v", bad, err)
		}
	}
}

func TestAddressEntryLine(t *testing.T) {
	e := AddressEntry{Street: "Hauptstr.", HouseNo: "5", PostalCode: "10115", City: "Berlin", Country: "DE"}
	if got := e.Line(); got != "Hauptstr. 5, 10115 Berlin, DE" {
		t.Fatalf("unexpected line: %q", got)
	}
	if (AddressEntry{}).Line() != "" {
		t.Fatal("empty entry should render empty line")
	}
}

func TestNewIDIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		id := NewID()
		if id == "" || seen[id] {
			t.Fatalf("duplicate or empty id %q", id)
		}
		seen[id] = true
	}
	if fallbackID(time.Unix(0, 0)) == fallbackID(time.Unix(0, 0)) {
		t.Fatal("fallback ids must differ even at the same instant")
	}
}
