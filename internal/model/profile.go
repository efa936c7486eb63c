package model

// Profile is the organisation identity shared by ToolStack apps. It is stored
// under its own key and has nothing to do with AddressProfile.
type Profile struct {
	Org      string `json:"org"`
	User     string `json:"user"`
	Language string `json:"language"`
	Logo     string `json:"logo"`
}

func DefaultProfile() Profile {
	return Profile{
		Org:      "ToolStack",
		User:     "",
		Language: string(LangEN),
		Logo:     "",
	}
}

// DecodeProfile reads a profile object; fields missing from the payload keep
// their defaults. ok is false when the payload is not an object at all.
func DecodeProfile(u Untrusted) (Profile, bool) {
	m, isObj := u.Object()
	if !isObj {
		return DefaultProfile(), false
	}
	p := DefaultProfile()
	if v, present := m["org"]; present {
		p.Org = coerceString(v)
	}
	if v, present := m["user"]; present {
		p.User = coerceString(v)
	}
	if v, present := m["language"]; present {
		p.Language = coerceString(v)
	}
	if v, present := m["logo"]; present {
		p.Logo = coerceString(v)
	}
	return p, true
}
