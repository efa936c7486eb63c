package checklist

import "github.com/toolstack/addressit/internal/model"

func SetLang(state model.ApplicationState, lang model.Lang) model.ApplicationState {
	next := state.Clone()
	next.Lang = model.ParseLang(string(lang))
	return next
}

// SetCountry switches the preset catalog. Existing sections stay as they are;
// only which presets count as recommended changes.
func SetCountry(state model.ApplicationState, country model.Country) model.ApplicationState {
	next := state.Clone()
	next.Country = model.ParseCountry(string(country))
	return next
}

func SetHideDone(state model.ApplicationState, hide bool) model.ApplicationState {
	next := state.Clone()
	next.UI.HideDone = hide
	return next
}

type Panel string

const (
	PanelPresets Panel = "presets"
	PanelProfile Panel = "profile"
)

func TogglePanel(state model.ApplicationState, panel Panel) model.ApplicationState {
	next := state.Clone()
	switch panel {
	case PanelPresets:
		next.UI.PresetsCollapsed = !next.UI.PresetsCollapsed
	case PanelProfile:
		next.UI.ProfileCollapsed = !next.UI.ProfileCollapsed
	}
	return next
}

// UpdateAddress sets one address-profile field addressed as "fullName",
// "oldAddress.city", "new.street" and so on.
func UpdateAddress(state model.ApplicationState, path, value string) (model.ApplicationState, error) {
	ap, err := model.ParseAddressPath(path)
	if err != nil {
		return state, err
	}
	switch ap.Group {
	case model.GroupOldAddress:
		return SetOldAddress(state, ap.Address, value)
	case model.GroupNewAddress:
		return SetNewAddress(state, ap.Address, value)
	default:
		return SetProfileField(state, ap.Profile, value)
	}
}

func SetProfileField(state model.ApplicationState, field model.ProfileField, value string) (model.ApplicationState, error) {
	profile, err := state.AddressProfile.With(field, value)
	if err != nil {
		return state, err
	}
	next := state.Clone()
	next.AddressProfile = profile
	return next, nil
}

func SetOldAddress(state model.ApplicationState, field model.AddressField, value string) (model.ApplicationState, error) {
	profile, err := state.AddressProfile.WithOldAddress(field, value)
	if err != nil {
		return state, err
	}
	next := state.Clone()
	next.AddressProfile = profile
	return next, nil
}

func SetNewAddress(state model.ApplicationState, field model.AddressField, value string) (model.ApplicationState, error) {
	profile, err := state.AddressProfile.WithNewAddress(field, value)
	if err != nil {
		return state, err
	}
	next := state.Clone()
	next.AddressProfile = profile
	return next, nil
}
