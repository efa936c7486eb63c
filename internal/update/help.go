package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/toolstack/addressit/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.screenBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.Screen),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Wizard, Action: "open setup wizard"},
		{Key: m.Keys.Report, Action: "toggle report preview"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) screenBindings() []KeyBinding {
	switch m.Screen {
	case ScreenChecklist:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "space", Action: "toggle done / collapse section"},
			{Key: "e", Action: "edit title or section name"},
			{Key: "t/o", Action: "edit due date / notes"},
			{Key: "n/N", Action: "new item / new section"},
			{Key: "a", Action: "add suggested items"},
			{Key: "d", Action: "delete (asks first)"},
			{Key: "H", Action: "hide done items"},
			{Key: "L/C", Action: "switch language / country"},
			{Key: "p/P", Action: "fold presets / profile panel"},
			{Key: "E/X", Action: "export JSON / CSV"},
			{Key: "R", Action: "reset everything (asks first)"},
		}
	case ScreenWizard:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "space", Action: "pick country / toggle section"},
			{Key: "enter", Action: "next / finish"},
			{Key: "b", Action: "back"},
			{Key: "esc", Action: "close without changes"},
		}
	case ScreenReport:
		return []KeyBinding{
			{Key: "j/k", Action: "scroll"},
			{Key: "s", Action: "save report as markdown"},
			{Key: "esc", Action: "back to checklist"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.screenBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.screenBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
