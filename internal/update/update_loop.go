package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/toolstack/addressit/internal/scheduler"
	"github.com/toolstack/addressit/internal/views"
	"github.com/toolstack/addressit/internal/watch"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForImportCmd(m.imports), m.waitForDueCmd())
}

func waitForImportCmd(ch <-chan watch.ImportFile) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		f, ok := <-ch
		if !ok {
			return nil
		}
		return ImportFileMsg{File: f}
	}
}

func (m Model) waitForDueCmd() tea.Cmd {
	if m.due == nil {
		return nil
	}
	ch := m.due.C()
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return DueEventMsg{Event: ev}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		next, cmd := m.handleKey(typed)
		next.replanDue()
		return next, cmd
	case tea.WindowSizeMsg:
		if typed.Width > 8 {
			m.cfg.ReportWidth = typed.Width - 4
			m.reportViewport.Width = m.cfg.ReportWidth
		}
		if typed.Height > 8 {
			m.cfg.ReportHeight = typed.Height - 8
			m.reportViewport.Height = m.cfg.ReportHeight
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case ImportFileMsg:
		return m.onImportFile(typed.File), waitForImportCmd(m.imports)
	case DueEventMsg:
		return m.onDueEvent(typed.Event), m.waitForDueCmd()
	}
	return m.updateInputs(msg)
}

// updateInputs hands other messages, such as cursor blinks, to the focused
// text input.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.Edit.Active:
		m.editInput, cmd = m.editInput.Update(msg)
	case m.Palette.Active:
		m.commandInput, cmd = m.commandInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}
	if _, pending := m.Session.Pending(); pending {
		return m.handleConfirmKey(msg), nil
	}
	if m.Edit.Active {
		return m.handleEditKey(msg)
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}

	switch keyStr {
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.Screen {
	case ScreenWizard:
		return m.handleWizardKey(msg), nil
	case ScreenReport:
		return m.handleReportKey(msg), nil
	}

	switch keyStr {
	case m.Keys.Palette:
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.Status = StatusBar{Text: "command palette active", IsError: false}
		return m, m.commandInput.Focus()
	case m.Keys.Wizard:
		return m.openWizardScreen(), nil
	case m.Keys.Report:
		return m.openReport(), nil
	}
	next := m.handleChecklistKey(msg)
	if next.Edit.Active && !m.Edit.Active {
		return next, textinput.Blink
	}
	return next, nil
}

func (m Model) onDueEvent(ev scheduler.DueEvent) Model {
	str := m.Session.Strings()
	label, level := str.DueSoon, "warn"
	if ev.Kind == scheduler.DueOverdue {
		label, level = str.Overdue, "error"
	}
	m.notify(label, fmt.Sprintf("%s: %s (%s)", label, ev.Title, ev.Due), level)
	return m
}

// onImportFile turns a dropped file into a pending import the user has to
// confirm.
func (m Model) onImportFile(f watch.ImportFile) Model {
	if f.Err != nil {
		return m.fail(f.Err)
	}
	if _, err := m.Session.RequestImport(f.Data, f.Path); err != nil {
		m.logger.Info("import file skipped", zap.String("path", f.Path), zap.Error(err))
		return m.fail(err)
	}
	str := m.Session.Strings()
	m.Status = StatusBar{Text: str.ConfirmImport + " " + str.ConfirmPrompt}
	m.notify("Import", f.Path, "info")
	return m
}

func (m Model) View() string {
	s := m.Session
	str := s.Strings()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	left := ""
	right := ""
	switch m.Screen {
	case ScreenWizard:
		left = m.renderWizardView()
		right = m.renderHelpIfVisible()
	case ScreenReport:
		left = m.reportViewport.View()
	default:
		left = m.renderChecklistView()
		right = m.renderSidePane()
	}

	overlay := strings.TrimSpace(strings.Join([]string{
		m.renderConfirm(),
		views.RenderEditor(m.Edit.Active, m.editInput.View()),
		views.RenderCommandPalette(m.Palette.Active, m.commandInput.Value()),
	}, "\n"))
	if overlay != "" {
		left = left + "\n\n" + overlay
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("%s | %s | %s", str.AppName, m.Screen, str.Tagline),
		LeftPane:     left,
		RightPane:    right,
		StatusLine:   status,
		Notification: m.renderNotificationsView(),
		Footer: fmt.Sprintf("keys: %s cmd | %s wizard | %s report | %s help | %s quit",
			m.Keys.Palette, m.Keys.Wizard, m.Keys.Report, m.Keys.Help, m.Keys.Quit),
	})
}
