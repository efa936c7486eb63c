package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"go.uber.org/zap"

	"github.com/toolstack/addressit/internal/app"
	"github.com/toolstack/addressit/internal/scheduler"
	"github.com/toolstack/addressit/internal/watch"
)

type Screen string

const (
	ScreenChecklist Screen = "Checklist"
	ScreenWizard    Screen = "Wizard"
	ScreenReport    Screen = "Report"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Palette string
	Wizard  string
	Report  string
	Help    string
	Quit    string
}

// EditField names what the inline editor is changing.
type EditField string

const (
	EditTitle       EditField = "title"
	EditNotes       EditField = "notes"
	EditDue         EditField = "due"
	EditSectionName EditField = "section"
)

type EditState struct {
	Active    bool
	Field     EditField
	SectionID string
	ItemID    string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type Model struct {
	Session       *app.Session
	Screen        Screen
	Cursor        int
	WizardCursor  int
	Edit          EditState
	Palette       CommandPaletteState
	HelpVisible   bool
	Notifications []Notification
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error

	ctx     context.Context
	cfg     RuntimeConfig
	logger  *zap.Logger
	imports <-chan watch.ImportFile
	due     *scheduler.Engine

	editInput      textinput.Model
	commandInput   textinput.Model
	progressBar    progress.Model
	helpModel      help.Model
	reportViewport viewport.Model
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// ImportFileMsg carries a file picked up by the import watcher.
type ImportFileMsg struct {
	File watch.ImportFile
}

// DueEventMsg reports an item entering the due-soon window or turning
// overdue.
type DueEventMsg struct {
	Event scheduler.DueEvent
}

// NewModel wraps an open session. When the session starts with the wizard
// open, the TUI starts on the wizard screen.
func NewModel(ctx context.Context, session *app.Session, cfg RuntimeConfig, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := Model{
		Session: session,
		Screen:  ScreenChecklist,
		Keys: GlobalKeyMap{
			Palette: "/",
			Wizard:  "w",
			Report:  "r",
			Help:    "?",
			Quit:    "q",
		},
		ctx:    ctx,
		cfg:    cfg,
		logger: logger,
	}
	if session.WizardOpen() {
		m.Screen = ScreenWizard
	}
	m.initBubbleComponents()
	return m
}

// WithImports attaches the watcher channel; Init starts listening on it.
func (m Model) WithImports(ch <-chan watch.ImportFile) Model {
	m.imports = ch
	return m
}

// WithDueEngine attaches a started engine. Its queue is replanned from the
// checklist now and after every key press.
func (m Model) WithDueEngine(e *scheduler.Engine) Model {
	m.due = e
	m.replanDue()
	return m
}

func (m Model) replanDue() {
	if m.due == nil {
		return
	}
	evs := scheduler.Plan(m.Session.State(), m.Session.Now())
	if err := m.due.Replace(evs); err != nil {
		m.logger.Debug("due replan skipped", zap.Error(err))
	}
}

func (m *Model) initBubbleComponents() {
	m.editInput = textinput.New()
	m.editInput.CharLimit = 512
	m.editInput.Width = 48

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.progressBar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	m.helpModel = help.New()
	m.reportViewport = viewport.New(m.cfg.ReportWidth, m.cfg.ReportHeight)
}
