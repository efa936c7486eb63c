package update

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toolstack/addressit/internal/transfer"
	"github.com/toolstack/addressit/internal/views"
)

// openReport renders the Markdown report into the viewport.
func (m Model) openReport() Model {
	md := m.Session.Report()
	m.reportViewport.Width = m.cfg.ReportWidth
	m.reportViewport.Height = m.cfg.ReportHeight
	m.reportViewport.SetContent(views.RenderMarkdown(md, m.cfg.ReportWidth-4))
	m.reportViewport.GotoTop()
	m.Screen = ScreenReport
	return m
}

func (m Model) handleReportKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc", m.Keys.Report:
		m.Screen = ScreenChecklist
		return m
	case "s":
		data, name, err := m.Session.ExportFile(transfer.FileMarkdown)
		if err != nil {
			return m.fail(err)
		}
		path := filepath.Join(m.cfg.ExportDir, name)
		if err := transfer.WriteFile(path, data); err != nil {
			return m.fail(err)
		}
		m.Status = StatusBar{Text: m.Session.Strings().Exported + ": " + path}
		return m
	}
	var cmd tea.Cmd
	m.reportViewport, cmd = m.reportViewport.Update(msg)
	_ = cmd
	return m
}
