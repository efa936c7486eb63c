package update

import (
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/toolstack/addressit/internal/app"
	"github.com/toolstack/addressit/internal/checklist"
	"github.com/toolstack/addressit/internal/model"
	"github.com/toolstack/addressit/internal/transfer"
)

func (m Model) handleChecklistKey(msg tea.KeyMsg) Model {
	s := m.Session
	str := s.Strings()
	row, hasRow := m.currentRow()

	switch msg.String() {
	case "j", "down":
		if m.Cursor < len(m.rows())-1 {
			m.Cursor++
		}
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "g", "home":
		m.Cursor = 0
	case "G", "end":
		m.Cursor = len(m.rows()) - 1
		m.clampCursor()
	case " ", "x":
		if !hasRow {
			return m
		}
		if row.Kind == RowItem {
			m = m.apply(s.ToggleItemDone(m.ctx, row.SectionID, row.ItemID))
			m.clampCursor()
			return m
		}
		m = m.apply(s.ToggleSectionCollapsed(m.ctx, row.SectionID))
	case "enter", "e":
		if !hasRow {
			return m
		}
		if row.Kind == RowItem {
			return m.startEdit(EditTitle, row.SectionID, row.ItemID)
		}
		if msg.String() == "enter" {
			m = m.apply(s.ToggleSectionCollapsed(m.ctx, row.SectionID))
			return m
		}
		return m.startEdit(EditSectionName, row.SectionID, "")
	case "o":
		if hasRow && row.Kind == RowItem {
			return m.startEdit(EditNotes, row.SectionID, row.ItemID)
		}
	case "t":
		if hasRow && row.Kind == RowItem {
			return m.startEdit(EditDue, row.SectionID, row.ItemID)
		}
	case "n":
		if !hasRow {
			m.Status = StatusBar{Text: str.Empty, IsError: true}
			return m
		}
		id, err := s.AddItem(m.ctx, row.SectionID)
		if err != nil {
			return m.fail(err)
		}
		m.focusRow(row.SectionID, id)
		return m.startEdit(EditTitle, row.SectionID, id)
	case "N":
		id := s.AddCustomSection(m.ctx)
		m.focusRow(id, "")
		return m.startEdit(EditSectionName, id, "")
	case "a":
		if !hasRow {
			return m
		}
		n, err := s.AddSuggestedMissing(m.ctx, row.SectionID)
		switch {
		case errors.Is(err, checklist.ErrNothingMissing), errors.Is(err, checklist.ErrNoPresetKey):
			m.Status = StatusBar{Text: str.NothingMissing}
		case err != nil:
			return m.fail(err)
		default:
			m.Status = StatusBar{Text: fmt.Sprintf("%s: %d", str.Added, n)}
		}
	case "d":
		if !hasRow {
			return m
		}
		if row.Kind == RowItem {
			_, err := s.RequestDeleteItem(row.SectionID, row.ItemID)
			return m.afterRequest(err, str.DeleteItem)
		}
		_, err := s.RequestDeleteSection(row.SectionID)
		return m.afterRequest(err, str.DeleteSection)
	case "H":
		s.SetHideDone(m.ctx, !s.State().UI.HideDone)
		m.clampCursor()
	case "L":
		next := model.LangDE
		if s.Lang() == model.LangDE {
			next = model.LangEN
		}
		s.SetLang(m.ctx, next)
		m.Status = StatusBar{Text: string(next)}
	case "C":
		next := model.CountryWorld
		if s.State().Country == model.CountryWorld {
			next = model.CountryDE
		}
		s.SetCountry(m.ctx, next)
		m.Status = StatusBar{Text: fmt.Sprintf("%s: %s", s.Strings().Country, s.Strings().CountryName(next))}
	case "p":
		s.TogglePanel(m.ctx, checklist.PanelPresets)
	case "P":
		s.TogglePanel(m.ctx, checklist.PanelProfile)
	case "E":
		return m.exportTo(transfer.FileJSON, "")
	case "X":
		return m.exportTo(transfer.FileCSV, "")
	case "R":
		_, err := s.RequestReset()
		return m.afterRequest(err, str.ConfirmReset)
	}
	return m
}

func (m Model) apply(err error) Model {
	if err != nil {
		return m.fail(err)
	}
	return m
}

func (m Model) fail(err error) Model {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
	m.notify("Error", err.Error(), "error")
	return m
}

func (m Model) afterRequest(err error, prompt string) Model {
	if err != nil {
		return m.fail(err)
	}
	m.Status = StatusBar{Text: prompt + " " + m.Session.Strings().ConfirmPrompt}
	return m
}

// exportTo writes an export into path, or into the export directory under
// its default name when path is empty.
func (m Model) exportTo(kind transfer.FileKind, path string) Model {
	data, name, err := m.Session.ExportFile(kind)
	if err != nil {
		return m.fail(err)
	}
	if path == "" {
		path = filepath.Join(m.cfg.ExportDir, name)
	}
	if err := transfer.WriteFile(path, data); err != nil {
		return m.fail(err)
	}
	m.logger.Info("export written", zap.String("kind", string(kind)), zap.String("path", path))
	text := fmt.Sprintf("%s: %s", m.Session.Strings().Exported, path)
	m.Status = StatusBar{Text: text}
	m.notify("Export", text, "info")
	return m
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) Model {
	s := m.Session
	switch msg.String() {
	case "y", "Y", "j", "J", "enter":
		action, err := s.Confirm(m.ctx)
		str := s.Strings()
		if err != nil {
			if errors.Is(err, transfer.ErrInvalidPayload) {
				return m.fail(errors.New(str.InvalidJSON))
			}
			return m.fail(err)
		}
		switch action.Kind {
		case app.ActionImport:
			m.Status = StatusBar{Text: str.Imported}
			m.notify("Import", str.Imported+": "+action.Source, "info")
		case app.ActionReset:
			m.Status = StatusBar{Text: str.ResetDone}
			m.Cursor = 0
			m.Screen = ScreenWizard
			m.WizardCursor = 0
		default:
			m.Status = StatusBar{Text: str.Delete}
		}
		m.clampCursor()
	case "n", "N", "esc":
		_ = s.Decline()
		m.Status = StatusBar{Text: s.Strings().Declined}
	}
	return m
}
