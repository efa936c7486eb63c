package update

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toolstack/addressit/internal/checklist"
	"github.com/toolstack/addressit/internal/commands"
	"github.com/toolstack/addressit/internal/model"
	"github.com/toolstack/addressit/internal/transfer"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
	}
	return m, cmd
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw, m.Session.Now())
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m.closePalette()
	}

	s := m.Session
	str := s.Strings()
	row, hasRow := m.currentRow()
	needSection := func() (string, error) {
		if !hasRow {
			return "", &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "select a section first"}
		}
		return row.SectionID, nil
	}
	needItem := func() (Row, error) {
		if !hasRow || row.Kind != RowItem {
			return Row{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "select an item first"}
		}
		return row, nil
	}
	patchItem := func(patch checklist.ItemPatch, msg string) (commands.Result, error) {
		r, err := needItem()
		if err != nil {
			return commands.Result{}, err
		}
		if err := s.UpdateItem(m.ctx, r.SectionID, r.ItemID, patch); err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Message: msg}, nil
	}

	var exportKind transfer.FileKind
	var exportPath string

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.TextArgs) (commands.Result, error) {
			sid, err := needSection()
			if err != nil {
				return commands.Result{}, err
			}
			id, err := s.AddItem(m.ctx, sid)
			if err != nil {
				return commands.Result{}, err
			}
			title := a.Text
			if err := s.UpdateItem(m.ctx, sid, id, checklist.ItemPatch{Title: &title}); err != nil {
				return commands.Result{}, err
			}
			m.focusRow(sid, id)
			return commands.Result{Message: fmt.Sprintf("%s: %s", str.Added, title)}, nil
		},
		Section: func(a commands.TextArgs) (commands.Result, error) {
			id := s.AddCustomSection(m.ctx)
			if err := s.RenameSection(m.ctx, id, a.Text); err != nil {
				return commands.Result{}, err
			}
			m.focusRow(id, "")
			return commands.Result{Message: fmt.Sprintf("%s: %s", str.Added, a.Text)}, nil
		},
		Preset: func(p commands.PresetArgs) (commands.Result, error) {
			err := s.AddSectionFromPreset(m.ctx, p.Key)
			if errors.Is(err, checklist.ErrSectionExists) {
				return commands.Result{Message: str.SectionAlready}, nil
			}
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("%s: %s", str.Added, p.Key)}, nil
		},
		Rename: func(a commands.TextArgs) (commands.Result, error) {
			sid, err := needSection()
			if err != nil {
				return commands.Result{}, err
			}
			if err := s.RenameSection(m.ctx, sid, a.Text); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: a.Text}, nil
		},
		Title: func(a commands.TextArgs) (commands.Result, error) {
			title := a.Text
			return patchItem(checklist.ItemPatch{Title: &title}, title)
		},
		Note: func(a commands.TextArgs) (commands.Result, error) {
			notes := a.Text
			return patchItem(checklist.ItemPatch{Notes: &notes}, str.Notes)
		},
		Due: func(d commands.DueArgs) (commands.Result, error) {
			due := d.Date
			return patchItem(checklist.ItemPatch{Due: &due}, fmt.Sprintf("%s: %s", str.Due, due))
		},
		Set: func(a commands.SetArgs) (commands.Result, error) {
			if err := s.UpdateAddress(m.ctx, a.Path, a.Value); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("%s = %s", a.Path, a.Value)}, nil
		},
		Lang: func(a commands.LangArgs) (commands.Result, error) {
			s.SetLang(m.ctx, model.ParseLang(a.Lang))
			return commands.Result{Message: a.Lang}, nil
		},
		Country: func(a commands.CountryArgs) (commands.Result, error) {
			c := model.ParseCountry(a.Country)
			s.SetCountry(m.ctx, c)
			return commands.Result{Message: s.Strings().CountryName(c)}, nil
		},
		Export: func(a commands.ExportArgs) (commands.Result, error) {
			kind, err := transfer.ParseFileKind(a.Format)
			if err != nil {
				return commands.Result{}, err
			}
			exportKind, exportPath = kind, a.Path
			return commands.Result{}, nil
		},
		Import: func(a commands.ImportArgs) (commands.Result, error) {
			raw, err := os.ReadFile(a.Path)
			if err != nil {
				return commands.Result{}, err
			}
			if _, err := s.RequestImport(raw, a.Path); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: str.ConfirmImport + " " + str.ConfirmPrompt}, nil
		},
	})

	m = m.closePalette()
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
		return m
	}
	if exportKind != "" {
		return m.exportTo(exportKind, exportPath)
	}
	m.clampCursor()
	m.Status = StatusBar{Text: res.Message, IsError: false}
	m.notify("Command", res.Message, "info")
	return m
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}
