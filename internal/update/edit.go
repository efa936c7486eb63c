package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toolstack/addressit/internal/checklist"
	"github.com/toolstack/addressit/internal/commands"
)

func (m Model) startEdit(field EditField, sectionID, itemID string) Model {
	s := m.Session
	str := s.Strings()
	value := ""
	prompt := ""
	switch field {
	case EditSectionName:
		state := s.State()
		if i, ok := state.FindSection(sectionID); ok {
			value = state.Sections[i].Name
		}
		prompt = str.Sections
	default:
		it, err := checklist.FindItem(s.State(), sectionID, itemID)
		if err != nil {
			return m.fail(err)
		}
		switch field {
		case EditTitle:
			value, prompt = it.Title, str.Title
		case EditNotes:
			value, prompt = it.Notes, str.Notes
		case EditDue:
			value, prompt = it.Due, str.Due
		}
	}

	m.Edit = EditState{Active: true, Field: field, SectionID: sectionID, ItemID: itemID}
	m.editInput.Prompt = prompt + "> "
	m.editInput.SetValue(value)
	m.editInput.CursorEnd()
	m.editInput.Focus()
	return m
}

func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.stopEdit(), nil
	case "enter":
		return m.commitEdit().stopEdit(), nil
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m Model) stopEdit() Model {
	m.Edit = EditState{}
	m.editInput.SetValue("")
	m.editInput.Blur()
	return m
}

func (m Model) commitEdit() Model {
	s := m.Session
	e := m.Edit
	value := m.editInput.Value()

	switch e.Field {
	case EditSectionName:
		return m.apply(s.RenameSection(m.ctx, e.SectionID, value))
	case EditTitle:
		return m.apply(s.UpdateItem(m.ctx, e.SectionID, e.ItemID, checklist.ItemPatch{Title: &value}))
	case EditNotes:
		return m.apply(s.UpdateItem(m.ctx, e.SectionID, e.ItemID, checklist.ItemPatch{Notes: &value}))
	case EditDue:
		due, err := commands.ResolveDue(strings.TrimSpace(value), s.Now())
		if strings.TrimSpace(value) == "" {
			due, err = "", nil
		}
		if err != nil {
			return m.fail(err)
		}
		return m.apply(s.UpdateItem(m.ctx, e.SectionID, e.ItemID, checklist.ItemPatch{Due: &due}))
	}
	return m
}
