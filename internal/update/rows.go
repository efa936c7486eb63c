package update

import "github.com/toolstack/addressit/internal/model"

type RowKind int

const (
	RowSection RowKind = iota
	RowItem
)

// Row is one cursor stop in the checklist: a section header or an item.
type Row struct {
	Kind      RowKind
	SectionID string
	ItemID    string
}

// visibleRows flattens the checklist the way it is drawn. Items of collapsed
// sections are skipped, and so are done items while hide-done is on.
func visibleRows(state model.ApplicationState) []Row {
	rows := make([]Row, 0, len(state.Sections)+state.ItemCount())
	for _, sec := range state.Sections {
		rows = append(rows, Row{Kind: RowSection, SectionID: sec.ID})
		if sec.Collapsed {
			continue
		}
		for _, it := range sec.Items {
			if state.UI.HideDone && it.Done {
				continue
			}
			rows = append(rows, Row{Kind: RowItem, SectionID: sec.ID, ItemID: it.ID})
		}
	}
	return rows
}

func (m Model) rows() []Row {
	return visibleRows(m.Session.State())
}

func (m Model) currentRow() (Row, bool) {
	rows := m.rows()
	if m.Cursor < 0 || m.Cursor >= len(rows) {
		return Row{}, false
	}
	return rows[m.Cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.rows())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// focusRow moves the cursor onto the row matching sectionID and itemID, if
// it is visible.
func (m *Model) focusRow(sectionID, itemID string) {
	for i, r := range m.rows() {
		if r.SectionID == sectionID && r.ItemID == itemID {
			m.Cursor = i
			return
		}
	}
	m.clampCursor()
}
