package transfer

import (
	"strings"

	"github.com/toolstack/addressit/internal/model"
)

var csvHeader = []string{"section", "item", "done", "due", "notes"}

// ExportCSV writes one row per item under a header row. Every field is
// quoted, quotes are doubled and rows are separated by a bare "\n". Line
// breaks inside notes become single spaces.
func ExportCSV(state model.ApplicationState) []byte {
	var b strings.Builder
	writeCSVRow(&b, csvHeader)
	for _, sec := range state.Sections {
		for _, it := range sec.Items {
			b.WriteByte('\n')
			writeCSVRow(&b, []string{sec.Name, it.Title, yesNo(it.Done), it.Due, flattenNotes(it.Notes)})
		}
	}
	return []byte(b.String())
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
}

var notesFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func flattenNotes(notes string) string {
	return strings.TrimSpace(notesFlattener.Replace(notes))
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
