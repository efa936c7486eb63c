package transfer

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/toolstack/addressit/internal/i18n"
	"github.com/toolstack/addressit/internal/metrics"
	"github.com/toolstack/addressit/internal/model"
)

const (
	checklistSheet = "Checklist"
	summarySheet   = "Summary"
)

// ExportXLSX builds a workbook with the CSV columns on a checklist sheet and
// the metrics on a summary sheet.
func ExportXLSX(state model.ApplicationState, m metrics.Metrics) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(checklistSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create checklist sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("create summary sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := writeRow(f, checklistSheet, 1, toCells(csvHeader)); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetCellStyle(checklistSheet, "A1", "E1", headerStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("style header: %w", err)
	}
	for col, width := range map[string]float64{"A": 24, "B": 48, "C": 8, "D": 12, "E": 60} {
		if err := f.SetColWidth(checklistSheet, col, col, width); err != nil {
			f.Close()
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	row := 2
	for _, sec := range state.Sections {
		for _, it := range sec.Items {
			cells := []any{sec.Name, it.Title, yesNo(it.Done), it.Due, flattenNotes(it.Notes)}
			if err := writeRow(f, checklistSheet, row, cells); err != nil {
				f.Close()
				return nil, err
			}
			row++
		}
	}
	if err := f.SetPanes(checklistSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	L := i18n.For(state.Lang)
	summary := [][]any{
		{L.Country, L.CountryName(state.Country)},
		{L.Total, m.Total},
		{L.Done, m.Done},
		{L.Remaining, m.Remaining},
		{L.Progress + " %", m.ProgressPct},
		{L.DueSoon, m.DueSoon},
		{L.Overdue, m.Overdue},
		{L.SuggestedOpen, m.SuggestedRemaining},
		{L.MissingRec, m.MissingRecommendedCount},
	}
	for i, cells := range summary {
		if err := writeRow(f, summarySheet, i+1, cells); err != nil {
			f.Close()
			return nil, err
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 28); err != nil {
		f.Close()
		return nil, fmt.Errorf("set column width: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toCells(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
