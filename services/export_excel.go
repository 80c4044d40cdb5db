package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// PickingListExcel creates a styled xlsx workbook from a processed work
// order: a header block, the ranked picking list with priority batches
// highlighted, and a shortage summary. Returns the file contents.
func PickingListExcel(result *ProcessResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Picking List"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through M, one per picking-list column).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M"}
	lastCol := columns[len(columns)-1]

	widths := []float64{16, 32, 14, 12, 12, 12, 12, 14, 10, 10, 24, 7, 9}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	// Priority batches get the amber highlight the results view uses.
	priorityStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#FFF3CD"}, Pattern: 1},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create priority style: %w", err)
	}

	rowStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create row style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header Rows (1-3) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	title := fmt.Sprintf("Picking List - Work Order %s", result.Header.ProductionTicketNr)
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge product row: %w", err)
	}
	product := fmt.Sprintf("Product: %s  |  Batch: %s  |  Manager: %s",
		result.Header.ProductCode, result.Header.BatchNr, result.Header.Manager)
	f.SetCellValue(sheetName, "A2", sanitizeExcelCell(product))
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge quantity row: %w", err)
	}
	launched := fmt.Sprintf("Quantity launched: %s  |  Start: %s",
		FormatQuantity(result.Header.QuantityLaunched), result.Header.StartDate)
	f.SetCellValue(sheetName, "A3", sanitizeExcelCell(launched))
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// ── Row 5: Column Headers ───────────────────────────────────────────

	for i, h := range pickingListColumns {
		cell := fmt.Sprintf("%s5", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// ── Data Rows (starting row 6) ──────────────────────────────────────

	row := 6
	for _, entry := range result.PickingList {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(entry.Component))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(entry.Description))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(entry.BatchNr))
		f.SetCellValue(sheetName, "D"+rowStr, FormatExpiry(entry.Expiry))
		f.SetCellValue(sheetName, "E"+rowStr, entry.AvailableQuantity)
		f.SetCellValue(sheetName, "F"+rowStr, entry.QuantityRequired)
		f.SetCellValue(sheetName, "G"+rowStr, entry.WarehouseStock)
		f.SetCellValue(sheetName, "H"+rowStr, sanitizeExcelCell(entry.DepotLocation))
		f.SetCellValue(sheetName, "I"+rowStr, sanitizeExcelCell(entry.Build))
		f.SetCellValue(sheetName, "J"+rowStr, sanitizeExcelCell(entry.Zone))
		f.SetCellValue(sheetName, "K"+rowStr, sanitizeExcelCell(entry.LocationDescription))
		f.SetCellValue(sheetName, "L"+rowStr, entry.Rank)
		if entry.Priority {
			f.SetCellValue(sheetName, "M"+rowStr, "PICK FIRST")
		}

		style := rowStyle
		if entry.Priority {
			style = priorityStyle
		}
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, style)

		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++

	summaryRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "D"+summaryRow, "Components:")
	f.SetCellStyle(sheetName, "D"+summaryRow, "D"+summaryRow, summaryLabelStyle)
	f.SetCellValue(sheetName, "E"+summaryRow, result.Stats.TotalComponents)
	f.SetCellStyle(sheetName, "E"+summaryRow, "E"+summaryRow, summaryValueStyle)
	row++

	summaryRow = fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "D"+summaryRow, "Shortages:")
	f.SetCellStyle(sheetName, "D"+summaryRow, "D"+summaryRow, summaryLabelStyle)
	f.SetCellValue(sheetName, "E"+summaryRow, result.Stats.ShortageCount)
	f.SetCellStyle(sheetName, "E"+summaryRow, "E"+summaryRow, summaryValueStyle)

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
