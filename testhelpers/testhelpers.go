// Package testhelpers builds in-memory xlsx work order files in the plant
// export layout for parser, pipeline, and handler tests.
package testhelpers

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

// WorkOrderColumns is the canonical column order of the plant export.
var WorkOrderColumns = []string{
	"Production Ticket Nr", "Wording", "Product Code", "Batch Nr", "Manager",
	"Quantity launched Theoretical", "Current date marked the beginning",
	"Component", "Description", "DLUO", "Quantity required",
	"Available Quantity", "Warehouse Stock", "depot location", "Build",
	"Zone", "Location Description",
}

// WorkOrderSpec describes the file to build. Columns defaults to
// WorkOrderColumns; override it to simulate a missing or wrapped header.
// SheetName defaults to Feuil1.
type WorkOrderSpec struct {
	SheetName string
	Columns   []string
	Rows      [][]string
}

// BuildWorkOrderFile writes an xlsx with three cover rows, the column header
// at row 4, and data from row 5 on, mirroring the layout the parser expects.
func BuildWorkOrderFile(tb testing.TB, spec WorkOrderSpec) []byte {
	tb.Helper()

	sheet := spec.SheetName
	if sheet == "" {
		sheet = "Feuil1"
	}
	columns := spec.Columns
	if columns == nil {
		columns = WorkOrderColumns
	}

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		tb.Fatalf("set sheet name: %v", err)
	}

	// Cover block occupying the three rows above the header.
	f.SetCellValue(sheet, "A1", "Production work order export")
	f.SetCellValue(sheet, "A2", "Internal use only")

	for i, name := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 4)
		if err != nil {
			tb.Fatalf("header cell name: %v", err)
		}
		f.SetCellValue(sheet, cell, name)
	}

	for r, row := range spec.Rows {
		for c, value := range row {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+5)
			if err != nil {
				tb.Fatalf("data cell name: %v", err)
			}
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		tb.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

// ComponentRow builds one data row with standard header fields and the given
// component values. dluo may be empty (no expiry) or any DLUO cell text.
func ComponentRow(component, batch, dluo, required, available string) []string {
	return []string{
		"86", "Hand Cream 50ml", "P-4410", batch, "C. Martin",
		"12000", "15/01/2026",
		component, "Description of " + component, dluo, required,
		available, available, "DEP1", "B1", "Z2", "Aisle 4 shelf 2",
	}
}

// ComponentRowWithDescription is ComponentRow with an explicit description.
func ComponentRowWithDescription(component, description, batch, dluo, required, available string) []string {
	row := ComponentRow(component, batch, dluo, required, available)
	row[8] = description
	return row
}

// WithoutColumn returns WorkOrderColumns minus the named column, for
// structural-error tests.
func WithoutColumn(name string) []string {
	var columns []string
	for _, col := range WorkOrderColumns {
		if col != name {
			columns = append(columns, col)
		}
	}
	return columns
}
