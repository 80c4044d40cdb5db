package services

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
)

// headerRowOffset is the 0-indexed row holding the column names. The three
// rows above it carry the plant's cover block and are skipped.
const headerRowOffset = 3

// preferredSheet is the sheet name produced by the plant's export tool.
// Files saved under a different sheet name fall back to the first sheet.
const preferredSheet = "Feuil1"

const (
	colTicketNr     = "Production Ticket Nr"
	colWording      = "Wording"
	colProductCode  = "Product Code"
	colBatchNr      = "Batch Nr"
	colManager      = "Manager"
	colQtyLaunched  = "Quantity launched Theoretical"
	colStartDate    = "Current date marked the beginning"
	colComponent    = "Component"
	colDescription  = "Description"
	colDLUO         = "DLUO"
	colQtyRequired  = "Quantity required"
	colAvailableQty = "Available Quantity"
	colWarehouse    = "Warehouse Stock"
	colDepot        = "depot location"
	colBuild        = "Build"
	colZone         = "Zone"
	colLocationDesc = "Location Description"
)

// requiredColumns lists every column the parser reads. Any one of them
// missing from the header row aborts the parse.
var requiredColumns = []string{
	colTicketNr, colWording, colProductCode, colBatchNr, colManager,
	colQtyLaunched, colStartDate, colComponent, colDescription, colDLUO,
	colQtyRequired, colAvailableQty, colWarehouse, colDepot, colBuild,
	colZone, colLocationDesc,
}

// ParseWorkOrderFile reads an xlsx work order and returns its header plus the
// component rows in file order. Unparseable DLUO cells become nil expiries and
// are counted in Stats.UnparsedDates; a missing column is a *MissingColumnError
// and an empty data section is ErrNoComponentRows.
func ParseWorkOrderFile(r io.Reader) (*WorkOrder, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open work order file: %w", err)
	}
	defer f.Close()

	sheetName := preferredSheet
	if idx, _ := f.GetSheetIndex(sheetName); idx < 0 {
		sheetName = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	if len(rows) <= headerRowOffset {
		return nil, &MissingColumnError{Column: colTicketNr}
	}

	colIndex, err := mapColumns(rows[headerRowOffset])
	if err != nil {
		return nil, err
	}

	order := &WorkOrder{}
	for _, row := range rows[headerRowOffset+1:] {
		if rowIsEmpty(row) {
			continue
		}

		cell := func(name string) string {
			idx := colIndex[name]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		expiry, warn := parseDLUO(cell(colDLUO))
		if warn {
			order.Stats.UnparsedDates++
		}

		if len(order.Lines) == 0 {
			order.Header = WorkOrderHeader{
				ProductionTicketNr: cell(colTicketNr),
				Wording:            cell(colWording),
				ProductCode:        cell(colProductCode),
				BatchNr:            cell(colBatchNr),
				Manager:            cell(colManager),
				QuantityLaunched:   cast.ToFloat64(cell(colQtyLaunched)),
				StartDate:          cell(colStartDate),
			}
		}

		order.Lines = append(order.Lines, ComponentLine{
			Component:           cell(colComponent),
			Description:         cell(colDescription),
			BatchNr:             cell(colBatchNr),
			Expiry:              expiry,
			QuantityRequired:    cast.ToFloat64(cell(colQtyRequired)),
			AvailableQuantity:   cast.ToFloat64(cell(colAvailableQty)),
			WarehouseStock:      cast.ToFloat64(cell(colWarehouse)),
			DepotLocation:       cell(colDepot),
			Build:               cell(colBuild),
			Zone:                cell(colZone),
			LocationDescription: cell(colLocationDesc),
		})
	}

	if len(order.Lines) == 0 {
		return nil, ErrNoComponentRows
	}
	order.Stats.TotalRows = len(order.Lines)

	return order, nil
}

// normalizeColumnName trims a header cell and collapses the line breaks that
// wrapped column titles carry in the spreadsheet.
func normalizeColumnName(name string) string {
	name = strings.ReplaceAll(name, "\r\n", " ")
	name = strings.ReplaceAll(name, "\n", " ")
	for strings.Contains(name, "  ") {
		name = strings.ReplaceAll(name, "  ", " ")
	}
	return strings.TrimSpace(name)
}

// mapColumns resolves every required column to its index in the header row.
func mapColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		norm := normalizeColumnName(name)
		if norm == "" {
			continue
		}
		if _, exists := index[norm]; !exists {
			index[norm] = i
		}
	}

	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, &MissingColumnError{Column: name}
		}
	}
	return index, nil
}

func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// dluoLayouts are the textual forms a DLUO cell shows up in. The export tool
// writes ddmmyyyy digits; files touched in Excel often re-render the cell as
// a separated date.
var dluoLayouts = []string{"02012006", "02/01/2006", "02-01-2006", "02.01.2006"}

// parseDLUO converts a DLUO cell into a date. warn is true when the value was
// non-empty but unparseable; such rows proceed with a nil expiry.
func parseDLUO(value string) (expiry *time.Time, warn bool) {
	if value == "" {
		return nil, false
	}
	for _, layout := range dluoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, false
		}
	}
	return nil, true
}
