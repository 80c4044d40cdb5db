package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// pickingListColumns is the export header row, matching the spreadsheet's
// column names plus the rank and priority annotations.
var pickingListColumns = []string{
	"Component", "Description", "Batch Nr", "DLUO",
	"Available Quantity", "Quantity required", "Warehouse Stock",
	"depot location", "Build", "Zone", "Location Description",
	"Rank", "Priority",
}

// PickingListCSV serializes the ranked picking list as comma-separated text
// with a header row, one line per batch in FIFO order.
func PickingListCSV(result *ProcessResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(pickingListColumns); err != nil {
		return nil, fmt.Errorf("write CSV header: %w", err)
	}

	for _, entry := range result.PickingList {
		record := []string{
			entry.Component,
			entry.Description,
			entry.BatchNr,
			FormatExpiry(entry.Expiry),
			strconv.FormatFloat(entry.AvailableQuantity, 'f', -1, 64),
			strconv.FormatFloat(entry.QuantityRequired, 'f', -1, 64),
			strconv.FormatFloat(entry.WarehouseStock, 'f', -1, 64),
			entry.DepotLocation,
			entry.Build,
			entry.Zone,
			entry.LocationDescription,
			strconv.Itoa(entry.Rank),
			strconv.FormatBool(entry.Priority),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}
