package services

import "time"

// WorkOrderHeader holds the order-level metadata repeated on every data row
// of the spreadsheet. It is populated once from the first component row.
type WorkOrderHeader struct {
	ProductionTicketNr string
	Wording            string
	ProductCode        string
	BatchNr            string
	Manager            string
	QuantityLaunched   float64
	StartDate          string
}

// ComponentLine is one batch row of the work order.
// Expiry is nil when the DLUO cell could not be parsed as a date.
type ComponentLine struct {
	Component           string
	Description         string
	BatchNr             string
	Expiry              *time.Time
	QuantityRequired    float64
	AvailableQuantity   float64
	WarehouseStock      float64
	DepotLocation       string
	Build               string
	Zone                string
	LocationDescription string
}

// ComponentSummary aggregates all batches of one component.
// Required is the per-component constant taken from the first batch row,
// not a sum; Available is summed across batches.
type ComponentSummary struct {
	Component      string
	Description    string
	Required       float64
	Available      float64
	BatchCount     int
	EarliestExpiry *time.Time
	Sufficient     bool
	Shortage       float64
}

// PickingEntry is a ComponentLine annotated with its FIFO pick order.
// Rank is the 1-based position within the component group after sorting by
// expiration date; Priority marks the oldest-expiring batch of the group.
type PickingEntry struct {
	ComponentLine
	Rank     int
	Priority bool
}

// ParseStats records non-fatal conditions observed while parsing.
type ParseStats struct {
	TotalRows     int
	UnparsedDates int
}

// WorkOrder is the parsed form of an uploaded spreadsheet: one header plus
// the component rows in original file order.
type WorkOrder struct {
	Header WorkOrderHeader
	Lines  []ComponentLine
	Stats  ParseStats
}
