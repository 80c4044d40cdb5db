package services

import (
	"errors"
	"fmt"
)

// MissingColumnError reports a required column absent from the header row.
// Parsing fails atomically in that case: no partial work order is returned.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found in header row", e.Column)
}

// ErrNoComponentRows is returned when the spreadsheet parses cleanly but
// carries zero component rows. Callers should present it as "empty file"
// rather than a structural failure.
var ErrNoComponentRows = errors.New("work order contains no component rows")
