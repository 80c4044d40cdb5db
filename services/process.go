package services

import "io"

// OrderStats summarizes one processed work order for the overview cards and
// the JSON API.
type OrderStats struct {
	TotalRows       int `json:"total_rows"`
	TotalComponents int `json:"total_components"`
	SufficientCount int `json:"sufficient_count"`
	ShortageCount   int `json:"shortage_count"`
	UnparsedDates   int `json:"unparsed_dates"`
}

// ProcessResult is the complete output of one pipeline run: the parsed
// header, the FIFO-sorted lines, per-component summaries, and the ranked
// picking list. It is never mutated after ProcessWorkOrder returns.
type ProcessResult struct {
	Header      WorkOrderHeader
	Lines       []ComponentLine
	Summaries   []ComponentSummary
	PickingList []PickingEntry
	Stats       OrderStats
}

// Shortages returns the summaries of components whose available stock does
// not cover the required quantity.
func (r *ProcessResult) Shortages() []ComponentSummary {
	var short []ComponentSummary
	for _, s := range r.Summaries {
		if !s.Sufficient {
			short = append(short, s)
		}
	}
	return short
}

// ProcessWorkOrder runs the full pipeline on an uploaded spreadsheet:
// parse, FIFO sort, per-component summary, picking-list ranking. The run is
// a single pass with no retained state; processing the same bytes twice
// yields identical results.
func ProcessWorkOrder(r io.Reader) (*ProcessResult, error) {
	order, err := ParseWorkOrderFile(r)
	if err != nil {
		return nil, err
	}

	sorted := SortFIFO(order.Lines)
	summaries := SummarizeComponents(sorted)

	result := &ProcessResult{
		Header:      order.Header,
		Lines:       sorted,
		Summaries:   summaries,
		PickingList: BuildPickingList(sorted),
		Stats: OrderStats{
			TotalRows:       order.Stats.TotalRows,
			TotalComponents: len(summaries),
			UnparsedDates:   order.Stats.UnparsedDates,
		},
	}
	for _, s := range summaries {
		if s.Sufficient {
			result.Stats.SufficientCount++
		} else {
			result.Stats.ShortageCount++
		}
	}

	return result, nil
}
