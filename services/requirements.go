package services

// SummarizeComponents groups the FIFO-sorted lines by component and computes
// stock sufficiency per component. Required quantity is the per-component
// constant from the group's first row, never a sum; available quantity is the
// sum over the group's batches. Summaries come back in order of first
// appearance, which for sorted input is ascending component order.
func SummarizeComponents(sorted []ComponentLine) []ComponentSummary {
	var summaries []ComponentSummary
	index := make(map[string]int, len(sorted))

	for _, line := range sorted {
		i, seen := index[line.Component]
		if !seen {
			index[line.Component] = len(summaries)
			summaries = append(summaries, ComponentSummary{
				Component:   line.Component,
				Description: line.Description,
				Required:    line.QuantityRequired,
			})
			i = len(summaries) - 1
		}

		s := &summaries[i]
		s.Available += line.AvailableQuantity
		s.BatchCount++
		if line.Expiry != nil && (s.EarliestExpiry == nil || line.Expiry.Before(*s.EarliestExpiry)) {
			expiry := *line.Expiry
			s.EarliestExpiry = &expiry
		}
	}

	for i := range summaries {
		s := &summaries[i]
		s.Sufficient = s.Available >= s.Required
		if shortage := s.Required - s.Available; shortage > 0 {
			s.Shortage = shortage
		}
	}

	return summaries
}
