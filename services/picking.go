package services

// BuildPickingList annotates the FIFO-sorted lines with their pick order.
// Rank restarts at 1 for each component group; the rank-1 batch is the
// priority pick (oldest expiry). Row order and fields are preserved.
func BuildPickingList(sorted []ComponentLine) []PickingEntry {
	entries := make([]PickingEntry, 0, len(sorted))

	rank := 0
	prevComponent := ""
	for i, line := range sorted {
		if i == 0 || line.Component != prevComponent {
			rank = 1
			prevComponent = line.Component
		} else {
			rank++
		}
		entries = append(entries, PickingEntry{
			ComponentLine: line,
			Rank:          rank,
			Priority:      rank == 1,
		})
	}

	return entries
}
