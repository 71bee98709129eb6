package ticket

import "github.com/iliyamo/tickethub/internal/model"

// Aggregate computes collection-wide statistics in a single pass. The top
// assignee is the one with the highest ticket count; ties break in favour
// of the assignee encountered first in iteration order. With no tickets,
// TopAssignee stays nil.
func Aggregate(tickets []model.Ticket) model.Stats {
	stats := model.Stats{
		TotalTickets: len(tickets),
		Priorities: map[string]int{
			model.PriorityLow:    0,
			model.PriorityMedium: 0,
			model.PriorityHigh:   0,
		},
	}

	tally := make(map[string]int, len(tickets))
	firstSeen := make(map[string]int, len(tickets))
	var top string
	var topCount int
	for i, t := range tickets {
		if t.Status == model.StatusOpen {
			stats.Open++
		}
		stats.Priorities[t.Priority]++

		if _, seen := tally[t.Assignee]; !seen {
			firstSeen[t.Assignee] = i
		}
		tally[t.Assignee]++
		// Map iteration order is random, so the encounter order of the
		// tally has to be tracked explicitly for the tie-break.
		switch n := tally[t.Assignee]; {
		case n > topCount:
			top, topCount = t.Assignee, n
		case n == topCount && firstSeen[t.Assignee] < firstSeen[top]:
			top = t.Assignee
		}
	}
	stats.Closed = stats.TotalTickets - stats.Open

	if topCount > 0 {
		stats.TopAssignee = &top
	}
	return stats
}
