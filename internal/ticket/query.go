package ticket

import (
	"strings"

	"github.com/iliyamo/tickethub/internal/model"
)

// Filter returns the tickets matching the given status and priority.
// Either predicate may be empty, in which case it is skipped; when both
// are present they are ANDed. Matching is exact string equality against
// the enum domain — validation of the values happens at the HTTP boundary.
func Filter(tickets []model.Ticket, status, priority string) []model.Ticket {
	if status == "" && priority == "" {
		return tickets
	}
	out := make([]model.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if status != "" && t.Status != status {
			continue
		}
		if priority != "" && t.Priority != priority {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Search returns the tickets whose title contains q, case-insensitively.
// No ranking, no tokenization.
func Search(tickets []model.Ticket, q string) []model.Ticket {
	q = strings.ToLower(q)
	out := make([]model.Ticket, 0)
	for _, t := range tickets {
		if strings.Contains(strings.ToLower(t.Title), q) {
			out = append(out, t)
		}
	}
	return out
}

// Paginate slices the collection for a 1-indexed page of the given size.
// Pages beyond the available range yield an empty slice, never an error.
// Size clamping is the caller's concern.
func Paginate(tickets []model.Ticket, page, size int) []model.Ticket {
	start := (page - 1) * size
	if start >= len(tickets) || start < 0 {
		return []model.Ticket{}
	}
	end := start + size
	if end > len(tickets) {
		end = len(tickets)
	}
	return tickets[start:end]
}

// ByID finds a ticket by id, returning ErrNotFound when absent.
func ByID(tickets []model.Ticket, id int) (model.Ticket, error) {
	for _, t := range tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Ticket{}, ErrNotFound
}
