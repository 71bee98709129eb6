// Package ticket contains the pure domain logic of the service: deriving
// Ticket entities from raw upstream records and querying the derived
// collection (filter, search, pagination, stats). Nothing here performs
// I/O; every function is deterministic over its inputs.
package ticket

import (
	"fmt"

	"github.com/iliyamo/tickethub/internal/model"
)

// Derive joins raw task and user records into the ordered Ticket
// collection. Output order follows the input task order. The join is
// all-or-nothing: a single malformed task fails the whole derivation with
// ErrMalformedSource and no partial output is returned.
func Derive(tasks []model.RawTask, users []model.RawUser) ([]model.Ticket, error) {
	index := userIndex(users)

	tickets := make([]model.Ticket, 0, len(tasks))
	for i, t := range tasks {
		// Required fields: a task without a positive id or a title
		// cannot produce a well-formed ticket.
		if t.ID <= 0 || t.Todo == "" {
			return nil, fmt.Errorf("task %d: %w", i, ErrMalformedSource)
		}

		status := model.StatusOpen
		if t.Completed {
			status = model.StatusClosed
		}

		assignee, ok := index[t.UserID]
		if !ok {
			assignee = "unknown"
		}

		tickets = append(tickets, model.Ticket{
			ID:       t.ID,
			Title:    t.Todo,
			Status:   status,
			Priority: model.PriorityLevels[t.ID%3],
			Assignee: assignee,
		})
	}
	return tickets, nil
}

// userIndex builds the user-id to username mapping used for assignee
// resolution. Duplicate ids are not expected from the source but are not
// rejected either; the last record wins.
func userIndex(users []model.RawUser) map[int]string {
	m := make(map[int]string, len(users))
	for _, u := range users {
		m[u.ID] = u.Username
	}
	return m
}
