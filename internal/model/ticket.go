package model

// Ticket is the derived entity served by the API. It is built by joining
// an upstream task record with the upstream user collection and is
// immutable after construction: every consumer treats the cached slice
// as read-only.
//
// Fields:
//  ID       – unique per source task record, stable across refreshes.
//  Title    – copied verbatim from the source task description.
//  Status   – "open" or "closed", derived from the task completion flag.
//  Priority – "low", "medium" or "high", a pure function of ID (ID mod 3).
//  Assignee – username of the owning user, or "unknown" when the owning
//             user id is absent from the user collection.
type Ticket struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Assignee string `json:"assignee"`
}

// Status values for a Ticket.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Priority values for a Ticket, indexed by ID mod 3.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// PriorityLevels maps ID mod 3 to a priority name. The classification is
// synthetic and reproducible; it has no upstream equivalent.
var PriorityLevels = [3]string{PriorityLow, PriorityMedium, PriorityHigh}

// Stats aggregates counts over the full ticket collection. TopAssignee is
// nil when no tickets exist.
type Stats struct {
	TotalTickets int            `json:"total_tickets"`
	Open         int            `json:"open"`
	Closed       int            `json:"closed"`
	Priorities   map[string]int `json:"priority_distribution"`
	TopAssignee  *string        `json:"top_assignee"`
}
