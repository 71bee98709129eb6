// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketsRefreshedEvent is published after the ticket cache completes a
// full upstream refresh. It carries enough information for downstream
// consumers to log or chart cache behaviour without calling the API.
type TicketsRefreshedEvent struct {
	TicketCount int    `json:"ticket_count"`
	DurationMS  int64  `json:"duration_ms"`
	RefreshedAt string `json:"refreshed_at"`
}
