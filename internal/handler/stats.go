package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tickethub/internal/ticket"
)

// Stats handles GET /stats, aggregating counts over the full ticket
// collection: totals, open/closed split, per-priority distribution and
// the top assignee (null when the collection is empty).
func (h *TicketHandler) Stats(c echo.Context) error {
	tickets, err := h.Tickets.GetTickets(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ticket.Aggregate(tickets))
}
