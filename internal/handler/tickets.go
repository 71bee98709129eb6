package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tickethub/internal/model"
	"github.com/iliyamo/tickethub/internal/ticket"
	"github.com/iliyamo/tickethub/internal/upstream"
)

// TicketSource yields the full derived ticket collection. In production
// this is the two-tier aggregation cache; tests substitute a fixture.
type TicketSource interface {
	GetTickets(ctx context.Context) ([]model.Ticket, error)
}

// TicketHandler bundles dependencies for the ticket and stats endpoints.
// All endpoints are read-only views over the collection returned by the
// cache; filtering, search, pagination and aggregation happen in-process.
type TicketHandler struct {
	Tickets TicketSource
}

func NewTicketHandler(src TicketSource) *TicketHandler {
	return &TicketHandler{Tickets: src}
}

// List handles GET /tickets with optional page, size, status and priority
// query parameters. Status and priority must come from the enum domain;
// anything else is a 400. Size is clamped to 1..100, page to >= 1.
func (h *TicketHandler) List(c echo.Context) error {
	status := strings.TrimSpace(c.QueryParam("status"))
	if status != "" && status != model.StatusOpen && status != model.StatusClosed {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be open or closed"})
	}
	priority := strings.TrimSpace(c.QueryParam("priority"))
	switch priority {
	case "", model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "priority must be low, medium or high"})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.QueryParam("size"))
	if size < 1 {
		size = 10
	}
	if size > 100 {
		size = 100
	}

	tickets, err := h.Tickets.GetTickets(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	tickets = ticket.Filter(tickets, status, priority)
	return c.JSON(http.StatusOK, ticket.Paginate(tickets, page, size))
}

// Get handles GET /tickets/:id, answering 404 for unknown ids.
func (h *TicketHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id must be an integer"})
	}

	tickets, err := h.Tickets.GetTickets(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	t, err := ticket.ByID(tickets, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// Search handles GET /tickets/search?q= with a case-insensitive substring
// match on ticket titles.
func (h *TicketHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "q is required"})
	}

	tickets, err := h.Tickets.GetTickets(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ticket.Search(tickets, q))
}

// Debug handles GET /tickets-debug, returning the first tickets of the
// collection for a quick unauthenticated smoke check of the pipeline.
func (h *TicketHandler) Debug(c echo.Context) error {
	tickets, err := h.Tickets.GetTickets(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if len(tickets) > 5 {
		tickets = tickets[:5]
	}
	return c.JSON(http.StatusOK, tickets)
}

// respondError maps domain errors onto the HTTP error taxonomy: upstream
// unavailable → 502, malformed source data → 500, unknown ticket → 404.
// Everything else is an internal error. Bodies are structured; no partial
// or degraded ticket list is ever returned silently.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, upstream.ErrUnavailable):
		return c.JSON(http.StatusBadGateway, echo.Map{
			"error":   "upstream_unavailable",
			"message": "ticket provider unreachable",
		})
	case errors.Is(err, ticket.ErrMalformedSource):
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "malformed_source_data",
			"message": "ticket provider returned unexpected data",
		})
	case errors.Is(err, ticket.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error":   "not_found",
			"message": "ticket not found",
		})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "internal_error",
			"message": "unexpected failure",
		})
	}
}
