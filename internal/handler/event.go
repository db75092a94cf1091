package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-booking/internal/repository"
)

// EventHandler serves event creation and the public event listing.
type EventHandler struct {
	Events *repository.EventRepo
}

func NewEventHandler(events *repository.EventRepo) *EventHandler {
	if events == nil {
		panic("nil repository passed to NewEventHandler")
	}
	return &EventHandler{Events: events}
}

// ----- DTOs -----

type createEventReq struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Date        string  `json:"date"` // RFC3339
}

type creatorPart struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
}

type eventResp struct {
	ID          uint64      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Date        time.Time   `json:"date"`
	CreatedAt   time.Time   `json:"created_at"`
	Creator     creatorPart `json:"creator"`
}

func toEventResp(d repository.EventDetail) eventResp {
	return eventResp{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Date:        d.Date,
		CreatedAt:   d.CreatedAt,
		Creator:     creatorPart{ID: d.CreatorID, Email: d.CreatorEmail},
	}
}

// Create handles POST /v1/events. The JWT middleware has already
// resolved the caller, who becomes the event's immutable creator.
// Title and description must be non-empty, the price strictly
// positive, and the date a parsable RFC3339 timestamp.
func (h *EventHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createEventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if req.Title == "" || req.Description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and description required"})
	}
	if req.Price <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must be positive"})
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be RFC3339"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	d, err := h.Events.Create(ctx, userID, req.Title, req.Description, req.Price, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage unavailable"})
	}
	return c.JSON(http.StatusCreated, toEventResp(d))
}

// List handles GET /v1/events. It is unauthenticated; events come back
// in insertion order with their creators resolved.
func (h *EventHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	details, err := h.Events.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage unavailable"})
	}
	out := make([]eventResp, 0, len(details))
	for _, d := range details {
		out = append(out, toEventResp(d))
	}
	return c.JSON(http.StatusOK, out)
}
