package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-booking/internal/queue"
	"github.com/iliyamo/event-booking/internal/repository"
	publisher "github.com/iliyamo/event-booking/internal/service"
)

// BookingHandler serves the booking lifecycle: create, list, cancel.
// All routes are wrapped by the JWT guard; the resolved caller id is
// passed explicitly into every repository call rather than read from
// any ambient state.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Events   *repository.EventRepo
	// Publish is called after a successful booking; nil disables
	// publishing. Failures are logged by the publisher and ignored so
	// the request flow never depends on the broker.
	Publish func(ctx context.Context, ev queue.BookingCreatedEvent) error
}

func NewBookingHandler(bookings *repository.BookingRepo, events *repository.EventRepo) *BookingHandler {
	if bookings == nil || events == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{
		Bookings: bookings,
		Events:   events,
		Publish:  publisher.PublishBookingCreated,
	}
}

type bookingResp struct {
	ID        uint64    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Event     eventResp `json:"event"`
}

func toBookingResp(d repository.BookingDetail) bookingResp {
	return bookingResp{ID: d.ID, CreatedAt: d.CreatedAt, Event: toEventResp(d.Event)}
}

// Create handles POST /v1/events/:id/bookings. The event must exist;
// the same user may book the same event more than once. The created
// booking comes back with the event and its creator resolved.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	eventID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if _, err := h.Events.GetByID(ctx, eventID); err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage unavailable"})
	}

	d, err := h.Bookings.Create(ctx, userID, eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage unavailable"})
	}

	if h.Publish != nil {
		ev := queue.BookingCreatedEvent{
			BookingID:  d.ID,
			UserID:     userID,
			EventID:    d.Event.ID,
			EventTitle: d.Event.Title,
			CreatedAt:  d.CreatedAt.UTC().Format(time.RFC3339),
		}
		go func() { _ = h.Publish(context.Background(), ev) }()
	}

	return c.JSON(http.StatusCreated, toBookingResp(d))
}

// List handles GET /v1/bookings. Only the caller's own bookings are
// returned; there is no way to list another user's bookings.
func (h *BookingHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	details, err := h.Bookings.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage unavailable"})
	}
	out := make([]bookingResp, 0, len(details))
	for _, d := range details {
		out = append(out, toBookingResp(d))
	}
	return c.JSON(http.StatusOK, out)
}

// Cancel handles DELETE /v1/bookings/:id. Cancelling someone else's
// booking is forbidden and leaves it intact. The delete itself is
// keyed on booking id and owner id, so when two cancellations race
// only one succeeds; the loser gets 404. On success the referenced
// event is returned for confirmation, untouched by the cancellation.
func (h *BookingHandler) Cancel(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	d, err := h.Bookings.Cancel(ctx, bookingID, userID)
	switch err {
	case nil:
		return c.JSON(http.StatusOK, toEventResp(d.Event))
	case repository.ErrBookingNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	case repository.ErrForbidden:
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage unavailable"})
	}
}
