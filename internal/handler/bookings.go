package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-booking/internal/cache"
	"github.com/iliyamo/flight-booking/internal/model"
	"github.com/iliyamo/flight-booking/internal/queue"
	"github.com/iliyamo/flight-booking/internal/repository"
	queue_publisher "github.com/iliyamo/flight-booking/internal/service"
)

// BookingHandler exposes the booking ledger: creating bookings, listing
// the current user's bookings and cancelling them. All methods assume JWT
// authentication has already been performed by middleware and return 401
// when the user id cannot be extracted from the context. Lifecycle events
// are published to the broker after each successful mutation; publish
// failures never affect the request outcome.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Flights  *repository.FlightRepo
	Cache    *cache.FlightCache
}

func NewBookingHandler(b *repository.BookingRepo, f *repository.FlightRepo, fc *cache.FlightCache) *BookingHandler {
	if b == nil || f == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: b, Flights: f, Cache: fc}
}

type createBookingReq struct {
	FlightID   uint64 `json:"flightId"`
	Passengers int    `json:"passengers"`
}

// Create handles POST /bookings. It books the requested flight for the
// authenticated user, returning 404 when the flight does not exist and
// 400 when the requested passenger count cannot be satisfied.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx := c.Request().Context()
	booking, err := h.Bookings.Create(ctx, userID, req.FlightID, req.Passengers)
	if err != nil {
		switch err {
		case repository.ErrFlightNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
		case repository.ErrInsufficientSeats:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "not enough seats"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	_ = h.Cache.Invalidate(ctx)
	h.publish(queue_publisher.PublishBookingCreated, booking)

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Booked successfully",
		"booking": booking,
	})
}

// ListMy handles GET /my-bookings. It returns every active booking owned
// by the authenticated user in insertion order, each paired with its
// flight snapshot.
func (h *BookingHandler) ListMy(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	details, err := h.Bookings.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load bookings failed"})
	}
	return c.JSON(http.StatusOK, details)
}

// Cancel handles POST /bookings/:id/cancel. It removes the booking and
// restores its seats. A booking that does not exist and one owned by a
// different user are both reported as 404.
func (h *BookingHandler) Cancel(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx := c.Request().Context()
	booking, err := h.Bookings.Cancel(ctx, userID, bookingID)
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel booking failed"})
	}

	_ = h.Cache.Invalidate(ctx)
	h.publish(queue_publisher.PublishBookingCancelled, booking)

	return c.JSON(http.StatusOK, echo.Map{"message": "Booking cancelled"})
}

// publish builds a lifecycle event for the booking and hands it to the
// given publisher on a background goroutine with its own deadline, so a
// slow or absent broker cannot delay the HTTP response.
func (h *BookingHandler) publish(fn func(context.Context, queue.BookingEvent) error, b model.Booking) {
	ev := queue.BookingEvent{
		BookingID:  b.ID,
		UserID:     b.UserID,
		FlightID:   b.FlightID,
		Passengers: b.Passengers,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if f, err := h.Flights.GetByID(context.Background(), b.FlightID); err == nil {
		ev.FlightNumber = f.FlightNumber
		ev.From = f.From
		ev.To = f.To
		ev.SeatsLeft = f.Seats
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = fn(ctx, ev)
	}()
}
