package repository

import (
	"context"
	"time"

	"github.com/iliyamo/flight-booking/internal/model"
	"github.com/iliyamo/flight-booking/internal/store"
)

// BookingRepo is the booking ledger. It owns every booking record and is
// the only component allowed to touch flight seat availability. Each
// method runs as one critical section on the store mutex, so the seat
// check and the matching seat mutation can never interleave with another
// booking or cancellation.
type BookingRepo struct{ Store *store.Store }

func NewBookingRepo(s *store.Store) *BookingRepo { return &BookingRepo{Store: s} }

// BookingDetail pairs a booking with a snapshot of its flight, as
// returned by ListByUser. Embedding keeps the booking fields at the top
// level of the JSON object with the flight nested under "flight".
type BookingDetail struct {
	model.Booking
	Flight model.Flight `json:"flight"`
}

// Create books a flight for the given number of passengers and returns
// the new booking. It fails with ErrFlightNotFound when the flight does
// not exist and ErrInsufficientSeats when fewer than one passenger is
// requested or not enough seats remain. On failure the seat count is left
// untouched.
func (r *BookingRepo) Create(ctx context.Context, userID, flightID uint64, passengers int) (model.Booking, error) {
	r.Store.Mu.Lock()
	defer r.Store.Mu.Unlock()

	if r.Store.FlightByID(flightID) == nil {
		return model.Booking{}, ErrFlightNotFound
	}
	if passengers < 1 {
		return model.Booking{}, ErrInsufficientSeats
	}
	if !r.Store.AdjustSeats(flightID, -passengers) {
		return model.Booking{}, ErrInsufficientSeats
	}

	b := &model.Booking{
		ID:         r.Store.NextBookingID(),
		UserID:     userID,
		FlightID:   flightID,
		Passengers: passengers,
		CreatedAt:  time.Now().UTC(),
	}
	r.Store.Bookings = append(r.Store.Bookings, b)
	return *b, nil
}

// ListByUser returns every active booking owned by userID in ledger
// insertion order, each paired with its flight snapshot. The slice is
// always non-nil so an empty result serializes as [].
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	r.Store.Mu.Lock()
	defer r.Store.Mu.Unlock()

	out := make([]BookingDetail, 0)
	for _, b := range r.Store.Bookings {
		if b.UserID != userID {
			continue
		}
		d := BookingDetail{Booking: *b}
		if f := r.Store.FlightByID(b.FlightID); f != nil {
			d.Flight = *f
		}
		out = append(out, d)
	}
	return out, nil
}

// Cancel removes a booking and restores its passengers to the flight's
// availability. The record is deleted permanently; no history is kept. A
// booking that does not exist and a booking owned by a different user are
// reported identically as ErrBookingNotFound, leaving all state
// unchanged. The removed booking is returned for event publishing.
func (r *BookingRepo) Cancel(ctx context.Context, userID, bookingID uint64) (model.Booking, error) {
	r.Store.Mu.Lock()
	defer r.Store.Mu.Unlock()

	for i, b := range r.Store.Bookings {
		if b.ID != bookingID || b.UserID != userID {
			continue
		}
		r.Store.AdjustSeats(b.FlightID, b.Passengers)
		r.Store.Bookings = append(r.Store.Bookings[:i], r.Store.Bookings[i+1:]...)
		return *b, nil
	}
	return model.Booking{}, ErrBookingNotFound
}
