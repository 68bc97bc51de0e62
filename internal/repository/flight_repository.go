package repository

import (
	"context"

	"github.com/iliyamo/flight-booking/internal/model"
	"github.com/iliyamo/flight-booking/internal/store"
)

// FlightRepo exposes read access to the flight catalog. Seat availability
// is mutated only by BookingRepo; everything returned here is a snapshot.
type FlightRepo struct{ Store *store.Store }

func NewFlightRepo(s *store.Store) *FlightRepo { return &FlightRepo{Store: s} }

// List returns the full catalog in seed order with live seat counts.
func (r *FlightRepo) List(ctx context.Context) ([]model.Flight, error) {
	r.Store.Mu.Lock()
	defer r.Store.Mu.Unlock()
	out := make([]model.Flight, 0, len(r.Store.Flights))
	for _, f := range r.Store.Flights {
		out = append(out, *f)
	}
	return out, nil
}

// GetByID returns a snapshot of a single flight.
func (r *FlightRepo) GetByID(ctx context.Context, id uint64) (model.Flight, error) {
	r.Store.Mu.Lock()
	defer r.Store.Mu.Unlock()
	if f := r.Store.FlightByID(id); f != nil {
		return *f, nil
	}
	return model.Flight{}, ErrFlightNotFound
}
