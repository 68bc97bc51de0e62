// Package store owns the process-wide in-memory dataset. All shared state
// (users, the flight catalog and the booking ledger) lives here; it is
// seeded once at startup and discarded on shutdown. Nothing is persisted.
package store

import (
	"sync"
	"time"

	"github.com/iliyamo/flight-booking/internal/model"
)

// Store holds the three collections the service operates on, guarded by a
// single mutex. Any read-check-then-mutate sequence (a seat-availability
// check followed by the matching decrement in particular) must run while
// holding Mu, so two concurrent bookings against the same flight can never
// both pass the check and jointly overdraw seats.
type Store struct {
	Mu sync.Mutex

	Users    []*model.User
	Flights  []*model.Flight
	Bookings []*model.Booking

	lastUserID    uint64
	lastBookingID uint64
}

// New returns a store seeded with the fixed flight catalog and empty user
// and booking collections.
func New() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Reset reinstalls the seeded catalog and drops all users and bookings.
// Id counters start over as well. Callers must not hold Mu.
func (s *Store) Reset() {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.Users = nil
	s.Bookings = nil
	s.Flights = seedFlights()
	s.lastUserID = 0
	s.lastBookingID = 0
}

// NextUserID allocates a fresh user id. Mu must be held.
func (s *Store) NextUserID() uint64 {
	s.lastUserID++
	return s.lastUserID
}

// NextBookingID allocates a fresh booking id. Ids are monotonic and never
// reused, even after the booking they were issued for is cancelled. Mu
// must be held.
func (s *Store) NextBookingID() uint64 {
	s.lastBookingID++
	return s.lastBookingID
}

// FlightByID returns the catalog entry with the given id, or nil when no
// such flight exists. The returned pointer aliases store state. Mu must be
// held.
func (s *Store) FlightByID(id uint64) *model.Flight {
	for _, f := range s.Flights {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// AdjustSeats changes a flight's available seats by delta and reports
// whether the adjustment was applied. The result is checked before the
// delta is applied: when the flight is unknown or the adjustment would
// drive availability negative, nothing changes and false is returned.
// Only the booking ledger calls this, inside its critical section. Mu
// must be held.
func (s *Store) AdjustSeats(flightID uint64, delta int) bool {
	f := s.FlightByID(flightID)
	if f == nil || f.Seats+delta < 0 {
		return false
	}
	f.Seats += delta
	return true
}

// seedFlights returns the fixed catalog installed on every Reset.
func seedFlights() []*model.Flight {
	return []*model.Flight{
		{
			ID:           1,
			FlightNumber: "AI101",
			From:         "Delhi",
			To:           "Mumbai",
			Departure:    time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC),
			Arrival:      time.Date(2025, 9, 20, 12, 0, 0, 0, time.UTC),
			Seats:        120,
			Price:        5000,
		},
		{
			ID:           2,
			FlightNumber: "SG202",
			From:         "Bangalore",
			To:           "Chennai",
			Departure:    time.Date(2025, 9, 21, 14, 0, 0, 0, time.UTC),
			Arrival:      time.Date(2025, 9, 21, 15, 30, 0, 0, time.UTC),
			Seats:        80,
			Price:        3000,
		},
		{
			ID:           3,
			FlightNumber: "BA303",
			From:         "Kolkata",
			To:           "Hyderabad",
			Departure:    time.Date(2025, 9, 22, 9, 0, 0, 0, time.UTC),
			Arrival:      time.Date(2025, 9, 22, 11, 30, 0, 0, time.UTC),
			Seats:        100,
			Price:        4500,
		},
		{
			ID:           4,
			FlightNumber: "AI404",
			From:         "Mumbai",
			To:           "Bangalore",
			Departure:    time.Date(2025, 9, 23, 16, 0, 0, 0, time.UTC),
			Arrival:      time.Date(2025, 9, 23, 18, 0, 0, 0, time.UTC),
			Seats:        90,
			Price:        4000,
		},
	}
}
