package model

import "time"

// Booking records that a user holds a number of seats on a flight. A
// booking exists from the moment it is created until it is cancelled, at
// which point the record is removed from the ledger entirely; there are no
// pending or soft-deleted states. Ids come from a monotonic counter and
// are never reissued after a cancellation.
//
// Fields:
//  ID         – unique numeric identifier allocated by the store.
//  UserID     – owner of the booking.
//  FlightID   – flight the seats are held on.
//  Passengers – number of seats held (always positive).
//  CreatedAt  – timestamp of creation.
type Booking struct {
	ID         uint64    `json:"id"`
	UserID     uint64    `json:"userId"`
	FlightID   uint64    `json:"flightId"`
	Passengers int       `json:"passengers"`
	CreatedAt  time.Time `json:"createdAt"`
}
