package model

import "time"

// Flight is one entry of the catalog seeded at startup. Seats holds the
// currently unbooked remainder of the flight's capacity and is the only
// mutable field; it is adjusted exclusively by the booking ledger and
// never goes negative.
//
// Fields:
//  ID           – unique numeric identifier.
//  FlightNumber – airline designator, e.g. "AI101".
//  From, To     – departure and destination cities.
//  Departure    – scheduled departure time.
//  Arrival      – scheduled arrival time.
//  Seats        – available seats (capacity minus active bookings).
//  Price        – ticket price per passenger.
type Flight struct {
	ID           uint64    `json:"id"`
	FlightNumber string    `json:"flightNumber"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	Departure    time.Time `json:"departure"`
	Arrival      time.Time `json:"arrival"`
	Seats        int       `json:"seats"`
	Price        uint32    `json:"price"`
}
