// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names used for booking lifecycle events.
const (
	BookingCreatedQueue   = "booking.created"
	BookingCancelledQueue = "booking.cancelled"
)

// BookingEvent is published when a booking is created or cancelled. It
// carries enough information for downstream consumers to log, notify, or
// trigger analytics without querying the service.
type BookingEvent struct {
	BookingID    uint64 `json:"booking_id"`
	UserID       uint64 `json:"user_id"`
	FlightID     uint64 `json:"flight_id"`
	FlightNumber string `json:"flight_number"`
	From         string `json:"from"`
	To           string `json:"to"`
	Passengers   int    `json:"passengers"`
	SeatsLeft    int    `json:"seats_left"`
	OccurredAt   string `json:"occurred_at"`
}
