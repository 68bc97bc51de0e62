// Package repository implements the data-access layer over the shared
// in-memory store. These sentinel values let handlers distinguish between
// different failure scenarios without inspecting error strings.
package repository

import "errors"

// ErrEmailExists is returned when registering with an email address that
// is already taken. Handlers translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when no user matches the given email or id.
// Login handlers must not expose it directly; they report the same
// invalid-credentials message as a failed password check so accounts
// cannot be enumerated.
var ErrUserNotFound = errors.New("user not found")

// ErrFlightNotFound is returned when a flight id does not exist in the
// catalog. Handlers translate this into HTTP 404.
var ErrFlightNotFound = errors.New("flight not found")

// ErrInsufficientSeats is returned when a booking requests fewer than one
// passenger or more passengers than the flight has seats available.
// Handlers translate this into HTTP 400.
var ErrInsufficientSeats = errors.New("not enough seats")

// ErrBookingNotFound is returned when a booking does not exist or belongs
// to a different user. The two cases are deliberately reported identically
// so booking ids cannot be probed. Handlers translate this into HTTP 404.
var ErrBookingNotFound = errors.New("booking not found")
