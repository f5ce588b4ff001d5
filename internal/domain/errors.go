package domain

import "errors"

// Error messages are part of the API contract: they are surfaced verbatim
// to GraphQL callers.
var (
	ErrFlightNotFound     = errors.New("Flight not found")
	ErrBookingNotFound    = errors.New("Booking not found")
	ErrUserNotFound       = errors.New("User not found")
	ErrUserExists         = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrNoSeats            = errors.New("Not enough seats available")
)
