package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is a ledger entry. Flight is a snapshot taken at booking time and
// is never re-validated against later catalog state.
type Booking struct {
	ID            string        `json:"id"`
	BookingNumber string        `json:"bookingNumber"`
	Status        BookingStatus `json:"status"`
	UserID        string        `json:"userId"`
	Flight        Flight        `json:"flight"`
	Passengers    int           `json:"passengers"`
	Class         string        `json:"class"`
	TotalPrice    int           `json:"totalPrice"`
	DepartureDate string        `json:"departureDate"`
	CreatedAt     time.Time     `json:"createdAt"`
}
