package email

import (
	"context"
	"log"

	"github.com/Domenick1991/flightdesk/internal/kafka"
)

// Sender delivers booking notifications. The current implementation only
// logs; wiring a real mail provider is a deployment concern.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(_ context.Context, event kafka.BookingEvent) error {
	log.Printf("notify user %s: booking %s (%s) for flight %s is %s, total %d",
		event.UserID, event.BookingNumber, event.BookingID, event.FlightID, event.Status, event.TotalPrice)
	return nil
}
