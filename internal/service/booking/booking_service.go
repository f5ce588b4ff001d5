package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	BookFlight(ctx context.Context, input BookFlightInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Booking, error)
}

// FlightSource resolves flights from the catalog at booking time.
type FlightSource interface {
	GetByID(id string) (domain.Flight, bool)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookFlightInput struct {
	FlightID      string `json:"flight_id"`
	UserID        string `json:"user_id"`
	Passengers    int    `json:"passengers"`
	Class         string `json:"class"`
	DepartureDate string `json:"departure_date"`
}

type BookingService struct {
	bookings           repository.BookingRepository
	accounts           repository.UserRepository
	flights            FlightSource
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, bookingTopic, notificationsTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = bookingTopic
		s.notificationsTopic = notificationsTopic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	accounts repository.UserRepository,
	flights FlightSource,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings: bookings,
		accounts: accounts,
		flights:  flights,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) BookFlight(ctx context.Context, input BookFlightInput) (*domain.Booking, error) {
	if input.Passengers < 1 {
		return nil, errors.New("passenger count must be positive")
	}
	if input.Class == "" {
		return nil, errors.New("travel class is required")
	}

	flight, ok := s.flights.GetByID(input.FlightID)
	if !ok {
		return nil, domain.ErrFlightNotFound
	}

	if _, err := s.accounts.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}
	if input.Passengers > flight.AvailableSeats {
		return nil, domain.ErrNoSeats
	}

	now := time.Now()
	booking := &domain.Booking{
		ID:            uuid.NewString(),
		BookingNumber: fmt.Sprintf("BK%d", now.UnixMilli()),
		Status:        domain.BookingStatusConfirmed,
		UserID:        input.UserID,
		Flight:        flight,
		Passengers:    input.Passengers,
		Class:         input.Class,
		TotalPrice:    flight.Price * input.Passengers,
		DepartureDate: input.DepartureDate,
		CreatedAt:     now,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "booking_created", booking); err != nil {
		log.Printf("WARNING: failed to publish booking_created event for booking %s: %v", booking.ID, err)
	}
	return booking, nil
}

// CancelBooking flips the booking to CANCELLED. The transition is one-way
// and idempotent: cancelling an already-cancelled booking succeeds and
// returns the record unchanged.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCancelled {
		return current, nil
	}

	updated, err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	if err := s.publish(ctx, "booking_cancelled", updated); err != nil {
		log.Printf("WARNING: failed to publish booking_cancelled event for booking %s: %v", updated.ID, err)
	}
	return updated, nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:          eventType,
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		FlightID:      booking.Flight.ID,
		UserID:        booking.UserID,
		Status:        string(booking.Status),
		Passengers:    booking.Passengers,
		TotalPrice:    booking.TotalPrice,
		CreatedAt:     booking.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
