package graphql

import (
	"fmt"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/search"
	"github.com/Domenick1991/flightdesk/internal/service/account"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/graphql-go/graphql"
)

const timeLayout = time.RFC3339

func (r *Resolver) resolveFlights(p graphql.ResolveParams) (interface{}, error) {
	query := search.Query{
		From:          stringArg(p, "from"),
		To:            stringArg(p, "to"),
		DepartureDate: stringArg(p, "departureDate"),
		DateRange:     intArg(p, "dateRange", search.DefaultDateRange),
		Airline:       stringArg(p, "airline"),
		MinPrice:      intArgPtr(p, "minPrice"),
		MaxPrice:      intArgPtr(p, "maxPrice"),
		SortBy:        stringArg(p, "sortBy"),
	}

	result, err := r.flights.Search(p.Context, query)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]interface{}, 0, len(result))
	for _, f := range result {
		out = append(out, flightToGraph(f, nil))
	}
	return out, nil
}

func (r *Resolver) resolveFlight(p graphql.ResolveParams) (interface{}, error) {
	flight, aircraft, err := r.flights.GetByID(p.Context, stringArg(p, "id"))
	if err != nil {
		// Missing flights resolve to null, matching the nullable return type.
		return nil, nil
	}
	return flightToGraph(*flight, aircraft), nil
}

func (r *Resolver) resolveUserBookings(p graphql.ResolveParams) (interface{}, error) {
	return r.bookings.ListForUser(p.Context, stringArg(p, "userId"))
}

func (r *Resolver) resolveAirlines(p graphql.ResolveParams) (interface{}, error) {
	return r.flights.Airlines(p.Context)
}

func (r *Resolver) resolveBookFlight(p graphql.ResolveParams) (interface{}, error) {
	input := booking.BookFlightInput{
		FlightID:      stringArg(p, "flightId"),
		UserID:        stringArg(p, "userId"),
		Passengers:    intArg(p, "passengers", 0),
		Class:         stringArg(p, "class"),
		DepartureDate: stringArg(p, "departureDate"),
	}
	return r.bookings.BookFlight(p.Context, input)
}

func (r *Resolver) resolveCancelBooking(p graphql.ResolveParams) (interface{}, error) {
	return r.bookings.CancelBooking(p.Context, stringArg(p, "bookingId"))
}

func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	result, err := r.accounts.Login(p.Context, stringArg(p, "email"), stringArg(p, "password"))
	if err != nil {
		return nil, err
	}
	return authToGraph(result), nil
}

func (r *Resolver) resolveRegister(p graphql.ResolveParams) (interface{}, error) {
	result, err := r.accounts.Register(p.Context, stringArg(p, "name"), stringArg(p, "email"), stringArg(p, "password"))
	if err != nil {
		return nil, err
	}
	return authToGraph(result), nil
}

// flightToGraph flattens a flight for the wire, adding the synthesized
// departure/arrival display strings and, on single-flight lookups, the
// aircraft descriptor.
func flightToGraph(f domain.Flight, aircraft *domain.Aircraft) map[string]interface{} {
	out := map[string]interface{}{
		"id":             f.ID,
		"airline":        f.Airline,
		"from":           f.From,
		"to":             f.To,
		"departure":      f.Departure(),
		"arrival":        f.Arrival(),
		"departureTime":  f.DepartureTime,
		"arrivalTime":    f.ArrivalTime,
		"departureDate":  f.DepartureDate,
		"arrivalDate":    f.ArrivalDate,
		"duration":       f.Duration,
		"price":          f.Price,
		"availableSeats": f.AvailableSeats,
	}
	if aircraft != nil {
		out["aircraft"] = *aircraft
	}
	return out
}

func authToGraph(result *account.AuthResult) map[string]interface{} {
	return map[string]interface{}{
		"token": result.Token,
		"user":  result.User,
	}
}

func stringArg(p graphql.ResolveParams, name string) string {
	if v, ok := p.Args[name]; ok && v != nil {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

func intArg(p graphql.ResolveParams, name string, fallback int) int {
	if v, ok := p.Args[name].(int); ok {
		return v
	}
	return fallback
}

func intArgPtr(p graphql.ResolveParams, name string) *int {
	if v, ok := p.Args[name].(int); ok {
		return &v
	}
	return nil
}

// bookingField adapts a typed accessor to a graphql resolver, accepting
// both value and pointer sources.
func bookingField(fn func(domain.Booking) (interface{}, error)) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		switch b := p.Source.(type) {
		case domain.Booking:
			return fn(b)
		case *domain.Booking:
			return fn(*b)
		}
		return nil, nil
	}
}
