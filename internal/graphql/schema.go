// Package graphql defines the API schema and wires it to the use cases.
// Field names mirror the public API contract exactly.
package graphql

import (
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/search"
	"github.com/Domenick1991/flightdesk/internal/service/account"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
	"github.com/graphql-go/graphql"
)

type Resolver struct {
	flights  flights.FlightUseCase
	bookings booking.BookingUseCase
	accounts account.AccountUseCase
}

func NewResolver(f flights.FlightUseCase, b booking.BookingUseCase, a account.AccountUseCase) *Resolver {
	return &Resolver{flights: f, bookings: b, accounts: a}
}

// NewSchema builds the executable schema. Flights cross the wire as maps so
// the synthesized departure/arrival display strings and the optional
// aircraft descriptor resolve like plain fields.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	aircraftType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Aircraft",
		Fields: graphql.Fields{
			"model":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"capacity": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	flightType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Flight",
		Fields: graphql.Fields{
			"id":             &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"airline":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"from":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"to":             &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"departure":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"arrival":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"departureTime":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"arrivalTime":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"departureDate":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"arrivalDate":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"duration":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"price":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"availableSeats": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"aircraft":       &graphql.Field{Type: aircraftType},
		},
	})

	airlineType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Airline",
		Fields: graphql.Fields{
			"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"code": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"logo": &graphql.Field{Type: graphql.String},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	bookingType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Booking",
		Fields: graphql.Fields{
			"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"bookingNumber": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"status":        &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: bookingField(func(b domain.Booking) (interface{}, error) { return string(b.Status), nil })},
			"userId":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"flight":        &graphql.Field{Type: flightType, Resolve: bookingField(func(b domain.Booking) (interface{}, error) { return flightToGraph(b.Flight, nil), nil })},
			"passengers":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"class":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"totalPrice":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"departureDate": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"bookingDate":   &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: bookingField(func(b domain.Booking) (interface{}, error) { return b.CreatedAt.UTC().Format(timeLayout), nil })},
		},
	})

	authResponseType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthResponse",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"user":  &graphql.Field{Type: graphql.NewNonNull(userType)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"flights": &graphql.Field{
				Type: graphql.NewList(flightType),
				Args: graphql.FieldConfigArgument{
					"from":          &graphql.ArgumentConfig{Type: graphql.String},
					"to":            &graphql.ArgumentConfig{Type: graphql.String},
					"departureDate": &graphql.ArgumentConfig{Type: graphql.String},
					"dateRange":     &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: search.DefaultDateRange},
					"airline":       &graphql.ArgumentConfig{Type: graphql.String},
					"minPrice":      &graphql.ArgumentConfig{Type: graphql.Int},
					"maxPrice":      &graphql.ArgumentConfig{Type: graphql.Int},
					"sortBy":        &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveFlights,
			},
			"flight": &graphql.Field{
				Type: flightType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveFlight,
			},
			"userBookings": &graphql.Field{
				Type: graphql.NewList(bookingType),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveUserBookings,
			},
			"airlines": &graphql.Field{
				Type:    graphql.NewList(airlineType),
				Resolve: r.resolveAirlines,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"bookFlight": &graphql.Field{
				Type: bookingType,
				Args: graphql.FieldConfigArgument{
					"flightId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"userId":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"passengers":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"class":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"departureDate": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveBookFlight,
			},
			"cancelBooking": &graphql.Field{
				Type: bookingType,
				Args: graphql.FieldConfigArgument{
					"bookingId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveCancelBooking,
			},
			"login": &graphql.Field{
				Type: authResponseType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveLogin,
			},
			"register": &graphql.Field{
				Type: authResponseType,
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveRegister,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: queryType, Mutation: mutationType})
}
