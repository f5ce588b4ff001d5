package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/flightdesk/internal/catalog"
	apischema "github.com/Domenick1991/flightdesk/internal/graphql"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/Domenick1991/flightdesk/internal/service/account"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogJSON = `[
  {"id": "FL001", "airline": "SkyWings", "from": "New York", "to": "London", "departureDate": "2024-06-01", "departureTime": "08:30", "arrivalDate": "2024-06-01", "arrivalTime": "20:45", "duration": "7h 15m", "price": 500, "availableSeats": 42},
  {"id": "FL002", "airline": "Atlantic Air", "from": "London", "to": "Paris", "departureDate": "2024-06-02", "departureTime": "07:15", "arrivalDate": "2024-06-02", "arrivalTime": "09:35", "duration": "1h 20m", "price": 120, "availableSeats": 77}
]`

type graphQLResponse struct {
	Data   map[string]interface{} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cat, err := catalog.Parse([]byte(testCatalogJSON))
	require.NoError(t, err)

	bookingRepo := repository.NewMemBookingRepository()
	userRepo := repository.NewMemUserRepository()

	flightService := flights.NewFlightService(cat, nil, 0)
	bookingService := booking.NewBookingService(bookingRepo, userRepo, cat)
	accountService := account.NewAccountService(userRepo)

	schema, err := apischema.NewSchema(apischema.NewResolver(flightService, bookingService, accountService))
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewGraphQLHandler(schema).Register(router.Group("/"))
	return router
}

func doGraphQL(t *testing.T, router *gin.Engine, query string, variables map[string]interface{}) graphQLResponse {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{"query": query, "variables": variables})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp graphQLResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func register(t *testing.T, router *gin.Engine, name, email, password string) (userID, token string) {
	t.Helper()

	resp := doGraphQL(t, router, `
		mutation($name: String!, $email: String!, $password: String!) {
			register(name: $name, email: $email, password: $password) { token user { id name email } }
		}`, map[string]interface{}{"name": name, "email": email, "password": password})
	require.Empty(t, resp.Errors)

	auth := resp.Data["register"].(map[string]interface{})
	user := auth["user"].(map[string]interface{})
	return user["id"].(string), auth["token"].(string)
}

func TestSearchBookAndListScenario(t *testing.T) {
	router := newTestRouter(t)

	userID, token := register(t, router, "Ada", "ada@example.com", "hunter2")
	assert.Contains(t, token, "token_")

	// Search with mixed-case substrings and a date 2 days off, inside the
	// 7-day window.
	resp := doGraphQL(t, router, `
		query {
			flights(from: "new york", to: "LONDON", departureDate: "2024-06-03", dateRange: 7) {
				id price departure availableSeats
			}
		}`, nil)
	require.Empty(t, resp.Errors)

	found := resp.Data["flights"].([]interface{})
	require.Len(t, found, 1)
	flight := found[0].(map[string]interface{})
	assert.Equal(t, "FL001", flight["id"])
	assert.Equal(t, float64(500), flight["price"])
	assert.Equal(t, "2024-06-01 08:30", flight["departure"])

	resp = doGraphQL(t, router, `
		mutation($flightId: ID!, $userId: ID!) {
			bookFlight(flightId: $flightId, userId: $userId, passengers: 2, class: "economy", departureDate: "2024-06-03") {
				id bookingNumber status totalPrice flight { id airline }
			}
		}`, map[string]interface{}{"flightId": "FL001", "userId": userID})
	require.Empty(t, resp.Errors)

	booked := resp.Data["bookFlight"].(map[string]interface{})
	assert.Equal(t, "CONFIRMED", booked["status"])
	assert.Equal(t, float64(1000), booked["totalPrice"])
	assert.Equal(t, "FL001", booked["flight"].(map[string]interface{})["id"])
	bookingNumber := booked["bookingNumber"].(string)
	assert.Regexp(t, `^BK\d+$`, bookingNumber)

	resp = doGraphQL(t, router, `
		query($userId: ID!) {
			userBookings(userId: $userId) { id bookingNumber status totalPrice }
		}`, map[string]interface{}{"userId": userID})
	require.Empty(t, resp.Errors)

	list := resp.Data["userBookings"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, bookingNumber, list[0].(map[string]interface{})["bookingNumber"])
}

func TestCancelBookingIsIdempotent(t *testing.T) {
	router := newTestRouter(t)
	userID, _ := register(t, router, "Ada", "ada@example.com", "hunter2")

	resp := doGraphQL(t, router, `
		mutation($flightId: ID!, $userId: ID!) {
			bookFlight(flightId: $flightId, userId: $userId, passengers: 1, class: "business", departureDate: "2024-06-01") { id }
		}`, map[string]interface{}{"flightId": "FL001", "userId": userID})
	require.Empty(t, resp.Errors)
	bookingID := resp.Data["bookFlight"].(map[string]interface{})["id"].(string)

	for i := 0; i < 2; i++ {
		resp = doGraphQL(t, router, `
			mutation($bookingId: ID!) {
				cancelBooking(bookingId: $bookingId) { status }
			}`, map[string]interface{}{"bookingId": bookingID})
		require.Empty(t, resp.Errors, "cancel attempt %d", i+1)
		assert.Equal(t, "CANCELLED", resp.Data["cancelBooking"].(map[string]interface{})["status"])
	}
}

func TestErrorMessages(t *testing.T) {
	router := newTestRouter(t)
	userID, _ := register(t, router, "Ada", "ada@example.com", "hunter2")

	testCases := []struct {
		name      string
		query     string
		variables map[string]interface{}
		expected  string
	}{
		{
			"unknown flight",
			`mutation($userId: ID!) { bookFlight(flightId: "FL999", userId: $userId, passengers: 1, class: "economy", departureDate: "2024-06-01") { id } }`,
			map[string]interface{}{"userId": userID},
			"Flight not found",
		},
		{
			"unknown booking",
			`mutation { cancelBooking(bookingId: "nope") { id } }`,
			nil,
			"Booking not found",
		},
		{
			"bad credentials",
			`mutation { login(email: "ada@example.com", password: "wrong") { token } }`,
			nil,
			"Invalid credentials",
		},
		{
			"duplicate registration",
			`mutation { register(name: "Again", email: "ada@example.com", password: "pw") { token } }`,
			nil,
			"User already exists",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doGraphQL(t, router, tc.query, tc.variables)
			require.NotEmpty(t, resp.Errors)
			assert.Equal(t, tc.expected, resp.Errors[0].Message)
		})
	}
}

func TestLoginReturnsFreshToken(t *testing.T) {
	router := newTestRouter(t)
	_, registerToken := register(t, router, "Ada", "ada@example.com", "hunter2")

	resp := doGraphQL(t, router, `
		mutation { login(email: "ada@example.com", password: "hunter2") { token user { email } } }`, nil)
	require.Empty(t, resp.Errors)

	auth := resp.Data["login"].(map[string]interface{})
	assert.Equal(t, "ada@example.com", auth["user"].(map[string]interface{})["email"])
	assert.NotEqual(t, registerToken, auth["token"])
}

func TestFlightLookupAndAirlines(t *testing.T) {
	router := newTestRouter(t)

	resp := doGraphQL(t, router, `
		query { flight(id: "FL001") { id aircraft { model capacity } } }`, nil)
	require.Empty(t, resp.Errors)

	flight := resp.Data["flight"].(map[string]interface{})
	aircraft := flight["aircraft"].(map[string]interface{})
	assert.Equal(t, "Boeing 787", aircraft["model"])
	assert.Equal(t, float64(300), aircraft["capacity"])

	// Missing flights resolve to null, not an error.
	resp = doGraphQL(t, router, `query { flight(id: "FL999") { id } }`, nil)
	require.Empty(t, resp.Errors)
	assert.Nil(t, resp.Data["flight"])

	resp = doGraphQL(t, router, `query { airlines { id name code logo } }`, nil)
	require.Empty(t, resp.Errors)

	airlines := resp.Data["airlines"].([]interface{})
	require.Len(t, airlines, 2)
	first := airlines[0].(map[string]interface{})
	assert.Equal(t, "SkyWings", first["name"])
	assert.Equal(t, "SKY", first["code"])
	assert.Nil(t, first["logo"])
}

func TestHandler_BadRequestBody(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/graphql", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`, w.Body.String())
}

func TestServerSideRefinement(t *testing.T) {
	router := newTestRouter(t)

	resp := doGraphQL(t, router, fmt.Sprintf(`
		query { flights(sortBy: %q) { id price } }`, "price"), nil)
	require.Empty(t, resp.Errors)

	result := resp.Data["flights"].([]interface{})
	require.Len(t, result, 2)
	assert.Equal(t, "FL002", result[0].(map[string]interface{})["id"])
	assert.Equal(t, "FL001", result[1].(map[string]interface{})["id"])
}
