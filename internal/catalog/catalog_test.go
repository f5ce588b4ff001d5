package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `[
  {"id": "FL001", "airline": "SkyWings", "from": "New York", "to": "London", "departureDate": "2024-06-01", "departureTime": "08:30", "arrivalDate": "2024-06-01", "arrivalTime": "20:45", "duration": "7h 15m", "price": 500, "availableSeats": 42},
  {"id": "FL002", "airline": "Atlantic Air", "from": "London", "to": "Paris", "departureDate": "2024-06-02", "departureTime": "07:15", "arrivalDate": "2024-06-02", "arrivalTime": "09:35", "duration": "1h 20m", "price": 120, "availableSeats": 77},
  {"id": "FL003", "airline": "SkyWings", "from": "Paris", "to": "Berlin", "departureDate": "2024-06-03", "departureTime": "12:00", "arrivalDate": "2024-06-03", "arrivalTime": "13:45", "duration": "1h 45m", "price": 95, "availableSeats": 54}
]`

func TestParse(t *testing.T) {
	cat, err := Parse([]byte(testCatalog))
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())

	flights := cat.List()
	assert.Equal(t, "FL001", flights[0].ID)
	assert.Equal(t, "New York", flights[0].From)
	assert.Equal(t, 500, flights[0].Price)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte("not json"))
	assert.Error(t, err)
}

func TestGetByID(t *testing.T) {
	cat, err := Parse([]byte(testCatalog))
	require.NoError(t, err)

	f, ok := cat.GetByID("FL002")
	require.True(t, ok)
	assert.Equal(t, "Atlantic Air", f.Airline)

	_, ok = cat.GetByID("FL999")
	assert.False(t, ok)
}

func TestList_ReturnsCopy(t *testing.T) {
	cat, err := Parse([]byte(testCatalog))
	require.NoError(t, err)

	flights := cat.List()
	flights[0].Price = 1

	again := cat.List()
	assert.Equal(t, 500, again[0].Price)
}

func TestAirlines(t *testing.T) {
	cat, err := Parse([]byte(testCatalog))
	require.NoError(t, err)

	airlines := cat.Airlines()
	require.Len(t, airlines, 2)

	assert.Equal(t, "1", airlines[0].ID)
	assert.Equal(t, "SkyWings", airlines[0].Name)
	assert.Equal(t, "SKY", airlines[0].Code)
	assert.Nil(t, airlines[0].Logo)

	assert.Equal(t, "2", airlines[1].ID)
	assert.Equal(t, "Atlantic Air", airlines[1].Name)
	assert.Equal(t, "ATL", airlines[1].Code)
}

func TestAirlines_ShortName(t *testing.T) {
	cat, err := Parse([]byte(`[{"id": "X1", "airline": "GO", "from": "A", "to": "B"}]`))
	require.NoError(t, err)

	airlines := cat.Airlines()
	require.Len(t, airlines, 1)
	assert.Equal(t, "GO", airlines[0].Code)
}
