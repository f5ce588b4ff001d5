package domain

// Flight is a catalog record. The catalog is loaded once at startup and
// never mutated, so flights are passed around by value.
type Flight struct {
	ID             string `json:"id"`
	Airline        string `json:"airline"`
	From           string `json:"from"`
	To             string `json:"to"`
	DepartureDate  string `json:"departureDate"`
	DepartureTime  string `json:"departureTime"`
	ArrivalDate    string `json:"arrivalDate"`
	ArrivalTime    string `json:"arrivalTime"`
	Duration       string `json:"duration"`
	Price          int    `json:"price"`
	AvailableSeats int    `json:"availableSeats"`
}

// Departure is the display string combining date and time-of-day.
func (f Flight) Departure() string {
	return f.DepartureDate + " " + f.DepartureTime
}

func (f Flight) Arrival() string {
	return f.ArrivalDate + " " + f.ArrivalTime
}

// Aircraft is a placeholder descriptor attached to single-flight lookups.
// There is no real aircraft registry behind it.
type Aircraft struct {
	Model    string `json:"model"`
	Capacity int    `json:"capacity"`
}

// Airline is derived from the catalog by deduplicating airline names;
// there is no stored airline registry.
type Airline struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Code string  `json:"code"`
	Logo *string `json:"logo"`
}
