package search

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

// DefaultDateRange is the tolerance window in days applied when a target
// departure date is given without an explicit range.
const DefaultDateRange = 7

// Sort keys accepted by Query.SortBy.
const (
	SortPrice         = "price"
	SortPriceDesc     = "price-desc"
	SortDuration      = "duration"
	SortDurationDesc  = "duration-desc"
	SortDeparture     = "departure"
	SortDepartureDesc = "departure-desc"
)

// Query describes one search over the catalog. Zero values impose no
// constraint: blank strings skip their filter and nil price bounds are open.
type Query struct {
	From          string
	To            string
	DepartureDate string
	DateRange     int
	Airline       string
	MinPrice      *int
	MaxPrice      *int
	SortBy        string
}

// Fingerprint is a stable cache key for the query.
func (q Query) Fingerprint() string {
	parts := []string{
		strings.ToLower(strings.TrimSpace(q.From)),
		strings.ToLower(strings.TrimSpace(q.To)),
		strings.TrimSpace(q.DepartureDate),
		strconv.Itoa(q.DateRange),
		q.Airline,
		priceBound(q.MinPrice),
		priceBound(q.MaxPrice),
		q.SortBy,
	}
	return strings.Join(parts, "|")
}

func priceBound(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

// Apply filters and sorts flights according to q. The input slice is not
// modified; output order follows catalog order unless a sort key is set.
func Apply(flights []domain.Flight, q Query) []domain.Flight {
	result := make([]domain.Flight, 0, len(flights))
	result = append(result, flights...)

	if from := strings.TrimSpace(q.From); from != "" {
		result = filter(result, func(f domain.Flight) bool {
			return strings.Contains(strings.ToLower(f.From), strings.ToLower(from))
		})
	}

	if to := strings.TrimSpace(q.To); to != "" {
		result = filter(result, func(f domain.Flight) bool {
			return strings.Contains(strings.ToLower(f.To), strings.ToLower(to))
		})
	}

	if target, ok := parseDate(q.DepartureDate); ok {
		rangeDays := q.DateRange
		if rangeDays <= 0 {
			rangeDays = DefaultDateRange
		}
		result = filter(result, func(f domain.Flight) bool {
			flightDate, ok := parseDate(f.DepartureDate)
			if !ok {
				// Unparseable departure dates never match a dated search.
				return false
			}
			diff := flightDate.Sub(target).Hours() / 24
			if diff < 0 {
				diff = -diff
			}
			return diff <= float64(rangeDays)
		})
	}

	if q.Airline != "" {
		result = filter(result, func(f domain.Flight) bool {
			return f.Airline == q.Airline
		})
	}
	if q.MinPrice != nil {
		min := *q.MinPrice
		result = filter(result, func(f domain.Flight) bool { return f.Price >= min })
	}
	if q.MaxPrice != nil {
		max := *q.MaxPrice
		result = filter(result, func(f domain.Flight) bool { return f.Price <= max })
	}

	sortFlights(result, q.SortBy)
	return result
}

func filter(flights []domain.Flight, keep func(domain.Flight) bool) []domain.Flight {
	out := flights[:0]
	for _, f := range flights {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

// sortFlights orders flights in place. Stability matters: flights with
// equal keys keep their catalog order.
func sortFlights(flights []domain.Flight, sortBy string) {
	switch sortBy {
	case SortPrice:
		sort.SliceStable(flights, func(i, j int) bool { return flights[i].Price < flights[j].Price })
	case SortPriceDesc:
		sort.SliceStable(flights, func(i, j int) bool { return flights[i].Price > flights[j].Price })
	case SortDuration:
		sort.SliceStable(flights, func(i, j int) bool {
			return ParseDurationMinutes(flights[i].Duration) < ParseDurationMinutes(flights[j].Duration)
		})
	case SortDurationDesc:
		sort.SliceStable(flights, func(i, j int) bool {
			return ParseDurationMinutes(flights[i].Duration) > ParseDurationMinutes(flights[j].Duration)
		})
	case SortDeparture:
		sort.SliceStable(flights, func(i, j int) bool {
			return departureKey(flights[i]) < departureKey(flights[j])
		})
	case SortDepartureDesc:
		sort.SliceStable(flights, func(i, j int) bool {
			return departureKey(flights[i]) > departureKey(flights[j])
		})
	}
}

var durationPattern = regexp.MustCompile(`(\d+)h\s*(\d+)m`)

// ParseDurationMinutes parses display strings like "5h 30m" into minutes.
// Anything that does not match the pattern parses to zero, which sorts
// such flights first in ascending order.
func ParseDurationMinutes(s string) int {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes
}

// departureKey builds a sortable key from departure date and time-of-day.
// ISO dates and 24h times compare correctly as strings. Unparseable dates
// map to the empty key and sort first, matching the zero-duration
// convention.
func departureKey(f domain.Flight) string {
	if _, ok := parseDate(f.DepartureDate); !ok {
		return ""
	}
	return f.DepartureDate + " " + f.DepartureTime
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Truncate(24 * time.Hour), true
		}
	}
	return time.Time{}, false
}
