package flights

import (
	"context"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/search"
)

type FlightUseCase interface {
	Search(ctx context.Context, query search.Query) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, *domain.Aircraft, error)
	Airlines(ctx context.Context) ([]domain.Airline, error)
}

// Catalog is the read side of the flight dataset.
type Catalog interface {
	List() []domain.Flight
	GetByID(id string) (domain.Flight, bool)
	Airlines() []domain.Airline
}

// Cache holds search results keyed by query fingerprint. Optional: a nil
// cache disables caching.
type Cache interface {
	GetSearch(ctx context.Context, fingerprint string) ([]domain.Flight, error)
	SetSearch(ctx context.Context, fingerprint string, flights []domain.Flight) error
}

// placeholderAircraft is returned on single-flight lookups. There is no
// aircraft registry; the original dataset carries none either.
var placeholderAircraft = domain.Aircraft{Model: "Boeing 787", Capacity: 300}

type FlightService struct {
	catalog  Catalog
	cache    Cache
	cacheTTL time.Duration
}

func NewFlightService(catalog Catalog, cache Cache, cacheTTL time.Duration) *FlightService {
	return &FlightService{catalog: catalog, cache: cache, cacheTTL: cacheTTL}
}

func (s *FlightService) Search(ctx context.Context, query search.Query) ([]domain.Flight, error) {
	key := query.Fingerprint()
	if s.cache != nil {
		if cached, err := s.cache.GetSearch(ctx, key); err == nil && cached != nil {
			return cached, nil
		}
	}

	result := search.Apply(s.catalog.List(), query)

	if s.cache != nil {
		_ = s.cache.SetSearch(ctx, key, result)
	}
	return result, nil
}

func (s *FlightService) GetByID(_ context.Context, id string) (*domain.Flight, *domain.Aircraft, error) {
	f, ok := s.catalog.GetByID(id)
	if !ok {
		return nil, nil, domain.ErrFlightNotFound
	}
	aircraft := placeholderAircraft
	return &f, &aircraft, nil
}

func (s *FlightService) Airlines(_ context.Context) ([]domain.Airline, error) {
	return s.catalog.Airlines(), nil
}

var _ FlightUseCase = (*FlightService)(nil)
