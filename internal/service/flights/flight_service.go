package flights

import (
	"context"
	"time"

	"github.com/Domenick1991/jetcharter/internal/domain"
	"github.com/Domenick1991/jetcharter/internal/query"
)

type FlightUseCase interface {
	Search(ctx context.Context, criteria query.Criteria, sortBy query.SortKey) (*SearchResult, error)
	Destinations(ctx context.Context) ([]domain.Destination, error)
	EmptyLegs(ctx context.Context) ([]domain.EmptyLeg, error)
}

type Catalog interface {
	Routes() []domain.FlightRecord
	EmptyLegs() []domain.EmptyLeg
	Airports() []domain.Airport
	Destinations() []domain.Destination
}

// FlightView is a search result with its display metrics.
type FlightView struct {
	domain.FlightRecord
	query.Metrics
}

type SearchResult struct {
	Flights  []FlightView     `json:"flights"`
	Airports []domain.Airport `json:"airports"`
}

type FlightService struct {
	catalog Catalog
	now     func() time.Time
}

type FlightServiceOption func(*FlightService)

func WithClock(now func() time.Time) FlightServiceOption {
	return func(s *FlightService) {
		s.now = now
	}
}

func NewFlightService(catalog Catalog, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{catalog: catalog, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search filters scheduled routes and empty legs together. Empty legs follow the
// routes in the unranked order.
func (s *FlightService) Search(_ context.Context, criteria query.Criteria, sortBy query.SortKey) (*SearchResult, error) {
	routes := s.catalog.Routes()
	legs := s.catalog.EmptyLegs()

	all := make([]domain.FlightRecord, 0, len(routes)+len(legs))
	all = append(all, routes...)
	for _, leg := range legs {
		all = append(all, leg.AsFlight())
	}

	records := query.Rank(query.Filter(all, criteria), sortBy)

	now := s.now()
	views := make([]FlightView, 0, len(records))
	for _, f := range records {
		views = append(views, FlightView{FlightRecord: f, Metrics: query.Derive(f, now)})
	}

	airports := s.catalog.Airports()
	if airports == nil {
		airports = []domain.Airport{}
	}
	return &SearchResult{Flights: views, Airports: airports}, nil
}

func (s *FlightService) Destinations(_ context.Context) ([]domain.Destination, error) {
	return s.catalog.Destinations(), nil
}

func (s *FlightService) EmptyLegs(_ context.Context) ([]domain.EmptyLeg, error) {
	return s.catalog.EmptyLegs(), nil
}

var _ FlightUseCase = (*FlightService)(nil)
