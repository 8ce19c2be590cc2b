package deals

import (
	"context"
	"time"

	"github.com/Domenick1991/jetcharter/internal/domain"
	"github.com/Domenick1991/jetcharter/internal/query"
)

// FallbackJetName is shown for deals whose jet is not in the fleet.
const FallbackJetName = "Premium Aircraft"

type DealUseCase interface {
	List(ctx context.Context, criteria query.Criteria, sortBy query.SortKey) ([]DealView, error)
}

type Catalog interface {
	Deals() []domain.DealRecord
	Jet(id int) (domain.Jet, bool)
}

// DealView is a deal as presented on the deals page.
type DealView struct {
	domain.DealRecord
	query.Metrics
	JetName string `json:"jetName"`
}

type DealService struct {
	catalog Catalog
	now     func() time.Time
}

type DealServiceOption func(*DealService)

func WithClock(now func() time.Time) DealServiceOption {
	return func(s *DealService) {
		s.now = now
	}
}

func NewDealService(catalog Catalog, opts ...DealServiceOption) *DealService {
	s := &DealService{catalog: catalog, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *DealService) List(_ context.Context, criteria query.Criteria, sortBy query.SortKey) ([]DealView, error) {
	records := query.Rank(query.Filter(s.catalog.Deals(), criteria), sortBy)

	now := s.now()
	views := make([]DealView, 0, len(records))
	for _, d := range records {
		name := FallbackJetName
		if jet, ok := s.catalog.Jet(d.JetID); ok {
			name = jet.Name
		}
		views = append(views, DealView{
			DealRecord: d,
			Metrics:    query.Derive(d, now),
			JetName:    name,
		})
	}
	return views, nil
}

var _ DealUseCase = (*DealService)(nil)
