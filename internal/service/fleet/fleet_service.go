package fleet

import (
	"context"
	"fmt"

	"github.com/Domenick1991/jetcharter/internal/domain"
)

// DefaultSpeed is assumed for jets whose cruise speed is not published.
const DefaultSpeed = 500

const (
	WinnerA   = "A"
	WinnerB   = "B"
	WinnerTie = "tie"
)

type FleetUseCase interface {
	List(ctx context.Context) ([]domain.Jet, error)
	Get(ctx context.Context, id int) (*domain.Jet, error)
	Compare(ctx context.Context, a, b int) (*Comparison, error)
}

type Catalog interface {
	Jets() []domain.Jet
	Jet(id int) (domain.Jet, bool)
}

type FeatureComparison struct {
	Feature string `json:"feature"`
	A       int    `json:"a"`
	B       int    `json:"b"`
	Winner  string `json:"winner"`
}

type Comparison struct {
	A        domain.Jet          `json:"a"`
	B        domain.Jet          `json:"b"`
	Features []FeatureComparison `json:"features"`
}

type FleetService struct {
	catalog Catalog
}

func NewFleetService(catalog Catalog) *FleetService {
	return &FleetService{catalog: catalog}
}

func (s *FleetService) List(_ context.Context) ([]domain.Jet, error) {
	return s.catalog.Jets(), nil
}

func (s *FleetService) Get(_ context.Context, id int) (*domain.Jet, error) {
	jet, ok := s.catalog.Jet(id)
	if !ok {
		return nil, fmt.Errorf("jet %d: %w", id, domain.ErrNotFound)
	}
	return &jet, nil
}

// Compare lines two jets up feature by feature. Capacity, range and speed favour the
// larger value; hourly rate favours the cheaper jet.
func (s *FleetService) Compare(ctx context.Context, a, b int) (*Comparison, error) {
	jetA, err := s.Get(ctx, a)
	if err != nil {
		return nil, err
	}
	jetB, err := s.Get(ctx, b)
	if err != nil {
		return nil, err
	}

	return &Comparison{
		A: *jetA,
		B: *jetB,
		Features: []FeatureComparison{
			compare("capacity", jetA.Capacity, jetB.Capacity, false),
			compare("range", jetA.Range, jetB.Range, false),
			compare("hourlyRate", jetA.HourlyRate, jetB.HourlyRate, true),
			compare("speed", speedOf(*jetA), speedOf(*jetB), false),
		},
	}, nil
}

func compare(feature string, a, b int, lowerWins bool) FeatureComparison {
	fc := FeatureComparison{Feature: feature, A: a, B: b, Winner: WinnerTie}
	if lowerWins {
		a, b = b, a
	}
	switch {
	case a > b:
		fc.Winner = WinnerA
	case b > a:
		fc.Winner = WinnerB
	}
	return fc
}

func speedOf(j domain.Jet) int {
	if j.Speed <= 0 {
		return DefaultSpeed
	}
	return j.Speed
}

var _ FleetUseCase = (*FleetService)(nil)
