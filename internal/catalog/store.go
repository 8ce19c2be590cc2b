// Package catalog holds the reference data the charter site is built on: the fleet,
// advertised deals, scheduled routes, empty legs and the airports they serve.
package catalog

import (
	"strings"

	"github.com/Domenick1991/jetcharter/internal/domain"
)

// Store serves the built-in catalog. Every accessor returns a copy so callers may
// reorder or annotate results freely.
type Store struct {
	jets         []domain.Jet
	deals        []domain.DealRecord
	routes       []domain.FlightRecord
	emptyLegs    []domain.EmptyLeg
	airports     []domain.Airport
	weatherSites map[string]domain.Airport
	destinations []domain.Destination
	member       domain.Member
	dashboard    domain.DashboardMetrics
	tracking     []domain.TrackedFlight
	weather      domain.Weather
}

func NewStore() *Store {
	s := &Store{
		jets:         seedJets(),
		deals:        seedDeals(),
		routes:       seedRoutes(),
		emptyLegs:    seedEmptyLegs(),
		airports:     seedAirports(),
		weatherSites: make(map[string]domain.Airport),
		destinations: seedDestinations(),
		member:       seedMember(),
		dashboard:    seedDashboard(),
		tracking:     seedTracking(),
		weather:      seedWeather(),
	}
	for _, a := range seedWeatherSites() {
		s.weatherSites[a.Code] = a
	}
	return s
}

func (s *Store) Jets() []domain.Jet {
	return append([]domain.Jet(nil), s.jets...)
}

// Jet looks a jet up by id.
func (s *Store) Jet(id int) (domain.Jet, bool) {
	for _, j := range s.jets {
		if j.ID == id {
			return j, true
		}
	}
	return domain.Jet{}, false
}

func (s *Store) Deals() []domain.DealRecord {
	return append([]domain.DealRecord(nil), s.deals...)
}

func (s *Store) Routes() []domain.FlightRecord {
	return append([]domain.FlightRecord(nil), s.routes...)
}

func (s *Store) EmptyLegs() []domain.EmptyLeg {
	return append([]domain.EmptyLeg(nil), s.emptyLegs...)
}

func (s *Store) Airports() []domain.Airport {
	return append([]domain.Airport(nil), s.airports...)
}

// WeatherSite returns the coordinates used for forecasts at the given airport code.
func (s *Store) WeatherSite(code string) (domain.Airport, bool) {
	a, ok := s.weatherSites[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

func (s *Store) Destinations() []domain.Destination {
	return append([]domain.Destination(nil), s.destinations...)
}

func (s *Store) Member() domain.Member {
	m := s.member
	m.Tiers = append([]domain.MembershipTier(nil), s.member.Tiers...)
	return m
}

func (s *Store) Dashboard() domain.DashboardMetrics {
	return s.dashboard
}

// FallbackTracking is served when live positions cannot be fetched.
func (s *Store) FallbackTracking() []domain.TrackedFlight {
	return append([]domain.TrackedFlight(nil), s.tracking...)
}

// FallbackWeather is served when no forecast can be fetched.
func (s *Store) FallbackWeather() domain.Weather {
	return s.weather
}
