package query

import (
	"net/url"
	"testing"

	"github.com/Domenick1991/jetcharter/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func sampleFlights() []domain.FlightRecord {
	return []domain.FlightRecord{
		{
			ID:        "JFK-LAX-001",
			Departure: domain.Endpoint{Airport: "JFK", City: "New York", Time: "2024-02-15T08:00:00Z"},
			Arrival:   domain.Endpoint{Airport: "LAX", City: "Los Angeles", Time: "2024-02-15T14:30:00Z"},
			Aircraft:  &domain.Aircraft{Type: "Gulfstream G650ER", Capacity: 14},
			Price:     &domain.FlightPrice{Base: 45000, Total: 52000, Currency: "USD"},
			Category:  domain.CategoryHeavy,
		},
		{
			ID:        "LAX-MIA-002",
			Departure: domain.Endpoint{Airport: "LAX", City: "Los Angeles", Time: "2024-02-15T10:15:00Z"},
			Arrival:   domain.Endpoint{Airport: "MIA", City: "Miami", Time: "2024-02-15T18:45:00Z"},
			Aircraft:  &domain.Aircraft{Type: "Challenger 350", Capacity: 10},
			Price:     &domain.FlightPrice{Base: 35750, Total: 41000, Currency: "USD"},
			Category:  domain.CategoryMidsize,
		},
		{
			ID:        "MIA-JFK-003",
			Departure: domain.Endpoint{Airport: "MIA", City: "Miami", Time: "2024-02-15T14:30:00Z"},
			Arrival:   domain.Endpoint{Airport: "JFK", City: "New York", Time: "2024-02-15T17:15:00Z"},
			Aircraft:  &domain.Aircraft{Type: "Citation CJ3+", Capacity: 9},
			Price:     &domain.FlightPrice{Base: 9625, Total: 11000, Currency: "USD"},
			Category:  domain.CategoryLight,
		},
		{
			ID:        "NO-AIRCRAFT-004",
			Departure: domain.Endpoint{Airport: "MDW", City: "Chicago", Time: "not a date"},
			Arrival:   domain.Endpoint{Airport: "LAS", City: "Las Vegas"},
			Category:  domain.CategoryLight,
		},
	}
}

func ids(flights []domain.FlightRecord) []string {
	out := make([]string, len(flights))
	for i, f := range flights {
		out[i] = f.ID
	}
	return out
}

func TestFilter_DealFromCaseInsensitiveSubstring(t *testing.T) {
	deals := []domain.DealRecord{{ID: 1, From: "New York"}, {ID: 2, From: "Miami"}}

	got := Filter(deals, Criteria{From: "new"})

	assert.Equal(t, []domain.DealRecord{{ID: 1, From: "New York"}}, got)
}

func TestFilter_NilInputYieldsEmpty(t *testing.T) {
	got := Filter[domain.DealRecord](nil, Criteria{From: "new"})
	assert.NotNil(t, got)
	assert.Empty(t, got)

	gotAll := Filter[domain.FlightRecord](nil, Criteria{})
	assert.NotNil(t, gotAll)
	assert.Empty(t, gotAll)
}

func TestFilter_EmptyCriteriaIsIdentity(t *testing.T) {
	flights := sampleFlights()

	got := Filter(flights, Criteria{})

	if diff := cmp.Diff(flights, got); diff != "" {
		t.Fatalf("unexpected diff (-want +got):\n%s", diff)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	criteria := []Criteria{
		{From: "a"},
		{To: "new york"},
		{MaxPrice: ptr(45000.0)},
		{Category: "light", MinCapacity: ptr(5)},
	}
	for _, c := range criteria {
		once := Filter(sampleFlights(), c)
		twice := Filter(once, c)
		assert.Equal(t, once, twice)
	}
}

func TestFilter_Criteria(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"from matches airport code", Criteria{From: "lax"}, []string{"LAX-MIA-002"}},
		{"from matches city", Criteria{From: "los"}, []string{"LAX-MIA-002"}},
		{"to matches city", Criteria{To: "YORK"}, []string{"MIA-JFK-003"}},
		{"max price is inclusive", Criteria{MaxPrice: ptr(41000.0)}, []string{"LAX-MIA-002", "MIA-JFK-003"}},
		{"category is exact", Criteria{Category: "light"}, []string{"MIA-JFK-003", "NO-AIRCRAFT-004"}},
		{"category is case sensitive", Criteria{Category: "Light"}, []string{}},
		{"min capacity is inclusive", Criteria{MinCapacity: ptr(10)}, []string{"JFK-LAX-001", "LAX-MIA-002"}},
		{"missing aircraft excluded by capacity", Criteria{Category: "light", MinCapacity: ptr(1)}, []string{"MIA-JFK-003"}},
		{"missing price excluded by ceiling", Criteria{Category: "light", MaxPrice: ptr(1e9)}, []string{"MIA-JFK-003"}},
		{"criteria are conjunctive", Criteria{From: "m", To: "new", MaxPrice: ptr(20000.0)}, []string{"MIA-JFK-003"}},
		{"no match", Criteria{From: "tokyo"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleFlights(), tt.criteria)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_DealsExcludedByFieldsTheyLack(t *testing.T) {
	deals := []domain.DealRecord{{ID: 1, From: "Miami", To: "Aspen", Price: 8500}}

	assert.Empty(t, Filter(deals, Criteria{Category: "light"}))
	assert.Empty(t, Filter(deals, Criteria{MinCapacity: ptr(1)}))
	assert.Len(t, Filter(deals, Criteria{MaxPrice: ptr(8500.0)}), 1)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	flights := sampleFlights()
	before := sampleFlights()

	_ = Filter(flights, Criteria{From: "mia"})

	assert.Equal(t, before, flights)
}

func TestParseCriteria(t *testing.T) {
	values := url.Values{
		"from":       {" new "},
		"arrival":    {"LAX"},
		"maxPrice":   {"50000"},
		"category":   {"heavy"},
		"passengers": {"4"},
	}

	c := ParseCriteria(values)

	assert.Equal(t, "new", c.From)
	assert.Equal(t, "LAX", c.To)
	assert.Equal(t, 50000.0, *c.MaxPrice)
	assert.Equal(t, "heavy", c.Category)
	assert.Equal(t, 4, *c.MinCapacity)
}

func TestParseCriteria_IgnoresUnparsable(t *testing.T) {
	values := url.Values{
		"maxPrice":   {"cheap"},
		"passengers": {"a few"},
		"category":   {"all"},
	}

	c := ParseCriteria(values)

	assert.Nil(t, c.MaxPrice)
	assert.Nil(t, c.MinCapacity)
	assert.Empty(t, c.Category)
	assert.True(t, c.IsEmpty())
}

func TestParseCriteria_RejectsNaN(t *testing.T) {
	c := ParseCriteria(url.Values{"maxPrice": {"NaN"}})
	assert.Nil(t, c.MaxPrice)
}
