package fleet

import (
	"context"
	"testing"

	"github.com/Domenick1991/jetcharter/internal/catalog"
	"github.com/Domenick1991/jetcharter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFleetService_Get(t *testing.T) {
	s := NewFleetService(catalog.NewStore())

	jet, err := s.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Gulfstream G650ER", jet.Name)

	_, err = s.Get(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFleetService_Compare(t *testing.T) {
	s := NewFleetService(catalog.NewStore())

	// G650ER against HondaJet Elite, which publishes no speed.
	cmp, err := s.Compare(context.Background(), 1, 8)
	require.NoError(t, err)

	winners := map[string]string{}
	for _, f := range cmp.Features {
		winners[f.Feature] = f.Winner
	}
	assert.Equal(t, map[string]string{
		"capacity":   WinnerA,
		"range":      WinnerA,
		"hourlyRate": WinnerB,
		"speed":      WinnerA,
	}, winners)
	assert.Equal(t, DefaultSpeed, cmp.Features[3].B)
}

func TestFleetService_CompareTie(t *testing.T) {
	s := NewFleetService(catalog.NewStore())

	cmp, err := s.Compare(context.Background(), 6, 6)
	require.NoError(t, err)
	for _, f := range cmp.Features {
		assert.Equal(t, WinnerTie, f.Winner, f.Feature)
	}
}

func TestFleetService_CompareMissing(t *testing.T) {
	s := NewFleetService(catalog.NewStore())

	_, err := s.Compare(context.Background(), 1, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
