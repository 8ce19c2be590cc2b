package pricing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPricingService_EstimatePrice(t *testing.T) {
	s := NewPricingService()
	ctx := context.Background()

	tests := []struct {
		distance string
		jetType  string
		want     int64
	}{
		{"1000", "Ultra Long Range", 25000},
		{"1000", "Midsize", 17000},
		{"1000", "Light", 15000},
		{"0", "Midsize", 5000},
		{"0.04", "Midsize", 5000},
		{"0.05", "Light", 5001},
	}
	for _, tt := range tests {
		got := s.EstimatePrice(ctx, decimal.RequireFromString(tt.distance), tt.jetType)
		assert.Equal(t, tt.want, got.IntPart(), "%s/%s", tt.distance, tt.jetType)
	}
}

func TestPricingService_CarbonOffset(t *testing.T) {
	s := NewPricingService()
	ctx := context.Background()

	assert.Equal(t, int64(495), s.CarbonOffset(ctx, decimal.NewFromInt(2475)).IntPart())
	assert.Equal(t, int64(1), s.CarbonOffset(ctx, decimal.RequireFromString("2.5")).IntPart())
	assert.Equal(t, int64(0), s.CarbonOffset(ctx, decimal.Zero).IntPart())
}

func TestPricingService_ProcessPayment(t *testing.T) {
	s := NewPricingService()
	s.newReference = func() string { return "ref-1" }

	res := s.ProcessPayment(context.Background(), PaymentInput{
		Amount:  "12500.50",
		Details: CardDetails{CardNumber: "4242 4242 4242 4242", CVV: "123", Expiry: "12/30"},
	})

	assert.Equal(t, PaymentStatusTest, res.Status)
	assert.True(t, decimal.RequireFromString("12500.5").Equal(res.Amount))
	assert.Equal(t, "ref-1", res.Reference)
	assert.Equal(t, "4242", res.Last4)
}

func TestPricingService_ProcessPaymentRejectsBadAmounts(t *testing.T) {
	s := NewPricingService()

	for _, amount := range []string{"", "abc", "0", "-10"} {
		res := s.ProcessPayment(context.Background(), PaymentInput{Amount: amount})
		assert.Equal(t, PaymentStatusError, res.Status, amount)
		assert.Empty(t, res.Reference, amount)
	}
}
