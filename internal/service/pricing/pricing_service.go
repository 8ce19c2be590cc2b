package pricing

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaymentStatusTest  = "test"
	PaymentStatusError = "error"
)

var (
	baseFare       = decimal.NewFromInt(5000)
	perMile        = decimal.NewFromInt(10)
	carbonPerMile  = decimal.RequireFromString("0.2")
	half           = decimal.RequireFromString("0.5")
	typeMultiplier = map[string]decimal.Decimal{
		"Ultra Long Range": decimal.NewFromInt(2),
		"Midsize":          decimal.RequireFromString("1.2"),
	}
)

type PricingUseCase interface {
	EstimatePrice(ctx context.Context, distance decimal.Decimal, jetType string) decimal.Decimal
	CarbonOffset(ctx context.Context, distance decimal.Decimal) decimal.Decimal
	ProcessPayment(ctx context.Context, input PaymentInput) PaymentResult
}

type CardDetails struct {
	CardNumber string `json:"cardNumber"`
	CVV        string `json:"cvv"`
	Expiry     string `json:"expiry"`
}

type PaymentInput struct {
	Amount  string      `json:"amount"`
	Details CardDetails `json:"details"`
}

type PaymentResult struct {
	Status    string          `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference,omitempty"`
	Last4     string          `json:"last4,omitempty"`
	Message   string          `json:"message"`
}

type PricingService struct {
	newReference func() string
}

func NewPricingService() *PricingService {
	return &PricingService{newReference: uuid.NewString}
}

// EstimatePrice quotes a one-way charter: a fixed base fare plus a per-mile rate scaled
// by the jet class. Unknown classes use a multiplier of 1.
func (s *PricingService) EstimatePrice(_ context.Context, distance decimal.Decimal, jetType string) decimal.Decimal {
	mult, ok := typeMultiplier[jetType]
	if !ok {
		mult = decimal.NewFromInt(1)
	}
	return roundHalfUp(baseFare.Add(distance.Mul(perMile).Mul(mult)))
}

// CarbonOffset returns kilograms of CO2 for the distance in miles.
func (s *PricingService) CarbonOffset(_ context.Context, distance decimal.Decimal) decimal.Decimal {
	return roundHalfUp(distance.Mul(carbonPerMile))
}

// ProcessPayment never charges a card. Positive amounts are accepted in test mode.
func (s *PricingService) ProcessPayment(_ context.Context, input PaymentInput) PaymentResult {
	amount, err := decimal.NewFromString(strings.TrimSpace(input.Amount))
	if err != nil || !amount.IsPositive() {
		return PaymentResult{Status: PaymentStatusError, Amount: decimal.Zero, Message: "Payment failed: amount must be a positive number"}
	}
	return PaymentResult{
		Status:    PaymentStatusTest,
		Amount:    amount.Round(2),
		Reference: s.newReference(),
		Last4:     last4(input.Details.CardNumber),
		Message:   "Payment processed in test mode",
	}
}

// roundHalfUp rounds ties towards positive infinity, so -2.5 becomes -2.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

func last4(card string) string {
	digits := make([]rune, 0, len(card))
	for _, r := range card {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return ""
	}
	return string(digits[len(digits)-4:])
}

var _ PricingUseCase = (*PricingService)(nil)
