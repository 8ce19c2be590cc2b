package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Domenick1991/jetcharter/internal/service/pricing"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const defaultJetType = "Midsize"

type PricingHandler struct {
	service pricing.PricingUseCase
}

// paymentRequest accepts the amount as either a JSON number or a string.
type paymentRequest struct {
	Amount  json.RawMessage     `json:"amount"`
	Details pricing.CardDetails `json:"details"`
}

func NewPricingHandler(service pricing.PricingUseCase) *PricingHandler {
	return &PricingHandler{service: service}
}

func (h *PricingHandler) Register(router *gin.RouterGroup) {
	router.GET("/price", h.price)
	router.GET("/carbon", h.carbon)
	router.POST("/payment", h.payment)
}

func (h *PricingHandler) price(c *gin.Context) {
	distance, ok := distanceParam(c)
	if !ok {
		return
	}
	jetType := c.DefaultQuery("jetType", defaultJetType)

	price := h.service.EstimatePrice(c.Request.Context(), distance, jetType)
	c.JSON(http.StatusOK, gin.H{"price": price.IntPart()})
}

func (h *PricingHandler) carbon(c *gin.Context) {
	distance, ok := distanceParam(c)
	if !ok {
		return
	}
	offset := h.service.CarbonOffset(c.Request.Context(), distance)
	c.JSON(http.StatusOK, gin.H{"offset": offset.IntPart()})
}

func (h *PricingHandler) payment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.service.ProcessPayment(c.Request.Context(), pricing.PaymentInput{
		Amount:  strings.Trim(string(req.Amount), `"`),
		Details: req.Details,
	})
	c.JSON(http.StatusOK, result)
}

// maxDistance bounds ?distance= so estimates stay within int64 when rounded for the response.
var maxDistance = decimal.NewFromInt(100_000)

// distanceParam reads ?distance=, defaulting to zero. It writes a 400 and reports false
// when the value is not a number or exceeds maxDistance in magnitude.
func distanceParam(c *gin.Context) (decimal.Decimal, bool) {
	raw := strings.TrimSpace(c.Query("distance"))
	if raw == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "distance must be a number"})
		return decimal.Zero, false
	}
	if d.Abs().GreaterThan(maxDistance) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "distance is out of range"})
		return decimal.Zero, false
	}
	return d, true
}
