package api

import (
	"net/http"

	"github.com/Domenick1991/jetcharter/internal/query"
	"github.com/Domenick1991/jetcharter/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type searchResponse struct {
	Success  bool                 `json:"success"`
	Count    int                  `json:"count"`
	Flights  []flights.FlightView `json:"flights"`
	Airports any                  `json:"airports,omitempty"`
	Error    string               `json:"error,omitempty"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/flights/search", h.search)
	router.GET("/flights/destinations", h.destinations)
	router.GET("/flights/empty-legs", h.emptyLegs)
}

// search accepts from/departure, to/arrival, maxPrice, category, passengers/minCapacity
// and sortBy. Without sortBy results keep catalog order.
func (h *FlightHandler) search(c *gin.Context) {
	criteria := query.ParseCriteria(c.Request.URL.Query())
	sortBy, _ := query.ParseSortKey(c.Query("sortBy"))

	result, err := h.service.Search(c.Request.Context(), criteria, sortBy)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, searchResponse{
			Error:   "Flight search failed",
			Flights: []flights.FlightView{},
		})
		return
	}

	c.JSON(http.StatusOK, searchResponse{
		Success:  true,
		Count:    len(result.Flights),
		Flights:  result.Flights,
		Airports: result.Airports,
	})
}

func (h *FlightHandler) destinations(c *gin.Context) {
	destinations, err := h.service.Destinations(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load destinations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "destinations": destinations})
}

func (h *FlightHandler) emptyLegs(c *gin.Context) {
	legs, err := h.service.EmptyLegs(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to load empty leg flights",
			"flights": []any{},
			"count":   0,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(legs), "flights": legs})
}
