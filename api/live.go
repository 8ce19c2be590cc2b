package api

import (
	"net/http"

	"github.com/Domenick1991/jetcharter/internal/service/live"
	"github.com/gin-gonic/gin"
)

type LiveHandler struct {
	service live.LiveUseCase
}

func NewLiveHandler(service live.LiveUseCase) *LiveHandler {
	return &LiveHandler{service: service}
}

func (h *LiveHandler) Register(router *gin.RouterGroup) {
	router.GET("/track", h.track)
	router.GET("/weather", h.weather)
}

// Both endpoints always answer 200; upstream trouble shows up in the source field.
func (h *LiveHandler) track(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Tracking(c.Request.Context()))
}

func (h *LiveHandler) weather(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Weather(c.Request.Context(), live.WeatherQuery{
		Airport: c.Query("airport"),
		Lat:     c.Query("lat"),
		Lon:     c.Query("lon"),
	}))
}
