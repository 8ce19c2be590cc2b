package api

import (
	"net/http"

	"github.com/Domenick1991/jetcharter/internal/query"
	"github.com/Domenick1991/jetcharter/internal/service/deals"
	"github.com/gin-gonic/gin"
)

type DealHandler struct {
	service deals.DealUseCase
}

func NewDealHandler(service deals.DealUseCase) *DealHandler {
	return &DealHandler{service: service}
}

func (h *DealHandler) Register(router *gin.RouterGroup) {
	router.GET("/deals", h.list)
}

// list returns the deals as a bare array. Deals are cheapest-first unless sortBy says
// otherwise; an unrecognised sortBy keeps catalog order.
func (h *DealHandler) list(c *gin.Context) {
	criteria := query.ParseCriteria(c.Request.URL.Query())

	sortBy := query.SortPriceAsc
	if raw, ok := c.GetQuery("sortBy"); ok && raw != "" {
		sortBy, _ = query.ParseSortKey(raw)
	}

	views, err := h.service.List(c.Request.Context(), criteria, sortBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
