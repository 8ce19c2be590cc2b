package api

import (
	"net/http"

	"github.com/Domenick1991/jetcharter/internal/domain"
	"github.com/gin-gonic/gin"
)

type InfoSource interface {
	Member() domain.Member
	Dashboard() domain.DashboardMetrics
}

// InfoHandler serves the membership and dashboard pages.
type InfoHandler struct {
	source InfoSource
}

func NewInfoHandler(source InfoSource) *InfoHandler {
	return &InfoHandler{source: source}
}

func (h *InfoHandler) Register(router *gin.RouterGroup) {
	router.GET("/member", h.member)
	router.GET("/dashboard", h.dashboard)
}

func (h *InfoHandler) member(c *gin.Context) {
	c.JSON(http.StatusOK, h.source.Member())
}

func (h *InfoHandler) dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"metrics": h.source.Dashboard()})
}
