package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// FranchiseStats handles GET /dashboard/stats.
func (h *Handler) FranchiseStats(c *gin.Context) {
	stats, err := h.service.ForFranchise(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AdminStats handles GET /admin/dashboard/stats.
func (h *Handler) AdminStats(c *gin.Context) {
	stats, err := h.service.ForAdmin(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
