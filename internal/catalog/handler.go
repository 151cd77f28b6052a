package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	items []Item
}

func NewHandler(items []Item) *Handler {
	return &Handler{items: items}
}

// List handles GET /catalog.
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.items})
}
