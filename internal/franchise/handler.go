package franchise

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	Name       string `json:"name"`
	ShopNumber string `json:"shop_number"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// Create handles POST /admin/franchises.
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	f, err := h.service.Create(
		c.Request.Context(),
		req.Name, req.ShopNumber, req.Email, req.Password,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, f)
}

// List handles GET /admin/franchises.
func (h *Handler) List(c *gin.Context) {
	franchises, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"franchises": franchises})
}

// Get handles GET /admin/franchises/:id.
func (h *Handler) Get(c *gin.Context) {
	f, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "franchise not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, f)
}

type updateRequest struct {
	Name       string `json:"name"`
	ShopNumber string `json:"shop_number"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// Update handles PATCH /admin/franchises/:id.
func (h *Handler) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	f, err := h.service.Update(c.Request.Context(), c.Param("id"), UpdateInput{
		Name:       req.Name,
		ShopNumber: req.ShopNumber,
		Email:      req.Email,
		Password:   req.Password,
	})
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "franchise not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, f)
}

// Delete handles DELETE /admin/franchises/:id.
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "franchise not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "franchise deleted"})
}
