package scanner

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/catharsis02/usc.kiit-shopvision/internal/classifier"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Scan handles POST /scan. Multipart field "image" holds the photo;
// the classifier call is synchronous and never retried, so a failure
// simply asks the user to scan again.
func (h *Handler) Scan(c *gin.Context) {
	franchiseID := c.GetString("userID")

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type, use jpg/png/webp"})
		return
	}

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	result, err := h.service.Scan(c.Request.Context(), franchiseID, image, header.Filename)
	if err != nil {
		var cerr *classifier.ClassifierError
		if errors.As(err, &cerr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": cerr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
