package billing

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/catharsis02/usc.kiit-shopvision/internal/catalog"
)

// SaleRecorder rolls a completed bill total into the franchise record.
type SaleRecorder interface {
	RecordSale(ctx context.Context, franchiseID string, amountPaise int64) error
}

type Handler struct {
	registry *Registry
	repo     Repository
	sales    SaleRecorder
	catalog  []catalog.Item
}

func NewHandler(registry *Registry, repo Repository, sales SaleRecorder, items []catalog.Item) *Handler {
	return &Handler{
		registry: registry,
		repo:     repo,
		sales:    sales,
		catalog:  items,
	}
}

// Get handles GET /bill.
func (h *Handler) Get(c *gin.Context) {
	franchiseID := c.GetString("userID")
	lines, total := h.registry.Snapshot(franchiseID)

	c.JSON(http.StatusOK, gin.H{
		"lines":       lines,
		"total_paise": total,
	})
}

type addItemRequest struct {
	Item       catalog.Item `json:"item"`
	Confidence float64      `json:"confidence"`
}

// AddItem handles POST /bill/items, confirming a scanned candidate.
// Catalog ids are re-resolved server-side so a client can never
// override a catalog price; synthesized items are taken as sent.
func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Item.ID == "" || req.Item.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item id and name are required"})
		return
	}

	item := req.Item
	if known, ok := catalog.FindByID(h.catalog, item.ID); ok {
		item = known
	} else if item.PricePaise <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item price must be positive"})
		return
	}

	franchiseID := c.GetString("userID")
	h.registry.With(franchiseID, func(b *Bill) {
		b.AddItem(item, req.Confidence)
	})

	lines, total := h.registry.Snapshot(franchiseID)
	c.JSON(http.StatusOK, gin.H{
		"lines":       lines,
		"total_paise": total,
	})
}

type updateQuantityRequest struct {
	Delta int `json:"delta"`
}

// UpdateQuantity handles PATCH /bill/items/:itemID. Quantity is
// clamped at 1; an unknown id is a silent no-op.
func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	franchiseID := c.GetString("userID")
	h.registry.With(franchiseID, func(b *Bill) {
		b.UpdateQuantity(c.Param("itemID"), req.Delta)
	})

	lines, total := h.registry.Snapshot(franchiseID)
	c.JSON(http.StatusOK, gin.H{
		"lines":       lines,
		"total_paise": total,
	})
}

// RemoveItem handles DELETE /bill/items/:itemID.
func (h *Handler) RemoveItem(c *gin.Context) {
	franchiseID := c.GetString("userID")
	h.registry.With(franchiseID, func(b *Bill) {
		b.RemoveItem(c.Param("itemID"))
	})

	lines, total := h.registry.Snapshot(franchiseID)
	c.JSON(http.StatusOK, gin.H{
		"lines":       lines,
		"total_paise": total,
	})
}

// Clear handles DELETE /bill.
func (h *Handler) Clear(c *gin.Context) {
	franchiseID := c.GetString("userID")
	h.registry.With(franchiseID, func(b *Bill) {
		b.Clear()
	})
	c.JSON(http.StatusOK, gin.H{"message": "bill cleared"})
}

// Complete handles POST /bill/complete: finalize the active bill,
// persist it and roll the total into franchise sales.
func (h *Handler) Complete(c *gin.Context) {
	franchiseID := c.GetString("userID")

	summary, lines, err := h.registry.Complete(franchiseID)
	if errors.Is(err, ErrEmptyBill) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	record := &Record{
		FranchiseID: franchiseID,
		TotalPaise:  summary.TotalPaise,
		Status:      StatusCompleted,
	}
	for _, l := range lines {
		record.Lines = append(record.Lines, RecordLine{
			ItemID:         l.Item.ID,
			Name:           l.Item.Name,
			Emoji:          l.Item.Emoji,
			Unit:           l.Item.Unit,
			UnitPricePaise: l.Item.PricePaise,
			Quantity:       l.Quantity,
		})
	}

	if err := h.repo.Insert(c.Request.Context(), record); err != nil {
		// Nothing was persisted: put the lines back so the franchise
		// can retry the completion instead of losing the bill.
		h.registry.Restore(franchiseID, lines)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save bill: " + err.Error()})
		return
	}

	if err := h.sales.RecordSale(c.Request.Context(), franchiseID, summary.TotalPaise); err != nil {
		// The bill is saved; sales roll-up is best effort here.
		c.JSON(http.StatusOK, gin.H{
			"bill_id":     record.ID,
			"total_paise": summary.TotalPaise,
			"line_count":  summary.LineCount,
			"warning":     "sales total not updated: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bill_id":     record.ID,
		"total_paise": summary.TotalPaise,
		"line_count":  summary.LineCount,
	})
}

// Logout handles POST /logout: the session's bill is torn down, not
// carried over to the next login.
func (h *Handler) Logout(c *gin.Context) {
	h.registry.Drop(c.GetString("userID"))
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// History handles GET /bill/history.
func (h *Handler) History(c *gin.Context) {
	franchiseID := c.GetString("userID")

	records, err := h.repo.ListByFranchise(c.Request.Context(), franchiseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bills": records})
}
