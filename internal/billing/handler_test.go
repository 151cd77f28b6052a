package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/catharsis02/usc.kiit-shopvision/internal/catalog"
)

type fakeSales struct {
	total map[string]int64
}

func (f *fakeSales) RecordSale(_ context.Context, franchiseID string, amountPaise int64) error {
	if f.total == nil {
		f.total = make(map[string]int64)
	}
	f.total[franchiseID] += amountPaise
	return nil
}

func setupBillRouter(t *testing.T) (*gin.Engine, *fakeSales, *InMemoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sales := &fakeSales{}
	repo := NewInMemoryRepository()
	handler := NewHandler(NewRegistry(), repo, sales, catalog.Default())

	r := gin.New()
	// Stand-in for the auth middleware.
	r.Use(func(c *gin.Context) {
		c.Set("userID", "f-1")
	})

	r.GET("/bill", handler.Get)
	r.POST("/bill/items", handler.AddItem)
	r.PATCH("/bill/items/:itemID", handler.UpdateQuantity)
	r.DELETE("/bill/items/:itemID", handler.RemoveItem)
	r.DELETE("/bill", handler.Clear)
	r.POST("/bill/complete", handler.Complete)
	r.GET("/bill/history", handler.History)
	r.POST("/logout", handler.Logout)

	return r, sales, repo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode failed: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func addCatalogItem(t *testing.T, r *gin.Engine, id string, confidence float64) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, r, http.MethodPost, "/bill/items", map[string]any{
		"item":       map[string]any{"id": id, "name": "whatever"},
		"confidence": confidence,
	})
}

func TestAddItemUsesCatalogPrice(t *testing.T) {
	r, _, _ := setupBillRouter(t)

	// The client claims price 1 paise; the server must re-resolve.
	w := doJSON(t, r, http.MethodPost, "/bill/items", map[string]any{
		"item":       map[string]any{"id": "1", "name": "Apple", "price_paise": 1},
		"confidence": 0.94,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		TotalPaise int64 `json:"total_paise"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.TotalPaise != 299 {
		t.Fatalf("expected catalog price 299, got %d", resp.TotalPaise)
	}
}

func TestAddSynthesizedItemRequiresPrice(t *testing.T) {
	r, _, _ := setupBillRouter(t)

	w := doJSON(t, r, http.MethodPost, "/bill/items", map[string]any{
		"item":       map[string]any{"id": "synth-1", "name": "Dragon Fruit"},
		"confidence": 0.7,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for synthesized item without price, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/bill/items", map[string]any{
		"item":       map[string]any{"id": "synth-1", "name": "Dragon Fruit", "price_paise": 8000},
		"confidence": 0.7,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBillFlowEndToEnd(t *testing.T) {
	r, sales, repo := setupBillRouter(t)

	// Scan result {fruit: "Red Apple"} resolved to catalog item 1.
	addCatalogItem(t, r, "1", 0.942)
	addCatalogItem(t, r, "1", 0.5) // merge, qty 2
	addCatalogItem(t, r, "2", 0.8)
	doJSON(t, r, http.MethodPatch, "/bill/items/2", map[string]any{"delta": 2}) // qty 3

	w := doJSON(t, r, http.MethodGet, "/bill", nil)
	var bill struct {
		Lines      []Line `json:"lines"`
		TotalPaise int64  `json:"total_paise"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &bill); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(bill.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(bill.Lines))
	}
	// 2*299 + 3*149 = 1045
	if bill.TotalPaise != 1045 {
		t.Fatalf("expected total 1045, got %d", bill.TotalPaise)
	}

	w = doJSON(t, r, http.MethodPost, "/bill/complete", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var completed struct {
		BillID     string `json:"bill_id"`
		TotalPaise int64  `json:"total_paise"`
		LineCount  int    `json:"line_count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &completed); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if completed.TotalPaise != 1045 || completed.LineCount != 2 {
		t.Fatalf("unexpected completion: %+v", completed)
	}
	if completed.BillID == "" {
		t.Fatal("completed bill has no id")
	}

	if sales.total["f-1"] != 1045 {
		t.Fatalf("sales not rolled up: %d", sales.total["f-1"])
	}

	records, err := repo.ListByFranchise(context.Background(), "f-1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(records) != 1 || records[0].TotalPaise != 1045 {
		t.Fatalf("unexpected persisted records: %+v", records)
	}

	// The active bill begins fresh after completion.
	w = doJSON(t, r, http.MethodPost, "/bill/complete", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on empty bill, got %d", w.Code)
	}
}

func TestRemoveAndClear(t *testing.T) {
	r, _, _ := setupBillRouter(t)

	addCatalogItem(t, r, "1", 0.9)
	addCatalogItem(t, r, "2", 0.9)

	w := doJSON(t, r, http.MethodDelete, "/bill/items/1", nil)
	var bill struct {
		Lines []Line `json:"lines"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &bill); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(bill.Lines) != 1 || bill.Lines[0].Item.ID != "2" {
		t.Fatalf("unexpected lines after remove: %+v", bill.Lines)
	}

	// Removing an absent id is a no-op.
	w = doJSON(t, r, http.MethodDelete, "/bill/items/ghost", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for absent id, got %d", w.Code)
	}

	if w := doJSON(t, r, http.MethodDelete, "/bill", nil); w.Code != http.StatusOK {
		t.Fatalf("clear failed: %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/bill", nil)
	var after struct {
		Lines      []Line `json:"lines"`
		TotalPaise int64  `json:"total_paise"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &after); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(after.Lines) != 0 || after.TotalPaise != 0 {
		t.Fatalf("bill not cleared: %+v", after)
	}
}

type failingRepo struct {
	*InMemoryRepository
	fail bool
}

func (f *failingRepo) Insert(ctx context.Context, record *Record) error {
	if f.fail {
		return errors.New("connection refused")
	}
	return f.InMemoryRepository.Insert(ctx, record)
}

func TestCompleteKeepsBillWhenSaveFails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sales := &fakeSales{}
	repo := &failingRepo{InMemoryRepository: NewInMemoryRepository(), fail: true}
	handler := NewHandler(NewRegistry(), repo, sales, catalog.Default())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", "f-1")
	})
	r.GET("/bill", handler.Get)
	r.POST("/bill/items", handler.AddItem)
	r.POST("/bill/complete", handler.Complete)

	addCatalogItem(t, r, "1", 0.9)

	w := doJSON(t, r, http.MethodPost, "/bill/complete", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when save fails, got %d", w.Code)
	}
	if sales.total["f-1"] != 0 {
		t.Fatalf("sales recorded for an unsaved bill: %d", sales.total["f-1"])
	}

	// The bill survives the failure so completion can be retried.
	w = doJSON(t, r, http.MethodGet, "/bill", nil)
	var bill struct {
		Lines      []Line `json:"lines"`
		TotalPaise int64  `json:"total_paise"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &bill); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(bill.Lines) != 1 || bill.TotalPaise != 299 {
		t.Fatalf("bill lost after failed save: %+v", bill)
	}

	repo.fail = false
	w = doJSON(t, r, http.MethodPost, "/bill/complete", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("retry failed: %d: %s", w.Code, w.Body.String())
	}
	if sales.total["f-1"] != 299 {
		t.Fatalf("sales not rolled up on retry: %d", sales.total["f-1"])
	}
	records, err := repo.ListByFranchise(context.Background(), "f-1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected exactly one persisted bill, got %d", len(records))
	}
}

func TestLogoutDropsActiveBill(t *testing.T) {
	r, _, _ := setupBillRouter(t)

	addCatalogItem(t, r, "1", 0.9)
	if w := doJSON(t, r, http.MethodPost, "/logout", nil); w.Code != http.StatusOK {
		t.Fatalf("logout failed: %d", w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/bill", nil)
	var bill struct {
		Lines []Line `json:"lines"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &bill); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(bill.Lines) != 0 {
		t.Fatal("bill survived logout")
	}
}
