package dashboard

import (
	"context"
	"testing"

	"github.com/catharsis02/usc.kiit-shopvision/internal/billing"
	"github.com/catharsis02/usc.kiit-shopvision/internal/catalog"
	"github.com/catharsis02/usc.kiit-shopvision/internal/franchise"
)

func seedBill(t *testing.T, repo billing.Repository, franchiseID string, lines []billing.RecordLine) {
	t.Helper()

	var total int64
	for _, l := range lines {
		total += l.UnitPricePaise * int64(l.Quantity)
	}
	err := repo.Insert(context.Background(), &billing.Record{
		FranchiseID: franchiseID,
		Lines:       lines,
		TotalPaise:  total,
		Status:      billing.StatusCompleted,
	})
	if err != nil {
		t.Fatalf("seed bill failed: %v", err)
	}
}

func TestForFranchise(t *testing.T) {
	bills := billing.NewInMemoryRepository()
	franchises := franchise.NewInMemoryRepository()
	service := NewService(bills, franchises, catalog.Default())
	ctx := context.Background()

	seedBill(t, bills, "f-1", []billing.RecordLine{
		{ItemID: "1", Name: "Apple", UnitPricePaise: 299, Quantity: 2},  // fruit, 598
		{ItemID: "5", Name: "Tomato", UnitPricePaise: 249, Quantity: 1}, // vegetable, 249
	})
	seedBill(t, bills, "f-1", []billing.RecordLine{
		{ItemID: "synth-1", Name: "Dragon Fruit", UnitPricePaise: 8000, Quantity: 1}, // other
	})
	seedBill(t, bills, "f-2", []billing.RecordLine{
		{ItemID: "2", Name: "Banana", UnitPricePaise: 149, Quantity: 1},
	})

	stats, err := service.ForFranchise(ctx, "f-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.BillCount != 2 {
		t.Fatalf("expected 2 bills, got %d", stats.BillCount)
	}
	if stats.RevenuePaise != 598+249+8000 {
		t.Fatalf("unexpected revenue %d", stats.RevenuePaise)
	}
	if stats.AverageBill != stats.RevenuePaise/2 {
		t.Fatalf("unexpected average %d", stats.AverageBill)
	}
	if stats.CategoryRevenue[catalog.CategoryFruit] != 598 {
		t.Fatalf("unexpected fruit revenue %d", stats.CategoryRevenue[catalog.CategoryFruit])
	}
	if stats.CategoryRevenue[catalog.CategoryVegetable] != 249 {
		t.Fatalf("unexpected vegetable revenue %d", stats.CategoryRevenue[catalog.CategoryVegetable])
	}
	if stats.CategoryRevenue["other"] != 8000 {
		t.Fatalf("unexpected off-catalog revenue %d", stats.CategoryRevenue["other"])
	}
	if len(stats.StockLevels) != len(catalog.Default()) {
		t.Fatalf("expected stock levels for the whole catalog, got %d", len(stats.StockLevels))
	}
}

func TestForFranchiseEmpty(t *testing.T) {
	service := NewService(billing.NewInMemoryRepository(), franchise.NewInMemoryRepository(), catalog.Default())

	stats, err := service.ForFranchise(context.Background(), "f-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.BillCount != 0 || stats.RevenuePaise != 0 || stats.AverageBill != 0 {
		t.Fatalf("expected zeroed stats, got %+v", stats)
	}
}

func TestForAdmin(t *testing.T) {
	bills := billing.NewInMemoryRepository()
	franchises := franchise.NewInMemoryRepository()
	service := NewService(bills, franchises, catalog.Default())
	ctx := context.Background()

	for _, f := range []*franchise.Franchise{
		{Name: "One", ShopNumber: "S-1", Email: "one@example.com", SalesPaise: 1000},
		{Name: "Two", ShopNumber: "S-2", Email: "two@example.com", SalesPaise: 2500},
	} {
		if err := franchises.Insert(ctx, f); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
	seedBill(t, bills, "f-1", []billing.RecordLine{
		{ItemID: "1", UnitPricePaise: 299, Quantity: 1},
	})

	stats, err := service.ForAdmin(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.FranchiseCount != 2 {
		t.Fatalf("expected 2 franchises, got %d", stats.FranchiseCount)
	}
	if stats.TotalSalesPaise != 3500 {
		t.Fatalf("expected total sales 3500, got %d", stats.TotalSalesPaise)
	}
	if stats.BillCount != 1 {
		t.Fatalf("expected 1 bill, got %d", stats.BillCount)
	}
}
