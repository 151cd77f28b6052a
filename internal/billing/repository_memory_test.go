package billing

import (
	"context"
	"testing"
)

func TestInMemoryRepositoryInsertAndList(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	rec := &Record{
		FranchiseID: "f1",
		Lines: []RecordLine{
			{ItemID: "1", Name: "Apple", UnitPricePaise: 299, Quantity: 2},
		},
		TotalPaise: 598,
		Status:     StatusCompleted,
	}
	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("insert did not assign an id")
	}
	if rec.CreatedAt.IsZero() {
		t.Fatal("insert did not stamp created_at")
	}

	other := &Record{FranchiseID: "f2", TotalPaise: 100, Status: StatusCompleted}
	if err := repo.Insert(ctx, other); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	mine, err := repo.ListByFranchise(ctx, "f1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 1 || mine[0].TotalPaise != 598 {
		t.Fatalf("unexpected franchise records: %+v", mine)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
}

func TestInMemoryRepositoryReturnsCopies(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	if err := repo.Insert(ctx, &Record{FranchiseID: "f1", TotalPaise: 100, Status: StatusCompleted}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	first, _ := repo.ListByFranchise(ctx, "f1")
	first[0].TotalPaise = 999999

	second, _ := repo.ListByFranchise(ctx, "f1")
	if second[0].TotalPaise != 100 {
		t.Fatal("mutation of a listed record leaked into the store")
	}
}
