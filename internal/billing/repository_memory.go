package billing

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu      sync.Mutex
	records []*Record
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Insert(_ context.Context, record *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	stored := *record
	stored.Lines = append([]RecordLine(nil), record.Lines...)
	r.records = append(r.records, &stored)
	return nil
}

func (r *InMemoryRepository) ListByFranchise(_ context.Context, franchiseID string) ([]*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Record
	for _, rec := range r.records {
		if rec.FranchiseID == franchiseID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListAll(_ context.Context) ([]*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Record, 0, len(r.records))
	for _, rec := range r.records {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}
