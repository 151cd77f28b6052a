package franchise

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu         sync.Mutex
	franchises map[string]*Franchise
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		franchises: make(map[string]*Franchise),
	}
}

func (r *InMemoryRepository) Insert(_ context.Context, f *Franchise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}

	cp := *f
	r.franchises[f.ID] = &cp
	return nil
}

func (r *InMemoryRepository) Update(_ context.Context, f *Franchise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.franchises[f.ID]; !ok {
		return ErrNotFound
	}
	cp := *f
	r.franchises[f.ID] = &cp
	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.franchises[id]; !ok {
		return ErrNotFound
	}
	delete(r.franchises, id)
	return nil
}

func (r *InMemoryRepository) FindByID(_ context.Context, id string) (*Franchise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.franchises[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *InMemoryRepository) FindByEmail(_ context.Context, email string) (*Franchise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.franchises {
		if f.Email == email {
			cp := *f
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) ListAll(_ context.Context) ([]*Franchise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Franchise, 0, len(r.franchises))
	for _, f := range r.franchises {
		cp := *f
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) AddSales(_ context.Context, id string, amountPaise int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.franchises[id]
	if !ok {
		return ErrNotFound
	}
	f.SalesPaise += amountPaise
	return nil
}
