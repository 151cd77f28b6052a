package franchise

import (
	"context"
	"errors"
)

// ErrNotFound is returned for operations referencing a missing
// franchise id so handlers can respond with 404.
var ErrNotFound = errors.New("franchise not found")

// Repository defines the data-access contract. Service depends ONLY on
// this interface; memory and Postgres implementations are selected by
// configuration at startup.
type Repository interface {
	Insert(ctx context.Context, f *Franchise) error
	Update(ctx context.Context, f *Franchise) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Franchise, error)
	FindByEmail(ctx context.Context, email string) (*Franchise, error)
	ListAll(ctx context.Context) ([]*Franchise, error)
	AddSales(ctx context.Context, id string, amountPaise int64) error
}
