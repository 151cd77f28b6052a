package billing

import "context"

// Repository persists completed bills. Handlers and the dashboard
// depend only on this interface.
type Repository interface {
	Insert(ctx context.Context, record *Record) error
	ListByFranchise(ctx context.Context, franchiseID string) ([]*Record, error)
	ListAll(ctx context.Context) ([]*Record, error)
}
