package billing

import "sync"

// Registry holds the active bill per franchise. Each franchise works
// its bill one action at a time, but gin serves requests on separate
// goroutines, so access goes through one mutex.
type Registry struct {
	mu    sync.Mutex
	bills map[string]*Bill
}

func NewRegistry() *Registry {
	return &Registry{
		bills: make(map[string]*Bill),
	}
}

func (r *Registry) bill(franchiseID string) *Bill {
	b, ok := r.bills[franchiseID]
	if !ok {
		b = NewBill()
		r.bills[franchiseID] = b
	}
	return b
}

// With runs fn against the franchise's active bill while holding the
// registry lock. The bill must not escape fn.
func (r *Registry) With(franchiseID string, fn func(*Bill)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.bill(franchiseID))
}

// Snapshot returns the current lines and total without exposing the
// live bill.
func (r *Registry) Snapshot(franchiseID string) ([]Line, int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.bill(franchiseID)
	return b.Lines(), b.TotalPaise()
}

// Complete finalizes the franchise's active bill.
func (r *Registry) Complete(franchiseID string) (Summary, []Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.bill(franchiseID)
	lines := b.Lines()
	summary, err := b.Complete()
	if err != nil {
		return Summary{}, nil, err
	}
	return summary, lines, nil
}

// Restore puts lines back on the franchise's active bill after a
// completion that could not be persisted, so retrying the completion
// sees the same bill. Lines scanned in the meantime stay, after the
// restored ones.
func (r *Registry) Restore(franchiseID string, lines []Line) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.bill(franchiseID)
	b.lines = append(append([]Line{}, lines...), b.lines...)
}

// Drop tears down the franchise's bill entirely, used at logout.
func (r *Registry) Drop(franchiseID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bills, franchiseID)
}
