package billing

import (
	"errors"

	"github.com/catharsis02/usc.kiit-shopvision/internal/catalog"
)

// ErrEmptyBill is returned when a franchise tries to complete a bill
// with no lines so handlers can respond with a validation message.
var ErrEmptyBill = errors.New("bill has no items")

// Line is one scanned item on the bill. Confidence is the recognition
// confidence recorded when the item was first added.
type Line struct {
	Item       catalog.Item `json:"item"`
	Quantity   int          `json:"quantity"`
	Confidence float64      `json:"confidence"`
}

// Bill accumulates scanned items for one franchise session. Lines are
// keyed by item id (at most one line per id) and keep insertion order
// for display.
type Bill struct {
	lines []Line
}

func NewBill() *Bill {
	return &Bill{}
}

// AddItem merges by item id: an existing line gains quantity 1 and
// keeps its first-add confidence, otherwise a new line is appended
// with quantity 1.
func (b *Bill) AddItem(item catalog.Item, confidence float64) {
	for i := range b.lines {
		if b.lines[i].Item.ID == item.ID {
			b.lines[i].Quantity++
			return
		}
	}
	b.lines = append(b.lines, Line{
		Item:       item,
		Quantity:   1,
		Confidence: confidence,
	})
}

// UpdateQuantity applies delta to the line's quantity, clamped to a
// minimum of 1. Dropping a line goes through RemoveItem, never through
// a negative delta. An unknown id leaves the bill unchanged.
func (b *Bill) UpdateQuantity(itemID string, delta int) {
	for i := range b.lines {
		if b.lines[i].Item.ID == itemID {
			qty := b.lines[i].Quantity + delta
			if qty < 1 {
				qty = 1
			}
			b.lines[i].Quantity = qty
			return
		}
	}
}

// RemoveItem deletes the line if present. Removing an absent id is a
// no-op.
func (b *Bill) RemoveItem(itemID string) {
	for i := range b.lines {
		if b.lines[i].Item.ID == itemID {
			b.lines = append(b.lines[:i], b.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the bill unconditionally.
func (b *Bill) Clear() {
	b.lines = nil
}

// Lines returns a copy of the current lines in insertion order.
func (b *Bill) Lines() []Line {
	out := make([]Line, len(b.lines))
	copy(out, b.lines)
	return out
}

// TotalPaise sums price×quantity over all lines in integer paise.
func (b *Bill) TotalPaise() int64 {
	var total int64
	for _, l := range b.lines {
		total += l.Item.PricePaise * int64(l.Quantity)
	}
	return total
}

// Summary is the finalized outcome of a completed bill.
type Summary struct {
	TotalPaise int64 `json:"total_paise"`
	LineCount  int   `json:"line_count"`
}

// Complete finalizes the bill: it fails with ErrEmptyBill when there
// are no lines, otherwise it returns the total and line count and
// empties the bill. A new bill begins implicitly after completion.
func (b *Bill) Complete() (Summary, error) {
	if len(b.lines) == 0 {
		return Summary{}, ErrEmptyBill
	}
	summary := Summary{
		TotalPaise: b.TotalPaise(),
		LineCount:  len(b.lines),
	}
	b.lines = nil
	return summary, nil
}
