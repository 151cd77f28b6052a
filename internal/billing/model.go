package billing

import "time"

// RecordLine is the persisted form of one bill line. The item data is
// denormalized so synthesized (off-catalog) items survive in history.
type RecordLine struct {
	ItemID         string `json:"item_id"`
	Name           string `json:"name"`
	Emoji          string `json:"emoji"`
	Unit           string `json:"unit"`
	UnitPricePaise int64  `json:"unit_price_paise"`
	Quantity       int    `json:"quantity"`
}

// Record is a completed bill as stored by the repository.
type Record struct {
	ID          string       `json:"id"`
	FranchiseID string       `json:"franchise_id"`
	Lines       []RecordLine `json:"lines"`
	TotalPaise  int64        `json:"total_paise"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
}

const StatusCompleted = "completed"
