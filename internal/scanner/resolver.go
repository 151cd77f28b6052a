package scanner

import (
	"strings"

	"github.com/google/uuid"

	"github.com/catharsis02/usc.kiit-shopvision/internal/catalog"
	"github.com/catharsis02/usc.kiit-shopvision/internal/classifier"
)

// Defaults applied to produce the classifier recognizes but the
// catalog does not carry.
const (
	fallbackPricePaise = 10000 // ₹100
	fallbackUnit       = "kg"
	fallbackEmoji      = "🍎"
)

// Candidate is a recognized item ready to be confirmed onto a bill.
// Synthesized is true when the item was built from the classifier
// label instead of found in the catalog; such items are never added to
// the catalog itself.
type Candidate struct {
	Item        catalog.Item `json:"item"`
	Confidence  float64      `json:"confidence"`
	Synthesized bool         `json:"synthesized"`
}

// Resolve maps a classifier result onto the catalog. The label matches
// an entry when either string contains the other, case-folded; the
// first match in catalog order wins. With no match a transient item is
// synthesized from the result, taking the classifier's price/unit
// hints when present and falling back to defaults. The catalog is
// never mutated.
func Resolve(result *classifier.Result, imageURL string, items []catalog.Item) Candidate {
	label := strings.ToLower(result.Label)

	for _, it := range items {
		name := strings.ToLower(it.Name)
		if strings.Contains(label, name) || strings.Contains(name, label) {
			return Candidate{Item: it, Confidence: result.Confidence}
		}
	}

	item := catalog.Item{
		ID:         uuid.New().String(),
		Name:       result.Label,
		Category:   catalog.CategoryFruit,
		PricePaise: fallbackPricePaise,
		Unit:       fallbackUnit,
		Emoji:      fallbackEmoji,
		ImageURL:   imageURL,
	}
	if result.PricePaise > 0 {
		item.PricePaise = result.PricePaise
	}
	if result.Unit != "" {
		item.Unit = result.Unit
	}

	return Candidate{Item: item, Confidence: result.Confidence, Synthesized: true}
}
