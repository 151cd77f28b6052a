package catalog

// Category of a sellable item.
const (
	CategoryFruit     = "fruit"
	CategoryVegetable = "vegetable"
)

// Item is the produce reference entry. Prices are held in integer
// paise so repeated additions never accumulate float drift.
type Item struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	PricePaise int64  `json:"price_paise"`
	Unit       string `json:"unit"`
	Emoji      string `json:"emoji"`
	Stock      int    `json:"stock"`
	ImageURL   string `json:"image_url,omitempty"`
}
