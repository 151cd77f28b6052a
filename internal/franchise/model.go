package franchise

import "time"

// Franchise is one registered shop. PasswordHash is a bcrypt hash; the
// plaintext password exists only in-flight during create/update.
type Franchise struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ShopNumber   string    `json:"shop_number"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	SalesPaise   int64     `json:"sales_paise"`
	CreatedAt    time.Time `json:"created_at"`
}
