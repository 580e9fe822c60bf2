package models

import "time"

// Customer is the checkout profile kept per authenticated user. Every
// completed checkout overwrites the whole record, last write wins.
type Customer struct {
	UserID    uint   `json:"userId" gorm:"primaryKey"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	UpdatedAt time.Time
}
