package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusProcessed = "processed"
	OrderStatusDeleted   = "deleted"

	CourierStatusPending = "pending"
	CourierStatusBooked  = "booked"
	CourierStatusFailed  = "failed"
)

type Order struct {
	gorm.Model
	OrderNumber   string         `json:"orderNumber" gorm:"size:36;uniqueIndex"`
	UserID        *uint          `json:"userId"`
	CustomerName  string         `json:"customerName"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	TotalAmount   int            `json:"totalAmount"`
	Status        string         `json:"status"`
	Items         datatypes.JSON `json:"items"`
	CourierStatus string         `json:"courierStatus"`
	TrackingId    string         `json:"trackingId"`
}

// OrderItem is one line of the items snapshot stored on the order. Prices are
// frozen at submission time and never re-read from the product table.
type OrderItem struct {
	ProductID uint   `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderNumber == "" {
		o.OrderNumber = uuid.NewString()
	}
	return nil
}

// ShortNumber is the human-facing order reference used in notifications and
// on the invoice.
func (o *Order) ShortNumber() string {
	if len(o.OrderNumber) <= 8 {
		return o.OrderNumber
	}
	return o.OrderNumber[:8]
}

func (o *Order) ShortNumberUpper() string {
	return strings.ToUpper(o.ShortNumber())
}
