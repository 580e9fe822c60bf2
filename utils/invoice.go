package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/XidanAbds29/huehouse-api/models"
)

const (
	shopName    = "HueHouse"
	shopAddress = "Dhaka, Bangladesh"
	shopPhone   = "+880 1700 000000"
	shopEmail   = "hello@huehouse.com"
)

type InvoiceLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// Invoice carries everything the client needs to render the downloadable
// invoice document for an order.
type Invoice struct {
	ShopName    string        `json:"shopName"`
	ShopAddress string        `json:"shopAddress"`
	ShopPhone   string        `json:"shopPhone"`
	ShopEmail   string        `json:"shopEmail"`
	Number      string        `json:"number"`
	Date        string        `json:"date"`
	Status      string        `json:"status"`
	BillToName  string        `json:"billToName"`
	BillToPhone string        `json:"billToPhone"`
	BillToAddr  string        `json:"billToAddress"`
	Lines       []InvoiceLine `json:"lines"`
	Total       int           `json:"total"`
	FooterNote  string        `json:"footerNote"`
}

func BuildInvoice(order *models.Order) (*Invoice, error) {
	var items []models.OrderItem
	if len(order.Items) > 0 {
		if err := json.Unmarshal(order.Items, &items); err != nil {
			return nil, fmt.Errorf("invalid items snapshot on order %s: %w", order.OrderNumber, err)
		}
	}

	lines := make([]InvoiceLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, InvoiceLine{Name: item.Name, Quantity: 1, Price: item.Price})
	}

	return &Invoice{
		ShopName:    shopName,
		ShopAddress: shopAddress,
		ShopPhone:   shopPhone,
		ShopEmail:   shopEmail,
		Number:      order.ShortNumberUpper(),
		Date:        order.CreatedAt.Format("02/01/2006"),
		Status:      strings.ToUpper(order.Status),
		BillToName:  order.CustomerName,
		BillToPhone: order.Phone,
		BillToAddr:  order.Address,
		Lines:       lines,
		Total:       order.TotalAmount,
		FooterNote:  "Thank you for shopping with HueHouse.",
	}, nil
}
