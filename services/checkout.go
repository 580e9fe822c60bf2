package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"

	"github.com/XidanAbds29/huehouse-api/models"
	"github.com/XidanAbds29/huehouse-api/utils"
)

var ErrEmptyCart = errors.New("cart is empty")

type OrderStore interface {
	Create(order *models.Order) error
	UpdateCourier(orderID uint, status, trackingID string) error
}

type ProfileStore interface {
	Upsert(profile models.Customer) error
}

type CourierBooker interface {
	CreateShipment(req ShipmentRequest) (string, error)
}

type OrderNotifier interface {
	NotifyNewOrder(n OrderNotification) error
}

type PurchaseTracker interface {
	TrackPurchase(amount int, currency string) error
}

// OrderNotification is the operator-facing summary of a placed order. The
// payment references are captured from the form but live only here, they are
// never persisted to the order.
type OrderNotification struct {
	OrderID      string
	CustomerName string
	Phone        string
	Address      string
	TotalAmount  int
	Items        []models.OrderItem
	BkashNumber  string
	TrxID        string
}

type CheckoutInput struct {
	Name        string
	Phone       string
	Address     string
	BkashNumber string
	TrxID       string
	Items       []models.CartItem
	UserID      *uint
}

type CheckoutResult struct {
	Order       *models.Order
	WhatsAppURL string
}

// CheckoutService runs the order-placement sequence: settle, persist the
// order, upsert the profile, book the courier, notify the operator and emit
// the purchase event. Only the order insert can fail the submission, every
// later step degrades independently.
type CheckoutService struct {
	orders         OrderStore
	profiles       ProfileStore
	courier        CourierBooker
	notifier       OrderNotifier
	tracker        PurchaseTracker
	settleDelay    time.Duration
	whatsAppNumber string
}

func NewCheckoutService(
	orders OrderStore,
	profiles ProfileStore,
	courier CourierBooker,
	notifier OrderNotifier,
	tracker PurchaseTracker,
	settleDelay time.Duration,
	whatsAppNumber string,
) *CheckoutService {
	return &CheckoutService{
		orders:         orders,
		profiles:       profiles,
		courier:        courier,
		notifier:       notifier,
		tracker:        tracker,
		settleDelay:    settleDelay,
		whatsAppNumber: whatsAppNumber,
	}
}

func (s *CheckoutService) PlaceOrder(input CheckoutInput) (*CheckoutResult, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// Placeholder for real payment confirmation.
	time.Sleep(s.settleDelay)

	total := 0
	snapshot := make([]models.OrderItem, 0, len(input.Items))
	itemNames := make([]string, 0, len(input.Items))
	for _, item := range input.Items {
		total += item.Price
		snapshot = append(snapshot, models.OrderItem{ProductID: item.ProductID, Name: item.Name, Price: item.Price})
		itemNames = append(itemNames, item.Name)
	}

	itemsJSON, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("marshal items snapshot: %w", err)
	}

	order := &models.Order{
		UserID:        input.UserID,
		CustomerName:  input.Name,
		Phone:         input.Phone,
		Address:       input.Address,
		TotalAmount:   total,
		Status:        models.OrderStatusPending,
		Items:         datatypes.JSON(itemsJSON),
		CourierStatus: models.CourierStatusPending,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if input.UserID != nil {
		profile := models.Customer{
			UserID:  *input.UserID,
			Name:    input.Name,
			Phone:   input.Phone,
			Address: input.Address,
		}
		if err := s.profiles.Upsert(profile); err != nil {
			log.Println("Customer profile upsert failed:", err)
		}
	}

	s.SyncCourier(order)

	go func() {
		notification := OrderNotification{
			OrderID:      order.OrderNumber,
			CustomerName: input.Name,
			Phone:        input.Phone,
			Address:      input.Address,
			TotalAmount:  total,
			Items:        snapshot,
			BkashNumber:  input.BkashNumber,
			TrxID:        input.TrxID,
		}
		if err := s.notifier.NotifyNewOrder(notification); err != nil {
			log.Println("Order notification failed:", err)
		}
	}()

	if s.tracker != nil {
		if err := s.tracker.TrackPurchase(total, "BDT"); err != nil {
			log.Println("Purchase tracking failed:", err)
		}
	}

	waURL := utils.WhatsAppOrderLink(
		s.whatsAppNumber,
		order.ShortNumber(),
		input.Name,
		input.Phone,
		input.Address,
		total,
		itemNames,
	)

	return &CheckoutResult{Order: order, WhatsAppURL: waURL}, nil
}

// SyncCourier books the shipment for an order and records the outcome on the
// courier status field. The order never stays pending after a sync attempt.
// The booking error is returned for callers that surface it (the back
// office); the checkout flow ignores it.
func (s *CheckoutService) SyncCourier(order *models.Order) error {
	trackingID, err := s.courier.CreateShipment(ShipmentRequest{
		Invoice:          order.OrderNumber,
		RecipientName:    order.CustomerName,
		RecipientPhone:   order.Phone,
		RecipientAddress: order.Address,
		CodAmount:        order.TotalAmount,
	})
	if err != nil {
		log.Println("Courier booking failed:", err)
		order.CourierStatus = models.CourierStatusFailed
		order.TrackingId = ""
		if updateErr := s.orders.UpdateCourier(order.ID, models.CourierStatusFailed, ""); updateErr != nil {
			log.Println("Failed to record courier failure:", updateErr)
		}
		return err
	}

	order.CourierStatus = models.CourierStatusBooked
	order.TrackingId = trackingID
	if updateErr := s.orders.UpdateCourier(order.ID, models.CourierStatusBooked, trackingID); updateErr != nil {
		log.Println("Failed to record courier booking:", updateErr)
	}
	return nil
}
