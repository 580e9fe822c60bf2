package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XidanAbds29/huehouse-api/models"
)

type courierUpdate struct {
	orderID    uint
	status     string
	trackingID string
}

type mockOrderStore struct {
	orders     []*models.Order
	updates    []courierUpdate
	failCreate bool
}

func (m *mockOrderStore) Create(order *models.Order) error {
	if m.failCreate {
		return errors.New("insert failed")
	}
	order.ID = uint(len(m.orders) + 1)
	order.OrderNumber = fmt.Sprintf("a1b2c3d4-%04d-4000-8000-000000000000", order.ID)
	order.CreatedAt = time.Now()
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockOrderStore) UpdateCourier(orderID uint, status, trackingID string) error {
	m.updates = append(m.updates, courierUpdate{orderID: orderID, status: status, trackingID: trackingID})
	return nil
}

type mockProfileStore struct {
	profiles map[uint]models.Customer
}

func newMockProfileStore() *mockProfileStore {
	return &mockProfileStore{profiles: make(map[uint]models.Customer)}
}

func (m *mockProfileStore) Upsert(profile models.Customer) error {
	m.profiles[profile.UserID] = profile
	return nil
}

type mockCourier struct {
	trackingID string
	err        error
	requests   []ShipmentRequest
}

func (m *mockCourier) CreateShipment(req ShipmentRequest) (string, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return "", m.err
	}
	return m.trackingID, nil
}

type mockNotifier struct {
	received chan OrderNotification
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{received: make(chan OrderNotification, 1)}
}

func (m *mockNotifier) NotifyNewOrder(n OrderNotification) error {
	m.received <- n
	return nil
}

func newTestService(orders *mockOrderStore, profiles *mockProfileStore, courier *mockCourier, notifier *mockNotifier) *CheckoutService {
	return NewCheckoutService(orders, profiles, courier, notifier, nil, 0, "8801700000000")
}

func sampleCart() []models.CartItem {
	return []models.CartItem{
		{ProductID: 1, Name: "Sunset", Price: 500},
		{ProductID: 2, Name: "Dawn", Price: 750},
	}
}

func TestPlaceOrder_ComputesTotalAndBooksCourier(t *testing.T) {
	orders := &mockOrderStore{}
	courier := &mockCourier{trackingID: "TRK123"}
	notifier := newMockNotifier()
	svc := newTestService(orders, newMockProfileStore(), courier, notifier)

	result, err := svc.PlaceOrder(CheckoutInput{
		Name:        "Jane",
		Phone:       "01700000001",
		Address:     "Dhaka",
		BkashNumber: "01700000002",
		TrxID:       "TRX99",
		Items:       sampleCart(),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Order)

	order := result.Order
	assert.Equal(t, 1250, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.CourierStatusBooked, order.CourierStatus)
	assert.Equal(t, "TRK123", order.TrackingId)

	var snapshot []models.OrderItem
	require.NoError(t, json.Unmarshal(order.Items, &snapshot))
	require.Len(t, snapshot, 2)
	assert.Equal(t, "Sunset", snapshot[0].Name)
	assert.Equal(t, 750, snapshot[1].Price)

	require.Len(t, courier.requests, 1)
	assert.Equal(t, order.OrderNumber, courier.requests[0].Invoice)
	assert.Equal(t, 1250, courier.requests[0].CodAmount)
	assert.Equal(t, "Jane", courier.requests[0].RecipientName)

	select {
	case n := <-notifier.received:
		assert.Equal(t, order.OrderNumber, n.OrderID)
		assert.Equal(t, 1250, n.TotalAmount)
		assert.Equal(t, "01700000002", n.BkashNumber)
		assert.Equal(t, "TRX99", n.TrxID)
	case <-time.After(time.Second):
		t.Fatal("notification was never dispatched")
	}

	assert.Contains(t, result.WhatsAppURL, "https://wa.me/8801700000000?text=")
}

func TestPlaceOrder_CourierFailureDoesNotBlockOrder(t *testing.T) {
	orders := &mockOrderStore{}
	courier := &mockCourier{err: errors.New("booking refused")}
	svc := newTestService(orders, newMockProfileStore(), courier, newMockNotifier())

	result, err := svc.PlaceOrder(CheckoutInput{
		Name: "Jane", Phone: "017", Address: "Dhaka",
		Items: sampleCart(),
	})
	require.NoError(t, err)

	assert.Equal(t, models.CourierStatusFailed, result.Order.CourierStatus)
	assert.Empty(t, result.Order.TrackingId)

	require.Len(t, orders.updates, 1)
	assert.Equal(t, models.CourierStatusFailed, orders.updates[0].status)
	assert.Empty(t, orders.updates[0].trackingID)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	svc := newTestService(&mockOrderStore{}, newMockProfileStore(), &mockCourier{}, newMockNotifier())

	_, err := svc.PlaceOrder(CheckoutInput{Name: "Jane", Phone: "017", Address: "Dhaka"})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrder_InsertFailureIsFatal(t *testing.T) {
	orders := &mockOrderStore{failCreate: true}
	courier := &mockCourier{trackingID: "TRK123"}
	notifier := newMockNotifier()
	svc := newTestService(orders, newMockProfileStore(), courier, notifier)

	_, err := svc.PlaceOrder(CheckoutInput{
		Name: "Jane", Phone: "017", Address: "Dhaka",
		Items: sampleCart(),
	})
	require.Error(t, err)

	assert.Empty(t, orders.orders)
	assert.Empty(t, courier.requests)
	select {
	case <-notifier.received:
		t.Fatal("notification dispatched for a failed submission")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPlaceOrder_UpsertsProfileForAuthenticatedUser(t *testing.T) {
	profiles := newMockProfileStore()
	svc := newTestService(&mockOrderStore{}, profiles, &mockCourier{trackingID: "T1"}, newMockNotifier())

	userID := uint(42)
	_, err := svc.PlaceOrder(CheckoutInput{
		Name: "Jane", Phone: "017", Address: "Dhaka",
		Items:  sampleCart(),
		UserID: &userID,
	})
	require.NoError(t, err)

	profile, ok := profiles.profiles[userID]
	require.True(t, ok)
	assert.Equal(t, "Jane", profile.Name)
	assert.Equal(t, "Dhaka", profile.Address)
}

func TestPlaceOrder_GuestSkipsProfileUpsert(t *testing.T) {
	profiles := newMockProfileStore()
	svc := newTestService(&mockOrderStore{}, profiles, &mockCourier{trackingID: "T1"}, newMockNotifier())

	_, err := svc.PlaceOrder(CheckoutInput{
		Name: "Jane", Phone: "017", Address: "Dhaka",
		Items: sampleCart(),
	})
	require.NoError(t, err)
	assert.Empty(t, profiles.profiles)
}

func TestSyncCourier_RetryBooksFailedOrder(t *testing.T) {
	orders := &mockOrderStore{}
	courier := &mockCourier{trackingID: "TRK777"}
	svc := newTestService(orders, newMockProfileStore(), courier, newMockNotifier())

	order := &models.Order{
		OrderNumber:   "retry-1234",
		CustomerName:  "Jane",
		Phone:         "017",
		Address:       "Dhaka",
		TotalAmount:   1250,
		Status:        models.OrderStatusPending,
		CourierStatus: models.CourierStatusFailed,
	}
	order.ID = 9

	require.NoError(t, svc.SyncCourier(order))

	assert.Equal(t, models.CourierStatusBooked, order.CourierStatus)
	assert.Equal(t, "TRK777", order.TrackingId)
	require.Len(t, orders.updates, 1)
	assert.Equal(t, uint(9), orders.updates[0].orderID)
	// Retry must never create another order row.
	assert.Empty(t, orders.orders)
}
