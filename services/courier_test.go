package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingRequest() ShipmentRequest {
	return ShipmentRequest{
		Invoice:          "ord-0001",
		RecipientName:    "Jane",
		RecipientPhone:   "01700000001",
		RecipientAddress: "Dhaka",
		CodAmount:        1250,
	}
}

func TestCreateShipment_Success(t *testing.T) {
	var received ShipmentRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/create_order", r.URL.Path)
		assert.Equal(t, "key-1", r.Header.Get("Api-Key"))
		assert.Equal(t, "secret-1", r.Header.Get("Secret-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":200,"consignment":{"consignment_id":"X"}}`))
	}))
	defer server.Close()

	client := NewSteadfastClient(server.URL, "key-1", "secret-1")
	trackingID, err := client.CreateShipment(bookingRequest())

	require.NoError(t, err)
	assert.Equal(t, "X", trackingID)
	assert.Equal(t, "ord-0001", received.Invoice)
	assert.Equal(t, 1250, received.CodAmount)
	assert.Equal(t, "F-commerce Order", received.Note)
}

func TestCreateShipment_NumericConsignmentID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":200,"consignment":{"consignment_id":12345}}`))
	}))
	defer server.Close()

	client := NewSteadfastClient(server.URL, "k", "s")
	trackingID, err := client.CreateShipment(bookingRequest())

	require.NoError(t, err)
	assert.Equal(t, "12345", trackingID)
}

func TestCreateShipment_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewSteadfastClient(server.URL, "k", "s")
	_, err := client.CreateShipment(bookingRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestCreateShipment_UnparseableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer server.Close()

	client := NewSteadfastClient(server.URL, "k", "s")
	_, err := client.CreateShipment(bookingRequest())

	require.Error(t, err)
	// Raw body rides along for diagnostics.
	assert.Contains(t, err.Error(), "<html>gateway timeout</html>")
}

func TestCreateShipment_RejectedStatusField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":400,"message":"invalid phone"}`))
	}))
	defer server.Close()

	client := NewSteadfastClient(server.URL, "k", "s")
	_, err := client.CreateShipment(bookingRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid phone")
}

func TestCreateShipment_MissingCredentials(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := NewSteadfastClient(server.URL, "", "")
	_, err := client.CreateShipment(bookingRequest())

	require.Error(t, err)
	assert.Zero(t, calls)
}
