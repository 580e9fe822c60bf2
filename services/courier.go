package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ShipmentRequest is the payload the Steadfast booking endpoint expects.
type ShipmentRequest struct {
	Invoice          string `json:"invoice"`
	RecipientName    string `json:"recipient_name"`
	RecipientPhone   string `json:"recipient_phone"`
	RecipientAddress string `json:"recipient_address"`
	CodAmount        int    `json:"cod_amount"`
	Note             string `json:"note"`
}

const defaultShipmentNote = "F-commerce Order"

// SteadfastClient books cash-on-delivery shipments with the Steadfast portal
// API. It never retries, re-invocation is always caller-initiated.
type SteadfastClient struct {
	baseURL   string
	apiKey    string
	secretKey string
	client    *resty.Client
}

func NewSteadfastClient(baseURL, apiKey, secretKey string) *SteadfastClient {
	return &SteadfastClient{
		baseURL:   baseURL,
		apiKey:    apiKey,
		secretKey: secretKey,
		client:    resty.New().SetTimeout(30 * time.Second),
	}
}

// CreateShipment books one consignment and returns the courier-assigned
// tracking id. A non-2xx status, an unparseable body, or a body whose status
// field is not 200 are all booking failures; the raw body rides along in the
// error for diagnostics.
func (c *SteadfastClient) CreateShipment(req ShipmentRequest) (string, error) {
	if c.apiKey == "" || c.secretKey == "" {
		return "", fmt.Errorf("steadfast credentials are not set")
	}

	if req.Note == "" {
		req.Note = defaultShipmentNote
	}

	resp, err := c.client.R().
		SetHeaders(map[string]string{
			"Content-Type": "application/json",
			"Api-Key":      c.apiKey,
			"Secret-Key":   c.secretKey,
		}).
		SetBody(req).
		Post(c.baseURL + "/create_order")

	if err != nil {
		return "", fmt.Errorf("steadfast request failed: %w", err)
	}

	if resp.StatusCode() >= 300 {
		return "", fmt.Errorf("steadfast request failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var body map[string]any
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("invalid JSON from steadfast: %s", string(resp.Body()))
	}

	status, ok := body["status"].(float64)
	if !ok || int(status) != 200 {
		return "", fmt.Errorf("steadfast rejected booking: %s", string(resp.Body()))
	}

	consignment, ok := body["consignment"].(map[string]any)
	if !ok {
		return "", fmt.Errorf("consignment missing in steadfast response: %s", string(resp.Body()))
	}

	trackingID := fmt.Sprint(consignment["consignment_id"])
	if trackingID == "" || trackingID == "<nil>" {
		return "", fmt.Errorf("consignment id missing in steadfast response: %s", string(resp.Body()))
	}

	return trackingID, nil
}
