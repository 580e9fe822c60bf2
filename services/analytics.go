package services

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// PixelTracker reports Purchase events to the Meta conversions endpoint.
// It is only wired when a pixel id and access token are configured.
type PixelTracker struct {
	pixelID     string
	accessToken string
	endpoint    string
	client      *resty.Client
}

func NewPixelTracker(pixelID, accessToken string) *PixelTracker {
	return &PixelTracker{
		pixelID:     pixelID,
		accessToken: accessToken,
		endpoint:    "https://graph.facebook.com/v18.0",
		client:      resty.New().SetTimeout(10 * time.Second),
	}
}

func (t *PixelTracker) TrackPurchase(amount int, currency string) error {
	payload := map[string]any{
		"data": []map[string]any{
			{
				"event_name":    "Purchase",
				"event_time":    time.Now().Unix(),
				"action_source": "website",
				"custom_data": map[string]any{
					"value":    amount,
					"currency": currency,
				},
			},
		},
	}

	resp, err := t.client.R().
		SetQueryParam("access_token", t.accessToken).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(fmt.Sprintf("%s/%s/events", t.endpoint, t.pixelID))

	if err != nil {
		return fmt.Errorf("pixel request failed: %w", err)
	}
	if resp.StatusCode() >= 300 {
		return fmt.Errorf("pixel request failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}
	return nil
}
