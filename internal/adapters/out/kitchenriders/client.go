// Package kitchenriders implements the outbound rider dispatch client.
// When a delivery order is accepted, the engine asks the external rider
// system to assign a courier for it over HTTP.
package kitchenriders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"kitchen/internal/core/domain/model/kernel"
)

// ErrBaseURLIsRequired is returned when the client is created without a base URL.
var ErrBaseURLIsRequired = errors.New("kitchenriders base URL is required")

// Client calls the rider assignment service. It implements ports.RiderClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a rider dispatch client for the given service base URL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, ErrBaseURLIsRequired
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

type deliveryRequest struct {
	OrderID         string `json:"orderId"`
	AmountCents     int64  `json:"amountCents"`
	DeliveryAddress string `json:"deliveryAddress"`
}

// RequestDelivery asks the rider system to assign a courier for the order.
// Any non-2xx response is treated as a failed dispatch.
func (c *Client) RequestDelivery(
	ctx context.Context, orderID kernel.UUID, amount kernel.Money, deliveryAddress string,
) error {
	body, err := json.Marshal(deliveryRequest{
		OrderID:         orderID.String(),
		AmountCents:     amount.Cents(),
		DeliveryAddress: deliveryAddress,
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/delivery-requests",
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("delivery request failed with status: %d", resp.StatusCode)
	}

	return nil
}
