package bookings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/and161185/marketplace/internal/errs"
	"github.com/and161185/marketplace/internal/model"
	"github.com/shopspring/decimal"
)

// Scope values understood by the booking service's order listing.
const (
	ScopeAll          = "all"
	ScopeActionNeeded = "action_needed"
)

// Client talks to the booking service. The service is a black box: stable
// field names, prices as JSON numbers, timestamps as ISO-8601 or null.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ListOrders fetches the raw orders of one user, optionally narrowed to a
// scope the backend understands.
func (c *Client) ListOrders(ctx context.Context, userID, scope string) ([]model.RawOrder, error) {
	q := url.Values{"user_id": {userID}}
	if scope != "" {
		q.Set("scope", scope)
	}
	endpoint := fmt.Sprintf("%s/api/orders?%s", c.baseURL, q.Encode())

	var orders []model.RawOrder
	if err := c.getJSON(ctx, endpoint, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) ListNotifications(ctx context.Context, userID string) ([]model.Notification, error) {
	q := url.Values{"user_id": {userID}}
	endpoint := fmt.Sprintf("%s/api/notifications?%s", c.baseURL, q.Encode())

	var notifications []model.Notification
	if err := c.getJSON(ctx, endpoint, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// RecordPayment reports a completed payment for an order. The booking service
// owns the ledger; we only relay the amount.
func (c *Client) RecordPayment(ctx context.Context, userID, orderID string, amount decimal.Decimal) error {
	endpoint := fmt.Sprintf("%s/api/orders/%s/payments", c.baseURL, url.PathEscape(orderID))

	body, err := json.Marshal(struct {
		UserID string          `json:"user_id"`
		Amount decimal.Decimal `json:"amount"`
	}{UserID: userID, Amount: amount})
	if err != nil {
		return fmt.Errorf("encode payment: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrBookingUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusNotFound:
		return errs.ErrOrderNotFound
	default:
		return fmt.Errorf("%w: unexpected status code %d", errs.ErrBookingUnavailable, resp.StatusCode)
	}
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrBookingUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	case http.StatusNoContent:
		return nil
	case http.StatusTooManyRequests:
		if retry := resp.Header.Get("Retry-After"); retry != "" {
			if sec, err := strconv.Atoi(retry); err == nil {
				time.Sleep(time.Duration(sec) * time.Second)
			}
		}
		return fmt.Errorf("%w: too many requests", errs.ErrBookingUnavailable)
	default:
		return fmt.Errorf("%w: unexpected status code %d", errs.ErrBookingUnavailable, resp.StatusCode)
	}
}
