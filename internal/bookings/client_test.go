package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/and161185/marketplace/internal/errs"
	"github.com/shopspring/decimal"
)

func TestListOrders_OK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("user_id"); got != "u1" {
			t.Errorf("unexpected user_id: %s", got)
		}
		if got := r.URL.Query().Get("scope"); got != ScopeActionNeeded {
			t.Errorf("unexpected scope: %s", got)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"id":             "ord-1",
				"service_id":     "svc-1",
				"creative_id":    "cr-1",
				"price":          200,
				"payment_option": "split",
				"amount_paid":    80,
				"status":         "locked",
				"order_date":     "2025-06-01T10:00:00Z",
			},
		})
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	orders, err := client.ListOrders(context.Background(), "u1", ScopeActionNeeded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].ID != "ord-1" {
		t.Errorf("unexpected order id: %s", orders[0].ID)
	}
	if !orders[0].Price.Equal(decimal.NewFromInt(200)) {
		t.Errorf("unexpected price: %s", orders[0].Price)
	}
	if orders[0].Status != "locked" {
		t.Errorf("unexpected status: %s", orders[0].Status)
	}
}

func TestListOrders_NoContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	orders, err := client.ListOrders(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("expected no orders, got %d", len(orders))
	}
}

func TestListOrders_TooManyRequests(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewClient(ts.URL)

	start := time.Now()
	_, err := client.ListOrders(context.Background(), "u1", "")
	duration := time.Since(start)

	if !errors.Is(err, errs.ErrBookingUnavailable) {
		t.Fatalf("expected ErrBookingUnavailable, got %v", err)
	}
	if duration < time.Second {
		t.Errorf("expected sleep of at least 1s, got %s", duration)
	}
}

func TestListOrders_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	_, err := client.ListOrders(context.Background(), "u1", "")
	if !errors.Is(err, errs.ErrBookingUnavailable) {
		t.Fatalf("expected ErrBookingUnavailable, got %v", err)
	}
}

func TestRecordPayment(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/orders/ord-1/payments" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var body struct {
			UserID string  `json:"user_id"`
			Amount float64 `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if body.Amount != 80 {
			t.Errorf("unexpected amount: %v", body.Amount)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	err := client.RecordPayment(context.Background(), "u1", "ord-1", decimal.NewFromInt(80))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecordPayment_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	err := client.RecordPayment(context.Background(), "u1", "missing", decimal.NewFromInt(10))
	if !errors.Is(err, errs.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
