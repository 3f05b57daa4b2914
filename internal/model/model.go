package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// the booking service and the web client both speak plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

type PaymentOption string

const (
	PaymentUpfront PaymentOption = "payment_upfront"
	SplitPayment   PaymentOption = "split_payment"
	PaymentLater   PaymentOption = "payment_later"
	Free           PaymentOption = "free"
)

type OrderStatus string

const (
	StatusPlaced          OrderStatus = "placed"
	StatusPaymentRequired OrderStatus = "payment-required"
	StatusInProgress      OrderStatus = "in-progress"
	StatusLocked          OrderStatus = "locked"
	StatusDownload        OrderStatus = "download"
	StatusCompleted       OrderStatus = "completed"
	StatusCanceled        OrderStatus = "canceled"
)

// OrderFile is a deliverable descriptor as the booking service returns it.
// Size is a human-readable string ("2.40 MB"), not a byte count.
type OrderFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size string `json:"size"`
}

type RawOrder struct {
	ID                 string           `json:"id"`
	ServiceID          string           `json:"service_id"`
	CreativeID         string           `json:"creative_id"`
	Price              decimal.Decimal  `json:"price"`
	PaymentOption      string           `json:"payment_option"`
	AmountPaid         decimal.Decimal  `json:"amount_paid"`
	SplitDepositAmount *decimal.Decimal `json:"split_deposit_amount,omitempty"`
	Status             string           `json:"status"`
	OrderDate          time.Time        `json:"order_date"`
	BookingDate        *time.Time       `json:"booking_date,omitempty"`
	ApprovedAt         *time.Time       `json:"approved_at,omitempty"`
	CompletedDate      *time.Time       `json:"completed_date,omitempty"`
	Files              []OrderFile      `json:"files,omitempty"`
}

type FileView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// OrderView is the fully normalized order shape the web client renders.
type OrderView struct {
	ID              string          `json:"id"`
	ServiceID       string          `json:"service_id"`
	CreativeID      string          `json:"creative_id"`
	Price           decimal.Decimal `json:"price"`
	PaymentOption   PaymentOption   `json:"payment_option"`
	Status          OrderStatus     `json:"status"`
	DepositAmount   decimal.Decimal `json:"deposit_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	AmountRemaining decimal.Decimal `json:"amount_remaining"`
	OrderDate       time.Time       `json:"order_date"`
	BookingDate     *time.Time      `json:"booking_date,omitempty"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
	CompletedDate   *time.Time      `json:"completed_date,omitempty"`
	Files           []FileView      `json:"files,omitempty"`
	FileCount       *int            `json:"file_count,omitempty"`
	FileSize        string          `json:"file_size,omitempty"`
	FilesExpired    bool            `json:"files_expired"`
}

type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

type User struct {
	ID string
}
