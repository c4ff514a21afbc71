package domain

import (
	"encoding/json"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingRefunded  BookingStatus = "refunded"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// PricingSnapshot freezes the price terms a booking was created under, so
// later catalog edits cannot change what the ledger must reconcile against.
type PricingSnapshot struct {
	PlaceID       int64     `json:"place_id"`
	DefaultPrice  float64   `json:"default_price"`
	RequestedCost float64   `json:"requested_cost"`
	CapturedAt    time.Time `json:"captured_at"`
}

type Booking struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id" validate:"required"`
	PlaceID         int64           `json:"place_id" validate:"required"`
	DriverID        *int64          `json:"driver_id,omitempty"`
	StartTime       time.Time       `json:"start_time" validate:"required"`
	EndTime         time.Time       `json:"end_time" validate:"required"`
	Status          BookingStatus   `json:"status"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	TotalCost       float64         `json:"total_cost" validate:"required,gt=0"`
	PricingSnapshot json.RawMessage `json:"pricing_snapshot,omitempty"`
	CancelReason    string          `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	CancelledAt     *time.Time      `json:"cancelled_at,omitempty"`
}
