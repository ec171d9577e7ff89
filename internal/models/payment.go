package models

import "time"

type Plan string

const (
	PlanMonthly    Plan = "monthly"
	PlanHalfYearly Plan = "half_yearly"
	PlanAnnual     Plan = "annual"
)

var ValidPlans = map[Plan]bool{
	PlanMonthly:    true,
	PlanHalfYearly: true,
	PlanAnnual:     true,
}

type SubscriptionStatus string

const (
	SubscriptionCreated SubscriptionStatus = "created"
	SubscriptionActive  SubscriptionStatus = "active"
	SubscriptionExpired SubscriptionStatus = "expired"
)

type Subscription struct {
	ID              int64              `json:"id"`
	UserID          int64              `json:"user_id"`
	Plan            Plan               `json:"plan"`
	AmountPaise     int64              `json:"amount_paise"`
	RazorpayOrderID string             `json:"razorpay_order_id"`
	PaymentID       *string            `json:"payment_id,omitempty"`
	Status          SubscriptionStatus `json:"status"`
	StartsAt        *time.Time         `json:"starts_at,omitempty"`
	ExpiresAt       *time.Time         `json:"expires_at,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

// ── Request Types ─────────────────────────────────────

type CreateOrderRequest struct {
	Plan Plan `json:"plan"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// ── Response Types ────────────────────────────────────

type CreateOrderResponse struct {
	OrderID     string `json:"order_id"`
	AmountPaise int64  `json:"amount_paise"`
	Currency    string `json:"currency"`
	KeyID       string `json:"key_id"`
	Plan        Plan   `json:"plan"`
}

type VerifyPaymentResponse struct {
	Verified  bool       `json:"verified"`
	IsPremium bool       `json:"is_premium"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
