package payment

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/cbse-prep/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// InsertSubscription records a pending subscription when an order is created.
func (s *Store) InsertSubscription(userID int64, plan models.Plan, amountPaise int64, orderID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := s.db.QueryRow(`
		INSERT INTO subscriptions (user_id, plan, amount_paise, razorpay_order_id, status)
		VALUES ($1, $2, $3, $4, 'created')
		RETURNING id, user_id, plan, amount_paise, razorpay_order_id, status, created_at
	`, userID, plan, amountPaise, orderID).Scan(
		&sub.ID, &sub.UserID, &sub.Plan, &sub.AmountPaise, &sub.RazorpayOrderID, &sub.Status, &sub.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return &sub, nil
}

// GetSubscriptionByOrder loads the subscription for a Razorpay order id.
// Returns nil when no such order exists.
func (s *Store) GetSubscriptionByOrder(orderID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := s.db.QueryRow(`
		SELECT id, user_id, plan, amount_paise, razorpay_order_id, payment_id, status, starts_at, expires_at, created_at
		FROM subscriptions
		WHERE razorpay_order_id = $1
	`, orderID).Scan(
		&sub.ID, &sub.UserID, &sub.Plan, &sub.AmountPaise, &sub.RazorpayOrderID,
		&sub.PaymentID, &sub.Status, &sub.StartsAt, &sub.ExpiresAt, &sub.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}
	return &sub, nil
}

// ActivatePremium marks a verified subscription active and flips the user's
// premium flag. Both writes happen in one transaction.
func (s *Store) ActivatePremium(sub *models.Subscription, paymentID string, expiresAt time.Time) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	_, err = tx.Exec(`
		UPDATE subscriptions
		SET status = 'active', payment_id = $1, starts_at = $2, expires_at = $3
		WHERE id = $4
	`, paymentID, now, expiresAt, sub.ID)
	if err != nil {
		return fmt.Errorf("failed to activate subscription: %w", err)
	}

	_, err = tx.Exec(`
		UPDATE users
		SET is_premium = TRUE, premium_expires_at = $1, updated_at = NOW()
		WHERE id = $2
	`, expiresAt, sub.UserID)
	if err != nil {
		return fmt.Errorf("failed to upgrade user: %w", err)
	}

	return tx.Commit()
}
