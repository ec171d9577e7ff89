package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/cbse-prep/backend/internal/models"
)

// ── Plans ───────────────────────────────────────────────────────────

// PlanPrices are in paise. Razorpay orders take the smallest currency unit.
var PlanPrices = map[models.Plan]int64{
	models.PlanMonthly:    9900,
	models.PlanHalfYearly: 49900,
	models.PlanAnnual:     79900,
}

// PlanDurations in days of premium access.
var PlanDurations = map[models.Plan]int{
	models.PlanMonthly:    30,
	models.PlanHalfYearly: 180,
	models.PlanAnnual:     365,
}

// ── Razorpay Client ─────────────────────────────────────────────────

const razorpayBaseURL = "https://api.razorpay.com/v1"

type RazorpayClient struct {
	http      *resty.Client
	keyID     string
	keySecret string
}

func NewRazorpayClient() *RazorpayClient {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")

	client := resty.New().
		SetBaseURL(razorpayBaseURL).
		SetBasicAuth(keyID, keySecret).
		SetTimeout(15 * time.Second)

	return &RazorpayClient{http: client, keyID: keyID, keySecret: keySecret}
}

func (c *RazorpayClient) KeyID() string {
	return c.keyID
}

type razorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// CreateOrder registers a new order with Razorpay and returns its id.
func (c *RazorpayClient) CreateOrder(plan models.Plan, userID int64) (*razorpayOrder, error) {
	amount, ok := PlanPrices[plan]
	if !ok {
		return nil, fmt.Errorf("unknown plan: %s", plan)
	}

	var order razorpayOrder
	resp, err := c.http.R().
		SetBody(map[string]interface{}{
			"amount":   amount,
			"currency": "INR",
			"receipt":  uuid.NewString(),
			"notes": map[string]string{
				"user_id": fmt.Sprintf("%d", userID),
				"plan":    string(plan),
			},
		}).
		SetResult(&order).
		Post("/orders")
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("razorpay order create: status %d: %s", resp.StatusCode(), resp.String())
	}
	return &order, nil
}

// VerifySignature checks the checkout callback signature: HMAC-SHA256 of
// "orderID|paymentID" keyed with the API secret.
func (c *RazorpayClient) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
