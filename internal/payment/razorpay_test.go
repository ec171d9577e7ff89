package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/cbse-prep/backend/internal/models"
)

func TestVerifySignature(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "test_secret_1234")
	client := NewRazorpayClient()

	orderID := "order_MkWq3vXy8abc12"
	paymentID := "pay_MkWrT9Zq7def34"

	mac := hmac.New(sha256.New, []byte("test_secret_1234"))
	mac.Write([]byte(orderID + "|" + paymentID))
	signature := hex.EncodeToString(mac.Sum(nil))

	if !client.VerifySignature(orderID, paymentID, signature) {
		t.Error("expected valid signature to verify")
	}
	if client.VerifySignature(orderID, paymentID, signature[:len(signature)-1]+"x") {
		t.Error("expected tampered signature to fail")
	}
	if client.VerifySignature("order_other", paymentID, signature) {
		t.Error("expected signature for different order to fail")
	}
	if client.VerifySignature(orderID, paymentID, "") {
		t.Error("expected empty signature to fail")
	}
}

func TestPlanTables(t *testing.T) {
	for plan := range models.ValidPlans {
		if _, ok := PlanPrices[plan]; !ok {
			t.Errorf("plan %s has no price", plan)
		}
		if _, ok := PlanDurations[plan]; !ok {
			t.Errorf("plan %s has no duration", plan)
		}
	}

	if PlanPrices[models.PlanMonthly] >= PlanPrices[models.PlanHalfYearly] {
		t.Error("monthly should cost less than half-yearly")
	}
	if PlanPrices[models.PlanHalfYearly] >= PlanPrices[models.PlanAnnual] {
		t.Error("half-yearly should cost less than annual")
	}
	if PlanDurations[models.PlanMonthly] != 30 || PlanDurations[models.PlanHalfYearly] != 180 || PlanDurations[models.PlanAnnual] != 365 {
		t.Errorf("unexpected durations: %v", PlanDurations)
	}
}
