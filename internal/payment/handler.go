package payment

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/cbse-prep/backend/internal/models"
)

type Handler struct {
	store    *Store
	razorpay *RazorpayClient
}

func NewHandler(store *Store, razorpay *RazorpayClient) *Handler {
	return &Handler{store: store, razorpay: razorpay}
}

// CreateOrder handles POST /payment/order. It registers a Razorpay order
// for the chosen plan and records a pending subscription.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int64)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if !models.ValidPlans[req.Plan] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid plan"})
		return
	}

	order, err := h.razorpay.CreateOrder(req.Plan, userID)
	if err != nil {
		log.Printf("WARN: razorpay order failed for user %d: %v", userID, err)
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "failed to create payment order"})
		return
	}

	if _, err := h.store.InsertSubscription(userID, req.Plan, order.Amount, order.ID); err != nil {
		log.Printf("WARN: failed to record subscription for order %s: %v", order.ID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "failed to record order"})
		return
	}

	writeJSON(w, http.StatusOK, models.CreateOrderResponse{
		OrderID:     order.ID,
		AmountPaise: order.Amount,
		Currency:    "INR",
		KeyID:       h.razorpay.KeyID(),
		Plan:        req.Plan,
	})
}

// VerifyPayment handles POST /payment/verify. A valid signature activates
// the subscription and flips the user to premium.
func (h *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int64)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "order id, payment id and signature are required"})
		return
	}

	if !h.razorpay.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		log.Printf("WARN: signature mismatch for order %s (user %d)", req.RazorpayOrderID, userID)
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "payment signature verification failed"})
		return
	}

	sub, err := h.store.GetSubscriptionByOrder(req.RazorpayOrderID)
	if err != nil {
		log.Printf("WARN: subscription lookup failed for order %s: %v", req.RazorpayOrderID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "failed to verify payment"})
		return
	}
	if sub == nil || sub.UserID != userID {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}
	if sub.Status == models.SubscriptionActive {
		writeJSON(w, http.StatusOK, models.VerifyPaymentResponse{
			Verified:  true,
			IsPremium: true,
			ExpiresAt: sub.ExpiresAt,
		})
		return
	}

	expiresAt := time.Now().AddDate(0, 0, PlanDurations[sub.Plan])
	if err := h.store.ActivatePremium(sub, req.RazorpayPaymentID, expiresAt); err != nil {
		log.Printf("WARN: failed to activate premium for user %d: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "failed to activate subscription"})
		return
	}

	log.Printf("[payment] user %d upgraded to premium (%s) until %s", userID, sub.Plan, expiresAt.Format(time.RFC3339))
	writeJSON(w, http.StatusOK, models.VerifyPaymentResponse{
		Verified:  true,
		IsPremium: true,
		ExpiresAt: &expiresAt,
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
