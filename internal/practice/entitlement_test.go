package practice

import (
	"testing"

	"github.com/cbse-prep/backend/internal/models"
)

func TestCheckEntitlement_FreeUser(t *testing.T) {
	tests := []struct {
		sessionsUsed int
		allowed      bool
	}{
		{0, true},
		{1, true},
		{2, true},
		{3, false},
		{10, false},
	}

	for _, tt := range tests {
		user := &models.User{SessionsUsed: tt.sessionsUsed}
		if got := CheckEntitlement(user); got != tt.allowed {
			t.Errorf("sessions_used=%d: allowed=%v, want %v", tt.sessionsUsed, got, tt.allowed)
		}
	}
}

func TestCheckEntitlement_PremiumUnmetered(t *testing.T) {
	user := &models.User{IsPremium: true, SessionsUsed: 500}
	if !CheckEntitlement(user) {
		t.Error("premium user should never be gated")
	}
}
