package practice

import "github.com/cbse-prep/backend/internal/models"

// FreeSessionLimit is the number of practice sessions a free account gets
// before generation is gated behind a subscription.
const FreeSessionLimit = 3

// CheckEntitlement reports whether the user may start another generation
// request. Premium users are never gated; free users are allowed while
// their session counter is below the limit.
func CheckEntitlement(user *models.User) bool {
	if user.IsPremium {
		return true
	}
	return user.SessionsUsed < FreeSessionLimit
}
