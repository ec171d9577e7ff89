package practice

import (
	"math/rand"

	"github.com/cbse-prep/backend/internal/models"
)

// SamplePool returns n questions drawn without replacement from pool. The
// pool itself is never mutated; each call shuffles an independent copy, so
// repeat calls over the same pool can and will overlap.
func SamplePool(pool []models.Question, n int) []models.Question {
	if n >= len(pool) {
		n = len(pool)
	}
	shuffled := make([]models.Question, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
