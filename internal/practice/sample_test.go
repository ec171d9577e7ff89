package practice

import (
	"fmt"
	"testing"

	"github.com/cbse-prep/backend/internal/models"
)

func makePool(n int) []models.Question {
	pool := make([]models.Question, n)
	for i := range pool {
		pool[i] = models.Question{
			ID:       fmt.Sprintf("q%d", i+1),
			Type:     models.TypeMCQ,
			Question: fmt.Sprintf("question %d", i+1),
		}
	}
	return pool
}

func TestSamplePool_Size(t *testing.T) {
	served := SamplePool(makePool(30), 10)
	if len(served) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(served))
	}
}

func TestSamplePool_NoDuplicates(t *testing.T) {
	served := SamplePool(makePool(30), 10)

	seen := map[string]bool{}
	for _, q := range served {
		if seen[q.ID] {
			t.Errorf("question %s served twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSamplePool_ClampsToPoolSize(t *testing.T) {
	served := SamplePool(makePool(5), 10)
	if len(served) != 5 {
		t.Fatalf("expected 5 questions from a 5-question pool, got %d", len(served))
	}
}

func TestSamplePool_DoesNotMutatePool(t *testing.T) {
	pool := makePool(30)
	SamplePool(pool, 10)

	for i, q := range pool {
		if want := fmt.Sprintf("q%d", i+1); q.ID != want {
			t.Fatalf("pool mutated at index %d: got %s, want %s", i, q.ID, want)
		}
	}
}

func TestSamplePool_VariesAcrossCalls(t *testing.T) {
	pool := makePool(30)

	// With 30 choose 10 the odds of many identical draws in a row are
	// negligible; any difference across 20 draws passes.
	first := SamplePool(pool, 10)
	for i := 0; i < 20; i++ {
		next := SamplePool(pool, 10)
		for j := range next {
			if next[j].ID != first[j].ID {
				return
			}
		}
	}
	t.Error("20 consecutive draws were identical")
}
