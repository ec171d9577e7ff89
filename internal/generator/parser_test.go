package generator

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cbse-prep/backend/internal/models"
)

func validMCQ(id string) models.Question {
	return models.Question{
		ID:            id,
		Type:          models.TypeMCQ,
		Question:      "Which oxide of iron forms when iron burns in oxygen?",
		Options:       []string{"A) FeO", "B) Fe2O3", "C) Fe3O4", "D) Fe(OH)3"},
		CorrectAnswer: "C",
		Explanation:   "Iron burns in oxygen to give the mixed oxide Fe3O4.",
		Marks:         1,
		Difficulty:    models.DifficultyMedium,
	}
}

func validShortAnswer(id string) models.Question {
	return models.Question{
		ID:            id,
		Type:          models.TypeShortAnswer,
		Question:      "State two differences between metals and non-metals.",
		CorrectAnswer: "Key points:\n1. Metals are malleable, non-metals are brittle\n2. Metals conduct electricity, most non-metals do not",
		Explanation:   "Physical properties distinguish the two groups.",
		Marks:         3,
		Difficulty:    models.DifficultyEasy,
	}
}

func validQuestionsJSON(count int) string {
	payload := struct {
		Questions []models.Question `json:"questions"`
	}{}
	for i := 0; i < count; i++ {
		payload.Questions = append(payload.Questions, validMCQ("q"+string(rune('1'+i))))
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

func TestParseQuestionsResponse_ValidJSON(t *testing.T) {
	questions, err := ParseQuestionsResponse(validQuestionsJSON(6))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(questions) != 6 {
		t.Errorf("expected 6 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if len(q.Options) != 4 {
			t.Errorf("question %d: expected 4 options, got %d", i+1, len(q.Options))
		}
	}
}

func TestParseQuestionsResponse_MarkdownFences(t *testing.T) {
	input := "```json\n" + validQuestionsJSON(3) + "\n```"

	questions, err := ParseQuestionsResponse(input)
	if err != nil {
		t.Fatalf("expected no error with markdown fences, got: %v", err)
	}
	if len(questions) != 3 {
		t.Errorf("expected 3 questions, got %d", len(questions))
	}
}

func TestParseQuestionsResponse_ProseWrapped(t *testing.T) {
	input := "Here are the questions you asked for:\n\n" + validQuestionsJSON(2) + "\n\nLet me know if you need more."

	questions, err := ParseQuestionsResponse(input)
	if err != nil {
		t.Fatalf("expected no error with surrounding prose, got: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("expected 2 questions, got %d", len(questions))
	}
}

func TestParseQuestionsResponse_Empty(t *testing.T) {
	_, err := ParseQuestionsResponse(`{"questions": []}`)
	if err == nil {
		t.Fatal("expected error for empty question list")
	}
	if !strings.Contains(err.Error(), "no questions") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseQuestionsResponse_WrongOptionCount(t *testing.T) {
	q := validMCQ("q1")
	q.Options = q.Options[:3]
	payload, _ := json.Marshal(struct {
		Questions []models.Question `json:"questions"`
	}{Questions: []models.Question{q}})

	_, err := ParseQuestionsResponse(string(payload))
	if err == nil {
		t.Fatal("expected error for 3-option MCQ")
	}
	if !strings.Contains(err.Error(), "expected 4 options") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseQuestionsResponse_BadCorrectAnswer(t *testing.T) {
	q := validMCQ("q1")
	q.CorrectAnswer = "E"
	payload, _ := json.Marshal(struct {
		Questions []models.Question `json:"questions"`
	}{Questions: []models.Question{q}})

	_, err := ParseQuestionsResponse(string(payload))
	if err == nil {
		t.Fatal("expected error for correct_answer E")
	}
	if !strings.Contains(err.Error(), "invalid correct_answer") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseQuestionsResponse_OptionsOnShortAnswer(t *testing.T) {
	q := validShortAnswer("q1")
	q.Options = []string{"A) should", "B) not", "C) be", "D) here"}
	payload, _ := json.Marshal(struct {
		Questions []models.Question `json:"questions"`
	}{Questions: []models.Question{q}})

	_, err := ParseQuestionsResponse(string(payload))
	if err == nil {
		t.Fatal("expected error for short_answer with options")
	}
	if !strings.Contains(err.Error(), "must not have options") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseQuestionsResponse_UnlabelledOptions(t *testing.T) {
	q := validMCQ("q1")
	q.Options = []string{"FeO", "Fe2O3", "Fe3O4", "Fe(OH)3"}
	payload, _ := json.Marshal(struct {
		Questions []models.Question `json:"questions"`
	}{Questions: []models.Question{q}})

	_, err := ParseQuestionsResponse(string(payload))
	if err == nil {
		t.Fatal("expected error for unlabelled options")
	}
	if !strings.Contains(err.Error(), "must start with") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseQuestionsResponse_MissingDifficulty(t *testing.T) {
	q := validMCQ("q1")
	q.Difficulty = ""
	payload, _ := json.Marshal(struct {
		Questions []models.Question `json:"questions"`
	}{Questions: []models.Question{q}})

	_, err := ParseQuestionsResponse(string(payload))
	if err == nil {
		t.Fatal("expected error for question with no difficulty")
	}
	if !strings.Contains(err.Error(), "invalid difficulty") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseQuestionsResponse_CollectsAllErrors(t *testing.T) {
	bad := validMCQ("q1")
	bad.CorrectAnswer = "Z"
	bad.Explanation = ""
	payload, _ := json.Marshal(struct {
		Questions []models.Question `json:"questions"`
	}{Questions: []models.Question{bad, validMCQ("q2")}})

	_, err := ParseQuestionsResponse(string(payload))
	if err == nil {
		t.Fatal("expected validation error")
	}
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Errors) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(verr.Errors), verr.Errors)
	}
}

func TestExtractJSONObject_BracesInsideStrings(t *testing.T) {
	input := `{"questions": [{"id": "q1", "question": "What does {x} mean in set notation?"}]}`

	raw, err := ExtractJSONObject("noise before " + input + " noise after")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if raw != input {
		t.Errorf("extracted object does not match input:\n got: %s\nwant: %s", raw, input)
	}
}

func TestExtractJSONObject_EscapedQuotes(t *testing.T) {
	input := `{"question": "He said \"hello {world}\" loudly"}`

	raw, err := ExtractJSONObject(input)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if raw != input {
		t.Errorf("extracted object does not match input: %s", raw)
	}
}

func TestExtractJSONObject_NoObject(t *testing.T) {
	if _, err := ExtractJSONObject("the model refused to answer"); err == nil {
		t.Fatal("expected error when no object present")
	}
}

func TestExtractJSONObject_Unbalanced(t *testing.T) {
	if _, err := ExtractJSONObject(`{"questions": [`); err == nil {
		t.Fatal("expected error for truncated object")
	}
}

func TestParsePaperResponse_Valid(t *testing.T) {
	resp, err := (&MockClient{}).Generate(context.Background(), "", `{"sections": [...]}`)
	if err != nil {
		t.Fatalf("mock generate: %v", err)
	}

	sections, err := ParsePaperResponse(resp.Content)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(sections) != 5 {
		t.Fatalf("expected 5 sections, got %d", len(sections))
	}

	totalMarks := 0
	totalQuestions := 0
	for _, s := range sections {
		for _, q := range s.Questions {
			totalMarks += q.Marks
			totalQuestions++
		}
	}
	if totalMarks != 100 {
		t.Errorf("expected 100 total marks, got %d", totalMarks)
	}
	if totalQuestions != 46 {
		t.Errorf("expected 46 questions, got %d", totalQuestions)
	}
}

func TestParsePaperResponse_WrongSectionCount(t *testing.T) {
	input := `{"sections": [{"name": "Section A", "description": "MCQs", "questions": []}]}`

	_, err := ParsePaperResponse(input)
	if err == nil {
		t.Fatal("expected error for a one-section paper")
	}
	if !strings.Contains(err.Error(), "expected 5 sections") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParsePaperResponse_WrongMarks(t *testing.T) {
	resp, err := (&MockClient{}).Generate(context.Background(), "", `{"sections": [...]}`)
	if err != nil {
		t.Fatalf("mock generate: %v", err)
	}
	// Section A questions carry 1 mark; misprice one of them.
	input := strings.Replace(resp.Content, `"marks":1`, `"marks":2`, 1)

	_, err = ParsePaperResponse(input)
	if err == nil {
		t.Fatal("expected error for mispriced question")
	}
	if !strings.Contains(err.Error(), "expected 1 marks") {
		t.Errorf("unexpected error: %v", err)
	}
}
