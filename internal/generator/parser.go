package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cbse-prep/backend/internal/models"
)

type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// ExtractJSONObject returns the first balanced top-level {...} object in s.
// Models sometimes wrap their JSON in prose or code fences; this scans past
// anything before the first brace and tracks string/escape state so braces
// inside string values don't end the object early.
func ExtractJSONObject(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", fmt.Errorf("no JSON object found in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1], nil
				}
			}
		}
	}

	return "", fmt.Errorf("unbalanced JSON object in response")
}

// ParseQuestionsResponse extracts and validates a chapter question batch.
func ParseQuestionsResponse(responseBody string) ([]models.Question, error) {
	raw, err := ExtractJSONObject(responseBody)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Questions []models.Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if len(payload.Questions) == 0 {
		return nil, &ValidationError{Errors: []string{"no questions in response"}}
	}

	var errs []string
	for i, q := range payload.Questions {
		errs = append(errs, validateQuestion(i+1, q.ID, q.Type, q.Question, q.Options, q.CorrectAnswer, q.Explanation, q.Marks)...)
		// Chapter questions must carry a difficulty; paper questions do not.
		if !models.ValidDifficulties[q.Difficulty] {
			errs = append(errs, fmt.Sprintf("question %d: invalid difficulty %q", i+1, q.Difficulty))
		}
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return payload.Questions, nil
}

// paperSectionCounts and paperSectionMarks are the fixed board pattern:
// sections A through E, 46 questions, 100 marks.
var (
	paperSectionCounts = []int{20, 10, 8, 4, 4}
	paperSectionMarks  = []int{1, 2, 3, 4, 5}
)

// ParsePaperResponse extracts and validates a full-paper section list
// against the fixed five-section board pattern.
func ParsePaperResponse(responseBody string) ([]models.PaperSection, error) {
	raw, err := ExtractJSONObject(responseBody)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Sections []models.PaperSection `json:"sections"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if len(payload.Sections) != len(paperSectionCounts) {
		return nil, &ValidationError{Errors: []string{
			fmt.Sprintf("expected %d sections, got %d", len(paperSectionCounts), len(payload.Sections)),
		}}
	}

	var errs []string
	qNum := 0
	for i, section := range payload.Sections {
		if section.Name == "" {
			errs = append(errs, fmt.Sprintf("section %d: empty name", i+1))
		}
		if len(section.Questions) != paperSectionCounts[i] {
			errs = append(errs, fmt.Sprintf("section %d: expected %d questions, got %d", i+1, paperSectionCounts[i], len(section.Questions)))
		}
		for _, q := range section.Questions {
			qNum++
			errs = append(errs, validateQuestion(qNum, q.ID, q.Type, q.Question, q.Options, q.CorrectAnswer, q.Explanation, q.Marks)...)
			if q.Marks != paperSectionMarks[i] {
				errs = append(errs, fmt.Sprintf("question %d: expected %d marks in section %d, got %d", qNum, paperSectionMarks[i], i+1, q.Marks))
			}
		}
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return payload.Sections, nil
}

var validMCQAnswers = map[string]bool{"A": true, "B": true, "C": true, "D": true}

var optionLabels = []string{"A)", "B)", "C)", "D)"}

// validateQuestion checks the structural rules shared by chapter questions
// and paper questions. MCQs need exactly four labelled options and a letter
// answer; subjective questions must not carry options.
func validateQuestion(qNum int, id string, qType models.QuestionType, question string, options []string, correctAnswer, explanation string, marks int) []string {
	var errs []string

	if !models.ValidQuestionTypes[qType] {
		errs = append(errs, fmt.Sprintf("question %d: invalid type %q", qNum, qType))
		return errs
	}

	if id == "" {
		errs = append(errs, fmt.Sprintf("question %d: empty id", qNum))
	}
	if question == "" {
		errs = append(errs, fmt.Sprintf("question %d: empty question text", qNum))
	}
	if explanation == "" {
		errs = append(errs, fmt.Sprintf("question %d: empty explanation", qNum))
	}
	if marks <= 0 {
		errs = append(errs, fmt.Sprintf("question %d: invalid marks %d", qNum, marks))
	}

	if qType == models.TypeMCQ {
		if len(options) != 4 {
			errs = append(errs, fmt.Sprintf("question %d: expected 4 options, got %d", qNum, len(options)))
		} else {
			for i, opt := range options {
				if !strings.HasPrefix(opt, optionLabels[i]) {
					errs = append(errs, fmt.Sprintf("question %d: option %d must start with %q", qNum, i+1, optionLabels[i]))
				}
			}
		}
		if !validMCQAnswers[correctAnswer] {
			errs = append(errs, fmt.Sprintf("question %d: invalid correct_answer %q for mcq", qNum, correctAnswer))
		}
	} else {
		if len(options) != 0 {
			errs = append(errs, fmt.Sprintf("question %d: %s question must not have options", qNum, qType))
		}
		if correctAnswer == "" {
			errs = append(errs, fmt.Sprintf("question %d: empty model answer", qNum))
		}
	}

	return errs
}
