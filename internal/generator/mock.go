package generator

import (
	"context"
	"fmt"
	"strings"
)

// MockClient serves deterministic fixture data for local development. It
// inspects the user prompt to decide whether a question batch or a full
// paper is being requested.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	var mockJSON string
	if strings.Contains(userPrompt, `"sections"`) {
		mockJSON = buildMockPaperJSON()
	} else {
		mockJSON = buildMockQuestionsJSON()
	}
	return &LLMResponse{
		Content:      mockJSON,
		PromptTokens: 1500,
		OutputTokens: 3000,
	}, nil
}

var mockTopics = []string{
	"chemical reactions", "electric circuits", "cell division",
	"laws of motion", "acids and bases", "light refraction",
}

func mockMCQ(id, topic string, marks int) string {
	return fmt.Sprintf(`{"id":"%s","type":"mcq","question":"[Mock] Which of the following best describes %s as covered in the NCERT textbook?","options":["A) The first property of %s","B) The second property of %s","C) An unrelated property","D) None of the above"],"correct_answer":"A","explanation":"[Mock] Option A matches the NCERT definition of %s.","marks":%d,"difficulty":"medium"}`,
		id, topic, topic, topic, topic, marks)
}

func mockSubjective(id, qType, topic string, marks int) string {
	return fmt.Sprintf(`{"id":"%s","type":"%s","question":"[Mock] Explain the key aspects of %s with examples.","correct_answer":"[Mock] Model answer:\n1. First key point about %s\n2. Second key point\n3. Worked example","explanation":"[Mock] Tests understanding of %s per NCERT.","marks":%d,"difficulty":"medium"}`,
		id, qType, topic, topic, topic, marks)
}

// buildMockQuestionsJSON returns 30 MCQs so every pool size a practice mode
// can ask for is satisfied from one response.
func buildMockQuestionsJSON() string {
	var questions []string
	for i := 0; i < 30; i++ {
		topic := mockTopics[i%len(mockTopics)]
		questions = append(questions, mockMCQ(fmt.Sprintf("q%d", i+1), topic, 1))
	}
	return fmt.Sprintf(`{"questions":[%s]}`, strings.Join(questions, ","))
}

func buildMockPaperJSON() string {
	type sectionSpec struct {
		name   string
		desc   string
		prefix string
		count  int
		marks  int
		qType  string
	}
	specs := []sectionSpec{
		{"Section A", "Multiple Choice Questions — 1 mark each", "a", 20, 1, "mcq"},
		{"Section B", "Very Short Answer Questions — 2 marks each", "b", 10, 2, "short_answer"},
		{"Section C", "Short Answer Questions — 3 marks each", "c", 8, 3, "short_answer"},
		{"Section D", "Long Answer Questions — 4 marks each", "d", 4, 4, "long_answer"},
		{"Section E", "Long Answer Questions — 5 marks each", "e", 4, 5, "long_answer"},
	}

	var sections []string
	for _, spec := range specs {
		var questions []string
		for i := 0; i < spec.count; i++ {
			id := fmt.Sprintf("%s%d", spec.prefix, i+1)
			topic := mockTopics[i%len(mockTopics)]
			var q string
			if spec.qType == "mcq" {
				q = mockMCQ(id, topic, spec.marks)
			} else {
				q = mockSubjective(id, spec.qType, topic, spec.marks)
			}
			// Paper questions carry a chapter reference instead of difficulty
			q = strings.Replace(q, `,"difficulty":"medium"}`, fmt.Sprintf(`,"chapter_reference":"Chapter %d: %s"}`, i%6+1, topic), 1)
			questions = append(questions, q)
		}
		sections = append(sections, fmt.Sprintf(`{"name":"%s","description":"%s","questions":[%s]}`,
			spec.name, spec.desc, strings.Join(questions, ",")))
	}

	return fmt.Sprintf(`{"sections":[%s]}`, strings.Join(sections, ","))
}
