package generator

import (
	"strconv"
	"strings"
	"testing"

	"github.com/cbse-prep/backend/internal/curriculum"
	"github.com/cbse-prep/backend/internal/models"
)

func TestBuildQuestionsPrompt_ContainsContext(t *testing.T) {
	chapter := curriculum.Chapter{
		ID:     3,
		Name:   "Metals and Non-metals",
		Topics: []string{"Physical properties", "Reactivity series", "Corrosion"},
	}

	prompt := BuildQuestionsPrompt(10, "science", chapter, models.ModeQuick, 30)

	for _, want := range []string{
		"Class: 10",
		"Metals and Non-metals",
		"Reactivity series",
		"30 MCQ questions",
		`"questions"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestModeInstructions_ChapterTestSplit(t *testing.T) {
	tests := []struct {
		count            int
		mcq, short, long int
	}{
		{8, 4, 3, 1},
		{24, 12, 8, 4},
		{10, 5, 3, 2},
	}

	for _, tt := range tests {
		got := modeInstructions(models.ModeChapterTest, tt.count)
		for _, want := range []string{
			strconv.Itoa(tt.mcq) + " MCQs",
			strconv.Itoa(tt.short) + " short answer",
			strconv.Itoa(tt.long) + " long answer",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("count %d: instruction missing %q in %q", tt.count, want, got)
			}
		}
	}
}

func TestBuildFullPaperPrompt_SectionContract(t *testing.T) {
	info, ok := curriculum.GetSubjectInfo(10, "science")
	if !ok {
		t.Fatal("class 10 science not found")
	}

	prompt := BuildFullPaperPrompt(10, info)

	for _, want := range []string{
		"Section A: 20 MCQ",
		"Section E: 4 Long Answer",
		"100 marks, 46 questions",
		"chapter_reference",
		info.Chapters[0].Name,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
