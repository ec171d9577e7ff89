package curriculum

import (
	"sort"
	"testing"
)

func TestSubjectsForClass(t *testing.T) {
	tests := []struct {
		class    int
		subjects []string
	}{
		{9, []string{"maths", "science"}},
		{10, []string{"maths", "science"}},
		{11, []string{"biology", "chemistry", "maths", "physics"}},
		{12, []string{"biology", "chemistry", "maths", "physics"}},
	}

	for _, tt := range tests {
		got := SubjectsForClass(tt.class)
		if len(got) != len(tt.subjects) {
			t.Fatalf("class %d: expected %d subjects, got %d", tt.class, len(tt.subjects), len(got))
		}
		if !sort.StringsAreSorted(got) {
			t.Errorf("class %d: subjects not sorted: %v", tt.class, got)
		}
		for i, want := range tt.subjects {
			if got[i] != want {
				t.Errorf("class %d: subject %d = %q, want %q", tt.class, i, got[i], want)
			}
		}
	}
}

func TestSubjectsForClass_Unknown(t *testing.T) {
	if got := SubjectsForClass(8); got != nil {
		t.Errorf("expected nil for class 8, got %v", got)
	}
}

func TestGetSubjectInfo_ChapterCounts(t *testing.T) {
	tests := []struct {
		class    int
		subject  string
		chapters int
	}{
		{9, "science", 12},
		{9, "maths", 13},
		{10, "science", 13},
		{10, "maths", 14},
		{11, "physics", 15},
		{11, "biology", 20},
		{12, "chemistry", 16},
		{12, "maths", 13},
	}

	for _, tt := range tests {
		info, ok := GetSubjectInfo(tt.class, tt.subject)
		if !ok {
			t.Fatalf("class %d %s: subject not found", tt.class, tt.subject)
		}
		if len(info.Chapters) != tt.chapters {
			t.Errorf("class %d %s: expected %d chapters, got %d", tt.class, tt.subject, tt.chapters, len(info.Chapters))
		}
	}
}

func TestGetChapterInfo(t *testing.T) {
	chapter, ok := GetChapterInfo(10, "science", 1)
	if !ok {
		t.Fatal("class 10 science chapter 1 not found")
	}
	if chapter.ID != 1 {
		t.Errorf("expected chapter id 1, got %d", chapter.ID)
	}
	if chapter.Name == "" || len(chapter.Topics) == 0 {
		t.Errorf("chapter missing name or topics: %+v", chapter)
	}
}

func TestGetChapterInfo_Missing(t *testing.T) {
	if _, ok := GetChapterInfo(10, "science", 99); ok {
		t.Error("expected chapter 99 to be absent")
	}
	if _, ok := GetChapterInfo(10, "history", 1); ok {
		t.Error("expected subject history to be absent")
	}
}

func TestChapterIDsSequential(t *testing.T) {
	for class, subjects := range Curriculum {
		for key, info := range subjects {
			for i, ch := range info.Chapters {
				if ch.ID != i+1 {
					t.Errorf("class %d %s: chapter %d has id %d", class, key, i+1, ch.ID)
				}
				if len(ch.Topics) == 0 {
					t.Errorf("class %d %s: chapter %q has no topics", class, key, ch.Name)
				}
			}
		}
	}
}
