package models

type PracticeMode string

const (
	ModeQuick       PracticeMode = "quick"
	ModeChapterTest PracticeMode = "chapter_test"
	ModePYQ         PracticeMode = "pyq"
	ModeSamplePaper PracticeMode = "sample_paper"
)

var ValidPracticeModes = map[PracticeMode]bool{
	ModeQuick:       true,
	ModeChapterTest: true,
	ModePYQ:         true,
	ModeSamplePaper: true,
}

type QuestionType string

const (
	TypeMCQ         QuestionType = "mcq"
	TypeShortAnswer QuestionType = "short_answer"
	TypeLongAnswer  QuestionType = "long_answer"
)

var ValidQuestionTypes = map[QuestionType]bool{
	TypeMCQ:         true,
	TypeShortAnswer: true,
	TypeLongAnswer:  true,
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var ValidDifficulties = map[Difficulty]bool{
	DifficultyEasy:   true,
	DifficultyMedium: true,
	DifficultyHard:   true,
}

// ── Core Structs ───────────────────────────────────────

// Question is one assessable item. For MCQs, Options holds exactly four
// strings labelled "A)" through "D)" and CorrectAnswer is the matching
// letter. For subjective types Options is empty and CorrectAnswer is the
// model answer text.
type Question struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correct_answer"`
	Explanation   string       `json:"explanation"`
	Marks         int          `json:"marks"`
	Difficulty    Difficulty   `json:"difficulty"`
}

// PaperQuestion is the full-paper variant of Question: it carries an
// optional chapter reference and no difficulty label.
type PaperQuestion struct {
	ID               string       `json:"id"`
	Type             QuestionType `json:"type"`
	Question         string       `json:"question"`
	Options          []string     `json:"options,omitempty"`
	CorrectAnswer    string       `json:"correct_answer"`
	Explanation      string       `json:"explanation"`
	Marks            int          `json:"marks"`
	ChapterReference string       `json:"chapter_reference,omitempty"`
}

type PaperSection struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Questions   []PaperQuestion `json:"questions"`
}

// ExamPaper is a full-syllabus board-style paper. It is generated fresh on
// every request and never cached or persisted.
type ExamPaper struct {
	ClassNum    int            `json:"classNum"`
	SubjectName string         `json:"subjectName"`
	TotalMarks  int            `json:"totalMarks"`
	Duration    string         `json:"duration"`
	Sections    []PaperSection `json:"sections"`
}

// ── Request Types ─────────────────────────────────────

type GenerateRequest struct {
	ClassNum  int          `json:"class_num"`
	Subject   string       `json:"subject"`
	ChapterID int          `json:"chapter_id"`
	Topics    []string     `json:"topics,omitempty"`
	Mode      PracticeMode `json:"mode"`
}

type FullPaperRequest struct {
	Subject string `json:"subject"`
}

// ── Response Types ────────────────────────────────────

type GenerateResponse struct {
	Questions []Question `json:"questions"`
}

type FullPaperResponse struct {
	Paper ExamPaper `json:"paper"`
}
