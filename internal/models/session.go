package models

import "time"

// PracticeSession is the persisted record of one completed (or abandoned)
// practice run: the questions that were served, the user's answers keyed by
// question id, and the scoring summary.
type PracticeSession struct {
	ID             int64             `json:"id"`
	UserID         int64             `json:"user_id"`
	ClassNum       int               `json:"class_num"`
	Subject        string            `json:"subject"`
	ChapterID      *int              `json:"chapter_id,omitempty"`
	Mode           PracticeMode      `json:"mode"`
	Questions      []Question        `json:"questions,omitempty"`
	Answers        map[string]string `json:"answers,omitempty"`
	TotalQuestions int               `json:"total_questions"`
	CorrectAnswers int               `json:"correct_answers"`
	TotalMarks     int               `json:"total_marks"`
	ScorePercent   float64           `json:"score_percent"`
	TimeSpentSecs  int               `json:"time_spent_secs"`
	Completed      bool              `json:"completed"`
	CreatedAt      time.Time         `json:"created_at"`
}

// ── Request Types ─────────────────────────────────────

type SaveSessionRequest struct {
	ClassNum       int               `json:"class_num"`
	Subject        string            `json:"subject"`
	ChapterID      *int              `json:"chapter_id,omitempty"`
	Mode           PracticeMode      `json:"mode"`
	Questions      []Question        `json:"questions,omitempty"`
	Answers        map[string]string `json:"answers,omitempty"`
	TotalQuestions int               `json:"total_questions"`
	CorrectAnswers int               `json:"correct_answers"`
	TotalMarks     int               `json:"total_marks"`
	TimeSpentSecs  int               `json:"time_spent_secs"`
	Completed      bool              `json:"completed"`
}

// ── Response Types ────────────────────────────────────

type SessionListResponse struct {
	Sessions []PracticeSession `json:"sessions"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

type SubjectStats struct {
	Subject      string  `json:"subject"`
	Sessions     int     `json:"sessions"`
	AvgScore     float64 `json:"avg_score"`
	BestScore    float64 `json:"best_score"`
	LastPractice string  `json:"last_practice"`
}

type SessionStatsResponse struct {
	TotalSessions  int            `json:"total_sessions"`
	TotalQuestions int            `json:"total_questions"`
	AvgScore       float64        `json:"avg_score"`
	SessionsUsed   int            `json:"sessions_used"`
	IsPremium      bool           `json:"is_premium"`
	BySubject      []SubjectStats `json:"by_subject"`
}
