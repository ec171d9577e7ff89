package practice

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/cbse-prep/backend/internal/models"
	"github.com/lib/pq"
)

// CacheKey identifies one cached question pool.
type CacheKey struct {
	ClassNum  int
	Subject   string
	ChapterID int
	Mode      models.PracticeMode
}

// Store is the persistence surface the practice service needs. It is an
// interface so the generation pipeline can be exercised against fakes.
type Store interface {
	GetUser(userID int64) (*models.User, error)
	GetCachedPool(key CacheKey) ([]models.Question, error)
	UpsertCachedPool(ctx context.Context, key CacheKey, pool []models.Question) error
	IncrementSessionsUsed(userID int64) error
	InsertSession(ctx context.Context, userID int64, req models.SaveSessionRequest) (*models.PracticeSession, error)
	ListSessions(userID int64, page, pageSize int) ([]models.PracticeSession, int, error)
	GetStats(userID int64) (*models.SessionStatsResponse, error)
}

type PostgresStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) GetUser(userID int64) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(
		`SELECT id, email, name, class_num, subjects, sessions_used, is_premium, premium_expires_at, created_at, updated_at
		 FROM users WHERE id = $1`,
		userID,
	).Scan(&user.ID, &user.Email, &user.Name, &user.Class, pq.Array(&user.Subjects),
		&user.SessionsUsed, &user.IsPremium, &user.PremiumExpiresAt, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// GetCachedPool returns the pool stored under key, or nil when the key is
// absent.
func (s *PostgresStore) GetCachedPool(key CacheKey) ([]models.Question, error) {
	var raw []byte
	err := s.db.QueryRow(
		`SELECT questions FROM question_cache
		 WHERE class_num = $1 AND subject = $2 AND chapter_id = $3 AND mode = $4`,
		key.ClassNum, key.Subject, key.ChapterID, string(key.Mode),
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached pool: %w", err)
	}

	var pool []models.Question
	if err := json.Unmarshal(raw, &pool); err != nil {
		return nil, fmt.Errorf("decode cached pool: %w", err)
	}
	return pool, nil
}

// UpsertCachedPool overwrites the pool for key. Last writer wins; two
// concurrent regenerations for the same key race and the later write sticks.
func (s *PostgresStore) UpsertCachedPool(ctx context.Context, key CacheKey, pool []models.Question) error {
	raw, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("encode pool: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO question_cache (class_num, subject, chapter_id, mode, questions, updated_at)
		 VALUES ($1, $2, $3, $4, $5, NOW())
		 ON CONFLICT (class_num, subject, chapter_id, mode)
		 DO UPDATE SET questions = EXCLUDED.questions, updated_at = NOW()`,
		key.ClassNum, key.Subject, key.ChapterID, string(key.Mode), raw)
	if err != nil {
		return fmt.Errorf("upsert cached pool: %w", err)
	}
	return nil
}

func (s *PostgresStore) IncrementSessionsUsed(userID int64) error {
	_, err := s.db.Exec(
		`UPDATE users SET sessions_used = sessions_used + 1, updated_at = NOW() WHERE id = $1`,
		userID)
	if err != nil {
		return fmt.Errorf("increment sessions used: %w", err)
	}
	return nil
}

func (s *PostgresStore) InsertSession(ctx context.Context, userID int64, req models.SaveSessionRequest) (*models.PracticeSession, error) {
	score := 0.0
	if req.TotalQuestions > 0 {
		score = float64(req.CorrectAnswers) / float64(req.TotalQuestions) * 100
	}

	questionsJSON, err := json.Marshal(req.Questions)
	if err != nil {
		return nil, fmt.Errorf("encode session questions: %w", err)
	}
	answersJSON, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, fmt.Errorf("encode session answers: %w", err)
	}

	var session models.PracticeSession
	var rawQuestions, rawAnswers []byte
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO practice_sessions (user_id, class_num, subject, chapter_id, mode, questions, answers, total_questions, correct_answers, total_marks, score_percent, time_spent_secs, completed)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id, user_id, class_num, subject, chapter_id, mode, questions, answers, total_questions, correct_answers, total_marks, score_percent, time_spent_secs, completed, created_at`,
		userID, req.ClassNum, req.Subject, req.ChapterID, string(req.Mode),
		questionsJSON, answersJSON, req.TotalQuestions, req.CorrectAnswers,
		req.TotalMarks, score, req.TimeSpentSecs, req.Completed,
	).Scan(&session.ID, &session.UserID, &session.ClassNum, &session.Subject, &session.ChapterID,
		&session.Mode, &rawQuestions, &rawAnswers, &session.TotalQuestions, &session.CorrectAnswers,
		&session.TotalMarks, &session.ScorePercent, &session.TimeSpentSecs, &session.Completed,
		&session.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	if len(rawQuestions) > 0 {
		if err := json.Unmarshal(rawQuestions, &session.Questions); err != nil {
			return nil, fmt.Errorf("decode session questions: %w", err)
		}
	}
	if len(rawAnswers) > 0 {
		if err := json.Unmarshal(rawAnswers, &session.Answers); err != nil {
			return nil, fmt.Errorf("decode session answers: %w", err)
		}
	}
	return &session, nil
}

func (s *PostgresStore) ListSessions(userID int64, page, pageSize int) ([]models.PracticeSession, int, error) {
	var total int
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM practice_sessions WHERE user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sessions: %w", err)
	}

	// The history list is a summary view; the questions/answers blobs stay
	// in the table and are not paged out here.
	offset := (page - 1) * pageSize
	rows, err := s.db.Query(
		`SELECT id, user_id, class_num, subject, chapter_id, mode, total_questions, correct_answers, total_marks, score_percent, time_spent_secs, completed, created_at
		 FROM practice_sessions
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.PracticeSession
	for rows.Next() {
		var session models.PracticeSession
		if err := rows.Scan(&session.ID, &session.UserID, &session.ClassNum, &session.Subject,
			&session.ChapterID, &session.Mode, &session.TotalQuestions, &session.CorrectAnswers,
			&session.TotalMarks, &session.ScorePercent, &session.TimeSpentSecs, &session.Completed,
			&session.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, total, rows.Err()
}

func (s *PostgresStore) GetStats(userID int64) (*models.SessionStatsResponse, error) {
	stats := &models.SessionStatsResponse{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(total_questions), 0), COALESCE(AVG(score_percent), 0)
		 FROM practice_sessions WHERE user_id = $1`,
		userID,
	).Scan(&stats.TotalSessions, &stats.TotalQuestions, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("session stats: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT sessions_used, is_premium FROM users WHERE id = $1`, userID,
	).Scan(&stats.SessionsUsed, &stats.IsPremium)
	if err != nil {
		return nil, fmt.Errorf("user quota: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT subject, COUNT(*), AVG(score_percent), MAX(score_percent), MAX(created_at)::text
		 FROM practice_sessions
		 WHERE user_id = $1
		 GROUP BY subject
		 ORDER BY COUNT(*) DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("subject stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sub models.SubjectStats
		if err := rows.Scan(&sub.Subject, &sub.Sessions, &sub.AvgScore, &sub.BestScore, &sub.LastPractice); err != nil {
			return nil, fmt.Errorf("scan subject stats: %w", err)
		}
		stats.BySubject = append(stats.BySubject, sub)
	}
	if stats.BySubject == nil {
		stats.BySubject = []models.SubjectStats{}
	}
	return stats, rows.Err()
}
