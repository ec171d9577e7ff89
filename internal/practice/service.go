package practice

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/cbse-prep/backend/internal/curriculum"
	"github.com/cbse-prep/backend/internal/generator"
	"github.com/cbse-prep/backend/internal/models"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrChapterNotFound = errors.New("chapter not found")
	ErrPaymentRequired = errors.New("free session limit reached")
)

// serveCounts is how many questions one session serves per mode.
// sample_paper is generated fresh each time and served in full.
var serveCounts = map[models.PracticeMode]int{
	models.ModeQuick:       10,
	models.ModeChapterTest: 8,
	models.ModePYQ:         8,
	models.ModeSamplePaper: 25,
}

// poolMultiplier sizes cached pools relative to the serve count so repeat
// requests get a fresh-feeling subset without paying for regeneration.
const poolMultiplier = 3

// QuestionGenerator is the slice of generator.Generator this service uses.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, classNum int, subject string, chapter curriculum.Chapter, mode models.PracticeMode, count int) ([]models.Question, *generator.LLMResponse, error)
	GenerateFullPaper(ctx context.Context, classNum int, subject string, info curriculum.SubjectInfo) (*models.ExamPaper, *generator.LLMResponse, error)
}

type Service struct {
	store Store
	gen   QuestionGenerator
}

func NewService(store Store, gen QuestionGenerator) *Service {
	return &Service{store: store, gen: gen}
}

// cacheable reports whether a mode's pools are stored for reuse.
// sample_paper sets must be unique, so they always regenerate.
func cacheable(mode models.PracticeMode) bool {
	return mode != models.ModeSamplePaper
}

// GeneratePractice runs the full pipeline for one practice request:
// entitlement gate, cache consult, generation on miss, pool write-back,
// sampling, and usage accounting. The session counter moves exactly once
// per accepted serve and never on a denied or failed request.
func (s *Service) GeneratePractice(ctx context.Context, userID int64, req models.GenerateRequest) ([]models.Question, error) {
	user, err := s.store.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Class == nil {
		return nil, ErrProfileNotFound
	}

	if !CheckEntitlement(user) {
		return nil, ErrPaymentRequired
	}

	if _, found := curriculum.GetSubjectInfo(req.ClassNum, req.Subject); !found {
		return nil, ErrSubjectNotFound
	}
	chapter, found := curriculum.GetChapterInfo(req.ClassNum, req.Subject, req.ChapterID)
	if !found {
		return nil, ErrChapterNotFound
	}
	if len(req.Topics) > 0 {
		chapter.Topics = req.Topics
	}

	serve := serveCounts[req.Mode]
	key := CacheKey{ClassNum: req.ClassNum, Subject: req.Subject, ChapterID: req.ChapterID, Mode: req.Mode}

	// Cache consult. A pool only satisfies the request if it holds at
	// least a full serving; short pools are treated as misses.
	if cacheable(req.Mode) {
		pool, err := s.store.GetCachedPool(key)
		if err != nil {
			log.Printf("WARN: cache read failed for %+v: %v", key, err)
		}
		if len(pool) >= serve {
			served := SamplePool(pool, serve)
			s.recordUsage(user)
			return served, nil
		}
	}

	poolSize := serve
	if cacheable(req.Mode) {
		poolSize = serve * poolMultiplier
	}

	pool, llmResp, err := s.gen.GenerateQuestions(ctx, req.ClassNum, req.Subject, chapter, req.Mode, poolSize)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}
	if len(pool) < serve {
		return nil, fmt.Errorf("generation failed: got %d questions, need %d", len(pool), serve)
	}
	if llmResp != nil {
		log.Printf("[generate] key=%+v pool=%d tokens=%d/%d", key, len(pool), llmResp.PromptTokens, llmResp.OutputTokens)
	}

	// Write back with a background context so a client disconnect after
	// generation doesn't lose the pool we already paid for. A failed write
	// fails the request; nothing has been served or counted yet.
	if cacheable(req.Mode) {
		if err := s.store.UpsertCachedPool(context.Background(), key, pool); err != nil {
			return nil, fmt.Errorf("cache pool: %w", err)
		}
	}

	served := SamplePool(pool, serve)
	s.recordUsage(user)
	return served, nil
}

// GenerateFullPaper builds a fresh 100-mark board paper for one of the
// user's subjects. Class and chapter list come from the stored profile;
// papers are never cached.
func (s *Service) GenerateFullPaper(ctx context.Context, userID int64, subject string) (*models.ExamPaper, error) {
	user, err := s.store.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Class == nil {
		return nil, ErrProfileNotFound
	}

	if !CheckEntitlement(user) {
		return nil, ErrPaymentRequired
	}

	info, found := curriculum.GetSubjectInfo(*user.Class, subject)
	if !found {
		return nil, ErrSubjectNotFound
	}

	paper, llmResp, err := s.gen.GenerateFullPaper(ctx, *user.Class, subject, info)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}
	if llmResp != nil {
		log.Printf("[full-paper] class=%d subject=%s tokens=%d/%d", *user.Class, subject, llmResp.PromptTokens, llmResp.OutputTokens)
	}

	s.recordUsage(user)
	return paper, nil
}

// recordUsage moves the session counter once per accepted serve, premium
// or free. For premium users the counter never gates anything; it is a
// plain attempt count.
func (s *Service) recordUsage(user *models.User) {
	if err := s.store.IncrementSessionsUsed(user.ID); err != nil {
		// The content is already committed to the response at this point;
		// the counter write is best-effort.
		log.Printf("WARN: failed to increment sessions_used for user %d: %v", user.ID, err)
	}
}

// SaveSession persists a completed session in the background so the client
// response never waits on it. Failures are logged and swallowed.
func (s *Service) SaveSession(userID int64, req models.SaveSessionRequest) {
	go func() {
		if _, err := s.store.InsertSession(context.Background(), userID, req); err != nil {
			log.Printf("WARN: failed to save practice session for user %d: %v", userID, err)
		}
	}()
}

func (s *Service) GetHistory(userID int64, page, pageSize int) (*models.SessionListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 50 {
		pageSize = 50
	}

	sessions, total, err := s.store.ListSessions(userID, page, pageSize)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []models.PracticeSession{}
	}
	return &models.SessionListResponse{
		Sessions: sessions,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *Service) GetStats(userID int64) (*models.SessionStatsResponse, error) {
	return s.store.GetStats(userID)
}
