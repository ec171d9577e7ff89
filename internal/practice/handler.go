package practice

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/cbse-prep/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Generate handles POST /practice/generate.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.ClassNum < 9 || req.ClassNum > 12 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "class_num must be between 9 and 12"})
		return
	}
	if req.Subject == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "subject is required"})
		return
	}
	if req.ChapterID <= 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "chapter_id is required"})
		return
	}
	if !models.ValidPracticeModes[req.Mode] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid mode"})
		return
	}

	questions, err := h.service.GeneratePractice(r.Context(), userID, req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.GenerateResponse{Questions: questions})
}

// FullPaper handles POST /papers/generate-full.
func (h *Handler) FullPaper(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.FullPaperRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Subject == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "subject is required"})
		return
	}

	paper, err := h.service.GenerateFullPaper(r.Context(), userID, req.Subject)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.FullPaperResponse{Paper: *paper})
}

// SaveSession handles POST /practice/save. The write happens in the
// background; the response only confirms the request was accepted.
func (h *Handler) SaveSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.SaveSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Subject == "" || !models.ValidPracticeModes[req.Mode] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "subject and valid mode are required"})
		return
	}
	if req.TotalQuestions <= 0 || req.CorrectAnswers < 0 || req.CorrectAnswers > req.TotalQuestions {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid question counts"})
		return
	}

	h.service.SaveSession(userID, req)
	writeJSON(w, http.StatusAccepted, map[string]bool{"accepted": true})
}

// History handles GET /practice/history.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	page := intQueryParam(r, "page", 1)
	pageSize := intQueryParam(r, "page_size", 20)

	resp, err := h.service.GetHistory(userID, page, pageSize)
	if err != nil {
		log.Printf("WARN: failed to load history for user %d: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load history"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Stats handles GET /practice/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	resp, err := h.service.GetStats(userID)
	if err != nil {
		log.Printf("WARN: failed to load stats for user %d: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load stats"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrProfileNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "complete your profile before practicing"})
	case errors.Is(err, ErrPaymentRequired):
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{
			Error: "free session limit reached, upgrade to premium to continue",
			Code:  "payment_required",
		})
	case errors.Is(err, ErrSubjectNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "subject not found for this class"})
	case errors.Is(err, ErrChapterNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "chapter not found"})
	default:
		log.Printf("WARN: generation request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error: "question generation failed, please try again",
			Code:  "generation_failed",
		})
	}
}

func getUserID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value("user_id").(int64)
	return userID, ok
}

func intQueryParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
