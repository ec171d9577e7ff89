package curriculum

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cbse-prep/backend/internal/models"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ListSubjects returns the subjects offered for a class.
// GET /curriculum/subjects?class=10
func (h *Handler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	classNum, ok := intQueryParam(r, "class")
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "class query parameter is required"})
		return
	}

	subjects := SubjectsForClass(classNum)
	if subjects == nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "No curriculum for class"})
		return
	}

	type subjectEntry struct {
		Key  string `json:"key"`
		Name string `json:"name"`
	}
	entries := make([]subjectEntry, 0, len(subjects))
	for _, key := range subjects {
		info, _ := GetSubjectInfo(classNum, key)
		entries = append(entries, subjectEntry{Key: key, Name: info.Name})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"class":    classNum,
		"subjects": entries,
	})
}

// ListChapters returns the chapter list for a class and subject.
// GET /curriculum/chapters?class=10&subject=science
func (h *Handler) ListChapters(w http.ResponseWriter, r *http.Request) {
	classNum, ok := intQueryParam(r, "class")
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "class query parameter is required"})
		return
	}

	subject := r.URL.Query().Get("subject")
	if subject == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "subject query parameter is required"})
		return
	}

	info, found := GetSubjectInfo(classNum, subject)
	if !found {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Subject not found for class"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"class":    classNum,
		"subject":  subject,
		"name":     info.Name,
		"chapters": info.Chapters,
	})
}

func intQueryParam(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
