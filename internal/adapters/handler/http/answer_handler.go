package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/questions/internal/core/domain"
	"github.com/vncsmyrnk/questions/internal/core/ports"
)

type AnswerHandler struct {
	service ports.AnswerService
}

func NewAnswerHandler(service ports.AnswerService) *AnswerHandler {
	return &AnswerHandler{
		service: service,
	}
}

func (h *AnswerHandler) ListAnswers(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	answers, err := h.service.ListAnswers(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if answers == nil {
		answers = []*domain.Answer{}
	}

	writeJSON(w, http.StatusOK, answers)
}

func (h *AnswerHandler) GetAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	answer, err := h.service.GetAnswer(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, answer)
}

func (h *AnswerHandler) UpdateAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, msgUnauthenticated)
		return
	}
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req updateTextRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	answer, err := h.service.Update(r.Context(), userID, id, req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, answer)
}

func (h *AnswerHandler) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, msgUnauthenticated)
		return
	}
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
