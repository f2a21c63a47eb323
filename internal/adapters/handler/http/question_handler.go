package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/questions/internal/core/domain"
	"github.com/vncsmyrnk/questions/internal/core/ports"
)

type QuestionHandler struct {
	service ports.QuestionService
	votes   ports.VoteService
}

func NewQuestionHandler(service ports.QuestionService, votes ports.VoteService) *QuestionHandler {
	return &QuestionHandler{
		service: service,
		votes:   votes,
	}
}

type createQuestionRequest struct {
	Text    string `json:"text"`
	Answers []struct {
		Text string `json:"text"`
	} `json:"answers"`
}

type updateTextRequest struct {
	Text string `json:"text"`
}

func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := currentUser(r)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	var req createQuestionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	input := ports.CreateQuestionInput{Text: req.Text}
	for _, a := range req.Answers {
		input.Answers = append(input.Answers, a.Text)
	}

	question, err := h.service.Create(r.Context(), ownerID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, question)
}

func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	questions, err := h.service.ListQuestions(r.Context(), ports.ListQuestionsInput{
		Page:   page,
		Search: r.URL.Query().Get("search"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	if questions == nil {
		questions = []*domain.Question{}
	}

	writeJSON(w, http.StatusOK, questions)
}

func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	question, err := h.service.GetQuestion(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, question)
}

func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
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

	question, err := h.service.Update(r.Context(), userID, id, req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, question)
}

func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
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

// MyVote returns the caller's vote on the question, or 404 when there is none.
func (h *QuestionHandler) MyVote(w http.ResponseWriter, r *http.Request) {
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

	vote, err := h.votes.MyVote(r.Context(), id, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, vote)
}
