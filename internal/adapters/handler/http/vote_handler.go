package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/questions/internal/core/domain"
	"github.com/vncsmyrnk/questions/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type voteRequest struct {
	AnswerID uuid.UUID `json:"answer"`
}

func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	var req voteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.AnswerID == uuid.Nil {
		writeFieldError(w, "answer", "This field is required.")
		return
	}

	vote, err := h.service.CastVote(r.Context(), req.AnswerID, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, vote)
}

func (h *VoteHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	votes, err := h.service.ListVotes(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if votes == nil {
		votes = []*domain.Vote{}
	}

	writeJSON(w, http.StatusOK, votes)
}

func (h *VoteHandler) GetVote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	vote, err := h.service.GetVote(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, vote)
}

func (h *VoteHandler) RetractVote(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.Retract(r.Context(), userID, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
