package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"
	"github.com/vncsmyrnk/questions/internal/core/domain"
)

const (
	nonFieldErrors = "non_field_errors"

	msgNotFound        = "Not found."
	msgForbidden       = "You do not have permission to perform this action."
	msgUnauthenticated = "Authentication credentials were not provided."
	msgDuplicateVote   = "You have already voted on this question."
	msgInternal        = "A server error occurred."
)

type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

func writeFieldError(w http.ResponseWriter, field, message string) {
	if field == "" {
		field = nonFieldErrors
	}
	writeJSON(w, http.StatusBadRequest, map[string][]string{field: {message}})
}

// writeError maps service errors onto responses. Only unexpected failures are
// logged; their details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeFieldError(w, validationErr.Field, validationErr.Message)
	case errors.Is(err, domain.ErrDuplicateVote):
		writeFieldError(w, nonFieldErrors, msgDuplicateVote)
	case errors.Is(err, domain.ErrInvalidID):
		writeDetail(w, http.StatusBadRequest, "Invalid id.")
	case errors.Is(err, domain.ErrNotFound):
		writeDetail(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, domain.ErrForbidden):
		writeDetail(w, http.StatusForbidden, msgForbidden)
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
		writeDetail(w, http.StatusInternalServerError, msgInternal)
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("", "Invalid request body.")
	}
	return nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidID
	}
	return id, nil
}
