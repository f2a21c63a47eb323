package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/questions/internal/core/domain"
	"github.com/vncsmyrnk/questions/internal/core/ports"
)

type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		service: service,
	}
}

// Omitted fields are left unchanged.
type updateProfileRequest struct {
	Name    *string `json:"name"`
	Content *string `json:"content"`
}

func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	profiles, err := h.service.ListProfiles(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if profiles == nil {
		profiles = []*domain.Profile{}
	}

	writeJSON(w, http.StatusOK, profiles)
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) MyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	profile, err := h.service.MyProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
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

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, id, ports.UpdateProfileInput{
		Name:    req.Name,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
