package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

type filterService interface {
	Save(ctx context.Context, f domain.Filter) (*domain.Filter, error)
	FindByUserID(ctx context.Context, userID int) (*domain.Filter, bool, error)
	DeleteByUserID(ctx context.Context, userID int) (int, error)
	Profiles() []domain.FilterProfile
}

// FilterHandler serves the /filter endpoints.
type FilterHandler struct {
	svc filterService
	log *slog.Logger
}

// NewFilterHandler creates a FilterHandler.
func NewFilterHandler(svc filterService, logger *slog.Logger) *FilterHandler {
	return &FilterHandler{svc: svc, log: logger.With("handler", "filter")}
}

// Save handles POST /filter/. An existing filter of the same user is replaced.
func (h *FilterHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req filterDTO
	if !decodeBody(w, r, &req) {
		return
	}

	saved, err := h.svc.Save(r.Context(), req.toDomain())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFilterDTO(*saved))
}

// GetByUserID handles GET /filter/{userId}.
func (h *FilterHandler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathInt(w, r, "userId")
	if !ok {
		return
	}

	found, ok, err := h.svc.FindByUserID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "filter not found")
		return
	}

	writeJSON(w, http.StatusOK, toFilterDTO(*found))
}

// Delete handles DELETE /filter/delete/{userId}. The body is true when a
// filter was removed.
func (h *FilterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathInt(w, r, "userId")
	if !ok {
		return
	}

	n, err := h.svc.DeleteByUserID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if n == 0 {
		writeJSON(w, http.StatusNotFound, false)
		return
	}

	writeJSON(w, http.StatusOK, true)
}

// Profiles handles GET /filter/profiles.
func (h *FilterHandler) Profiles(w http.ResponseWriter, r *http.Request) {
	profiles := h.svc.Profiles()
	out := make([]filterProfileDTO, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, filterProfileDTO{ID: int(p), Name: p.Info()})
	}
	writeJSON(w, http.StatusOK, out)
}
