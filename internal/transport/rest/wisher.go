package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

type wisherService interface {
	Save(ctx context.Context, w domain.Wisher) (*domain.Wisher, bool)
	Update(ctx context.Context, w domain.Wisher) bool
	Delete(ctx context.Context, id int) (bool, error)
	SetApprove(ctx context.Context, interviewID, wisherID int, approve bool) error
	FindByID(ctx context.Context, id int) (*domain.Wisher, bool, error)
	FindAll(ctx context.Context) ([]domain.Wisher, error)
	FindByInterview(ctx context.Context, interviewID int) ([]domain.Wisher, error)
	CountApprovedPerUser(ctx context.Context) ([]domain.ApprovedCount, error)
	CountApprovedForUser(ctx context.Context, userID int) (domain.ApprovedCount, error)
}

type interviewFinder interface {
	FindByID(ctx context.Context, id int) (*domain.Interview, bool, error)
}

// WisherHandler serves the /wisher and /wishers endpoints.
type WisherHandler struct {
	wishers    wisherService
	interviews interviewFinder
	log        *slog.Logger
}

// NewWisherHandler creates a WisherHandler.
func NewWisherHandler(wishers wisherService, interviews interviewFinder, logger *slog.Logger) *WisherHandler {
	return &WisherHandler{
		wishers:    wishers,
		interviews: interviews,
		log:        logger.With("handler", "wisher"),
	}
}

// ---------------------------------------------------------------------------
// /wisher
// ---------------------------------------------------------------------------

// Create handles POST /wisher/.
func (h *WisherHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req wisherDTO
	if !decodeBody(w, r, &req) {
		return
	}
	if !h.requireInterview(w, r, req.InterviewID) {
		return
	}

	saved, ok := h.wishers.Save(r.Context(), req.toDomain())
	if !ok {
		writeError(w, http.StatusInternalServerError, "an error occurred while saving data")
		return
	}

	writeJSON(w, http.StatusCreated, toWisherDTO(*saved))
}

// GetByID handles GET /wisher/{id}.
func (h *WisherHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	found, ok, err := h.wishers.FindByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "wisher not found")
		return
	}

	writeJSON(w, http.StatusOK, toWisherDTO(*found))
}

// Update handles PUT /wisher/. Both the wisher and its target interview must
// exist.
func (h *WisherHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req wisherDTO
	if !decodeBody(w, r, &req) {
		return
	}

	_, ok, err := h.wishers.FindByID(r.Context(), req.ID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "wisher not found")
		return
	}
	if !h.requireInterview(w, r, req.InterviewID) {
		return
	}

	if !h.wishers.Update(r.Context(), req.toDomain()) {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, req)
}

// Delete handles DELETE /wisher/{id}.
func (h *WisherHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.wishers.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "wisher not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// /wishers
// ---------------------------------------------------------------------------

// List handles GET /wishers/ and GET /wishers/dto/.
func (h *WisherHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.wishers.FindAll(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toWisherDTOs(items))
}

// ByInterview handles GET /wishers/{id}. The interview must exist.
func (h *WisherHandler) ByInterview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	if !h.requireInterview(w, r, id) {
		return
	}
	h.writeByInterview(w, r, id)
}

// ByInterviewDTO handles GET /wishers/dto/{id}. An unknown interview yields
// an empty list.
func (h *WisherHandler) ByInterviewDTO(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	h.writeByInterview(w, r, id)
}

// Approved handles GET /wishers/approved/.
func (h *WisherHandler) Approved(w http.ResponseWriter, r *http.Request) {
	counts, err := h.wishers.CountApprovedPerUser(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]approvedCountDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, toApprovedCountDTO(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// ApprovedForUser handles GET /wishers/approved/{id}.
func (h *WisherHandler) ApprovedForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	count, err := h.wishers.CountApprovedForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toApprovedCountDTO(count))
}

// Approve handles POST /wishers/approve/?interviewId&wisherId&newApprove.
// newApprove is true only for a case-insensitive "true".
func (h *WisherHandler) Approve(w http.ResponseWriter, r *http.Request) {
	interviewID, err := strconv.Atoi(r.FormValue("interviewId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid interviewId")
		return
	}
	wisherID, err := strconv.Atoi(r.FormValue("wisherId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid wisherId")
		return
	}
	approve := strings.EqualFold(r.FormValue("newApprove"), "true")

	if err := h.wishers.SetApprove(r.Context(), interviewID, wisherID, approve); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *WisherHandler) writeByInterview(w http.ResponseWriter, r *http.Request, interviewID int) {
	items, err := h.wishers.FindByInterview(r.Context(), interviewID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toWisherDTOs(items))
}

// requireInterview answers 404 and returns false when the interview is missing.
func (h *WisherHandler) requireInterview(w http.ResponseWriter, r *http.Request, interviewID int) bool {
	_, ok, err := h.interviews.FindByID(r.Context(), interviewID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return false
	}
	if !ok {
		writeError(w, http.StatusNotFound, "interview not found")
		return false
	}
	return true
}
