package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

type interviewService interface {
	Save(ctx context.Context, in domain.Interview) (*domain.Interview, bool)
	Update(ctx context.Context, in domain.Interview) bool
	UpdateStatus(ctx context.Context, id, statusCode int) bool
	Delete(ctx context.Context, id int) error
	FindByID(ctx context.Context, id int) (*domain.Interview, bool, error)
	FindLast(ctx context.Context) ([]domain.Interview, error)
	FindNew(ctx context.Context) ([]domain.Interview, error)
	FindByMode(ctx context.Context, mode int) ([]domain.Interview, error)
	FindNeedingFeedback(ctx context.Context, userID int) ([]domain.Interview, error)
	FindPaging(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Interview], error)
	FindPagingRelated(ctx context.Context, userID int, page domain.PageRequest) (domain.Page[domain.Interview], error)
	FindWithFilters(ctx context.Context, params domain.FilterRequestParams, page domain.PageRequest) (domain.Page[domain.Interview], error)
	FindWithSavedFilter(ctx context.Context, userID int, page domain.PageRequest) (domain.Page[domain.Interview], error)
}

// InterviewHandler serves the /interview and /interviews endpoints.
type InterviewHandler struct {
	svc interviewService
	log *slog.Logger
}

// NewInterviewHandler creates an InterviewHandler.
func NewInterviewHandler(svc interviewService, logger *slog.Logger) *InterviewHandler {
	return &InterviewHandler{svc: svc, log: logger.With("handler", "interview")}
}

// ---------------------------------------------------------------------------
// /interview
// ---------------------------------------------------------------------------

// Create handles POST /interview/.
func (h *InterviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req interviewDTO
	if !decodeBody(w, r, &req) {
		return
	}

	saved, ok := h.svc.Save(r.Context(), req.toDomain())
	if !ok {
		writeError(w, http.StatusInternalServerError, "an error occurred while saving data")
		return
	}

	writeJSON(w, http.StatusCreated, toInterviewDTO(*saved))
}

// GetByID handles GET /interview/{id}.
func (h *InterviewHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	found, ok, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "interview not found")
		return
	}

	writeJSON(w, http.StatusOK, toInterviewDTO(*found))
}

// Update handles PUT /interview/. A write that changed nothing answers 204.
func (h *InterviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req interviewDTO
	if !decodeBody(w, r, &req) {
		return
	}

	if !h.svc.Update(r.Context(), req.toDomain()) {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, req)
}

// UpdateStatus handles PUT /interview/status/. Only id and statusId are read.
func (h *InterviewHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req interviewDTO
	if !decodeBody(w, r, &req) {
		return
	}

	if !h.svc.UpdateStatus(r.Context(), req.ID, req.StatusID) {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Delete handles DELETE /interview/{id}. Deleting a missing id succeeds.
func (h *InterviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// /interviews
// ---------------------------------------------------------------------------

// List handles GET /interviews/?page&size.
func (h *InterviewHandler) List(w http.ResponseWriter, r *http.Request) {
	page, ok := pageRequest(w, r)
	if !ok {
		return
	}
	h.writePage(w, r)(h.svc.FindPaging(r.Context(), page))
}

// Last handles GET /interviews/last.
func (h *InterviewHandler) Last(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r)(h.svc.FindLast(r.Context()))
}

// ByMode handles GET /interviews/{mode}.
func (h *InterviewHandler) ByMode(w http.ResponseWriter, r *http.Request) {
	mode, ok := pathInt(w, r, "mode")
	if !ok {
		return
	}
	h.writeList(w, r)(h.svc.FindByMode(r.Context(), mode))
}

// Related handles GET /interviews/findByUserIdRelated/{userId}.
func (h *InterviewHandler) Related(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathInt(w, r, "userId")
	if !ok {
		return
	}
	page, ok := pageRequest(w, r)
	if !ok {
		return
	}
	h.writePage(w, r)(h.svc.FindPagingRelated(r.Context(), userID, page))
}

// NoFeedback handles GET /interviews/noFeedback/{uId}.
func (h *InterviewHandler) NoFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathInt(w, r, "uId")
	if !ok {
		return
	}
	h.writeList(w, r)(h.svc.FindNeedingFeedback(r.Context(), userID))
}

// StatusNew handles GET /interviews/interviewStatusNew.
func (h *InterviewHandler) StatusNew(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r)(h.svc.FindNew(r.Context()))
}

// FilterParamsHeader carries the JSON search parameters of /interviews/getInterviews.
const FilterParamsHeader = "Filter-Request-Params"

// Filtered handles GET /interviews/getInterviews. The header is required; a
// missing or malformed header answers 400 before the search runs.
func (h *InterviewHandler) Filtered(w http.ResponseWriter, r *http.Request) {
	raw := r.Header.Get(FilterParamsHeader)
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing filter-request-params header")
		return
	}

	var params filterParamsDTO
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter-request-params header")
		return
	}

	page, ok := pageRequest(w, r)
	if !ok {
		return
	}
	h.writePage(w, r)(h.svc.FindWithFilters(r.Context(), params.toDomain(), page))
}

// SavedFilter handles GET /interviews/savedFilter/{userId}.
func (h *InterviewHandler) SavedFilter(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathInt(w, r, "userId")
	if !ok {
		return
	}
	page, ok := pageRequest(w, r)
	if !ok {
		return
	}
	h.writePage(w, r)(h.svc.FindWithSavedFilter(r.Context(), userID, page))
}

func (h *InterviewHandler) writeList(w http.ResponseWriter, r *http.Request) func([]domain.Interview, error) {
	return func(items []domain.Interview, err error) {
		if err != nil {
			writeServiceError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, toInterviewDTOs(items))
	}
}

func (h *InterviewHandler) writePage(w http.ResponseWriter, r *http.Request) func(domain.Page[domain.Interview], error) {
	return func(page domain.Page[domain.Interview], err error) {
		if err != nil {
			writeServiceError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPageDTO(page, toInterviewDTO))
	}
}
