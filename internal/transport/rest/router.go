package rest

import (
	"net/http"

	"github.com/heartmarshall/mockinterview-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Interview *InterviewHandler
	Wisher    *WisherHandler
	Filter    *FilterHandler
}

// NewRouter registers every route. Mutating routes require an authenticated
// user; the caller must install middleware.Auth in front of the router.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()
	authed := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(fn)
	}

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /interview/{$}", authed(h.Interview.Create))
	mux.HandleFunc("GET /interview/{id}", h.Interview.GetByID)
	mux.Handle("PUT /interview/{$}", authed(h.Interview.Update))
	mux.Handle("PUT /interview/status/{$}", authed(h.Interview.UpdateStatus))
	mux.Handle("DELETE /interview/{id}", authed(h.Interview.Delete))

	mux.HandleFunc("GET /interviews/{$}", h.Interview.List)
	mux.HandleFunc("GET /interviews/last", h.Interview.Last)
	mux.HandleFunc("GET /interviews/interviewStatusNew", h.Interview.StatusNew)
	mux.HandleFunc("GET /interviews/getInterviews", h.Interview.Filtered)
	mux.HandleFunc("GET /interviews/{mode}", h.Interview.ByMode)
	mux.HandleFunc("GET /interviews/findByUserIdRelated/{userId}", h.Interview.Related)
	mux.HandleFunc("GET /interviews/noFeedback/{uId}", h.Interview.NoFeedback)
	mux.HandleFunc("GET /interviews/savedFilter/{userId}", h.Interview.SavedFilter)

	mux.Handle("POST /wisher/{$}", authed(h.Wisher.Create))
	mux.HandleFunc("GET /wisher/{id}", h.Wisher.GetByID)
	mux.Handle("PUT /wisher/{$}", authed(h.Wisher.Update))
	mux.Handle("DELETE /wisher/{id}", authed(h.Wisher.Delete))

	mux.HandleFunc("GET /wishers/{$}", h.Wisher.List)
	mux.HandleFunc("GET /wishers/{id}", h.Wisher.ByInterview)
	mux.HandleFunc("GET /wishers/dto/{$}", h.Wisher.List)
	mux.HandleFunc("GET /wishers/dto/{id}", h.Wisher.ByInterviewDTO)
	mux.HandleFunc("GET /wishers/approved/{$}", h.Wisher.Approved)
	mux.HandleFunc("GET /wishers/approved/{id}", h.Wisher.ApprovedForUser)
	mux.Handle("POST /wishers/approve/{$}", authed(h.Wisher.Approve))

	mux.Handle("POST /filter/{$}", authed(h.Filter.Save))
	mux.HandleFunc("GET /filter/profiles", h.Filter.Profiles)
	mux.HandleFunc("GET /filter/{userId}", h.Filter.GetByUserID)
	mux.Handle("DELETE /filter/delete/{userId}", authed(h.Filter.Delete))

	return mux
}
