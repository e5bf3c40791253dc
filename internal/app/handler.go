package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mockinterview-backend/internal/adapter/postgres"
	filterrepo "github.com/heartmarshall/mockinterview-backend/internal/adapter/postgres/filter"
	interviewrepo "github.com/heartmarshall/mockinterview-backend/internal/adapter/postgres/interview"
	wisherrepo "github.com/heartmarshall/mockinterview-backend/internal/adapter/postgres/wisher"
	"github.com/heartmarshall/mockinterview-backend/internal/auth"
	"github.com/heartmarshall/mockinterview-backend/internal/config"
	filtersvc "github.com/heartmarshall/mockinterview-backend/internal/service/filter"
	interviewsvc "github.com/heartmarshall/mockinterview-backend/internal/service/interview"
	wishersvc "github.com/heartmarshall/mockinterview-backend/internal/service/wisher"
	"github.com/heartmarshall/mockinterview-backend/internal/transport/middleware"
	"github.com/heartmarshall/mockinterview-backend/internal/transport/rest"
)

// Database is what the HTTP stack needs from the connection pool.
// *pgxpool.Pool satisfies it.
type Database interface {
	postgres.Querier
	postgres.Beginner
	Ping(ctx context.Context) error
}

// NewHandler wires repositories, services and handlers into the full
// middleware-wrapped HTTP handler.
func NewHandler(db Database, cfg *config.Config, logger *slog.Logger) http.Handler {
	txm := postgres.NewTxManager(db)

	interviews := interviewrepo.New(db)
	wishers := wisherrepo.New(db)
	filters := filterrepo.New(db)

	interviewService := interviewsvc.NewService(logger, interviews, filters, interviewsvc.Config{
		DefaultPageSize: cfg.Interview.DefaultPageSize,
		MaxPageSize:     cfg.Interview.MaxPageSize,
		LastLimit:       cfg.Interview.LastLimit,
	})
	wisherService := wishersvc.NewService(logger, wishers, interviews, txm)
	filterService := filtersvc.NewService(logger, filters)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(db, BuildVersion()),
		Interview: rest.NewInterviewHandler(interviewService, logger),
		Wisher:    rest.NewWisherHandler(wisherService, interviewService, logger),
		Filter:    rest.NewFilterHandler(filterService, logger),
	})

	// Auth runs before Logger so request logs carry the user id.
	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
	)(router)
}
