package handlers

import (
	"log/slog"
	"net/http"

	"github.com/benx421/account-service/internal/api"
	"github.com/benx421/account-service/internal/config"
	"github.com/benx421/account-service/internal/db"
	"github.com/benx421/account-service/internal/middleware"
	"github.com/benx421/account-service/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	accountService := service.NewAccountService(database)
	index := api.Index{Name: cfg.App.Name, Version: cfg.App.Version}

	handler := NewHandler(accountService, database, index, logger)
	return newRouter(handler, cfg, logger)
}

func newRouter(ssi api.StrictServerInterface, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(logger))
	r.Use(middleware.Recover(logger))

	var metrics *middleware.Metrics
	if cfg.App.MetricsEnabled {
		metrics = middleware.NewMetrics()
		r.Use(metrics.Middleware)
	}

	r.Use(chimw.StripSlashes)
	r.Use(middleware.CORS(cfg.App.CORSAllowedOrigins))
	r.Use(middleware.SecurityHeaders(cfg.App.ForceHTTPS))

	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}
	api.RegisterDocsRoutes(r)

	return api.HandlerFromMux(ssi, r, api.StrictHandlerOptions{
		ErrorHandlerFunc: func(w http.ResponseWriter, req *http.Request, err error) {
			logger.Error("failed to handle request",
				"error", err,
				"method", req.Method,
				"path", req.URL.Path,
				"request_id", middleware.RequestIDFromContext(req.Context()),
			)
			//nolint:errcheck // Best effort response writing
			api.InternalErrorJSONResponse(api.NewError(http.StatusInternalServerError, msgInternal)).VisitResponse(w)
		},
	})
}
