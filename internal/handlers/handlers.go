// Package handlers implements HTTP handlers for the account API.
package handlers

import (
	"log/slog"

	"github.com/benx421/account-service/internal/api"
	"github.com/benx421/account-service/internal/service"
)

// Handler implements the api.StrictServerInterface for all endpoints
type Handler struct {
	accounts      service.AccountManager
	healthChecker service.HealthChecker
	logger        *slog.Logger
	index         api.Index
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	accounts service.AccountManager,
	healthChecker service.HealthChecker,
	index api.Index,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		accounts:      accounts,
		healthChecker: healthChecker,
		index:         index,
		logger:        logger,
	}
}

var _ api.StrictServerInterface = (*Handler)(nil)
