package handlers

import (
	"context"
	"time"

	"github.com/benx421/account-service/internal/api"
)

// GetIndex handles GET /
func (h *Handler) GetIndex(
	_ context.Context,
	_ api.GetIndexRequestObject,
) (api.Response, error) {
	h.logger.Info("Request for Root URL")
	return api.Index200JSONResponse(h.index), nil
}

// GetHealth handles GET /health
func (h *Handler) GetHealth(
	ctx context.Context,
	_ api.GetHealthRequestObject,
) (api.Response, error) {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := h.healthChecker.PingContext(pingCtx); err != nil {
		h.logger.Error("health check failed: database unreachable", "error", err)
		return api.Health503JSONResponse{
			Status: api.HealthUnavailable,
		}, nil
	}

	return api.Health200JSONResponse{
		Status: api.HealthOK,
	}, nil
}
