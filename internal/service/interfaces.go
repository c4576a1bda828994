package service

import (
	"context"

	"github.com/benx421/account-service/internal/models"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// AccountManager handles the account lifecycle
type AccountManager interface {
	Create(ctx context.Context, payload *models.AccountPayload) (*models.Account, error)
	Get(ctx context.Context, id int64) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	Update(ctx context.Context, id int64, payload *models.AccountPayload) (*models.Account, error)
	Delete(ctx context.Context, id int64) error
}

// Ensure concrete types implement interfaces
var (
	_ AccountManager = (*AccountService)(nil)
)
