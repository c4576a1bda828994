package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/benx421/account-service/internal/db"
	"github.com/benx421/account-service/internal/models"
	"github.com/benx421/account-service/internal/repository"
)

// AccountService handles the account lifecycle. Every mutation runs in its
// own transaction; reads go straight to the pool.
type AccountService struct {
	db  *db.DB
	now func() time.Time
}

// NewAccountService creates a new AccountService
func NewAccountService(database *db.DB) *AccountService {
	return &AccountService{
		db:  database,
		now: time.Now,
	}
}

// Create validates the payload and persists a new account
func (s *AccountService) Create(ctx context.Context, payload *models.AccountPayload) (*models.Account, error) {
	if err := ValidateAccountPayload(payload); err != nil {
		return nil, err
	}

	var account *models.Account
	err := s.withTx(ctx, func(repo repository.AccountRepository) error {
		var err error
		account, err = s.performCreate(ctx, repo, payload)
		return err
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// Get returns a single account
func (s *AccountService) Get(ctx context.Context, id int64) (*models.Account, error) {
	return s.performGet(ctx, repository.NewAccountRepository(s.db), id)
}

// List returns every account in insertion order
func (s *AccountService) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := repository.NewAccountRepository(s.db).List(ctx)
	if err != nil {
		return nil, internalError("failed to list accounts", err)
	}
	return accounts, nil
}

// Update replaces every mutable field of an existing account
func (s *AccountService) Update(ctx context.Context, id int64, payload *models.AccountPayload) (*models.Account, error) {
	if err := ValidateAccountPayload(payload); err != nil {
		return nil, err
	}

	var account *models.Account
	err := s.withTx(ctx, func(repo repository.AccountRepository) error {
		var err error
		account, err = s.performUpdate(ctx, repo, id, payload)
		return err
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// Delete removes an existing account
func (s *AccountService) Delete(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(repo repository.AccountRepository) error {
		return s.performDelete(ctx, repo, id)
	})
}

// withTx runs fn against a repository bound to a fresh transaction and
// commits only when fn succeeds.
func (s *AccountService) withTx(ctx context.Context, fn func(repository.AccountRepository) error) error {
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return internalError("failed to start transaction", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback after commit is a no-op
	}()

	if err := fn(repository.NewAccountRepository(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return internalError("failed to commit transaction", err)
	}

	return nil
}

func (s *AccountService) performCreate(
	ctx context.Context,
	repo repository.AccountRepository,
	payload *models.AccountPayload,
) (*models.Account, error) {
	account := &models.Account{}
	payload.Apply(account, s.now())

	if err := repo.Create(ctx, account); err != nil {
		return nil, internalError("failed to create account", err)
	}

	return account, nil
}

func (s *AccountService) performGet(ctx context.Context, repo repository.AccountRepository, id int64) (*models.Account, error) {
	account, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLookupError(id, err)
	}
	return account, nil
}

func (s *AccountService) performUpdate(
	ctx context.Context,
	repo repository.AccountRepository,
	id int64,
	payload *models.AccountPayload,
) (*models.Account, error) {
	account, err := repo.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, mapLookupError(id, err)
	}

	// an update without date_joined keeps the original join date
	payload.Apply(account, account.DateJoined)

	if err := repo.Update(ctx, account); err != nil {
		return nil, mapLookupError(id, err)
	}

	return account, nil
}

func (s *AccountService) performDelete(ctx context.Context, repo repository.AccountRepository, id int64) error {
	if _, err := repo.FindByIDForUpdate(ctx, id); err != nil {
		return mapLookupError(id, err)
	}

	if err := repo.Delete(ctx, id); err != nil {
		return mapLookupError(id, err)
	}

	return nil
}

func mapLookupError(id int64, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return accountNotFound(id, err)
	}
	return internalError("failed to access account", err)
}
