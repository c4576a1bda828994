// Package repository provides data access layer implementations for the account API.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/benx421/account-service/internal/models"
	"github.com/jmoiron/sqlx"
)

// DBTX is satisfied by the connection pool and by an open transaction, so a
// repository can be bound to either.
type DBTX interface {
	sqlx.ExtContext
}

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, id int64) (*models.Account, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, id int64) error
}

// accountRepository implements AccountRepository
type accountRepository struct {
	db DBTX
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db DBTX) AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = `id, name, email, address, phone_number, date_joined`

// Create inserts the account and stores the generated id on it
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (name, email, address, phone_number, date_joined)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		account.Name,
		account.Email,
		account.Address,
		account.PhoneNumber,
		account.DateJoined,
	).Scan(&account.ID)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// FindByID retrieves an account by its id
func (r *accountRepository) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.findOne(ctx, query, id)
}

// FindByIDForUpdate retrieves an account by its id and locks the row for the
// rest of the transaction
func (r *accountRepository) FindByIDForUpdate(ctx context.Context, id int64) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`
	return r.findOne(ctx, query, id)
}

func (r *accountRepository) findOne(ctx context.Context, query string, id int64) (*models.Account, error) {
	var account models.Account
	err := sqlx.GetContext(ctx, r.db, &account, query, id)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by id: %w", err)
	}

	return &account, nil
}

// List returns every account ordered by id, which is insertion order
func (r *accountRepository) List(ctx context.Context) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY id`

	accounts := []models.Account{}
	if err := sqlx.SelectContext(ctx, r.db, &accounts, query); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, nil
}

// Update overwrites every mutable column of the account row
func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts
		SET name = $2,
		    email = $3,
		    address = $4,
		    phone_number = $5,
		    date_joined = $6
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.Name,
		account.Email,
		account.Address,
		account.PhoneNumber,
		account.DateJoined,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	return requireAffected(result, account.ID)
}

// Delete removes the account row
func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return requireAffected(result, id)
}

func requireAffected(result sql.Result, id int64) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("account %d: %w", id, models.ErrNotFound)
	}
	return nil
}
