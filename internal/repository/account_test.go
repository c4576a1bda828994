package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/benx421/account-service/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountRowColumns = []string{"id", "name", "email", "address", "phone_number", "date_joined"}

func newMockRepo(t *testing.T) (AccountRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	return NewAccountRepository(sqlx.NewDb(sqlDB, "postgres")), mock
}

func TestAccountRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	joined := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	account := &models.Account{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Address:    "1 Main St",
		DateJoined: joined,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts")).
		WithArgs("Jane Doe", "jane@example.com", "1 Main St", nil, joined).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	err := repo.Create(context.Background(), account)

	require.NoError(t, err)
	assert.Equal(t, int64(42), account.ID)
}

func TestAccountRepository_Create_Error(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts")).
		WillReturnError(errors.New("value too long for type character varying(64)"))

	err := repo.Create(context.Background(), &models.Account{Name: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create account")
	assert.False(t, errors.Is(err, models.ErrNotFound))
}

func TestAccountRepository_FindByID(t *testing.T) {
	joined := time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		rows     *sqlmock.Rows
		err      error
		wantErr  error
		wantName string
	}{
		{
			name:     "existing account",
			rows:     sqlmock.NewRows(accountRowColumns).AddRow(1, "Jane", "jane@example.com", "1 Main St", "555-0100", joined),
			wantName: "Jane",
		},
		{
			name:    "non-existent account",
			rows:    sqlmock.NewRows(accountRowColumns),
			wantErr: models.ErrNotFound,
		},
		{
			name: "query failure",
			err:  errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)

			expect := mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE id = $1")).WithArgs(int64(1))
			if tt.err != nil {
				expect.WillReturnError(tt.err)
			} else {
				expect.WillReturnRows(tt.rows)
			}

			account, err := repo.FindByID(context.Background(), 1)

			if tt.wantErr != nil || tt.err != nil {
				require.Error(t, err)
				assert.Nil(t, account)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.NotErrorIs(t, err, models.ErrNotFound)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), account.ID)
			assert.Equal(t, tt.wantName, account.Name)
			require.NotNil(t, account.PhoneNumber)
			assert.Equal(t, "555-0100", *account.PhoneNumber)
			assert.Equal(t, joined, account.DateJoined)
		})
	}
}

func TestAccountRepository_FindByIDForUpdate_LocksRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(accountRowColumns).AddRow(3, "Jane", "jane@example.com", "1 Main St", nil, time.Now()))

	account, err := repo.FindByIDForUpdate(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), account.ID)
	assert.Nil(t, account.PhoneNumber)
}

func TestAccountRepository_List(t *testing.T) {
	t.Run("empty table returns empty slice", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM accounts ORDER BY id")).
			WillReturnRows(sqlmock.NewRows(accountRowColumns))

		accounts, err := repo.List(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, accounts)
		assert.Empty(t, accounts)
	})

	t.Run("rows in id order", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta("FROM accounts ORDER BY id")).
			WillReturnRows(sqlmock.NewRows(accountRowColumns).
				AddRow(1, "A", "a@example.com", "addr", nil, now).
				AddRow(2, "B", "b@example.com", "addr", "555", now))

		accounts, err := repo.List(context.Background())

		require.NoError(t, err)
		require.Len(t, accounts, 2)
		assert.Equal(t, int64(1), accounts[0].ID)
		assert.Equal(t, "B", accounts[1].Name)
	})

	t.Run("query failure", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM accounts ORDER BY id")).
			WillReturnError(errors.New("boom"))

		accounts, err := repo.List(context.Background())

		require.Error(t, err)
		assert.Nil(t, accounts)
	})
}

func TestAccountRepository_Update(t *testing.T) {
	joined := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	phone := "555-0100"
	account := &models.Account{ID: 5, Name: "New", Email: "new@example.com", Address: "2 Side St", PhoneNumber: &phone, DateJoined: joined}

	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "existing account", affected: 1},
		{name: "non-existent account", affected: 0, wantErr: models.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)

			mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts")).
				WithArgs(int64(5), "New", "new@example.com", "2 Side St", "555-0100", joined).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.Update(context.Background(), account)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAccountRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "existing account", affected: 1},
		{name: "non-existent account", affected: 0, wantErr: models.ErrNotFound},
		{name: "exec failure", execErr: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)

			expect := mock.ExpectExec(regexp.QuoteMeta("DELETE FROM accounts WHERE id = $1")).WithArgs(int64(9))
			if tt.execErr != nil {
				expect.WillReturnError(tt.execErr)
			} else {
				expect.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.Delete(context.Background(), 9)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.execErr != nil:
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to delete account")
			default:
				assert.NoError(t, err)
			}
		})
	}
}
