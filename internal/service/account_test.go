package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/benx421/account-service/internal/db"
	"github.com/benx421/account-service/internal/models"
	"github.com/benx421/account-service/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC)

func newTestService() *AccountService {
	s := NewAccountService(nil)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestAccountService_PerformCreate(t *testing.T) {
	t.Run("successful create", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := newTestService()
		ctx := context.Background()

		repo.On("Create", ctx, mock.AnythingOfType("*models.Account")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Account).ID = 10
			}).
			Return(nil)

		account, err := service.performCreate(ctx, repo, validPayload())

		require.NoError(t, err)
		assert.Equal(t, int64(10), account.ID)
		assert.Equal(t, "Jane Doe", account.Name)
		assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), account.DateJoined)
	})

	t.Run("default join date is the UTC day", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := newTestService()
		service.now = func() time.Time {
			return time.Date(2024, time.March, 5, 23, 45, 0, 0, time.FixedZone("EST", -5*3600))
		}
		ctx := context.Background()

		repo.On("Create", ctx, mock.Anything).Return(nil)

		account, err := service.performCreate(ctx, repo, validPayload())

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC), account.DateJoined)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		service := newTestService()
		ctx := context.Background()

		repo.On("Create", ctx, mock.Anything).Return(errors.New("connection refused"))

		account, err := service.performCreate(ctx, repo, validPayload())

		assert.Nil(t, account)
		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeInternalError, svcErr.Code)
	})
}

func TestAccountService_PerformGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		ctx := context.Background()

		repo.On("FindByID", ctx, int64(4)).Return(&models.Account{ID: 4, Name: "Jane"}, nil)

		account, err := newTestService().performGet(ctx, repo, 4)

		require.NoError(t, err)
		assert.Equal(t, "Jane", account.Name)
	})

	t.Run("not found", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		ctx := context.Background()

		repo.On("FindByID", ctx, int64(0)).Return(nil, models.ErrNotFound)

		account, err := newTestService().performGet(ctx, repo, 0)

		assert.Nil(t, account)
		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeAccountNotFound, svcErr.Code)
		assert.Equal(t, "Account with id [0] could not be found.", svcErr.Message)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		ctx := context.Background()

		repo.On("FindByID", ctx, int64(1)).Return(nil, errors.New("timeout"))

		_, err := newTestService().performGet(ctx, repo, 1)

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeInternalError, svcErr.Code)
	})
}

func TestAccountService_PerformUpdate(t *testing.T) {
	joined := time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC)

	t.Run("successful update keeps id and join date", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		ctx := context.Background()

		existing := &models.Account{ID: 3, Name: "Old", Email: "old@example.com", Address: "Old", DateJoined: joined}
		repo.On("FindByIDForUpdate", ctx, int64(3)).Return(existing, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(a *models.Account) bool {
			return a.ID == 3 && a.Name == "Jane Doe"
		})).Return(nil)

		account, err := newTestService().performUpdate(ctx, repo, 3, validPayload())

		require.NoError(t, err)
		assert.Equal(t, int64(3), account.ID)
		assert.Equal(t, "Jane Doe", account.Name)
		assert.Equal(t, joined, account.DateJoined)
	})

	t.Run("supplied join date wins", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		ctx := context.Background()

		newJoined := time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC)
		payload := validPayload()
		payload.DateJoined = &newJoined

		repo.On("FindByIDForUpdate", ctx, int64(3)).Return(&models.Account{ID: 3, DateJoined: joined}, nil)
		repo.On("Update", ctx, mock.Anything).Return(nil)

		account, err := newTestService().performUpdate(ctx, repo, 3, payload)

		require.NoError(t, err)
		assert.Equal(t, newJoined, account.DateJoined)
	})

	t.Run("account not found", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		ctx := context.Background()

		repo.On("FindByIDForUpdate", ctx, int64(0)).Return(nil, models.ErrNotFound)

		account, err := newTestService().performUpdate(ctx, repo, 0, validPayload())

		assert.Nil(t, account)
		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeAccountNotFound, svcErr.Code)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestAccountService_PerformDelete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		ctx := context.Background()

		repo.On("FindByIDForUpdate", ctx, int64(8)).Return(&models.Account{ID: 8}, nil)
		repo.On("Delete", ctx, int64(8)).Return(nil)

		assert.NoError(t, newTestService().performDelete(ctx, repo, 8))
	})

	t.Run("account not found", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository(t)
		ctx := context.Background()

		repo.On("FindByIDForUpdate", ctx, int64(8)).Return(nil, models.ErrNotFound)

		err := newTestService().performDelete(ctx, repo, 8)

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeAccountNotFound, svcErr.Code)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func newSQLMockService(t *testing.T) (*AccountService, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, sqlMock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	s := NewAccountService(db.NewTestDB(sqlDB))
	s.now = func() time.Time { return fixedNow }
	return s, sqlMock
}

func TestAccountService_Create_CommitsTransaction(t *testing.T) {
	service, sqlMock := newSQLMockService(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	sqlMock.ExpectCommit()

	account, err := service.Create(context.Background(), validPayload())

	require.NoError(t, err)
	assert.Equal(t, int64(1), account.ID)
}

func TestAccountService_Create_InvalidPayloadSkipsDatabase(t *testing.T) {
	service, _ := newSQLMockService(t)

	payload := validPayload()
	payload.Email = ""

	account, err := service.Create(context.Background(), payload)

	assert.Nil(t, account)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeInvalidPayload, svcErr.Code)
}

func TestAccountService_Delete_RollsBackWhenMissing(t *testing.T) {
	service, sqlMock := newSQLMockService(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "phone_number", "date_joined"}))
	sqlMock.ExpectRollback()

	err := service.Delete(context.Background(), 0)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeAccountNotFound, svcErr.Code)
}

func TestAccountService_BeginFailure(t *testing.T) {
	service, sqlMock := newSQLMockService(t)

	sqlMock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	_, err := service.Update(context.Background(), 1, validPayload())

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeInternalError, svcErr.Code)
}

func TestAccountService_List(t *testing.T) {
	service, sqlMock := newSQLMockService(t)

	sqlMock.ExpectQuery(regexp.QuoteMeta("FROM accounts ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "address", "phone_number", "date_joined"}).
			AddRow(1, "A", "a@example.com", "addr", nil, fixedNow))

	accounts, err := service.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}
