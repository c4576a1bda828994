// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/benx421/account-service/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a testify mock of repository.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a mock that asserts its expectations when the test ends.
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountRepository) Create(ctx context.Context, account *models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	args := m.Called(ctx, id)
	return accountOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAccountRepository) FindByIDForUpdate(ctx context.Context, id int64) (*models.Account, error) {
	args := m.Called(ctx, id)
	return accountOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAccountRepository) List(ctx context.Context) ([]models.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Account), args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func accountOrNil(v any) *models.Account {
	if v == nil {
		return nil
	}
	return v.(*models.Account)
}
