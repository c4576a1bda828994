// Package mocks provides testify mocks for the service interfaces.
package mocks

import (
	"context"

	"github.com/benx421/account-service/internal/models"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockAccountManager is a testify mock of service.AccountManager
type MockAccountManager struct {
	mock.Mock
}

// NewMockAccountManager creates a mock that asserts its expectations when the test ends.
func NewMockAccountManager(t testingT) *MockAccountManager {
	m := &MockAccountManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountManager) Create(ctx context.Context, payload *models.AccountPayload) (*models.Account, error) {
	args := m.Called(ctx, payload)
	return accountOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAccountManager) Get(ctx context.Context, id int64) (*models.Account, error) {
	args := m.Called(ctx, id)
	return accountOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAccountManager) List(ctx context.Context) ([]models.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Account), args.Error(1)
}

func (m *MockAccountManager) Update(ctx context.Context, id int64, payload *models.AccountPayload) (*models.Account, error) {
	args := m.Called(ctx, id, payload)
	return accountOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAccountManager) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func accountOrNil(v any) *models.Account {
	if v == nil {
		return nil
	}
	return v.(*models.Account)
}

// MockHealthChecker is a testify mock of service.HealthChecker
type MockHealthChecker struct {
	mock.Mock
}

// NewMockHealthChecker creates a mock that asserts its expectations when the test ends.
func NewMockHealthChecker(t testingT) *MockHealthChecker {
	m := &MockHealthChecker{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockHealthChecker) PingContext(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
