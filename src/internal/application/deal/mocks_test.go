package deal

import (
	"context"

	"github.com/jackyeh168/dotly/src/internal/domain/customer"
	"github.com/jackyeh168/dotly/src/internal/domain/deal"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/domain/tenant"
	"github.com/stretchr/testify/mock"
)

// ===========================
// Mocks
// ===========================

// MockCustomerRepository mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Save(ctx shared.TransactionContext, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx shared.TransactionContext, id customer.CustomerID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx shared.TransactionContext, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockDealTemplateRepository mock implementation of DealTemplateRepository
type MockDealTemplateRepository struct {
	mock.Mock
}

func (m *MockDealTemplateRepository) FindActiveByTenant(ctx shared.TransactionContext, tenantID tenant.TenantID) ([]*deal.DealTemplate, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*deal.DealTemplate), args.Error(1)
}

func (m *MockDealTemplateRepository) FindByID(ctx shared.TransactionContext, id deal.DealTemplateID) (*deal.DealTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deal.DealTemplate), args.Error(1)
}

func (m *MockDealTemplateRepository) Save(ctx shared.TransactionContext, t *deal.DealTemplate) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockDealTemplateRepository) Update(ctx shared.TransactionContext, t *deal.DealTemplate) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

// MockTenantRepository mock implementation of TenantRepository
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) Save(ctx shared.TransactionContext, t *tenant.Tenant) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTenantRepository) FindByID(ctx shared.TransactionContext, id tenant.TenantID) (*tenant.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Tenant), args.Error(1)
}

// MockTransactionManager mock implementation of TransactionManager
type MockTransactionManager struct {
	InTransactionCallCount int
}

func (m *MockTransactionManager) InTransaction(_ context.Context, fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++
	// Directly execute the function with nil context (for unit tests)
	return fn(nil)
}
