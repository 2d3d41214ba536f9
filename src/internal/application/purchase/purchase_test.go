package purchase

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackyeh168/dotly/src/internal/domain/customer"
	"github.com/jackyeh168/dotly/src/internal/domain/deal"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/domain/tenant"
	"github.com/jackyeh168/dotly/src/internal/pkg/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ===========================
// Mocks
// ===========================

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Save(ctx shared.TransactionContext, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx shared.TransactionContext, id customer.CustomerID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx shared.TransactionContext, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) Save(ctx shared.TransactionContext, t *tenant.Tenant) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTenantRepository) FindByID(ctx shared.TransactionContext, id tenant.TenantID) (*tenant.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Tenant), args.Error(1)
}

type MockDealAwardRepository struct {
	mock.Mock
}

func (m *MockDealAwardRepository) SaveAll(ctx shared.TransactionContext, awards []*deal.DealAward) error {
	return m.Called(ctx, awards).Error(0)
}

func (m *MockDealAwardRepository) FindByCustomer(ctx shared.TransactionContext, id customer.CustomerID) ([]*deal.DealAward, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]*deal.DealAward), args.Error(1)
}

func (m *MockDealAwardRepository) FindByTransactionRef(ctx shared.TransactionContext, ref uuid.UUID) ([]*deal.DealAward, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).([]*deal.DealAward), args.Error(1)
}

type MockDealEvaluator struct {
	mock.Mock
}

func (m *MockDealEvaluator) EvaluateFor(
	ctx shared.TransactionContext,
	snapshot deal.CustomerSnapshot,
	amount decimal.Decimal,
	baseDots int,
) (deal.EvaluationResult, error) {
	args := m.Called(ctx, snapshot, amount, baseDots)
	return args.Get(0).(deal.EvaluationResult), args.Error(1)
}

type MockEventPublisher struct {
	Published []shared.DomainEvent
}

func (m *MockEventPublisher) Publish(event shared.DomainEvent) error {
	m.Published = append(m.Published, event)
	return nil
}

func (m *MockEventPublisher) PublishBatch(events []shared.DomainEvent) error {
	m.Published = append(m.Published, events...)
	return nil
}

type MockTransactionManager struct {
	InTransactionCallCount int
}

func (m *MockTransactionManager) InTransaction(_ context.Context, fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++
	return fn(nil)
}

// ===========================
// Fixtures
// ===========================

var (
	testTenantID   = shared.MustEntityID[tenant.TenantMarker](1)
	testCustomerID = shared.MustEntityID[customer.CustomerMarker](1)
	testNow        = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
)

type fixture struct {
	customers *MockCustomerRepository
	tenants   *MockTenantRepository
	awards    *MockDealAwardRepository
	evaluator *MockDealEvaluator
	publisher *MockEventPublisher
	txManager *MockTransactionManager
	useCase   *RecordPurchaseUseCase
}

func newFixture(maxAttempts int) *fixture {
	f := &fixture{
		customers: new(MockCustomerRepository),
		tenants:   new(MockTenantRepository),
		awards:    new(MockDealAwardRepository),
		evaluator: new(MockDealEvaluator),
		publisher: new(MockEventPublisher),
		txManager: new(MockTransactionManager),
	}
	f.useCase = NewRecordPurchaseUseCase(Deps{
		TxManager:    f.txManager,
		CustomerRepo: f.customers,
		TenantRepo:   f.tenants,
		AwardRepo:    f.awards,
		Evaluator:    f.evaluator,
		Publisher:    f.publisher,
		Clock:        clock.NewMockClock(testNow),
		Logger:       zap.NewNop(),
		MaxAttempts:  maxAttempts,
	})
	return f
}

func loadCustomer(t *testing.T, visits int) *customer.Customer {
	t.Helper()
	c, err := customer.ReconstructCustomer(customer.CustomerState{
		CustomerID:  testCustomerID,
		TenantID:    testTenantID,
		Name:        "Test Customer",
		TotalDots:   100,
		TotalSpent:  decimal.NewFromInt(500),
		TotalVisits: visits,
		IsActive:    true,
		Version:     1,
	})
	require.NoError(t, err)
	return c
}

func loadTenant(t *testing.T, active bool) *tenant.Tenant {
	t.Helper()
	shop, err := tenant.ReconstructTenant(testTenantID, "Test Shop", 10, active, time.Now())
	require.NoError(t, err)
	return shop
}

// ===========================
// Tests
// ===========================

func TestRecordPurchaseUseCase_Execute_AppliesBaseAndBonus(t *testing.T) {
	// Arrange
	f := newFixture(3)
	f.customers.On("FindByID", mock.Anything, testCustomerID).Return(loadCustomer(t, 10), nil)
	f.tenants.On("FindByID", mock.Anything, testTenantID).Return(loadTenant(t, true), nil)
	f.evaluator.On("EvaluateFor", mock.Anything,
		mock.MatchedBy(func(s deal.CustomerSnapshot) bool { return s.TotalVisits == 10 }),
		mock.Anything, 600,
	).Return(deal.EvaluationResult{
		TriggeredDeals: []deal.TriggeredDeal{
			{DealTemplateID: 1, BonusDotsEarned: 50},
			{DealTemplateID: 2, BonusDotsEarned: 100},
		},
		TotalBonusDots: 150,
	}, nil)
	f.customers.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.awards.On("SaveAll", mock.Anything, mock.MatchedBy(func(a []*deal.DealAward) bool { return len(a) == 2 })).Return(nil)

	// Act
	result, err := f.useCase.Execute(context.Background(), RecordPurchaseCommand{
		CustomerID: 1,
		Amount:     decimal.NewFromInt(60),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 600, result.BaseDotsEarned)
	assert.Equal(t, 150, result.TotalBonusDots)
	assert.Equal(t, 750, result.TotalDotsAwarded)
	assert.Equal(t, 850, result.NewTotalDots)
	assert.Equal(t, 11, result.TotalVisits)
	assert.Equal(t, 1, result.Attempts)
	assert.NotEmpty(t, result.TransactionRef)

	// 1 個消費事件 + 2 個獎勵事件，於提交後發布
	require.Len(t, f.publisher.Published, 3)
	assert.Equal(t, "customer.purchase_recorded", f.publisher.Published[0].EventType())
	assert.Equal(t, "deal.awarded", f.publisher.Published[1].EventType())

	f.customers.AssertExpectations(t)
	f.evaluator.AssertExpectations(t)
	f.awards.AssertExpectations(t)
}

func TestRecordPurchaseUseCase_Execute_UsesClockWhenTimeMissing(t *testing.T) {
	f := newFixture(1)
	c := loadCustomer(t, 0)
	f.customers.On("FindByID", mock.Anything, mock.Anything).Return(c, nil)
	f.tenants.On("FindByID", mock.Anything, mock.Anything).Return(loadTenant(t, true), nil)
	f.evaluator.On("EvaluateFor", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(deal.EvaluationResult{TriggeredDeals: []deal.TriggeredDeal{}}, nil)
	f.customers.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.awards.On("SaveAll", mock.Anything, mock.Anything).Return(nil)

	_, err := f.useCase.Execute(context.Background(), RecordPurchaseCommand{CustomerID: 1, Amount: decimal.NewFromInt(1)})

	require.NoError(t, err)
	require.NotNil(t, c.LastVisitAt())
	assert.True(t, testNow.Equal(*c.LastVisitAt()))
}

func TestRecordPurchaseUseCase_Execute_RetriesOnConflict(t *testing.T) {
	// Arrange: 第一次 Update 版本衝突，第二次成功
	f := newFixture(3)
	f.customers.On("FindByID", mock.Anything, mock.Anything).Return(loadCustomer(t, 0), nil).Once()
	f.customers.On("FindByID", mock.Anything, mock.Anything).Return(loadCustomer(t, 1), nil).Once()
	f.tenants.On("FindByID", mock.Anything, mock.Anything).Return(loadTenant(t, true), nil)
	f.evaluator.On("EvaluateFor", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(deal.EvaluationResult{TriggeredDeals: []deal.TriggeredDeal{}}, nil)
	f.customers.On("Update", mock.Anything, mock.Anything).Return(customer.ErrConcurrentModification).Once()
	f.customers.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
	f.awards.On("SaveAll", mock.Anything, mock.Anything).Return(nil)

	// Act
	result, err := f.useCase.Execute(context.Background(), RecordPurchaseCommand{CustomerID: 1, Amount: decimal.NewFromInt(5)})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, result.Attempts)
	assert.Equal(t, 2, result.TotalVisits)
	assert.Equal(t, 2, f.txManager.InTransactionCallCount)
	assert.Len(t, f.publisher.Published, 1)
}

func TestRecordPurchaseUseCase_Execute_RetriesExhausted(t *testing.T) {
	f := newFixture(2)
	f.customers.On("FindByID", mock.Anything, mock.Anything).
		Return(loadCustomer(t, 0), nil)
	f.tenants.On("FindByID", mock.Anything, mock.Anything).Return(loadTenant(t, true), nil)
	f.evaluator.On("EvaluateFor", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(deal.EvaluationResult{TriggeredDeals: []deal.TriggeredDeal{}}, nil)
	f.customers.On("Update", mock.Anything, mock.Anything).Return(customer.ErrConcurrentModification)

	_, err := f.useCase.Execute(context.Background(), RecordPurchaseCommand{CustomerID: 1, Amount: decimal.NewFromInt(5)})

	assert.ErrorIs(t, err, customer.ErrConcurrentModification)
	assert.Equal(t, 2, f.txManager.InTransactionCallCount)
	assert.Empty(t, f.publisher.Published)
	f.awards.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
}

func TestRecordPurchaseUseCase_Execute_InactiveTenant_ReturnsError(t *testing.T) {
	f := newFixture(3)
	f.customers.On("FindByID", mock.Anything, mock.Anything).Return(loadCustomer(t, 0), nil)
	f.tenants.On("FindByID", mock.Anything, mock.Anything).Return(loadTenant(t, false), nil)

	_, err := f.useCase.Execute(context.Background(), RecordPurchaseCommand{CustomerID: 1, Amount: decimal.NewFromInt(5)})

	assert.ErrorIs(t, err, tenant.ErrTenantInactive)
	f.evaluator.AssertNotCalled(t, "EvaluateFor", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, 1, f.txManager.InTransactionCallCount)
}

func TestRecordPurchaseUseCase_Execute_EvaluationError_NothingApplied(t *testing.T) {
	f := newFixture(3)
	f.customers.On("FindByID", mock.Anything, mock.Anything).Return(loadCustomer(t, 0), nil)
	f.tenants.On("FindByID", mock.Anything, mock.Anything).Return(loadTenant(t, true), nil)
	f.evaluator.On("EvaluateFor", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(deal.EvaluationResult{}, deal.ErrUnsupportedBenefit)

	_, err := f.useCase.Execute(context.Background(), RecordPurchaseCommand{CustomerID: 1, Amount: decimal.NewFromInt(5)})

	assert.ErrorIs(t, err, deal.ErrUnsupportedBenefit)
	f.customers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, 1, f.txManager.InTransactionCallCount)
}

func TestRecordPurchaseUseCase_Execute_BaseDotsOverflow_NothingApplied(t *testing.T) {
	f := newFixture(3)
	f.customers.On("FindByID", mock.Anything, mock.Anything).Return(loadCustomer(t, 0), nil)
	f.tenants.On("FindByID", mock.Anything, mock.Anything).Return(loadTenant(t, true), nil)

	_, err := f.useCase.Execute(context.Background(), RecordPurchaseCommand{
		CustomerID: 1,
		Amount:     decimal.RequireFromString("18446744073709551617"),
	})

	assert.ErrorIs(t, err, tenant.ErrBaseDotsOverflow)
	f.evaluator.AssertNotCalled(t, "EvaluateFor", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.customers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRecordPurchaseUseCase_Execute_AwardedDotsOverflow_NothingApplied(t *testing.T) {
	f := newFixture(3)
	f.customers.On("FindByID", mock.Anything, mock.Anything).Return(loadCustomer(t, 0), nil)
	f.tenants.On("FindByID", mock.Anything, mock.Anything).Return(loadTenant(t, true), nil)
	f.evaluator.On("EvaluateFor", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(deal.EvaluationResult{
			TriggeredDeals: []deal.TriggeredDeal{{DealTemplateID: 1, BonusDotsEarned: math.MaxInt}},
			TotalBonusDots: math.MaxInt,
		}, nil)

	_, err := f.useCase.Execute(context.Background(), RecordPurchaseCommand{CustomerID: 1, Amount: decimal.NewFromInt(5)})

	assert.ErrorIs(t, err, customer.ErrDotsOverflow)
	f.customers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.awards.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
}

func TestRecordPurchaseUseCase_Execute_InvalidInput(t *testing.T) {
	f := newFixture(3)

	_, err := f.useCase.Execute(context.Background(), RecordPurchaseCommand{CustomerID: 1, Amount: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, customer.ErrInvalidPurchaseAmount)

	_, err = f.useCase.Execute(context.Background(), RecordPurchaseCommand{CustomerID: 0, Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, customer.ErrInvalidCustomerID)

	assert.Equal(t, 0, f.txManager.InTransactionCallCount)
}
