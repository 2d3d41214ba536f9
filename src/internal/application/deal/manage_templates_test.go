package deal

import (
	"context"
	"testing"
	"time"

	"github.com/jackyeh168/dotly/src/internal/domain/deal"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/domain/tenant"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTenant(t *testing.T) *tenant.Tenant {
	t.Helper()
	shop, err := tenant.ReconstructTenant(testTenantID, "Test Shop", 10, true, time.Now())
	require.NoError(t, err)
	return shop
}

func spendDefinition() DealDefinitionInput {
	return DealDefinitionInput{
		Title:        "Spend $50 Bonus",
		TriggerType:  "SpendThreshold",
		TriggerValue: decimal.NewFromInt(50),
		BenefitType:  "BonusDots",
		BenefitValue: decimal.NewFromInt(50),
	}
}

// ===== Create =====

func TestCreateDealTemplateUseCase_Execute_Success(t *testing.T) {
	// Arrange
	tenants := new(MockTenantRepository)
	templates := new(MockDealTemplateRepository)
	txManager := new(MockTransactionManager)
	tenants.On("FindByID", mock.Anything, testTenantID).Return(newTestTenant(t), nil)
	templates.On("Save", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*deal.DealTemplate).AssignID(shared.MustEntityID[deal.DealTemplateMarker](7))
		}).
		Return(nil)
	useCase := NewCreateDealTemplateUseCase(tenants, templates, txManager, zap.NewNop())

	// Act
	dto, err := useCase.Execute(context.Background(), CreateDealTemplateCommand{
		TenantID:   1,
		Definition: spendDefinition(),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(7), dto.DealTemplateID)
	assert.Equal(t, "SpendThreshold", dto.TriggerType)
	assert.True(t, dto.IsActive)
	assert.Equal(t, 1, txManager.InTransactionCallCount)
	templates.AssertExpectations(t)
}

func TestCreateDealTemplateUseCase_Execute_UnknownTrigger_ReturnsError(t *testing.T) {
	tenants := new(MockTenantRepository)
	templates := new(MockDealTemplateRepository)
	txManager := new(MockTransactionManager)
	useCase := NewCreateDealTemplateUseCase(tenants, templates, txManager, zap.NewNop())
	def := spendDefinition()
	def.TriggerType = "Birthday"

	_, err := useCase.Execute(context.Background(), CreateDealTemplateCommand{TenantID: 1, Definition: def})

	assert.ErrorIs(t, err, deal.ErrUnsupportedTrigger)
	assert.Equal(t, 0, txManager.InTransactionCallCount)
	templates.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateDealTemplateUseCase_Execute_TenantNotFound_ReturnsError(t *testing.T) {
	tenants := new(MockTenantRepository)
	templates := new(MockDealTemplateRepository)
	tenants.On("FindByID", mock.Anything, mock.Anything).Return(nil, tenant.ErrTenantNotFound)
	useCase := NewCreateDealTemplateUseCase(tenants, templates, new(MockTransactionManager), zap.NewNop())

	_, err := useCase.Execute(context.Background(), CreateDealTemplateCommand{TenantID: 1, Definition: spendDefinition()})

	assert.ErrorIs(t, err, tenant.ErrTenantNotFound)
	templates.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// ===== Update =====

func TestUpdateDealTemplateUseCase_Execute_ReviseAndDeactivate(t *testing.T) {
	// Arrange
	templates := new(MockDealTemplateRepository)
	existing := newTemplate(t, 1, deal.TriggerSpendThreshold, 50, deal.BenefitBonusDots, 50)
	templates.On("FindByID", mock.Anything, existing.TemplateID()).Return(existing, nil)
	templates.On("Update", mock.Anything, existing).Return(nil)
	useCase := NewUpdateDealTemplateUseCase(templates, new(MockTransactionManager), zap.NewNop())

	def := spendDefinition()
	def.BenefitType = "Multiplier"
	def.BenefitValue = decimal.NewFromInt(3)
	inactive := false

	// Act
	dto, err := useCase.Execute(context.Background(), UpdateDealTemplateCommand{
		DealTemplateID: 1,
		Definition:     def,
		IsActive:       &inactive,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Multiplier", dto.BenefitType)
	assert.False(t, dto.IsActive)
	templates.AssertExpectations(t)
}

func TestUpdateDealTemplateUseCase_Execute_NotFound(t *testing.T) {
	templates := new(MockDealTemplateRepository)
	templates.On("FindByID", mock.Anything, mock.Anything).Return(nil, deal.ErrDealTemplateNotFound)
	useCase := NewUpdateDealTemplateUseCase(templates, new(MockTransactionManager), zap.NewNop())

	_, err := useCase.Execute(context.Background(), UpdateDealTemplateCommand{DealTemplateID: 9, Definition: spendDefinition()})

	assert.ErrorIs(t, err, deal.ErrDealTemplateNotFound)
	templates.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// ===== Delete =====

func TestDeleteDealTemplateUseCase_Execute_SoftDeletes(t *testing.T) {
	templates := new(MockDealTemplateRepository)
	existing := newTemplate(t, 1, deal.TriggerSpendThreshold, 50, deal.BenefitBonusDots, 50)
	templates.On("FindByID", mock.Anything, existing.TemplateID()).Return(existing, nil)
	templates.On("Update", mock.Anything, existing).Return(nil)
	useCase := NewDeleteDealTemplateUseCase(templates, new(MockTransactionManager), zap.NewNop())

	err := useCase.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.False(t, existing.IsActive())
	templates.AssertExpectations(t)
}

func TestDeleteDealTemplateUseCase_Execute_AlreadyInactive_Idempotent(t *testing.T) {
	templates := new(MockDealTemplateRepository)
	existing := newTemplate(t, 1, deal.TriggerSpendThreshold, 50, deal.BenefitBonusDots, 50)
	existing.Deactivate()
	templates.On("FindByID", mock.Anything, existing.TemplateID()).Return(existing, nil)
	useCase := NewDeleteDealTemplateUseCase(templates, new(MockTransactionManager), zap.NewNop())

	err := useCase.Execute(context.Background(), 1)

	assert.NoError(t, err)
	templates.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteDealTemplateUseCase_Execute_InvalidID(t *testing.T) {
	useCase := NewDeleteDealTemplateUseCase(new(MockDealTemplateRepository), new(MockTransactionManager), zap.NewNop())

	err := useCase.Execute(context.Background(), 0)

	assert.ErrorIs(t, err, deal.ErrInvalidDealTemplateID)
}

// ===== List =====

func TestListActiveDealsUseCase_Execute(t *testing.T) {
	templates := new(MockDealTemplateRepository)
	templates.On("FindActiveByTenant", mock.Anything, testTenantID).Return(seededTemplates(t), nil)
	useCase := NewListActiveDealsUseCase(templates)

	dtos, err := useCase.Execute(1)

	require.NoError(t, err)
	require.Len(t, dtos, 3)
	assert.Equal(t, int64(1), dtos[0].DealTemplateID)
	assert.Equal(t, "ConsecutiveDays", dtos[2].TriggerType)
}

func TestListActiveDealsUseCase_Execute_Empty(t *testing.T) {
	templates := new(MockDealTemplateRepository)
	templates.On("FindActiveByTenant", mock.Anything, testTenantID).Return([]*deal.DealTemplate{}, nil)

	dtos, err := NewListActiveDealsUseCase(templates).Execute(1)

	require.NoError(t, err)
	assert.NotNil(t, dtos)
	assert.Empty(t, dtos)
}
