package bootstrap

import (
	customerapp "github.com/jackyeh168/dotly/src/internal/application/customer"
	dealapp "github.com/jackyeh168/dotly/src/internal/application/deal"
	"github.com/jackyeh168/dotly/src/internal/application/purchase"
	tenantapp "github.com/jackyeh168/dotly/src/internal/application/tenant"
	"github.com/jackyeh168/dotly/src/internal/domain/customer"
	"github.com/jackyeh168/dotly/src/internal/domain/deal"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/domain/tenant"
	"github.com/jackyeh168/dotly/src/internal/infrastructure/messaging"
	"github.com/jackyeh168/dotly/src/internal/pkg/clock"
	"github.com/jackyeh168/dotly/src/internal/pkg/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseDealModule,
	usecaseOnboardingModule,
	usecasePurchaseModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	deal.NewEngine,
	messaging.NewLoggingEventPublisher,
)

var usecaseDealModule = fx.Module("usecase/deal",
	fx.Provide(
		dealapp.NewEvaluateDealsUseCase,
		dealapp.NewCreateDealTemplateUseCase,
		dealapp.NewUpdateDealTemplateUseCase,
		dealapp.NewDeleteDealTemplateUseCase,
		dealapp.NewListActiveDealsUseCase,
	),
)

var usecaseOnboardingModule = fx.Module("usecase/onboarding",
	fx.Provide(
		func(
			repo tenant.TenantRepository,
			txManager shared.TransactionManager,
			cfg config.PurchaseConfig,
			logger *zap.Logger,
		) *tenantapp.CreateTenantUseCase {
			return tenantapp.NewCreateTenantUseCase(repo, txManager, cfg.DefaultDotsPerDollar, logger)
		},
		customerapp.NewRegisterCustomerUseCase,
		customerapp.NewGetCustomerUseCase,
	),
)

var usecasePurchaseModule = fx.Module("usecase/purchase",
	fx.Provide(
		NewRecordPurchaseUseCase,
	),
)

// PurchaseParams 消費處理的依賴
type PurchaseParams struct {
	fx.In

	TxManager    shared.TransactionManager
	CustomerRepo customer.CustomerRepository
	TenantRepo   tenant.TenantRepository
	AwardRepo    deal.DealAwardRepository
	Evaluator    *dealapp.EvaluateDealsUseCase
	Publisher    shared.EventPublisher
	Clock        clock.Clock
	Logger       *zap.Logger
	Config       config.PurchaseConfig
}

func NewRecordPurchaseUseCase(p PurchaseParams) *purchase.RecordPurchaseUseCase {
	return purchase.NewRecordPurchaseUseCase(purchase.Deps{
		TxManager:    p.TxManager,
		CustomerRepo: p.CustomerRepo,
		TenantRepo:   p.TenantRepo,
		AwardRepo:    p.AwardRepo,
		Evaluator:    p.Evaluator,
		Publisher:    p.Publisher,
		Clock:        p.Clock,
		Logger:       p.Logger,
		MaxAttempts:  p.Config.MaxAttempts,
	})
}

// UseCases CLI 使用的所有 Use Case
type UseCases struct {
	fx.In

	DB *gorm.DB

	EvaluateDeals    *dealapp.EvaluateDealsUseCase
	CreateDeal       *dealapp.CreateDealTemplateUseCase
	UpdateDeal       *dealapp.UpdateDealTemplateUseCase
	DeleteDeal       *dealapp.DeleteDealTemplateUseCase
	ListDeals        *dealapp.ListActiveDealsUseCase
	CreateTenant     *tenantapp.CreateTenantUseCase
	RegisterCustomer *customerapp.RegisterCustomerUseCase
	GetCustomer      *customerapp.GetCustomerUseCase
	RecordPurchase   *purchase.RecordPurchaseUseCase
}
