package tenant

import (
	"context"
	"time"

	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/domain/tenant"
	"github.com/jackyeh168/dotly/src/internal/pkg/errs"
	"go.uber.org/zap"
)

// ===========================
// CreateTenant Use Case
// ===========================

// CreateTenantCommand 創建租戶的命令
//
// DotsPerDollar 為 0 時使用設定中的預設比率
type CreateTenantCommand struct {
	Name          string
	DotsPerDollar int
}

// CreateTenantResult 創建租戶的結果
type CreateTenantResult struct {
	TenantID      int64     `json:"tenantId"`
	Name          string    `json:"name"`
	DotsPerDollar int       `json:"dotsPerDollar"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateTenantUseCase 創建租戶 Use Case
type CreateTenantUseCase struct {
	tenantRepo           tenant.TenantRepository
	txManager            shared.TransactionManager
	defaultDotsPerDollar int
	logger               *zap.Logger
}

// NewCreateTenantUseCase 創建 Use Case 實例
func NewCreateTenantUseCase(
	repo tenant.TenantRepository,
	txManager shared.TransactionManager,
	defaultDotsPerDollar int,
	logger *zap.Logger,
) *CreateTenantUseCase {
	return &CreateTenantUseCase{
		tenantRepo:           repo,
		txManager:            txManager,
		defaultDotsPerDollar: defaultDotsPerDollar,
		logger:               logger,
	}
}

// Execute 執行創建租戶
//
// 錯誤處理：
// - ErrInvalidTenantName: 名稱為空
// - ErrInvalidDotsPerDollar: 比率不在 1-1000 之間
// - 其他 Repository 錯誤：添加上下文後返回
func (uc *CreateTenantUseCase) Execute(ctx context.Context, cmd CreateTenantCommand) (*CreateTenantResult, error) {
	rateValue := cmd.DotsPerDollar
	if rateValue == 0 {
		rateValue = uc.defaultDotsPerDollar
	}
	rate, err := tenant.NewDotsPerDollar(rateValue)
	if err != nil {
		return nil, err
	}
	shop, err := tenant.NewTenant(cmd.Name, rate)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.InTransaction(ctx, func(txCtx shared.TransactionContext) error {
		if err := uc.tenantRepo.Save(txCtx, shop); err != nil {
			return errs.Wrap(err, "failed to save tenant")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("tenant created",
		zap.Int64("tenant_id", shop.TenantID().Int64()),
		zap.Int("dots_per_dollar", rate.Value()),
	)

	return &CreateTenantResult{
		TenantID:      shop.TenantID().Int64(),
		Name:          shop.Name(),
		DotsPerDollar: shop.DotsPerDollar().Value(),
		CreatedAt:     shop.CreatedAt(),
	}, nil
}
