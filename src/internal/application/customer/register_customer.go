package customer

import (
	"context"
	"time"

	"github.com/jackyeh168/dotly/src/internal/domain/customer"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/domain/tenant"
	"github.com/jackyeh168/dotly/src/internal/pkg/errs"
	"go.uber.org/zap"
)

// ===========================
// RegisterCustomer Use Case
// ===========================

// RegisterCustomerCommand 註冊客戶的命令
//
// 驗證：
// - TenantID 必須是正整數且租戶存在、啟用中
// - Name 不能為空
type RegisterCustomerCommand struct {
	TenantID int64
	Name     string
}

// RegisterCustomerResult 註冊客戶的結果（初始累計數據永遠為 0）
type RegisterCustomerResult struct {
	CustomerID int64     `json:"customerId"`
	TenantID   int64     `json:"tenantId"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RegisterCustomerUseCase 註冊客戶 Use Case
//
// 職責：
// 1. 驗證輸入
// 2. 在事務中確認租戶存在且啟用，再保存新客戶
type RegisterCustomerUseCase struct {
	tenantRepo   tenant.TenantRepository
	customerRepo customer.CustomerRepository
	txManager    shared.TransactionManager
	logger       *zap.Logger
}

// NewRegisterCustomerUseCase 創建 Use Case 實例
func NewRegisterCustomerUseCase(
	tenantRepo tenant.TenantRepository,
	customerRepo customer.CustomerRepository,
	txManager shared.TransactionManager,
	logger *zap.Logger,
) *RegisterCustomerUseCase {
	return &RegisterCustomerUseCase{
		tenantRepo:   tenantRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute 執行註冊客戶
//
// 錯誤處理：
// - ErrInvalidTenantID / ErrInvalidCustomerName: 輸入無效（不進入事務）
// - ErrTenantNotFound / ErrTenantInactive
// - 其他 Repository 錯誤：添加上下文後返回
func (uc *RegisterCustomerUseCase) Execute(ctx context.Context, cmd RegisterCustomerCommand) (*RegisterCustomerResult, error) {
	tenantID, err := tenant.TenantIDFromInt64(cmd.TenantID)
	if err != nil {
		return nil, err
	}
	c, err := customer.NewCustomer(tenantID, cmd.Name)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.InTransaction(ctx, func(txCtx shared.TransactionContext) error {
		shop, err := uc.tenantRepo.FindByID(txCtx, tenantID)
		if err != nil {
			return errs.Wrap(err, "failed to find tenant")
		}
		if err := shop.EnsureActive(); err != nil {
			return err
		}
		if err := uc.customerRepo.Save(txCtx, c); err != nil {
			return errs.Wrap(err, "failed to save customer")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("customer registered",
		zap.Int64("customer_id", c.CustomerID().Int64()),
		zap.Int64("tenant_id", cmd.TenantID),
	)

	return &RegisterCustomerResult{
		CustomerID: c.CustomerID().Int64(),
		TenantID:   c.TenantID().Int64(),
		Name:       c.Name(),
		CreatedAt:  c.CreatedAt(),
	}, nil
}
