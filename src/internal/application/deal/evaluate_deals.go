package deal

import (
	"context"

	"github.com/jackyeh168/dotly/src/internal/domain/customer"
	"github.com/jackyeh168/dotly/src/internal/domain/deal"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/pkg/errs"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ===========================
// EvaluateDeals Use Case
// ===========================

// EvaluateDealsCommand 優惠評估指令（Input DTO）
//
// - CustomerID: 客戶 ID（資料庫主鍵）
// - TransactionAmount: 本次交易金額（>= 0，可有小數）
// - BaseDotsEarned: 本次交易的基礎點數（>= 0，由交易處理依租戶比率計算）
type EvaluateDealsCommand struct {
	CustomerID        int64
	TransactionAmount decimal.Decimal
	BaseDotsEarned    int
}

// EvaluateDealsUseCase 優惠評估 Use Case（唯讀）
//
// 職責：
// 1. 驗證輸入
// 2. 解析客戶（找不到即失敗，不返回空結果）
// 3. 載入客戶所屬租戶的啟用中模板
// 4. 交由 deal.Engine 評估
//
// 不修改任何客戶餘額；套用結果是交易處理（purchase）的責任。
type EvaluateDealsUseCase struct {
	customerRepo customer.CustomerRepository
	templateRepo deal.DealTemplateRepository
	txManager    shared.TransactionManager
	engine       *deal.Engine
	logger       *zap.Logger
}

// NewEvaluateDealsUseCase 創建 Use Case 實例
func NewEvaluateDealsUseCase(
	customerRepo customer.CustomerRepository,
	templateRepo deal.DealTemplateRepository,
	txManager shared.TransactionManager,
	engine *deal.Engine,
	logger *zap.Logger,
) *EvaluateDealsUseCase {
	return &EvaluateDealsUseCase{
		customerRepo: customerRepo,
		templateRepo: templateRepo,
		txManager:    txManager,
		engine:       engine,
		logger:       logger,
	}
}

// Execute 執行優惠評估
//
// 客戶與模板在同一個唯讀事務中讀取，ctx 取消時 I/O 隨之中止。
//
// 錯誤處理：
// - ErrInvalidTransactionAmount / ErrInvalidBaseDots: 輸入無效
// - ErrInvalidCustomerID / ErrCustomerNotFound: 客戶無法解析
// - ErrUnsupportedTrigger / ErrUnsupportedBenefit: 目錄設定錯誤
// - 其他 Repository 錯誤：原樣向上傳遞（附加上下文）
func (uc *EvaluateDealsUseCase) Execute(ctx context.Context, cmd EvaluateDealsCommand) (deal.EvaluationResult, error) {
	if err := deal.ValidateEvaluationInput(cmd.TransactionAmount, cmd.BaseDotsEarned); err != nil {
		return deal.EvaluationResult{}, err
	}

	var result deal.EvaluationResult
	err := uc.txManager.InTransaction(ctx, func(txCtx shared.TransactionContext) error {
		var err error
		result, err = uc.ExecuteWithContext(txCtx, cmd)
		return err
	})
	if err != nil {
		return deal.EvaluationResult{}, err
	}
	return result, nil
}

// ExecuteWithContext 在調用者的事務上下文中執行評估（ctx 可為 nil）
func (uc *EvaluateDealsUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	cmd EvaluateDealsCommand,
) (deal.EvaluationResult, error) {
	// 1. 驗證輸入（在任何 I/O 之前）
	if err := deal.ValidateEvaluationInput(cmd.TransactionAmount, cmd.BaseDotsEarned); err != nil {
		return deal.EvaluationResult{}, err
	}

	// 2. 解析客戶
	customerID, err := customer.CustomerIDFromInt64(cmd.CustomerID)
	if err != nil {
		return deal.EvaluationResult{}, err
	}
	c, err := uc.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return deal.EvaluationResult{}, errs.Wrap(err, "failed to find customer")
	}

	// 3-4. 載入模板並評估
	return uc.EvaluateFor(ctx, deal.SnapshotOf(c), cmd.TransactionAmount, cmd.BaseDotsEarned)
}

// EvaluateFor 對已載入的客戶快照評估優惠
//
// 交易處理在自己的事務中載入客戶後直接調用此方法，避免重複讀取。
func (uc *EvaluateDealsUseCase) EvaluateFor(
	ctx shared.TransactionContext,
	snapshot deal.CustomerSnapshot,
	transactionAmount decimal.Decimal,
	baseDotsEarned int,
) (deal.EvaluationResult, error) {
	templates, err := uc.templateRepo.FindActiveByTenant(ctx, snapshot.TenantID)
	if err != nil {
		return deal.EvaluationResult{}, errs.Wrap(err, "failed to load active deals")
	}

	result, err := uc.engine.Evaluate(snapshot, transactionAmount, baseDotsEarned, templates)
	if err != nil {
		uc.logger.Error("deal evaluation failed",
			zap.Int64("customer_id", snapshot.CustomerID.Int64()),
			zap.Int64("tenant_id", snapshot.TenantID.Int64()),
			zap.String("category", string(shared.CategoryOf(err))),
			zap.Error(err),
		)
		return deal.EvaluationResult{}, errs.Wrap(err, "failed to evaluate deals")
	}

	uc.logger.Debug("deals evaluated",
		zap.Int64("customer_id", snapshot.CustomerID.Int64()),
		zap.Int64("tenant_id", snapshot.TenantID.Int64()),
		zap.String("transaction_amount", transactionAmount.String()),
		zap.Int("base_dots_earned", baseDotsEarned),
		zap.Int("active_templates", len(templates)),
		zap.Int("triggered", len(result.TriggeredDeals)),
		zap.Int("total_bonus_dots", result.TotalBonusDots),
	)
	return result, nil
}
