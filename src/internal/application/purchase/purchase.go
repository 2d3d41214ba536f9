package purchase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackyeh168/dotly/src/internal/domain/customer"
	"github.com/jackyeh168/dotly/src/internal/domain/deal"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/domain/tenant"
	"github.com/jackyeh168/dotly/src/internal/pkg/clock"
	"github.com/jackyeh168/dotly/src/internal/pkg/errs"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ===========================
// RecordPurchase Use Case
// ===========================

// RecordPurchaseCommand 記錄消費指令（Input DTO）
//
// PurchasedAt 為零值時使用目前時間；補登歷史消費時由調用者指定。
type RecordPurchaseCommand struct {
	CustomerID  int64
	Amount      decimal.Decimal
	PurchasedAt time.Time
}

// RecordPurchaseResult 記錄消費結果（Output DTO）
type RecordPurchaseResult struct {
	CustomerID           int64                `json:"customerId"`
	TransactionRef       string               `json:"transactionRef"`
	BaseDotsEarned       int                  `json:"baseDotsEarned"`
	TriggeredDeals       []deal.TriggeredDeal `json:"triggeredDeals"`
	TotalBonusDots       int                  `json:"totalBonusDots"`
	TotalDotsAwarded     int                  `json:"totalDotsAwarded"`
	NewTotalDots         int                  `json:"newTotalDots"`
	TotalVisits          int                  `json:"totalVisits"`
	ConsecutiveDayStreak int                  `json:"consecutiveDayStreak"`
	Attempts             int                  `json:"attempts"`
}

// DealEvaluator 對消費前快照評估優惠（由 application/deal.EvaluateDealsUseCase 實作）
type DealEvaluator interface {
	EvaluateFor(
		ctx shared.TransactionContext,
		snapshot deal.CustomerSnapshot,
		transactionAmount decimal.Decimal,
		baseDotsEarned int,
	) (deal.EvaluationResult, error)
}

// RecordPurchaseUseCase 交易處理：評估優惠並套用到客戶
//
// 單次嘗試（同一資料庫事務內）：
// 1. 載入客戶（消費前快照）與租戶，停用租戶拒絕
// 2. 基礎點數 = floor(金額 × dotsPerDollar)
// 3. 以消費前快照評估優惠（VisitMilestone 看的是不含本次的到店次數）
// 4. 客戶 RecordPurchase(基礎 + 獎勵)，更新到店次數與連續天數
// 5. 以樂觀鎖 Update；寫入每個觸發優惠的 DealAward
//
// 並發：同一客戶的「評估 → 套用」以版本號序列化。Update 返回
// ErrConcurrentModification 時整個事務回滾，重新載入後重試，最多 maxAttempts 次。
// 提交成功後才發布領域事件。
type RecordPurchaseUseCase struct {
	txManager    shared.TransactionManager
	customerRepo customer.CustomerRepository
	tenantRepo   tenant.TenantRepository
	awardRepo    deal.DealAwardRepository
	evaluator    DealEvaluator
	publisher    shared.EventPublisher
	clock        clock.Clock
	logger       *zap.Logger
	maxAttempts  int
}

// Deps RecordPurchaseUseCase 的依賴
type Deps struct {
	TxManager    shared.TransactionManager
	CustomerRepo customer.CustomerRepository
	TenantRepo   tenant.TenantRepository
	AwardRepo    deal.DealAwardRepository
	Evaluator    DealEvaluator
	Publisher    shared.EventPublisher
	Clock        clock.Clock
	Logger       *zap.Logger
	MaxAttempts  int
}

// NewRecordPurchaseUseCase 創建 Use Case 實例（MaxAttempts < 1 視為 1）
func NewRecordPurchaseUseCase(d Deps) *RecordPurchaseUseCase {
	maxAttempts := d.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &RecordPurchaseUseCase{
		txManager:    d.TxManager,
		customerRepo: d.CustomerRepo,
		tenantRepo:   d.TenantRepo,
		awardRepo:    d.AwardRepo,
		evaluator:    d.Evaluator,
		publisher:    d.Publisher,
		clock:        d.Clock,
		logger:       d.Logger,
		maxAttempts:  maxAttempts,
	}
}

// Execute 記錄一筆消費
//
// 錯誤處理：
// - ErrInvalidPurchaseAmount / ErrInvalidCustomerID: 輸入無效（不進入事務）
// - ErrCustomerNotFound / ErrTenantNotFound / ErrTenantInactive / ErrCustomerInactive
// - 優惠評估錯誤（目錄設定錯誤）：整筆交易不套用
// - ErrConcurrentModification: 重試耗盡
func (uc *RecordPurchaseUseCase) Execute(ctx context.Context, cmd RecordPurchaseCommand) (*RecordPurchaseResult, error) {
	if cmd.Amount.IsNegative() {
		return nil, customer.ErrInvalidPurchaseAmount.WithContext("amount", cmd.Amount.String())
	}
	customerID, err := customer.CustomerIDFromInt64(cmd.CustomerID)
	if err != nil {
		return nil, err
	}

	purchasedAt := cmd.PurchasedAt
	if purchasedAt.IsZero() {
		purchasedAt = uc.clock.Now()
	}
	transactionRef := uuid.New()

	for attempt := 1; ; attempt++ {
		result, events, err := uc.attempt(ctx, customerID, cmd.Amount, purchasedAt, transactionRef)
		if err == nil {
			result.Attempts = attempt
			uc.publish(events)
			uc.logger.Info("purchase recorded",
				zap.Int64("customer_id", cmd.CustomerID),
				zap.String("transaction_ref", result.TransactionRef),
				zap.String("amount", cmd.Amount.String()),
				zap.Int("base_dots", result.BaseDotsEarned),
				zap.Int("bonus_dots", result.TotalBonusDots),
				zap.Int("attempts", attempt),
			)
			return result, nil
		}

		if !errors.Is(err, customer.ErrConcurrentModification) || attempt >= uc.maxAttempts {
			return nil, errs.Wrapf(err, "failed to record purchase (attempt %d)", attempt)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errs.Wrap(ctxErr, "purchase cancelled while retrying")
		}
		uc.logger.Warn("concurrent modification, retrying purchase",
			zap.Int64("customer_id", cmd.CustomerID),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", uc.maxAttempts),
		)
	}
}

// attempt 單次「讀取 → 評估 → 套用」事務
func (uc *RecordPurchaseUseCase) attempt(
	ctx context.Context,
	customerID customer.CustomerID,
	amount decimal.Decimal,
	purchasedAt time.Time,
	transactionRef uuid.UUID,
) (*RecordPurchaseResult, []shared.DomainEvent, error) {
	var (
		result *RecordPurchaseResult
		events []shared.DomainEvent
	)

	err := uc.txManager.InTransaction(ctx, func(txCtx shared.TransactionContext) error {
		// 1. 載入客戶與租戶
		c, err := uc.customerRepo.FindByID(txCtx, customerID)
		if err != nil {
			return errs.Wrap(err, "failed to find customer")
		}
		shop, err := uc.tenantRepo.FindByID(txCtx, c.TenantID())
		if err != nil {
			return errs.Wrap(err, "failed to find tenant")
		}
		if err := shop.EnsureActive(); err != nil {
			return err
		}

		// 2-3. 基礎點數與優惠評估（消費前快照）
		snapshot := deal.SnapshotOf(c)
		baseDots, err := shop.BaseDotsFor(amount)
		if err != nil {
			return err
		}
		evaluation, err := uc.evaluator.EvaluateFor(txCtx, snapshot, amount, baseDots)
		if err != nil {
			return err
		}

		// 4. 套用到客戶
		base, err := customer.NewDots(baseDots)
		if err != nil {
			return err
		}
		bonus, err := customer.NewDots(evaluation.TotalBonusDots)
		if err != nil {
			return err
		}
		awarded, err := base.Add(bonus)
		if err != nil {
			return err
		}
		if err := c.RecordPurchase(amount, awarded, purchasedAt); err != nil {
			return err
		}

		// 5. 樂觀鎖寫回 + 獎勵紀錄
		if err := uc.customerRepo.Update(txCtx, c); err != nil {
			return err
		}
		awards, err := deal.NewDealAwards(snapshot, evaluation, transactionRef, purchasedAt)
		if err != nil {
			return err
		}
		if err := uc.awardRepo.SaveAll(txCtx, awards); err != nil {
			return errs.Wrap(err, "failed to save deal awards")
		}

		events = c.PullEvents()
		for _, a := range awards {
			events = append(events, deal.NewDealAwardedEvent(a))
		}
		result = &RecordPurchaseResult{
			CustomerID:           customerID.Int64(),
			TransactionRef:       transactionRef.String(),
			BaseDotsEarned:       baseDots,
			TriggeredDeals:       evaluation.TriggeredDeals,
			TotalBonusDots:       evaluation.TotalBonusDots,
			TotalDotsAwarded:     awarded.Value(),
			NewTotalDots:         c.TotalDots().Value(),
			TotalVisits:          c.TotalVisits(),
			ConsecutiveDayStreak: c.ConsecutiveDayStreak(),
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return result, events, nil
}

// publish 事件發布失敗不影響已提交的交易，只記錄日誌
func (uc *RecordPurchaseUseCase) publish(events []shared.DomainEvent) {
	if len(events) == 0 {
		return
	}
	if err := uc.publisher.PublishBatch(events); err != nil {
		uc.logger.Error("failed to publish purchase events",
			zap.Int("events", len(events)),
			zap.Error(err),
		)
	}
}
