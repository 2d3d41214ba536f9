package deal

import (
	"github.com/google/uuid"
	"github.com/jackyeh168/dotly/src/internal/domain/customer"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/domain/tenant"
)

// ===========================
// Deal Template Store
// ===========================

// DealTemplateRepository 優惠模板倉儲介面
//
// 評估引擎只使用 FindActiveByTenant；其餘方法供管理員用例使用。
//
// 事務約定：Save / Update 的 ctx 必須 non-nil，查詢可為 nil。
type DealTemplateRepository interface {
	// FindActiveByTenant 載入租戶所有 isActive = true 的模板，依 id 升冪排序
	FindActiveByTenant(ctx shared.TransactionContext, tenantID tenant.TenantID) ([]*DealTemplate, error)

	// FindByID 根據 ID 查找模板（包含已停用），找不到返回 ErrDealTemplateNotFound
	FindByID(ctx shared.TransactionContext, id DealTemplateID) (*DealTemplate, error)

	// Save 保存新模板，成功後回填 DealTemplateID
	Save(ctx shared.TransactionContext, t *DealTemplate) error

	// Update 更新既有模板（含軟刪除），不存在返回 ErrDealTemplateNotFound
	Update(ctx shared.TransactionContext, t *DealTemplate) error
}

// DealAwardRepository 優惠獎勵紀錄倉儲介面
type DealAwardRepository interface {
	// SaveAll 批次保存同一筆交易的獎勵紀錄，成功後回填 ID
	SaveAll(ctx shared.TransactionContext, awards []*DealAward) error

	// FindByCustomer 依發放時間升冪列出客戶的獎勵紀錄
	FindByCustomer(ctx shared.TransactionContext, customerID customer.CustomerID) ([]*DealAward, error)

	// FindByTransactionRef 列出同一筆交易產生的獎勵紀錄
	FindByTransactionRef(ctx shared.TransactionContext, ref uuid.UUID) ([]*DealAward, error)
}
