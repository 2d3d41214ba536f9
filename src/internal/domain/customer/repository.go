package customer

import "github.com/jackyeh168/dotly/src/internal/domain/shared"

// ===========================
// Customer Repository 介面
// ===========================

// CustomerRepository 客戶倉儲介面
//
// 事務約定：
// - Save / Update：ctx 必須 non-nil
// - FindByID：ctx 可為 nil
//
// 並發約定（樂觀鎖）：
// - Update 只在資料庫版本等於 customer.Version() 時寫入，並將版本 +1
// - 版本不符返回 ErrConcurrentModification；調用者應重新載入後重試整個流程
// - Update 成功後本聚合的版本已過期，繼續修改前必須重新載入
type CustomerRepository interface {
	// Save 保存新客戶，成功後回填 CustomerID
	Save(ctx shared.TransactionContext, c *Customer) error

	// FindByID 根據 ID 查找客戶
	// 已被 GDPR 流程刪除的客戶視為不存在，返回 ErrCustomerNotFound
	FindByID(ctx shared.TransactionContext, id CustomerID) (*Customer, error)

	// Update 以樂觀鎖更新客戶累計數據
	Update(ctx shared.TransactionContext, c *Customer) error
}
