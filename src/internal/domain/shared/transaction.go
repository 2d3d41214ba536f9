package shared

import "context"

// TransactionContext 事務上下文介面
//
// 設計決策：可選事務參與模式（Optional Transaction Participation）
//
// 行為約定：
// - ctx != nil: 在調用者的事務中執行（事務傳播）
// - ctx == nil: 使用 auto-commit 模式（適用於單一讀操作）
//
// Repository 方法約束：
// - Save() / Update()：ctx 必須 non-nil
// - FindXXX()：ctx 可為 nil
//
// 範例：
//
//	txManager.InTransaction(ctx, func(txCtx TransactionContext) error {
//	    c, _ := customerRepo.FindByID(txCtx, customerID)
//	    c.RecordPurchase(amount, dots, now)
//	    return customerRepo.Update(txCtx, c)
//	})
//
// 這是一個標記介面，不暴露任何方法；Infrastructure Layer 負責具體實作。
type TransactionContext interface {
}

// TransactionManager 事務管理器介面
//
// fn 返回錯誤或 panic 時回滾，否則提交。ctx 取消時進行中的 SQL 會被中斷。
type TransactionManager interface {
	InTransaction(ctx context.Context, fn func(txCtx TransactionContext) error) error
}
