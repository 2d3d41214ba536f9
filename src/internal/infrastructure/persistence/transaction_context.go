package persistence

import (
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"gorm.io/gorm"
)

// txContext 把進行中的 *gorm.DB 事務帶過應用層
//
// 應用層只看得到 shared.TransactionContext；Repository 經由 dbctx.DB
// 取回 GetDB()，未在事務中（txCtx 為 nil）時改用自己的連線。
// tx 已綁定 InTransaction 收到的 context.Context。
type txContext struct {
	tx *gorm.DB
}

// NewGORMTransactionContext 包裝一個已開啟的 GORM 事務
func NewGORMTransactionContext(tx *gorm.DB) shared.TransactionContext {
	return &txContext{tx: tx}
}

// GetDB 事務中的 *gorm.DB
func (c *txContext) GetDB() *gorm.DB {
	return c.tx
}
