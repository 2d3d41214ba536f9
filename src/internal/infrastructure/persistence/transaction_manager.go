package persistence

import (
	"context"

	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM TransactionManager 實作
// ===========================

// GORMTransactionManager 以 gorm.DB.Transaction 實作事務邊界
//
// - fn 返回錯誤：回滾，原錯誤原樣返回
// - fn panic：回滾後重新 panic
// - 否則提交
type GORMTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 創建事務管理器
func NewGORMTransactionManager(db *gorm.DB) shared.TransactionManager {
	return &GORMTransactionManager{db: db}
}

// InTransaction 在單一資料庫事務中執行 fn
func (m *GORMTransactionManager) InTransaction(ctx context.Context, fn func(txCtx shared.TransactionContext) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMTransactionContext(tx))
	})
}
