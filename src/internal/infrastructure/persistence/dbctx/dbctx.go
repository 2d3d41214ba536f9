package dbctx

import (
	"errors"
	"strings"

	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// TransactionContext → *gorm.DB
// ===========================

// gormTransactionContext 由 persistence.NewGORMTransactionContext 實作
//
// 只在 Infrastructure Layer 內部使用；Domain Layer 看到的仍是標記介面。
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// DB 從 TransactionContext 取得 GORM DB
//
// ctx 為事務上下文時返回事務 DB；nil 或其他實作時返回 fallback（auto-commit）。
func DB(ctx shared.TransactionContext, fallback *gorm.DB) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return fallback
}

// ===========================
// 錯誤映射
// ===========================

// IsNotFound GORM 查無記錄
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsUniqueConstraintError 唯一約束違反
//
// SQLite: "UNIQUE constraint failed"
// PostgreSQL: "duplicate key value violates unique constraint"
func IsUniqueConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "duplicate key")
}

// RepositoryError 將無法歸類的資料庫錯誤包裝為 shared.ErrRepository
func RepositoryError(err error, keyValues ...interface{}) error {
	return shared.ErrRepository.WithContext(append(keyValues, "database_error", err.Error())...)
}
