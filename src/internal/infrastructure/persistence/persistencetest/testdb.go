package persistencetest

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jackyeh168/dotly/src/internal/infrastructure/persistence"
)

// ===========================
// 測試輔助函數
// ===========================

// NewTestDB 創建測試用的 SQLite in-memory 資料庫並建立所有資料表
//
// 1. 隔離性：每個測試使用獨立的 in-memory DB
// 2. 真實性：使用真實 SQL 引擎，而非 Mock
//
// in-memory DB 綁定在單一連線上，因此限制連線池為 1；
// 測試結束時自動關閉。
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := persistence.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}
