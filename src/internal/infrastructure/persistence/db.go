package persistence

import (
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jackyeh168/dotly/src/internal/infrastructure/persistence/customer"
	"github.com/jackyeh168/dotly/src/internal/infrastructure/persistence/deal"
	"github.com/jackyeh168/dotly/src/internal/infrastructure/persistence/tenant"
	"github.com/jackyeh168/dotly/src/internal/pkg/config"
	"github.com/jackyeh168/dotly/src/internal/pkg/errs"
)

// ===========================
// 資料庫連線
// ===========================

// Open 依設定開啟 SQLite 連線
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(parseLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to open database")
	}

	// SQLite 同一時間只允許一個寫入者；單連線避免 "database is locked"
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errs.Wrap(err, "failed to get sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Close 關閉底層連線
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errs.Wrap(err, "failed to get sql.DB")
	}
	return sqlDB.Close()
}

// AutoMigrate 建立/更新所有資料表
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return errs.Wrap(err, "failed to migrate database")
	}
	return nil
}

// Models 所有 GORM 模型
func Models() []interface{} {
	return []interface{}{
		&tenant.TenantGORM{},
		&customer.CustomerGORM{},
		&deal.DealTemplateGORM{},
		&deal.DealAwardGORM{},
	}
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return logger.Silent
	}
}
