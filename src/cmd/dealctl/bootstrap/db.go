package bootstrap

import (
	"context"

	"github.com/jackyeh168/dotly/src/internal/infrastructure/persistence"
	"github.com/jackyeh168/dotly/src/internal/pkg/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
		persistence.NewGORMTransactionManager,
	),
)

// NewDB 開啟 SQLite 連線，停止時關閉
func NewDB(lc fx.Lifecycle, cfg config.DBConfig, logger *zap.Logger) (*gorm.DB, error) {
	db, err := persistence.Open(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Debug("closing database")
			return persistence.Close(db)
		},
	})

	return db, nil
}
