package bootstrap

import (
	"context"

	"github.com/jackyeh168/dotly/src/internal/pkg/config"
	"github.com/jackyeh168/dotly/src/internal/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger 建立 zap logger，停止時 flush 緩衝
func NewLogger(lc fx.Lifecycle, cfg config.LogConfig) (*zap.Logger, error) {
	l, err := logger.New(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			// stderr 不支援 fsync 時 Sync 會返回錯誤，忽略即可
			_ = l.Sync()
			return nil
		},
	})

	return l, nil
}
