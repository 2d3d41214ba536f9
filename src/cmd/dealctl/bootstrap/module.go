package bootstrap

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Module 組裝 dealctl 所需的所有依賴
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RepositoryModule,
	UseCaseModule,
	fx.WithLogger(newFxLogger),
)

// fx 本身的事件只在 debug 等級輸出，避免污染 CLI 的 stderr
func newFxLogger(logger *zap.Logger) fxevent.Logger {
	l := &fxevent.ZapLogger{Logger: logger.Named("fx")}
	l.UseLogLevel(zapcore.DebugLevel)
	return l
}
