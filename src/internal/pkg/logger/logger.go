package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jackyeh168/dotly/src/internal/pkg/config"
	"github.com/jackyeh168/dotly/src/internal/pkg/errs"
)

// New 依設定建立 zap logger
//
// Encoding 為 "console" 時使用開發模式設定（人類可讀），其餘使用正式環境的 JSON 設定。
// 日誌輸出到 stderr，stdout 保留給 CLI 的 JSON 結果。
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errs.Wrap(err, "invalid LOG_LEVEL")
	}

	var zc zap.Config
	if cfg.Encoding == "console" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	l, err := zc.Build()
	if err != nil {
		return nil, errs.Wrap(err, "failed to build logger")
	}
	return l, nil
}
