package config

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/jackyeh168/dotly/src/internal/pkg/errs"
)

// ===========================
// 環境變數設定
// ===========================
//
// - required：各環境不同的值（目前無，SQLite 檔案路徑有合理預設）
// - default：所有環境通用的值（log 等級、重試次數）

// Config 應用程式設定
type Config struct {
	DB       DBConfig
	Log      LogConfig
	Purchase PurchaseConfig
}

// DBConfig 資料庫設定（GORM + SQLite）
type DBConfig struct {
	DSN string `envconfig:"DB_DSN" default:"file:dotly.db?_foreign_keys=on"`
	// LogLevel GORM logger 等級：silent / error / warn / info
	LogLevel string `envconfig:"DB_LOG_LEVEL" default:"silent"`
}

// LogConfig zap 設定
type LogConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	Encoding string `envconfig:"LOG_ENCODING" default:"json"`
}

// PurchaseConfig 消費處理設定
type PurchaseConfig struct {
	// MaxAttempts 樂觀鎖衝突時整筆交易的最大嘗試次數（含第一次）
	MaxAttempts int `envconfig:"PURCHASE_MAX_ATTEMPTS" default:"3"`
	// DefaultDotsPerDollar CLI 建立租戶時的預設點數比率
	DefaultDotsPerDollar int `envconfig:"PURCHASE_DEFAULT_DOTS_PER_DOLLAR" default:"10"`
}

// LoadConfig 從環境變數載入設定
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errs.Wrap(err, "failed to process env config")
	}
	return cfg, nil
}

// NewTestConfig 測試用設定（記憶體 SQLite，只輸出錯誤日誌）
func NewTestConfig() Config {
	return Config{
		DB: DBConfig{
			DSN:      "file::memory:?cache=shared&_foreign_keys=on",
			LogLevel: "silent",
		},
		Log: LogConfig{
			Level:    "error",
			Encoding: "console",
		},
		Purchase: PurchaseConfig{
			MaxAttempts:          3,
			DefaultDotsPerDollar: 10,
		},
	}
}
