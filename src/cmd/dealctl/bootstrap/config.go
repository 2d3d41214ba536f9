package bootstrap

import (
	"github.com/jackyeh168/dotly/src/internal/pkg/config"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.DBConfig { return cfg.DB },
		func(cfg config.Config) config.LogConfig { return cfg.Log },
		func(cfg config.Config) config.PurchaseConfig { return cfg.Purchase },
	),
)
