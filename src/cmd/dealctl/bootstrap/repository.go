package bootstrap

import (
	customerrepo "github.com/jackyeh168/dotly/src/internal/infrastructure/persistence/customer"
	dealrepo "github.com/jackyeh168/dotly/src/internal/infrastructure/persistence/deal"
	tenantrepo "github.com/jackyeh168/dotly/src/internal/infrastructure/persistence/tenant"
	"go.uber.org/fx"
)

// 建構函數直接返回領域介面（tenant.TenantRepository 等）
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		tenantrepo.NewTenantRepository,
		customerrepo.NewCustomerRepository,
		dealrepo.NewDealTemplateRepository,
		dealrepo.NewDealAwardRepository,
	),
)
