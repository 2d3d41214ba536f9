package tenant

import "github.com/jackyeh168/dotly/src/internal/domain/shared"

// TenantRepository 租戶倉儲介面
//
// - Save: ctx 必須 non-nil，成功後回填 TenantID
// - FindByID: ctx 可為 nil，找不到返回 ErrTenantNotFound
type TenantRepository interface {
	Save(ctx shared.TransactionContext, t *Tenant) error
	FindByID(ctx shared.TransactionContext, id TenantID) (*Tenant, error)
}
