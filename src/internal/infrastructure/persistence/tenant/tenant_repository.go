package tenant

import (
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/domain/tenant"
	"github.com/jackyeh168/dotly/src/internal/infrastructure/persistence/dbctx"
	"gorm.io/gorm"
)

// TenantRepositoryImpl 租戶倉儲實現（GORM）
type TenantRepositoryImpl struct {
	db *gorm.DB
}

// NewTenantRepository 創建租戶倉儲
func NewTenantRepository(db *gorm.DB) tenant.TenantRepository {
	return &TenantRepositoryImpl{db: db}
}

// Save 保存新租戶並回填 ID
func (r *TenantRepositoryImpl) Save(ctx shared.TransactionContext, t *tenant.Tenant) error {
	model := toGORM(t)
	if err := dbctx.DB(ctx, r.db).Create(model).Error; err != nil {
		return dbctx.RepositoryError(err, "operation", "save tenant")
	}
	assignID(t, model.ID)
	return nil
}

// FindByID 根據 ID 查找租戶（含停用租戶，是否可用由調用者判斷）
func (r *TenantRepositoryImpl) FindByID(ctx shared.TransactionContext, id tenant.TenantID) (*tenant.Tenant, error) {
	var model TenantGORM
	err := dbctx.DB(ctx, r.db).First(&model, "id = ?", id.Int64()).Error
	if err != nil {
		if dbctx.IsNotFound(err) {
			return nil, tenant.ErrTenantNotFound.WithContext("tenant_id", id.Int64())
		}
		return nil, dbctx.RepositoryError(err, "tenant_id", id.Int64())
	}
	return model.toDomain()
}
