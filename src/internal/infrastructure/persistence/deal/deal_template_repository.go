package deal

import (
	"github.com/jackyeh168/dotly/src/internal/domain/deal"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/domain/tenant"
	"github.com/jackyeh168/dotly/src/internal/infrastructure/persistence/dbctx"
	"gorm.io/gorm"
)

// DealTemplateRepositoryImpl 優惠模板倉儲實現（GORM）
type DealTemplateRepositoryImpl struct {
	db *gorm.DB
}

// NewDealTemplateRepository 創建優惠模板倉儲
func NewDealTemplateRepository(db *gorm.DB) deal.DealTemplateRepository {
	return &DealTemplateRepositoryImpl{db: db}
}

// FindActiveByTenant 載入租戶所有啟用中的模板（依 id 升冪）
//
// 任一筆資料無法重建即返回錯誤，不返回部分清單。
func (r *DealTemplateRepositoryImpl) FindActiveByTenant(ctx shared.TransactionContext, tenantID tenant.TenantID) ([]*deal.DealTemplate, error) {
	var models []DealTemplateGORM
	err := dbctx.DB(ctx, r.db).
		Where("tenant_id = ? AND is_active = ?", tenantID.Int64(), true).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, dbctx.RepositoryError(err, "tenant_id", tenantID.Int64())
	}

	templates := make([]*deal.DealTemplate, 0, len(models))
	for i := range models {
		t, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// FindByID 根據 ID 查找模板（包含已停用）
func (r *DealTemplateRepositoryImpl) FindByID(ctx shared.TransactionContext, id deal.DealTemplateID) (*deal.DealTemplate, error) {
	var model DealTemplateGORM
	err := dbctx.DB(ctx, r.db).First(&model, "id = ?", id.Int64()).Error
	if err != nil {
		if dbctx.IsNotFound(err) {
			return nil, deal.ErrDealTemplateNotFound.WithContext("deal_template_id", id.Int64())
		}
		return nil, dbctx.RepositoryError(err, "deal_template_id", id.Int64())
	}
	return model.toDomain()
}

// Save 保存新模板並回填 ID
func (r *DealTemplateRepositoryImpl) Save(ctx shared.TransactionContext, t *deal.DealTemplate) error {
	model := templateToGORM(t)
	if err := dbctx.DB(ctx, r.db).Create(model).Error; err != nil {
		return dbctx.RepositoryError(err, "operation", "save deal template")
	}
	t.AssignID(shared.MustEntityID[deal.DealTemplateMarker](model.ID))
	return nil
}

// Update 更新既有模板（含軟刪除的 is_active = false）
//
// 使用 map 更新，確保 is_active = false 等零值也會寫入。
func (r *DealTemplateRepositoryImpl) Update(ctx shared.TransactionContext, t *deal.DealTemplate) error {
	id := t.TemplateID().Int64()
	result := dbctx.DB(ctx, r.db).Model(&DealTemplateGORM{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":         t.Title(),
			"trigger_type":  string(t.TriggerType()),
			"trigger_value": t.TriggerValue(),
			"benefit_type":  string(t.BenefitType()),
			"benefit_value": t.BenefitValue(),
			"is_active":     t.IsActive(),
			"updated_at":    t.UpdatedAt(),
		})
	if result.Error != nil {
		return dbctx.RepositoryError(result.Error, "deal_template_id", id)
	}
	if result.RowsAffected == 0 {
		return deal.ErrDealTemplateNotFound.WithContext("deal_template_id", id)
	}
	return nil
}
