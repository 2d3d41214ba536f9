package customer

import (
	"github.com/jackyeh168/dotly/src/internal/domain/customer"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/infrastructure/persistence/dbctx"
	"gorm.io/gorm"
)

// ===========================
// CustomerRepositoryImpl
// ===========================

// CustomerRepositoryImpl 客戶倉儲實現（GORM）
//
// 職責：
// - Domain ↔ GORM 模型轉換
// - 樂觀鎖（version 欄位）
// - 將 GORM 錯誤映射為 Domain 錯誤
type CustomerRepositoryImpl struct {
	db *gorm.DB
}

// NewCustomerRepository 創建客戶倉儲
func NewCustomerRepository(db *gorm.DB) customer.CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

// Save 保存新客戶並回填 ID
func (r *CustomerRepositoryImpl) Save(ctx shared.TransactionContext, c *customer.Customer) error {
	model := toGORM(c)
	if err := dbctx.DB(ctx, r.db).Create(model).Error; err != nil {
		return dbctx.RepositoryError(err, "operation", "save customer")
	}
	assignID(c, model.ID)
	return nil
}

// FindByID 根據 ID 查找客戶
//
// 已被 GDPR 流程刪除（deleted_at 不為 NULL）的客戶返回 ErrCustomerNotFound
func (r *CustomerRepositoryImpl) FindByID(ctx shared.TransactionContext, id customer.CustomerID) (*customer.Customer, error) {
	var model CustomerGORM
	err := dbctx.DB(ctx, r.db).
		Where("id = ? AND deleted_at IS NULL", id.Int64()).
		First(&model).Error
	if err != nil {
		if dbctx.IsNotFound(err) {
			return nil, customer.ErrCustomerNotFound.WithContext("customer_id", id.Int64())
		}
		return nil, dbctx.RepositoryError(err, "customer_id", id.Int64())
	}
	return model.toDomain()
}

// Update 以樂觀鎖更新客戶累計數據
//
// 實作細節：
// 1. UPDATE ... WHERE id = ? AND version = ? AND deleted_at IS NULL，並 version = version + 1
// 2. RowsAffected = 0 時區分「客戶不存在/已刪除」與「版本衝突」
//
// 只寫入交易處理擁有的欄位；名稱與生命週期欄位不在此更新。
func (r *CustomerRepositoryImpl) Update(ctx shared.TransactionContext, c *customer.Customer) error {
	db := dbctx.DB(ctx, r.db)
	id := c.CustomerID().Int64()

	result := db.Model(&CustomerGORM{}).
		Where("id = ? AND version = ? AND deleted_at IS NULL", id, c.Version()).
		Updates(map[string]interface{}{
			"total_dots":             c.TotalDots().Value(),
			"total_spent":            c.TotalSpent(),
			"total_visits":           c.TotalVisits(),
			"consecutive_day_streak": c.ConsecutiveDayStreak(),
			"last_visit_at":          c.LastVisitAt(),
			"updated_at":             c.UpdatedAt(),
			"version":                gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return dbctx.RepositoryError(result.Error, "customer_id", id)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(&CustomerGORM{}).Where("id = ? AND deleted_at IS NULL", id).Count(&count).Error; err != nil {
		return dbctx.RepositoryError(err, "customer_id", id)
	}
	if count == 0 {
		return customer.ErrCustomerNotFound.WithContext("customer_id", id)
	}
	return customer.ErrConcurrentModification.WithContext(
		"customer_id", id,
		"expected_version", c.Version(),
	)
}
