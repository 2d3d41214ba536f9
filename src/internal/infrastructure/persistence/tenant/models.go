package tenant

import (
	"time"

	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/domain/tenant"
)

// ===========================
// GORM Models
// ===========================

// TenantGORM 租戶資料表模型
type TenantGORM struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name          string    `gorm:"column:name;type:varchar(200);not null"`
	DotsPerDollar int       `gorm:"column:dots_per_dollar;not null;check:dots_per_dollar BETWEEN 1 AND 1000"`
	IsActive      bool      `gorm:"column:is_active;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定資料表名稱
func (TenantGORM) TableName() string {
	return "tenants"
}

// ===========================
// Mapper Functions
// ===========================

func (g *TenantGORM) toDomain() (*tenant.Tenant, error) {
	tenantID, err := tenant.TenantIDFromInt64(g.ID)
	if err != nil {
		return nil, err
	}
	return tenant.ReconstructTenant(tenantID, g.Name, g.DotsPerDollar, g.IsActive, g.CreatedAt)
}

func toGORM(t *tenant.Tenant) *TenantGORM {
	return &TenantGORM{
		ID:            t.TenantID().Int64(),
		Name:          t.Name(),
		DotsPerDollar: t.DotsPerDollar().Value(),
		IsActive:      t.IsActive(),
		CreatedAt:     t.CreatedAt(),
	}
}

// assignID 回填自增主鍵
func assignID(t *tenant.Tenant, id int64) {
	t.AssignID(shared.MustEntityID[tenant.TenantMarker](id))
}
