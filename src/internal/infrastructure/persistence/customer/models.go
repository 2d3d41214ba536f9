package customer

import (
	"time"

	"github.com/jackyeh168/dotly/src/internal/domain/customer"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/domain/tenant"
	"github.com/shopspring/decimal"
)

// ===========================
// GORM Models
// ===========================

// CustomerGORM 客戶資料表模型
//
// 資料庫約束：
//   - total_dots / total_visits / consecutive_day_streak >= 0
//   - total_spent 以文字保存 decimal，避免 SQLite REAL 的精度損失
//   - deleted_at / deletion_reason 由 GDPR 流程寫入；不使用 gorm.DeletedAt，
//     因為刪除語意由領域層決定（FindByID 明確排除）
//   - version 樂觀鎖版本號
type CustomerGORM struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	TenantID int64  `gorm:"column:tenant_id;not null;index"`
	Name     string `gorm:"column:name;type:varchar(200);not null"`

	TotalDots            int             `gorm:"column:total_dots;not null;check:total_dots >= 0"`
	TotalSpent           decimal.Decimal `gorm:"column:total_spent;type:text;not null"`
	TotalVisits          int             `gorm:"column:total_visits;not null;check:total_visits >= 0"`
	ConsecutiveDayStreak int             `gorm:"column:consecutive_day_streak;not null;check:consecutive_day_streak >= 0"`
	LastVisitAt          *time.Time      `gorm:"column:last_visit_at"`

	IsActive       bool       `gorm:"column:is_active;not null"`
	DeletedAt      *time.Time `gorm:"column:deleted_at;index"`
	DeletionReason string     `gorm:"column:deletion_reason;type:varchar(500)"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
	Version   int       `gorm:"column:version;not null"`
}

// TableName 指定資料表名稱
func (CustomerGORM) TableName() string {
	return "customers"
}

// ===========================
// Mapper Functions
// ===========================

func (g *CustomerGORM) toDomain() (*customer.Customer, error) {
	customerID, err := customer.CustomerIDFromInt64(g.ID)
	if err != nil {
		return nil, err
	}
	tenantID, err := tenant.TenantIDFromInt64(g.TenantID)
	if err != nil {
		return nil, err
	}
	return customer.ReconstructCustomer(customer.CustomerState{
		CustomerID:           customerID,
		TenantID:             tenantID,
		Name:                 g.Name,
		TotalDots:            g.TotalDots,
		TotalSpent:           g.TotalSpent,
		TotalVisits:          g.TotalVisits,
		ConsecutiveDayStreak: g.ConsecutiveDayStreak,
		LastVisitAt:          g.LastVisitAt,
		IsActive:             g.IsActive,
		DeletedAt:            g.DeletedAt,
		DeletionReason:       g.DeletionReason,
		CreatedAt:            g.CreatedAt,
		UpdatedAt:            g.UpdatedAt,
		Version:              g.Version,
	})
}

func toGORM(c *customer.Customer) *CustomerGORM {
	return &CustomerGORM{
		ID:                   c.CustomerID().Int64(),
		TenantID:             c.TenantID().Int64(),
		Name:                 c.Name(),
		TotalDots:            c.TotalDots().Value(),
		TotalSpent:           c.TotalSpent(),
		TotalVisits:          c.TotalVisits(),
		ConsecutiveDayStreak: c.ConsecutiveDayStreak(),
		LastVisitAt:          c.LastVisitAt(),
		IsActive:             c.IsActive(),
		DeletedAt:            c.DeletedAt(),
		DeletionReason:       c.DeletionReason(),
		CreatedAt:            c.CreatedAt(),
		UpdatedAt:            c.UpdatedAt(),
		Version:              c.Version(),
	}
}

func assignID(c *customer.Customer, id int64) {
	c.AssignID(shared.MustEntityID[customer.CustomerMarker](id))
}
