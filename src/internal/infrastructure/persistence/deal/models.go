package deal

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackyeh168/dotly/src/internal/domain/customer"
	"github.com/jackyeh168/dotly/src/internal/domain/deal"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/domain/tenant"
	"github.com/shopspring/decimal"
)

// ===========================
// GORM Models
// ===========================

// DealTemplateGORM 優惠模板資料表模型
//
// trigger_type / benefit_type 以字串保存，資料庫不限制取值；
// 未知類型在評估時以 ErrUnsupportedTrigger / ErrUnsupportedBenefit 暴露。
type DealTemplateGORM struct {
	ID           int64           `gorm:"column:id;primaryKey;autoIncrement"`
	TenantID     int64           `gorm:"column:tenant_id;not null;index:idx_deal_templates_tenant_active,priority:1"`
	Title        string          `gorm:"column:title;type:varchar(200);not null"`
	TriggerType  string          `gorm:"column:trigger_type;type:varchar(50);not null"`
	TriggerValue decimal.Decimal `gorm:"column:trigger_value;type:text;not null"`
	BenefitType  string          `gorm:"column:benefit_type;type:varchar(50);not null"`
	BenefitValue decimal.Decimal `gorm:"column:benefit_value;type:text;not null"`
	IsActive     bool            `gorm:"column:is_active;not null;index:idx_deal_templates_tenant_active,priority:2"`
	CreatedAt    time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (DealTemplateGORM) TableName() string {
	return "deal_templates"
}

// DealAwardGORM 優惠獎勵紀錄資料表模型
type DealAwardGORM struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	TenantID       int64     `gorm:"column:tenant_id;not null"`
	CustomerID     int64     `gorm:"column:customer_id;not null;index"`
	DealTemplateID int64     `gorm:"column:deal_template_id;not null;uniqueIndex:idx_deal_awards_ref_template,priority:2"`
	BonusDots      int       `gorm:"column:bonus_dots;not null;check:bonus_dots >= 0"`
	TransactionRef string    `gorm:"column:transaction_ref;type:varchar(36);not null;uniqueIndex:idx_deal_awards_ref_template,priority:1"`
	AwardedAt      time.Time `gorm:"column:awarded_at;not null"`
}

// TableName 指定資料表名稱
func (DealAwardGORM) TableName() string {
	return "deal_awards"
}

// ===========================
// Mapper Functions
// ===========================

func (g *DealTemplateGORM) toDomain() (*deal.DealTemplate, error) {
	templateID, err := deal.DealTemplateIDFromInt64(g.ID)
	if err != nil {
		return nil, err
	}
	tenantID, err := tenant.TenantIDFromInt64(g.TenantID)
	if err != nil {
		return nil, err
	}
	return deal.ReconstructDealTemplate(deal.DealTemplateState{
		TemplateID:   templateID,
		TenantID:     tenantID,
		Title:        g.Title,
		TriggerType:  deal.TriggerType(g.TriggerType),
		TriggerValue: g.TriggerValue,
		BenefitType:  deal.BenefitType(g.BenefitType),
		BenefitValue: g.BenefitValue,
		IsActive:     g.IsActive,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	})
}

func templateToGORM(t *deal.DealTemplate) *DealTemplateGORM {
	return &DealTemplateGORM{
		ID:           t.TemplateID().Int64(),
		TenantID:     t.TenantID().Int64(),
		Title:        t.Title(),
		TriggerType:  string(t.TriggerType()),
		TriggerValue: t.TriggerValue(),
		BenefitType:  string(t.BenefitType()),
		BenefitValue: t.BenefitValue(),
		IsActive:     t.IsActive(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}

func (g *DealAwardGORM) toDomain() (*deal.DealAward, error) {
	ref, err := uuid.Parse(g.TransactionRef)
	if err != nil {
		return nil, shared.ErrRepository.WithContext(
			"deal_award_id", g.ID,
			"reason", "invalid transaction_ref in database",
		)
	}
	return deal.ReconstructDealAward(deal.DealAwardState{
		AwardID:        shared.MustEntityID[deal.DealAwardMarker](g.ID),
		TenantID:       shared.MustEntityID[tenant.TenantMarker](g.TenantID),
		CustomerID:     shared.MustEntityID[customer.CustomerMarker](g.CustomerID),
		TemplateID:     shared.MustEntityID[deal.DealTemplateMarker](g.DealTemplateID),
		BonusDots:      g.BonusDots,
		TransactionRef: ref,
		AwardedAt:      g.AwardedAt,
	}), nil
}

func awardToGORM(a *deal.DealAward) *DealAwardGORM {
	return &DealAwardGORM{
		ID:             a.AwardID().Int64(),
		TenantID:       a.TenantID().Int64(),
		CustomerID:     a.CustomerID().Int64(),
		DealTemplateID: a.TemplateID().Int64(),
		BonusDots:      a.BonusDots(),
		TransactionRef: a.TransactionRef().String(),
		AwardedAt:      a.AwardedAt(),
	}
}
