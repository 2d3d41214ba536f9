package deal

import (
	"time"

	"github.com/jackyeh168/dotly/src/internal/domain/deal"
	"github.com/shopspring/decimal"
)

// DealTemplateDTO 優惠模板（Output DTO）
type DealTemplateDTO struct {
	DealTemplateID int64           `json:"dealTemplateId"`
	TenantID       int64           `json:"tenantId"`
	Title          string          `json:"title"`
	TriggerType    string          `json:"triggerType"`
	TriggerValue   decimal.Decimal `json:"triggerValue"`
	BenefitType    string          `json:"benefitType"`
	BenefitValue   decimal.Decimal `json:"benefitValue"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func toDTO(t *deal.DealTemplate) DealTemplateDTO {
	return DealTemplateDTO{
		DealTemplateID: t.TemplateID().Int64(),
		TenantID:       t.TenantID().Int64(),
		Title:          t.Title(),
		TriggerType:    string(t.TriggerType()),
		TriggerValue:   t.TriggerValue(),
		BenefitType:    string(t.BenefitType()),
		BenefitValue:   t.BenefitValue(),
		IsActive:       t.IsActive(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

// DealDefinitionInput 管理員輸入的模板內容（原始類型，由 Use Case 轉換）
type DealDefinitionInput struct {
	Title        string
	TriggerType  string
	TriggerValue decimal.Decimal
	BenefitType  string
	BenefitValue decimal.Decimal
}

func (in DealDefinitionInput) toDomain() deal.DealDefinition {
	return deal.DealDefinition{
		Title:        in.Title,
		TriggerType:  deal.TriggerType(in.TriggerType),
		TriggerValue: in.TriggerValue,
		BenefitType:  deal.BenefitType(in.BenefitType),
		BenefitValue: in.BenefitValue,
	}
}
