package deal

import (
	"strings"
	"time"

	"github.com/jackyeh168/dotly/src/internal/domain/tenant"
	"github.com/shopspring/decimal"
)

// ===========================
// DealTemplate 聚合根
// ===========================

// DealTemplate 租戶層級的促銷規則（觸發條件 + 獎勵）
//
// 生命週期：
// - 由租戶管理員創建與修改
// - 刪除一律是軟刪除（isActive = false），正常運作中不會實體刪除
// - 評估引擎對模板只讀
type DealTemplate struct {
	templateID   DealTemplateID
	tenantID     tenant.TenantID
	title        string
	triggerType  TriggerType
	triggerValue decimal.Decimal
	benefitType  BenefitType
	benefitValue decimal.Decimal
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// DealDefinition 可由管理員編輯的模板內容
type DealDefinition struct {
	Title        string
	TriggerType  TriggerType
	TriggerValue decimal.Decimal
	BenefitType  BenefitType
	BenefitValue decimal.Decimal
}

// maxDefinitionValue 觸發值與獎勵值的上限
var maxDefinitionValue = decimal.NewFromInt(1_000_000_000)

// validate 管理員輸入的完整驗證
func (d DealDefinition) validate() (DealDefinition, error) {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return d, ErrInvalidDealTemplate.WithContext("reason", "title cannot be empty")
	}
	if !d.TriggerType.IsValid() {
		return d, ErrUnsupportedTrigger.WithContext("trigger_type", string(d.TriggerType))
	}
	if !d.BenefitType.IsValid() {
		return d, ErrUnsupportedBenefit.WithContext("benefit_type", string(d.BenefitType))
	}
	if d.TriggerValue.IsNegative() {
		return d, ErrInvalidDealTemplate.WithContext("trigger_value", d.TriggerValue.String())
	}
	if d.BenefitValue.IsNegative() {
		return d, ErrInvalidDealTemplate.WithContext("benefit_value", d.BenefitValue.String())
	}
	if d.TriggerValue.GreaterThan(maxDefinitionValue) {
		return d, ErrInvalidDealTemplate.WithContext(
			"trigger_value", d.TriggerValue.String(),
			"max", maxDefinitionValue.String(),
		)
	}
	if d.BenefitValue.GreaterThan(maxDefinitionValue) {
		return d, ErrInvalidDealTemplate.WithContext(
			"benefit_value", d.BenefitValue.String(),
			"max", maxDefinitionValue.String(),
		)
	}
	return d, nil
}

// NewDealTemplate 創建新模板（預設啟用，ID 由 Repository 分配）
func NewDealTemplate(tenantID tenant.TenantID, def DealDefinition) (*DealTemplate, error) {
	if tenantID.IsEmpty() {
		return nil, tenant.ErrInvalidTenantID.WithContext("reason", "tenantID cannot be empty")
	}
	def, err := def.validate()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &DealTemplate{
		tenantID:     tenantID,
		title:        def.Title,
		triggerType:  def.TriggerType,
		triggerValue: def.TriggerValue,
		benefitType:  def.BenefitType,
		benefitValue: def.BenefitValue,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// DealTemplateState 重建模板所需的持久化狀態
type DealTemplateState struct {
	TemplateID   DealTemplateID
	TenantID     tenant.TenantID
	Title        string
	TriggerType  TriggerType
	TriggerValue decimal.Decimal
	BenefitType  BenefitType
	BenefitValue decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReconstructDealTemplate 從持久化存儲重建模板（僅供 Repository 使用）
//
// 不驗證觸發/獎勵類型：資料庫中設定錯誤的模板必須在評估時以
// ErrUnsupportedTrigger / ErrUnsupportedBenefit 暴露給營運人員。
func ReconstructDealTemplate(s DealTemplateState) (*DealTemplate, error) {
	if s.TemplateID.IsEmpty() {
		return nil, ErrInvalidDealTemplateID.WithContext("reason", "invalid deal template ID in database")
	}
	if s.TenantID.IsEmpty() {
		return nil, tenant.ErrInvalidTenantID.WithContext("reason", "invalid tenant ID in database")
	}
	return &DealTemplate{
		templateID:   s.TemplateID,
		tenantID:     s.TenantID,
		title:        s.Title,
		triggerType:  s.TriggerType,
		triggerValue: s.TriggerValue,
		benefitType:  s.BenefitType,
		benefitValue: s.BenefitValue,
		isActive:     s.IsActive,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
	}, nil
}

// ===========================
// 查詢方法
// ===========================

func (t *DealTemplate) TemplateID() DealTemplateID {
	return t.templateID
}

func (t *DealTemplate) TenantID() tenant.TenantID {
	return t.tenantID
}

func (t *DealTemplate) Title() string {
	return t.title
}

func (t *DealTemplate) TriggerType() TriggerType {
	return t.triggerType
}

func (t *DealTemplate) TriggerValue() decimal.Decimal {
	return t.triggerValue
}

func (t *DealTemplate) BenefitType() BenefitType {
	return t.benefitType
}

func (t *DealTemplate) BenefitValue() decimal.Decimal {
	return t.benefitValue
}

func (t *DealTemplate) IsActive() bool {
	return t.isActive
}

func (t *DealTemplate) CreatedAt() time.Time {
	return t.createdAt
}

func (t *DealTemplate) UpdatedAt() time.Time {
	return t.updatedAt
}

// Definition 取得可編輯的模板內容
func (t *DealTemplate) Definition() DealDefinition {
	return DealDefinition{
		Title:        t.title,
		TriggerType:  t.triggerType,
		TriggerValue: t.triggerValue,
		BenefitType:  t.benefitType,
		BenefitValue: t.benefitValue,
	}
}

// AssignID 由 Repository 在新增後回填自增主鍵
func (t *DealTemplate) AssignID(id DealTemplateID) {
	t.templateID = id
}

// ===========================
// 命令方法
// ===========================

// Revise 修改模板內容（與創建相同的驗證規則）
func (t *DealTemplate) Revise(def DealDefinition) error {
	def, err := def.validate()
	if err != nil {
		return err
	}
	t.title = def.Title
	t.triggerType = def.TriggerType
	t.triggerValue = def.TriggerValue
	t.benefitType = def.BenefitType
	t.benefitValue = def.BenefitValue
	t.updatedAt = time.Now()
	return nil
}

// Deactivate 軟刪除；已停用時為 no-op（冪等）
func (t *DealTemplate) Deactivate() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.updatedAt = time.Now()
}

// Activate 重新啟用
func (t *DealTemplate) Activate() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.updatedAt = time.Now()
}
