package deal

import (
	"math"

	"github.com/shopspring/decimal"
)

// ===========================
// 評估結果
// ===========================

// TriggeredDeal 單一被觸發的優惠
type TriggeredDeal struct {
	DealTemplateID  int64 `json:"dealTemplateId"`
	BonusDotsEarned int   `json:"bonusDotsEarned"`
}

// EvaluationResult 一次評估的結果（暫態值，不持久化）
//
// 不變條件：TotalBonusDots == Σ TriggeredDeals[i].BonusDotsEarned
type EvaluationResult struct {
	TriggeredDeals []TriggeredDeal `json:"triggeredDeals"`
	TotalBonusDots int             `json:"totalBonusDots"`
}

// ===========================
// Engine 優惠評估引擎
// ===========================

// Engine 優惠評估引擎（領域服務）
//
// 無狀態、無鎖、無副作用：輸入為已載入的客戶快照與模板清單。
// 同一客戶的「評估 → 套用」必須由調用者序列化（見 application/purchase）。
type Engine struct {
	triggers map[TriggerType]TriggerEvaluator
	benefits map[BenefitType]BenefitCalculator
}

// NewEngine 使用預設的觸發/獎勵處理器建立引擎
func NewEngine() *Engine {
	return &Engine{
		triggers: defaultTriggerEvaluators,
		benefits: defaultBenefitCalculators,
	}
}

// ValidateEvaluationInput 前置條件：金額 >= 0、基礎點數 >= 0
func ValidateEvaluationInput(transactionAmount decimal.Decimal, baseDotsEarned int) error {
	if transactionAmount.IsNegative() {
		return ErrInvalidTransactionAmount.WithContext("transaction_amount", transactionAmount.String())
	}
	if baseDotsEarned < 0 {
		return ErrInvalidBaseDots.WithContext("base_dots_earned", baseDotsEarned)
	}
	return nil
}

// Evaluate 評估一筆交易觸發的優惠
//
// 流程：
// 1. 略過停用模板（永不評估、永不出現在結果中）
// 2. 依 triggerType 分派觸發評估
// 3. 觸發的模板依 benefitType 分派獎勵計算
// 4. 依模板傳入順序累積結果（Repository 以 id 升冪載入）
//
// 每個模板只走一次迴圈，因此同一模板不可能重複出現在結果中。
// 任何錯誤（包括合計獎勵溢位）都中止整次評估，不返回部分結果。
func (e *Engine) Evaluate(
	snapshot CustomerSnapshot,
	transactionAmount decimal.Decimal,
	baseDotsEarned int,
	templates []*DealTemplate,
) (EvaluationResult, error) {
	if err := ValidateEvaluationInput(transactionAmount, baseDotsEarned); err != nil {
		return EvaluationResult{}, err
	}

	result := EvaluationResult{TriggeredDeals: make([]TriggeredDeal, 0)}

	for _, tmpl := range templates {
		if !tmpl.IsActive() {
			continue
		}
		if !tmpl.TenantID().Equals(snapshot.TenantID) {
			return EvaluationResult{}, ErrTemplateTenantMismatch.WithContext(
				"deal_template_id", tmpl.TemplateID().Int64(),
				"template_tenant_id", tmpl.TenantID().Int64(),
				"customer_tenant_id", snapshot.TenantID.Int64(),
			)
		}

		triggered, err := evaluateTriggerWith(e.triggers, tmpl.TriggerType(), snapshot, transactionAmount, tmpl.TriggerValue())
		if err != nil {
			return EvaluationResult{}, withTemplate(err, tmpl)
		}
		if !triggered {
			continue
		}

		bonus, err := calculateBonusWith(e.benefits, baseDotsEarned, tmpl.BenefitType(), tmpl.BenefitValue())
		if err != nil {
			return EvaluationResult{}, withTemplate(err, tmpl)
		}

		if bonus > math.MaxInt-result.TotalBonusDots {
			return EvaluationResult{}, ErrBonusOverflow.WithContext(
				"deal_template_id", tmpl.TemplateID().Int64(),
				"accumulated", result.TotalBonusDots,
				"adding", bonus,
			)
		}

		result.TriggeredDeals = append(result.TriggeredDeals, TriggeredDeal{
			DealTemplateID:  tmpl.TemplateID().Int64(),
			BonusDotsEarned: bonus,
		})
		result.TotalBonusDots += bonus
	}

	return result, nil
}

// withTemplate 為目錄設定錯誤附加模板 ID，方便營運人員定位
func withTemplate(err error, tmpl *DealTemplate) error {
	if domainErr, ok := err.(interface {
		WithContext(keyValues ...interface{}) error
	}); ok {
		return domainErr.WithContext("deal_template_id", tmpl.TemplateID().Int64())
	}
	return err
}
