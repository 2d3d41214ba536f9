package deal

// ===========================
// 觸發類型 / 獎勵類型（封閉變體集合）
// ===========================

// TriggerType 決定優惠是否適用於本次交易的條件類別
type TriggerType string

const (
	// TriggerSpendThreshold 本次交易金額 >= triggerValue
	TriggerSpendThreshold TriggerType = "SpendThreshold"
	// TriggerVisitMilestone 消費前累計到店次數 >= triggerValue
	TriggerVisitMilestone TriggerType = "VisitMilestone"
	// TriggerConsecutiveDays 連續到店天數 >= triggerValue
	TriggerConsecutiveDays TriggerType = "ConsecutiveDays"
)

// TriggerTypes 所有已知的觸發類型（新增類型時必須同步登記處理器）
func TriggerTypes() []TriggerType {
	return []TriggerType{
		TriggerSpendThreshold,
		TriggerVisitMilestone,
		TriggerConsecutiveDays,
	}
}

// IsValid 是否為已知的觸發類型
func (t TriggerType) IsValid() bool {
	_, ok := defaultTriggerEvaluators[t]
	return ok
}

// BenefitType 決定觸發後發放多少獎勵點數的類別
type BenefitType string

const (
	// BenefitBonusDots 固定獎勵點數 floor(benefitValue)
	BenefitBonusDots BenefitType = "BonusDots"
	// BenefitMultiplier 倍數獎勵 floor(baseDots × benefitValue)
	BenefitMultiplier BenefitType = "Multiplier"
)

// BenefitTypes 所有已知的獎勵類型
func BenefitTypes() []BenefitType {
	return []BenefitType{
		BenefitBonusDots,
		BenefitMultiplier,
	}
}

// IsValid 是否為已知的獎勵類型
func (b BenefitType) IsValid() bool {
	_, ok := defaultBenefitCalculators[b]
	return ok
}
