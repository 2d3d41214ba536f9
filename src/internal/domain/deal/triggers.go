package deal

import (
	"github.com/jackyeh168/dotly/src/internal/domain/customer"
	"github.com/jackyeh168/dotly/src/internal/domain/tenant"
	"github.com/shopspring/decimal"
)

// ===========================
// CustomerSnapshot
// ===========================

// CustomerSnapshot 評估時讀取的客戶狀態（消費前快照）
//
// TotalVisits 是交易處理記錄本次到店「之前」的次數；引擎不會自行遞增。
// ConsecutiveDayStreak 由交易處理維護，引擎視為不透明輸入。
type CustomerSnapshot struct {
	CustomerID           customer.CustomerID
	TenantID             tenant.TenantID
	TotalVisits          int
	TotalSpent           decimal.Decimal
	TotalDots            int
	ConsecutiveDayStreak int
}

// SnapshotOf 從客戶聚合取得評估快照
func SnapshotOf(c *customer.Customer) CustomerSnapshot {
	return CustomerSnapshot{
		CustomerID:           c.CustomerID(),
		TenantID:             c.TenantID(),
		TotalVisits:          c.TotalVisits(),
		TotalSpent:           c.TotalSpent(),
		TotalDots:            c.TotalDots().Value(),
		ConsecutiveDayStreak: c.ConsecutiveDayStreak(),
	}
}

// ===========================
// Trigger Evaluators
// ===========================

// TriggerEvaluator 判斷客戶的消費前狀態是否滿足優惠條件（純函數）
type TriggerEvaluator func(snapshot CustomerSnapshot, transactionAmount, triggerValue decimal.Decimal) bool

var defaultTriggerEvaluators = map[TriggerType]TriggerEvaluator{
	TriggerSpendThreshold:  evaluateSpendThreshold,
	TriggerVisitMilestone:  evaluateVisitMilestone,
	TriggerConsecutiveDays: evaluateConsecutiveDays,
}

// evaluateSpendThreshold 只看本次交易金額，不看累計消費；每次符合都觸發
func evaluateSpendThreshold(_ CustomerSnapshot, transactionAmount, triggerValue decimal.Decimal) bool {
	return transactionAmount.GreaterThanOrEqual(triggerValue)
}

// evaluateVisitMilestone 使用資料庫中現存的到店次數（不含本次）
func evaluateVisitMilestone(snapshot CustomerSnapshot, _, triggerValue decimal.Decimal) bool {
	return decimal.NewFromInt(int64(snapshot.TotalVisits)).GreaterThanOrEqual(triggerValue)
}

func evaluateConsecutiveDays(snapshot CustomerSnapshot, _, triggerValue decimal.Decimal) bool {
	return decimal.NewFromInt(int64(snapshot.ConsecutiveDayStreak)).GreaterThanOrEqual(triggerValue)
}

// EvaluateTrigger 依觸發類型分派到對應的評估函數
//
// 未知類型返回 ErrUnsupportedTrigger（不可靜默略過，否則會掩蓋目錄設定錯誤）
func EvaluateTrigger(
	triggerType TriggerType,
	snapshot CustomerSnapshot,
	transactionAmount decimal.Decimal,
	triggerValue decimal.Decimal,
) (bool, error) {
	return evaluateTriggerWith(defaultTriggerEvaluators, triggerType, snapshot, transactionAmount, triggerValue)
}

func evaluateTriggerWith(
	evaluators map[TriggerType]TriggerEvaluator,
	triggerType TriggerType,
	snapshot CustomerSnapshot,
	transactionAmount decimal.Decimal,
	triggerValue decimal.Decimal,
) (bool, error) {
	evaluate, ok := evaluators[triggerType]
	if !ok {
		return false, ErrUnsupportedTrigger.WithContext("trigger_type", string(triggerType))
	}
	return evaluate(snapshot, transactionAmount, triggerValue), nil
}
