package deal

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackyeh168/dotly/src/internal/domain/customer"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/domain/tenant"
)

// ===========================
// DealAward 優惠獎勵紀錄
// ===========================

// DealAward 一筆已發放的優惠獎勵
//
// 由交易處理（評估結果的調用者）建立並持久化；評估引擎本身不寫入任何紀錄。
// TransactionRef 串起同一筆交易產生的所有獎勵。
type DealAward struct {
	awardID        DealAwardID
	tenantID       tenant.TenantID
	customerID     customer.CustomerID
	templateID     DealTemplateID
	bonusDots      int
	transactionRef uuid.UUID
	awardedAt      time.Time
}

// NewDealAwards 將評估結果轉換為獎勵紀錄（每個被觸發的優惠一筆）
//
// 評估結果中的模板必須已持久化（ID > 0），否則返回 ErrInvalidDealTemplateID。
func NewDealAwards(
	snapshot CustomerSnapshot,
	result EvaluationResult,
	transactionRef uuid.UUID,
	awardedAt time.Time,
) ([]*DealAward, error) {
	awards := make([]*DealAward, 0, len(result.TriggeredDeals))
	for _, td := range result.TriggeredDeals {
		templateID, err := DealTemplateIDFromInt64(td.DealTemplateID)
		if err != nil {
			return nil, err
		}
		awards = append(awards, &DealAward{
			tenantID:       snapshot.TenantID,
			customerID:     snapshot.CustomerID,
			templateID:     templateID,
			bonusDots:      td.BonusDotsEarned,
			transactionRef: transactionRef,
			awardedAt:      awardedAt,
		})
	}
	return awards, nil
}

// DealAwardState 重建獎勵紀錄所需的持久化狀態
type DealAwardState struct {
	AwardID        DealAwardID
	TenantID       tenant.TenantID
	CustomerID     customer.CustomerID
	TemplateID     DealTemplateID
	BonusDots      int
	TransactionRef uuid.UUID
	AwardedAt      time.Time
}

// ReconstructDealAward 從持久化存儲重建（僅供 Repository 使用）
func ReconstructDealAward(s DealAwardState) *DealAward {
	return &DealAward{
		awardID:        s.AwardID,
		tenantID:       s.TenantID,
		customerID:     s.CustomerID,
		templateID:     s.TemplateID,
		bonusDots:      s.BonusDots,
		transactionRef: s.TransactionRef,
		awardedAt:      s.AwardedAt,
	}
}

func (a *DealAward) AwardID() DealAwardID {
	return a.awardID
}

func (a *DealAward) TenantID() tenant.TenantID {
	return a.tenantID
}

func (a *DealAward) CustomerID() customer.CustomerID {
	return a.customerID
}

func (a *DealAward) TemplateID() DealTemplateID {
	return a.templateID
}

func (a *DealAward) BonusDots() int {
	return a.bonusDots
}

func (a *DealAward) TransactionRef() uuid.UUID {
	return a.transactionRef
}

func (a *DealAward) AwardedAt() time.Time {
	return a.awardedAt
}

// AssignID 由 Repository 在新增後回填自增主鍵
func (a *DealAward) AssignID(id DealAwardID) {
	a.awardID = id
}

// ===========================
// DealAwarded 領域事件
// ===========================

// DealAwardedEvent 優惠獎勵已發放事件
//
// AggregateID 為客戶 ID（獎勵紀錄隸屬於客戶的點數歷史）
type DealAwardedEvent struct {
	shared.EventMeta
	award *DealAward
}

// NewDealAwardedEvent 創建獎勵已發放事件
func NewDealAwardedEvent(award *DealAward) *DealAwardedEvent {
	return &DealAwardedEvent{
		EventMeta: shared.NewEventMeta(award.CustomerID().Int64()),
		award:     award,
	}
}

// EventType 實現 DomainEvent 介面
func (e *DealAwardedEvent) EventType() string {
	return "deal.awarded"
}

// Award 獲取獎勵紀錄
func (e *DealAwardedEvent) Award() *DealAward {
	return e.award
}
