package customer

import (
	"time"

	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ===========================
// Customer 領域事件
// ===========================

// CustomerPurchaseRecordedEvent 客戶消費已記錄事件
type CustomerPurchaseRecordedEvent struct {
	shared.EventMeta
	customerID  CustomerID
	amount      decimal.Decimal
	dotsAwarded Dots
	totalVisits int
	streak      int
	purchasedAt time.Time
}

// NewCustomerPurchaseRecordedEvent 創建消費已記錄事件
func NewCustomerPurchaseRecordedEvent(
	customerID CustomerID,
	amount decimal.Decimal,
	dotsAwarded Dots,
	totalVisits int,
	streak int,
	purchasedAt time.Time,
) *CustomerPurchaseRecordedEvent {
	return &CustomerPurchaseRecordedEvent{
		EventMeta:   shared.NewEventMeta(customerID.Int64()),
		customerID:  customerID,
		amount:      amount,
		dotsAwarded: dotsAwarded,
		totalVisits: totalVisits,
		streak:      streak,
		purchasedAt: purchasedAt,
	}
}

// EventType 實現 DomainEvent 介面
func (e *CustomerPurchaseRecordedEvent) EventType() string {
	return "customer.purchase_recorded"
}

func (e *CustomerPurchaseRecordedEvent) CustomerID() CustomerID {
	return e.customerID
}

func (e *CustomerPurchaseRecordedEvent) Amount() decimal.Decimal {
	return e.amount
}

func (e *CustomerPurchaseRecordedEvent) DotsAwarded() Dots {
	return e.dotsAwarded
}

// TotalVisits 消費後的累計到店次數
func (e *CustomerPurchaseRecordedEvent) TotalVisits() int {
	return e.totalVisits
}

// Streak 消費後的連續到店天數
func (e *CustomerPurchaseRecordedEvent) Streak() int {
	return e.streak
}

func (e *CustomerPurchaseRecordedEvent) PurchasedAt() time.Time {
	return e.purchasedAt
}
