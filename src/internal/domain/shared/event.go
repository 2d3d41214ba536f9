package shared

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DomainEvent 領域事件基礎介面
type DomainEvent interface {
	EventID() string       // 事件唯一標識
	EventType() string     // 事件類型
	OccurredAt() time.Time // 發生時間
	AggregateID() string   // 聚合根 ID
}

// EventPublisher 事件發布器介面
// 設計原則：介面定義在 Domain Layer（使用者），由 Infrastructure 實作
//
// 只在事務提交後發布；發布失敗不影響已提交的資料。
type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishBatch(events []DomainEvent) error
}

// ===========================
// EventMeta
// ===========================

// EventMeta 所有事件共用的識別欄位，嵌入具體事件後只需實作 EventType
type EventMeta struct {
	eventID     string
	aggregateID string
	occurredAt  time.Time
}

// NewEventMeta 以新的 UUID 與當前時間建立事件欄位
func NewEventMeta(aggregateID int64) EventMeta {
	return EventMeta{
		eventID:     uuid.New().String(),
		aggregateID: strconv.FormatInt(aggregateID, 10),
		occurredAt:  time.Now(),
	}
}

func (m EventMeta) EventID() string {
	return m.eventID
}

func (m EventMeta) OccurredAt() time.Time {
	return m.occurredAt
}

func (m EventMeta) AggregateID() string {
	return m.aggregateID
}
