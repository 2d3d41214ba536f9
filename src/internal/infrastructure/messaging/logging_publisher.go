package messaging

import (
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"go.uber.org/zap"
)

// ===========================
// LoggingEventPublisher
// ===========================

// LoggingEventPublisher 以結構化日誌發布領域事件
//
// 沒有外部訊息代理時的預設實作；每個事件輸出一行 Info 日誌，
// 下游（日誌收集器）可依 event_type 過濾。
type LoggingEventPublisher struct {
	logger *zap.Logger
}

// NewLoggingEventPublisher 創建事件發布器
func NewLoggingEventPublisher(logger *zap.Logger) shared.EventPublisher {
	return &LoggingEventPublisher{logger: logger.Named("events")}
}

// Publish 發布單一事件
func (p *LoggingEventPublisher) Publish(event shared.DomainEvent) error {
	p.logger.Info("domain event",
		zap.String("event_id", event.EventID()),
		zap.String("event_type", event.EventType()),
		zap.String("aggregate_id", event.AggregateID()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}

// PublishBatch 依序發布多個事件
func (p *LoggingEventPublisher) PublishBatch(events []shared.DomainEvent) error {
	for _, e := range events {
		if err := p.Publish(e); err != nil {
			return err
		}
	}
	return nil
}
