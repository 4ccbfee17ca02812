package events

import (
	"context"
	"encoding/json"
	"time"

	"shop-service/internal/service"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	eventOrderPlaced    = "order.placed"
	eventOrderCancelled = "order.cancelled"
)

type envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// KafkaEventBus публикует события заказов для пайплайна уведомлений.
type KafkaEventBus struct {
	writer *kafka.Writer
	log    *zap.Logger
}

func NewKafkaEventBus(brokers []string, topic string, log *zap.Logger) *KafkaEventBus {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaEventBus{writer: w, log: log}
}

func (b *KafkaEventBus) publish(ctx context.Context, key string, ev envelope) error {
	raw, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	err = b.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: raw,
	})
	if err != nil {
		b.log.Error("publish event failed", zap.String("type", ev.Type), zap.Error(err))
		return err
	}
	b.log.Info("event published", zap.String("type", ev.Type), zap.String("key", key))
	return nil
}

func (b *KafkaEventBus) PublishOrderPlaced(ctx context.Context, e service.OrderPlacedEvent) error {
	return b.publish(ctx, e.OrderID.String(), envelope{Type: eventOrderPlaced, Data: e})
}

func (b *KafkaEventBus) PublishOrderCancelled(ctx context.Context, e service.OrderCancelledEvent) error {
	return b.publish(ctx, e.OrderID.String(), envelope{Type: eventOrderCancelled, Data: e})
}

func (b *KafkaEventBus) Close() error { return b.writer.Close() }
