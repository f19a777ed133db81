// Package events publishes best-effort domain events. A missing broker never
// blocks a storefront operation; callers log publish failures and move on.
package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
)

const (
	TopicUserEvents    = "user_events"
	TopicProductEvents = "product_events"
	TopicOrderEvents   = "order_events"
	TopicWalletEvents  = "wallet_events"
)

type Producer interface {
	PublishEvent(ctx context.Context, topic, key string, event map[string]any) error
	Close() error
}

type KafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(brokers []string) *KafkaProducer {
	return &KafkaProducer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaProducer) PublishEvent(ctx context.Context, topic, key string, event map[string]any) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	})
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// NoopProducer drops events; used when KAFKA_BROKERS is unset and in tests.
type NoopProducer struct{}

func (NoopProducer) PublishEvent(context.Context, string, string, map[string]any) error { return nil }
func (NoopProducer) Close() error                                                       { return nil }
