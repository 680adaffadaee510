package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
)

// EventPublisher publishes screening events to the event stream.
type EventPublisher interface {
	PublishScreeningEvent(ctx context.Context, event *ScreeningEvent) error
	Close() error
}

// KafkaEventPublisher implements EventPublisher using Watermill with Kafka.
type KafkaEventPublisher struct {
	publisher message.Publisher
	logger    *slog.Logger
	topicName string
}

type PublisherConfig struct {
	KafkaBrokers []string
	TopicName    string
	Logger       *slog.Logger
}

func NewKafkaEventPublisher(config PublisherConfig) (*KafkaEventPublisher, error) {
	logger := watermill.NewSlogLogger(config.Logger)

	publisherConfig := kafka.PublisherConfig{
		Brokers:   config.KafkaBrokers,
		Marshaler: kafka.DefaultMarshaler{},
	}

	publisher, err := kafka.NewPublisher(publisherConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka publisher: %w", err)
	}

	return &KafkaEventPublisher{
		publisher: publisher,
		logger:    config.Logger,
		topicName: config.TopicName,
	}, nil
}

func (p *KafkaEventPublisher) PublishScreeningEvent(ctx context.Context, event *ScreeningEvent) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal screening event: %w", err)
	}

	msg := message.NewMessage(event.ID, eventBytes)
	msg.Metadata.Set("event_type", string(event.Type))
	msg.Metadata.Set("source", event.Source)
	msg.Metadata.Set("version", event.Version)
	msg.Metadata.Set("timestamp", event.Timestamp.Format(time.RFC3339))

	if err := p.publisher.Publish(p.topicName, msg); err != nil {
		p.logger.Error("Failed to publish screening event",
			"event_id", event.ID,
			"event_type", event.Type,
			"error", err)
		return fmt.Errorf("failed to publish screening event: %w", err)
	}

	p.logger.Info("Published screening event",
		"event_id", event.ID,
		"event_type", event.Type,
		"topic", p.topicName)

	return nil
}

func (p *KafkaEventPublisher) Close() error {
	return p.publisher.Close()
}

// NoopEventPublisher drops events; used when no brokers are configured.
type NoopEventPublisher struct{}

func (NoopEventPublisher) PublishScreeningEvent(ctx context.Context, event *ScreeningEvent) error {
	return nil
}

func (NoopEventPublisher) Close() error { return nil }

// MockEventPublisher records published events in memory for tests.
type MockEventPublisher struct {
	Events []ScreeningEvent
}

func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{Events: make([]ScreeningEvent, 0)}
}

func (m *MockEventPublisher) PublishScreeningEvent(ctx context.Context, event *ScreeningEvent) error {
	m.Events = append(m.Events, *event)
	return nil
}

func (m *MockEventPublisher) Close() error { return nil }
