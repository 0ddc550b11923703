package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/senseiarena/arena/internal/domain"
)

// EventPublisher publishes domain events to Kafka, keyed by account id so
// one account's events stay ordered within a partition. If brokers is
// empty or disabled, publishes are no-ops.
type EventPublisher struct {
	writer  *kafka.Writer
	logger  *slog.Logger
	enabled bool
}

func NewEventPublisher(brokers string, enabled bool, logger *slog.Logger) *EventPublisher {
	if !enabled || brokers == "" {
		logger.Info("event publisher disabled")
		return &EventPublisher{enabled: false, logger: logger}
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(brokers, ",")...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("event publisher initialized", "brokers", brokers)
	return &EventPublisher{writer: w, logger: logger, enabled: true}
}

// Publish sends one event to the topic named by its type. No-op if disabled.
func (p *EventPublisher) Publish(ctx context.Context, event domain.EventDraft) error {
	if !p.enabled {
		return nil
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: string(event.EventType),
		Key:   []byte(event.AccountID),
		Value: value,
	})
}

// Close shuts down the Kafka writer.
func (p *EventPublisher) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// EventConsumer reads domain events from one topic within a consumer group.
type EventConsumer struct {
	reader  *kafka.Reader
	logger  *slog.Logger
	enabled bool
}

func NewEventConsumer(brokers, topic, groupID string, enabled bool, logger *slog.Logger) *EventConsumer {
	if !enabled || brokers == "" {
		return &EventConsumer{enabled: false, logger: logger}
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  strings.Split(brokers, ","),
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6, // 10MB
	})

	return &EventConsumer{reader: r, logger: logger, enabled: true}
}

// ReadEvent blocks until the next event arrives and decodes it.
func (c *EventConsumer) ReadEvent(ctx context.Context) (domain.EventDraft, error) {
	var event domain.EventDraft
	if !c.enabled {
		<-ctx.Done()
		return event, ctx.Err()
	}

	msg, err := c.reader.ReadMessage(ctx)
	if err != nil {
		return event, err
	}
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return event, fmt.Errorf("decode event: %w", err)
	}
	return event, nil
}

// Close shuts down the Kafka reader.
func (c *EventConsumer) Close() error {
	if c.reader != nil {
		return c.reader.Close()
	}
	return nil
}
