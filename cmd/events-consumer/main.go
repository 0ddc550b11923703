// events-consumer tails the arena event topics and logs a structured line
// per event. It exists as the consumption-side reference for anything that
// wants to react to quest activity off the request path.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/senseiarena/arena/internal/domain"
	"github.com/senseiarena/arena/internal/infra"
)

var topics = []domain.EventType{
	domain.EventActionRecorded,
	domain.EventQuestCompleted,
	domain.EventCategoryUnlocked,
	domain.EventProgressReset,
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("events consumer failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := infra.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.KafkaEnabled {
		return fmt.Errorf("KAFKA_ENABLED must be true for the events consumer")
	}

	groupID := os.Getenv("EVENTS_CONSUMER_GROUP")
	if groupID == "" {
		groupID = "arena-events"
	}

	var wg sync.WaitGroup
	for _, topic := range topics {
		consumer := infra.NewEventConsumer(cfg.KafkaBrokers, string(topic), groupID, true, logger)
		defer consumer.Close()

		wg.Add(1)
		go func(topic domain.EventType, c *infra.EventConsumer) {
			defer wg.Done()
			tail(ctx, topic, c, logger)
		}(topic, consumer)
	}

	logger.Info("events consumer started",
		"brokers", cfg.KafkaBrokers,
		"group", groupID,
		"topics", len(topics))

	wg.Wait()
	logger.Info("events consumer shutting down")
	return nil
}

func tail(ctx context.Context, topic domain.EventType, c *infra.EventConsumer, logger *slog.Logger) {
	for {
		event, err := c.ReadEvent(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.Error("read event", "topic", topic, "error", err)
			continue
		}
		logger.Info("event received",
			"topic", topic,
			"event_id", event.EventID,
			"account", event.AccountID,
			"payload", string(event.Payload),
			"occurred_at", event.OccurredAt)
	}
}
