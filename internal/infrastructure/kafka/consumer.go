package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Antontokarchuk0302/Travelsite/internal/infrastructure/observability"
	"github.com/segmentio/kafka-go"
)

type FileDeleter interface {
	Delete(ctx context.Context, path string) error
}

// OrphanConsumer retries removal of stored files reported on TopicStorageOrphans.
type OrphanConsumer struct {
	reader *kafka.Reader
	files  FileDeleter
}

func NewOrphanConsumer(brokers []string, groupID string, files FileDeleter) *OrphanConsumer {
	return &OrphanConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    TopicStorageOrphans,
			GroupID:  groupID,
			MinBytes: 10e3,
			MaxBytes: 10e6,
		}),
		files: files,
	}
}

func (c *OrphanConsumer) Consume(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				slog.Info("orphan consumer stopped")
				return
			}
			slog.Error("failed to read Kafka message", "topic", TopicStorageOrphans, "error", err)
			continue
		}

		slog.Info("Kafka message received", "topic", msg.Topic, "key", string(msg.Key))
		if err := c.Handle(ctx, msg.Value); err != nil {
			slog.Error("failed to clean orphaned files", "key", string(msg.Key), "error", err)
		}
	}
}

// Handle removes every path of one orphan event. It keeps going after a
// failed delete and reports the last failure.
func (c *OrphanConsumer) Handle(ctx context.Context, value []byte) error {
	var event OrphanEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal orphan event: %w", err)
	}

	var lastErr error
	for _, path := range event.Paths {
		if err := c.files.Delete(ctx, path); err != nil {
			slog.Error("failed to delete orphaned file", "path", path, "reason", event.Reason, "error", err)
			lastErr = err
			continue
		}
		observability.OrphanedFiles.WithLabelValues("cleaned").Inc()
		slog.Info("orphaned file deleted", "path", path, "reason", event.Reason)
	}
	return lastErr
}

func (c *OrphanConsumer) Close() error {
	return c.reader.Close()
}
