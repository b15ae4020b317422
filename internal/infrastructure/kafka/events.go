package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

const publishTimeout = 5 * time.Second

type AuditEvent struct {
	EventType string    `json:"event_type"`
	Subject   string    `json:"subject"`
	ActorID   int64     `json:"actor_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type OrphanEvent struct {
	Paths     []string  `json:"paths"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// PublishAudit sends an audit event; failures are logged and dropped.
func PublishAudit(ctx context.Context, producer KafkaProducer, event AuditEvent) {
	if producer == nil {
		return
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	publish(ctx, producer, TopicAudit, event.Subject, event)
}

// PublishOrphans reports stored files that could not be removed.
func PublishOrphans(ctx context.Context, producer KafkaProducer, reason string, paths ...string) {
	if producer == nil || len(paths) == 0 {
		return
	}
	publish(ctx, producer, TopicStorageOrphans, paths[0], OrphanEvent{
		Paths:     paths,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	})
}

func publish(ctx context.Context, producer KafkaProducer, topic, key string, event any) {
	value, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal Kafka event", "topic", topic, "error", err)
		return
	}
	// detached from the request, bounded by publishTimeout
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := producer.Send(sendCtx, topic, key, value); err != nil {
		slog.Error("failed to publish event", "topic", topic, "key", key, "error", err)
	}
}
