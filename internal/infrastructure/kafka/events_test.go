package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Antontokarchuk0302/Travelsite/internal/infrastructure/kafka"
	kafkamocks "github.com/Antontokarchuk0302/Travelsite/internal/infrastructure/kafka/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPublishAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	producer := kafkamocks.NewMockKafkaProducer(ctrl)

	producer.EXPECT().Send(gomock.Any(), kafka.TopicAudit, "RelaxArc-1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, topic, key string, value []byte) error {
			var event kafka.AuditEvent
			require.NoError(t, json.Unmarshal(value, &event))
			assert.Equal(t, "transaction.updated", event.EventType)
			assert.Equal(t, int64(3), event.ActorID)
			assert.False(t, event.CreatedAt.IsZero())
			return errors.New("broker unavailable")
		})

	kafka.PublishAudit(context.Background(), producer, kafka.AuditEvent{
		EventType: "transaction.updated",
		Subject:   "RelaxArc-1",
		ActorID:   3,
	})

	kafka.PublishAudit(context.Background(), nil, kafka.AuditEvent{Subject: "ignored"})
}

func TestPublishOrphans(t *testing.T) {
	ctrl := gomock.NewController(t)
	producer := kafkamocks.NewMockKafkaProducer(ctrl)

	// nothing to report, nothing sent
	kafka.PublishOrphans(context.Background(), producer, "gallery_deleted")

	producer.EXPECT().Send(gomock.Any(), kafka.TopicStorageOrphans, "travel-galleries/a.png", gomock.Any()).Return(nil)
	kafka.PublishOrphans(context.Background(), producer, "gallery_deleted", "travel-galleries/a.png")
}
