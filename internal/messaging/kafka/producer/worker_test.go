package producer

import (
	"context"
	"errors"
	"testing"

	"github.com/mmnete/bimasoft-backend/internal/messaging/kafka"
	kafkamock "github.com/mmnete/bimasoft-backend/internal/messaging/kafka/mock"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	written []kafkago.Message
	failFor map[string]bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if w.failFor[string(m.Key)] {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkamock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{failFor: map[string]bool{"organization:9": true}}

	pending := []kafka.OutboxEvent{
		{ID: "e1", RequestID: "rid-1", AggregateType: "organization", AggregateID: "7", EventType: "organization_onboarded", Topic: "t", Payload: []byte(`{}`)},
		{ID: "e2", AggregateType: "organization", AggregateID: "9", EventType: "organization_onboarded", Topic: "t", Payload: []byte(`{}`)},
	}

	repo.EXPECT().ListPending(gomock.Any(), 50).Return(pending, nil)
	repo.EXPECT().MarkSent(gomock.Any(), "e1").Return(nil)
	repo.EXPECT().MarkFailed(gomock.Any(), "e2", "broker unavailable").Return(nil)

	sent, err := ProcessPendingEvents(context.Background(), repo, writer, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, writer.written, 1)
	assert.Equal(t, "organization:7", string(writer.written[0].Key))
	assert.Contains(t, writer.written[0].Headers, kafkago.Header{Key: "request_id", Value: []byte("rid-1")})
	assert.Contains(t, writer.written[0].Headers, kafkago.Header{Key: "outbox_id", Value: []byte("e1")})
}

func TestToMessage_OmitsEmptyRequestID(t *testing.T) {
	msg := toMessage(kafka.OutboxEvent{ID: "e2", AggregateType: "organization", AggregateID: "9", Topic: "t"})

	for _, h := range msg.Headers {
		assert.NotEqual(t, "request_id", h.Key)
	}
	assert.Equal(t, "t", msg.Topic)
}

func TestProcessPendingEvents_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkamock.NewMockOutboxRepository(ctrl)
	repo.EXPECT().ListPending(gomock.Any(), 50).Return(nil, errors.New("db down"))

	_, err := ProcessPendingEvents(context.Background(), repo, &fakeWriter{}, zap.NewNop())

	assert.EqualError(t, err, "db down")
}
