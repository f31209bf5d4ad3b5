package handler

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"stoik.com/voicedesk/internal/core/domain"
	"stoik.com/voicedesk/mocks"
)

func fileSharedDelivery(body string) *amqp.Delivery {
	return &amqp.Delivery{
		RoutingKey: domain.RoutingKeyFileShared,
		Body:       []byte(body),
	}
}

func TestAMQPConsumer_FileSharedSubmitted(t *testing.T) {
	pipeline := &mocks.Pipeline{}
	pipeline.EXPECT().Submit(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event domain.FileEvent) {
			assert.Equal(t, "https://files.slack.com/files-pri/T123-F456/voice.mp3", event.URL)
			assert.Equal(t, "U123", event.UserID)
			assert.Equal(t, "C456", event.ChannelID)
		}).
		Return(false, nil, nil)

	consumer := NewAMQPConsumer(pipeline, validator.New())
	consumer.Handle(context.Background(), fileSharedDelivery(`{
		"file_id": "F456",
		"url": "https://files.slack.com/files-pri/T123-F456/voice.mp3",
		"name": "voice.mp3",
		"file_type": "mp3",
		"user_id": "U123",
		"channel_id": "C456"
	}`))

	pipeline.AssertExpectations(t)
}

func TestAMQPConsumer_DuplicateAcked(t *testing.T) {
	pipeline := &mocks.Pipeline{}
	pipeline.EXPECT().Submit(mock.Anything, mock.Anything).Return(true, &domain.ProcessingRecord{
		Fingerprint: "fp-existing",
		Status:      domain.StatusCompleted,
	}, nil)

	consumer := NewAMQPConsumer(pipeline, validator.New())
	consumer.Handle(context.Background(), fileSharedDelivery(`{
		"url": "https://files.slack.com/files-pri/T123-F456/voice.mp3",
		"user_id": "U123",
		"channel_id": "C456"
	}`))

	pipeline.AssertExpectations(t)
}

func TestAMQPConsumer_InvalidMessageNotSubmitted(t *testing.T) {
	pipeline := &mocks.Pipeline{}
	consumer := NewAMQPConsumer(pipeline, validator.New())

	// Malformed JSON
	consumer.Handle(context.Background(), fileSharedDelivery(`{not json`))

	// Missing required fields
	consumer.Handle(context.Background(), fileSharedDelivery(`{"name":"voice.mp3"}`))

	pipeline.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestAMQPConsumer_UnknownRoutingKeyIgnored(t *testing.T) {
	pipeline := &mocks.Pipeline{}
	consumer := NewAMQPConsumer(pipeline, validator.New())

	consumer.Handle(context.Background(), &amqp.Delivery{
		RoutingKey: "file.deleted",
		Body:       []byte(`{}`),
	})

	pipeline.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}
