package handler

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"stoik.com/voicedesk/internal/core/domain"
	"stoik.com/voicedesk/internal/core/port"
)

// AMQPConsumer routes broker-relayed file-share notifications into the
// pipeline. Backpressure comes from the pipeline's own bounded queue.
type AMQPConsumer struct {
	pipeline port.Pipeline
	validate *validator.Validate
}

func NewAMQPConsumer(pipeline port.Pipeline, validate *validator.Validate) *AMQPConsumer {
	return &AMQPConsumer{
		pipeline: pipeline,
		validate: validate,
	}
}

func (c *AMQPConsumer) Handle(ctx context.Context, delivery *amqp.Delivery) {
	var err error

	switch delivery.RoutingKey {
	case domain.RoutingKeyFileShared:
		err = c.handleFileSharedMessage(ctx, delivery)
	default:
		log.Errorf("unsupported routing key %s", delivery.RoutingKey)
	}

	if err != nil {
		delivery.Nack(false, false) // Send to a retry / dead-letter queue instead
		return
	}
	delivery.Ack(false)
}

func (c *AMQPConsumer) handleFileSharedMessage(ctx context.Context, delivery *amqp.Delivery) error {
	var message domain.FileSharedMessage

	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		log.Errorf("failed to unmarshal file shared message: %v", err)
		return err
	}

	if err := c.validate.Struct(message); err != nil {
		log.Errorf("file shared message validation failed: %v", err)
		return err
	}

	event := message.Event()

	duplicate, existing, err := c.pipeline.Submit(ctx, event)
	if err != nil {
		log.WithError(err).WithField("url", event.URL).Error("Failed to submit file event")
		return err
	}

	if duplicate {
		log.WithFields(log.Fields{
			"fingerprint": existing.Fingerprint,
			"status":      existing.Status,
		}).Info("Duplicate file share suppressed")
		return nil
	}

	log.WithFields(log.Fields{
		"fingerprint": event.Fingerprint(),
		"fileName":    event.Name,
		"channelID":   event.ChannelID,
	}).Info("File share accepted for processing")

	return nil
}
