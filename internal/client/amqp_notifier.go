package client

import (
	"context"

	"stoik.com/voicedesk/internal/core/domain"
)

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, message any) error
}

// AMQPNotifier publishes pipeline outcome events to the broker.
type AMQPNotifier struct {
	publisher Publisher
}

func NewAMQPNotifier(publisher Publisher) *AMQPNotifier {
	return &AMQPNotifier{
		publisher: publisher,
	}
}

func (n *AMQPNotifier) FileProcessed(ctx context.Context, msg *domain.FileProcessedMessage) error {
	return n.publisher.Publish(ctx, domain.FilesExchange, domain.RoutingKeyFileProcessed, msg)
}
