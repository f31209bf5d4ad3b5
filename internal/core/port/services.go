package port

import (
	"context"

	"stoik.com/voicedesk/internal/core/domain"
)

// Pipeline accepts file events for background processing.
type Pipeline interface {
	// Submit claims the event's fingerprint and, when the claim succeeds,
	// enqueues the event for background processing. It returns immediately;
	// duplicate=true means an existing record was found and nothing was
	// enqueued.
	Submit(ctx context.Context, event domain.FileEvent) (duplicate bool, existing *domain.ProcessingRecord, err error)
}
