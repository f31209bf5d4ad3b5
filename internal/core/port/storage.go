package port

import (
	"context"

	"stoik.com/voicedesk/internal/core/domain"
)

// DedupStore is the durable map of fingerprints to processing records.
type DedupStore interface {
	// CheckAndClaim atomically creates a record with StatusProcessing when the
	// fingerprint is unknown. When a record already exists, it is returned
	// with alreadyClaimed=true regardless of its status: a still-processing
	// record counts as a duplicate too. A storage failure is a hard error and
	// must never be treated as "not found".
	CheckAndClaim(ctx context.Context, record *domain.ProcessingRecord) (alreadyClaimed bool, existing *domain.ProcessingRecord, err error)

	// MarkTerminal moves a claimed record to completed or failed. Called
	// exactly once per claimed fingerprint.
	MarkTerminal(ctx context.Context, fp domain.Fingerprint, status domain.ProcessingStatus, ticketID, errorSummary string) error

	// GetRecord returns the record for a fingerprint, or nil when none exists.
	GetRecord(ctx context.Context, fp domain.Fingerprint) (*domain.ProcessingRecord, error)
}
