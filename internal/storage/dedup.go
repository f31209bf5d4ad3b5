package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"stoik.com/voicedesk/internal/core/domain"
)

// DedupStore persists processing records in Postgres. The insert with
// ON CONFLICT is the atomic claim: exactly one caller per fingerprint sees a
// row inserted, every other caller gets the existing record back.
type DedupStore struct {
	db *PostgresDB
	// reclaimFailed lets a claim atomically take over a record whose prior
	// attempt ended in failed. Completed and in-flight records are never
	// re-claimed.
	reclaimFailed bool
}

func NewDedupStore(db *PostgresDB, reclaimFailed bool) *DedupStore {
	return &DedupStore{
		db:            db,
		reclaimFailed: reclaimFailed,
	}
}

const claimInsert = `
	INSERT INTO processed_files (fingerprint, file_name, file_url, user_id, channel_id, status, ticket_id, error_summary, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, '', '', $7, $8)
	ON CONFLICT (fingerprint) DO NOTHING
`

const claimInsertReclaimFailed = `
	INSERT INTO processed_files (fingerprint, file_name, file_url, user_id, channel_id, status, ticket_id, error_summary, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, '', '', $7, $8)
	ON CONFLICT (fingerprint) DO UPDATE SET
	    status = EXCLUDED.status,
	    ticket_id = '',
	    error_summary = '',
	    updated_at = EXCLUDED.updated_at
	WHERE processed_files.status = 'failed'
`

func (s *DedupStore) CheckAndClaim(ctx context.Context, record *domain.ProcessingRecord) (bool, *domain.ProcessingRecord, error) {
	query := claimInsert
	if s.reclaimFailed {
		query = claimInsertReclaimFailed
	}

	tag, err := s.db.Exec(ctx, query,
		record.Fingerprint,
		record.FileName,
		record.FileURL,
		record.UserID,
		record.ChannelID,
		record.Status,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return false, nil, fmt.Errorf("claim fingerprint: %w", err)
	}

	if tag.RowsAffected() == 1 {
		return false, nil, nil
	}

	existing, err := s.GetRecord(ctx, record.Fingerprint)
	if err != nil {
		return false, nil, err
	}
	if existing == nil {
		// The conflicting row is gone; the caller must not proceed on guesswork.
		return false, nil, fmt.Errorf("claim fingerprint %s: conflicting record disappeared", record.Fingerprint)
	}
	return true, existing, nil
}

func (s *DedupStore) MarkTerminal(ctx context.Context, fp domain.Fingerprint, status domain.ProcessingStatus, ticketID, errorSummary string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE processed_files
		 SET status = $2, ticket_id = $3, error_summary = $4, updated_at = now()
		 WHERE fingerprint = $1 AND status = 'processing'`,
		fp, status, ticketID, errorSummary,
	)
	if err != nil {
		return fmt.Errorf("mark terminal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mark terminal: no in-flight record for fingerprint %s", fp)
	}
	return nil
}

func (s *DedupStore) GetRecord(ctx context.Context, fp domain.Fingerprint) (*domain.ProcessingRecord, error) {
	record := &domain.ProcessingRecord{Fingerprint: fp}
	err := s.db.QueryRow(ctx,
		`SELECT file_name, file_url, user_id, channel_id, status, ticket_id, error_summary, created_at, updated_at
		 FROM processed_files
		 WHERE fingerprint = $1`,
		fp,
	).Scan(
		&record.FileName,
		&record.FileURL,
		&record.UserID,
		&record.ChannelID,
		&record.Status,
		&record.TicketID,
		&record.ErrorSummary,
		&record.CreatedAt,
		&record.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return record, nil
}
