package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"stoik.com/voicedesk/internal/core/domain"
)

// MemoryDedupStore is the process-local default when no database is
// configured. It honors the same claim semantics as the Postgres store, so a
// durable backend is a drop-in swap.
type MemoryDedupStore struct {
	mu            sync.Mutex
	records       map[domain.Fingerprint]*domain.ProcessingRecord
	reclaimFailed bool
}

func NewMemoryDedupStore(reclaimFailed bool) *MemoryDedupStore {
	return &MemoryDedupStore{
		records:       make(map[domain.Fingerprint]*domain.ProcessingRecord),
		reclaimFailed: reclaimFailed,
	}
}

func (s *MemoryDedupStore) CheckAndClaim(_ context.Context, record *domain.ProcessingRecord) (bool, *domain.ProcessingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.records[record.Fingerprint]
	if ok && !(s.reclaimFailed && existing.Status == domain.StatusFailed) {
		copied := *existing
		return true, &copied, nil
	}

	stored := *record
	s.records[record.Fingerprint] = &stored
	return false, nil, nil
}

func (s *MemoryDedupStore) MarkTerminal(_ context.Context, fp domain.Fingerprint, status domain.ProcessingStatus, ticketID, errorSummary string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[fp]
	if !ok || record.Status != domain.StatusProcessing {
		return fmt.Errorf("mark terminal: no in-flight record for fingerprint %s", fp)
	}

	record.Status = status
	record.TicketID = ticketID
	record.ErrorSummary = errorSummary
	record.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *MemoryDedupStore) GetRecord(_ context.Context, fp domain.Fingerprint) (*domain.ProcessingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[fp]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}
