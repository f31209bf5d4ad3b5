package storage

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoik.com/voicedesk/internal/core/domain"
)

func processingRecord(fp string) *domain.ProcessingRecord {
	now := time.Now().UTC()
	return &domain.ProcessingRecord{
		Fingerprint: domain.Fingerprint(fp),
		FileName:    "voice.mp3",
		FileURL:     "https://files.slack.com/files-pri/T123-F456/voice.mp3",
		UserID:      "U123",
		ChannelID:   "C456",
		Status:      domain.StatusProcessing,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestMemoryDedupStore_ClaimThenDuplicate(t *testing.T) {
	store := NewMemoryDedupStore(false)
	ctx := context.Background()

	claimed, existing, err := store.CheckAndClaim(ctx, processingRecord("fp-1"))
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.Nil(t, existing)

	claimed, existing, err = store.CheckAndClaim(ctx, processingRecord("fp-1"))
	require.NoError(t, err)
	assert.True(t, claimed)
	require.NotNil(t, existing)
	assert.Equal(t, domain.StatusProcessing, existing.Status)
}

func TestMemoryDedupStore_ConcurrentClaimSingleWinner(t *testing.T) {
	store := NewMemoryDedupStore(false)
	ctx := context.Background()

	const racers = 50
	var winners atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimed, _, err := store.CheckAndClaim(ctx, processingRecord("fp-race"))
			assert.NoError(t, err)
			if !claimed {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}

func TestMemoryDedupStore_MarkTerminal(t *testing.T) {
	store := NewMemoryDedupStore(false)
	ctx := context.Background()

	_, _, err := store.CheckAndClaim(ctx, processingRecord("fp-1"))
	require.NoError(t, err)

	require.NoError(t, store.MarkTerminal(ctx, "fp-1", domain.StatusCompleted, "1001", ""))

	record, err := store.GetRecord(ctx, "fp-1")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, domain.StatusCompleted, record.Status)
	assert.Equal(t, "1001", record.TicketID)

	// Terminal records cannot transition again
	assert.Error(t, store.MarkTerminal(ctx, "fp-1", domain.StatusFailed, "", "late failure"))
}

func TestMemoryDedupStore_MarkTerminalUnknownFingerprint(t *testing.T) {
	store := NewMemoryDedupStore(false)

	assert.Error(t, store.MarkTerminal(context.Background(), "fp-missing", domain.StatusCompleted, "", ""))
}

func TestMemoryDedupStore_GetRecordReturnsCopy(t *testing.T) {
	store := NewMemoryDedupStore(false)
	ctx := context.Background()

	_, _, err := store.CheckAndClaim(ctx, processingRecord("fp-1"))
	require.NoError(t, err)

	record, err := store.GetRecord(ctx, "fp-1")
	require.NoError(t, err)
	record.Status = domain.StatusFailed

	fresh, err := store.GetRecord(ctx, "fp-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, fresh.Status)
}

func TestMemoryDedupStore_GetRecordMissing(t *testing.T) {
	store := NewMemoryDedupStore(false)

	record, err := store.GetRecord(context.Background(), "fp-missing")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestMemoryDedupStore_ReclaimFailed(t *testing.T) {
	store := NewMemoryDedupStore(true)
	ctx := context.Background()

	_, _, err := store.CheckAndClaim(ctx, processingRecord("fp-1"))
	require.NoError(t, err)
	require.NoError(t, store.MarkTerminal(ctx, "fp-1", domain.StatusFailed, "", "provider down"))

	// A failed record is reclaimable when reprocessing is enabled
	claimed, _, err := store.CheckAndClaim(ctx, processingRecord("fp-1"))
	require.NoError(t, err)
	assert.False(t, claimed)

	record, err := store.GetRecord(ctx, "fp-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, record.Status)
}

func TestMemoryDedupStore_CompletedNeverReclaimed(t *testing.T) {
	store := NewMemoryDedupStore(true)
	ctx := context.Background()

	_, _, err := store.CheckAndClaim(ctx, processingRecord("fp-1"))
	require.NoError(t, err)
	require.NoError(t, store.MarkTerminal(ctx, "fp-1", domain.StatusCompleted, "1001", ""))

	claimed, existing, err := store.CheckAndClaim(ctx, processingRecord("fp-1"))
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.Equal(t, "1001", existing.TicketID)
}
