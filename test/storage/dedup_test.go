package storage

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"

	"stoik.com/voicedesk/internal/core/domain"
	"stoik.com/voicedesk/internal/storage"
	"stoik.com/voicedesk/test"
)

func TestDedup(t *testing.T) {
	suite.Run(t, new(DedupSuite))
}

type DedupSuite struct {
	suite.Suite
	dockerPool       *dockertest.Pool
	postgresResource *dockertest.Resource
	postgresDB       *sql.DB
	store            *storage.DedupStore
	reclaimStore     *storage.DedupStore
}

func (suite *DedupSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	if err != nil {
		suite.T().Fatalf("Could not connect to docker: %s", err)
	}
	suite.dockerPool = pool
	db, port, postgresResource := test.SetupPostgresDB(suite.T(), pool)
	suite.postgresDB = db
	suite.postgresResource = postgresResource

	if !suite.T().Failed() {
		ctx := context.Background()
		postgresDB, err := storage.NewPostgresDB(ctx, test.PostgresHost, port, test.PostgresUser, test.PostgresPassword, test.PostgresDB)
		if err != nil {
			suite.T().Fatalf("Failed to connect to database: %v", err)
		}

		suite.store = storage.NewDedupStore(postgresDB, false)
		suite.reclaimStore = storage.NewDedupStore(postgresDB, true)
	}
}

func (suite *DedupSuite) SetupTest() {
	test.ExecFile(suite.T(), suite.postgresDB, "../sql/create_tables.sql")

	if suite.T().Failed() {
		suite.TearDownSuite()
		suite.T().FailNow()
	}
}

func (suite *DedupSuite) TearDownSuite() {
	if suite.postgresDB != nil {
		_ = suite.postgresDB.Close()
	}
	if suite.dockerPool != nil {
		if suite.postgresResource != nil {
			_ = suite.dockerPool.Purge(suite.postgresResource)
		}
	}
}

func record(fp string) *domain.ProcessingRecord {
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

func (suite *DedupSuite) TestCheckAndClaim_FirstClaimWins() {
	ctx := context.Background()

	claimed, existing, err := suite.store.CheckAndClaim(ctx, record("fp-1"))
	suite.NoError(err)
	suite.False(claimed)
	suite.Nil(existing)

	claimed, existing, err = suite.store.CheckAndClaim(ctx, record("fp-1"))
	suite.NoError(err)
	suite.True(claimed)
	suite.Require().NotNil(existing)
	suite.Equal(domain.StatusProcessing, existing.Status)
	suite.Equal("voice.mp3", existing.FileName)
}

func (suite *DedupSuite) TestCheckAndClaim_ConcurrentSingleWinner() {
	ctx := context.Background()

	const racers = 16
	var winners atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimed, _, err := suite.store.CheckAndClaim(ctx, record("fp-race"))
			suite.NoError(err)
			if !claimed {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	suite.Equal(int32(1), winners.Load())
}

func (suite *DedupSuite) TestMarkTerminal_Completed() {
	ctx := context.Background()

	_, _, err := suite.store.CheckAndClaim(ctx, record("fp-1"))
	suite.Require().NoError(err)

	suite.NoError(suite.store.MarkTerminal(ctx, "fp-1", domain.StatusCompleted, "1001", ""))

	stored, err := suite.store.GetRecord(ctx, "fp-1")
	suite.Require().NoError(err)
	suite.Require().NotNil(stored)
	suite.Equal(domain.StatusCompleted, stored.Status)
	suite.Equal("1001", stored.TicketID)

	// Terminal records never transition again
	suite.Error(suite.store.MarkTerminal(ctx, "fp-1", domain.StatusFailed, "", "late"))
}

func (suite *DedupSuite) TestMarkTerminal_UnknownFingerprint() {
	suite.Error(suite.store.MarkTerminal(context.Background(), "fp-missing", domain.StatusCompleted, "", ""))
}

func (suite *DedupSuite) TestGetRecord_Missing() {
	stored, err := suite.store.GetRecord(context.Background(), "fp-missing")
	suite.NoError(err)
	suite.Nil(stored)
}

func (suite *DedupSuite) TestCheckAndClaim_FailedNotReclaimedByDefault() {
	ctx := context.Background()

	_, _, err := suite.store.CheckAndClaim(ctx, record("fp-1"))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.store.MarkTerminal(ctx, "fp-1", domain.StatusFailed, "", "provider down"))

	claimed, existing, err := suite.store.CheckAndClaim(ctx, record("fp-1"))
	suite.NoError(err)
	suite.True(claimed)
	suite.Require().NotNil(existing)
	suite.Equal(domain.StatusFailed, existing.Status)
	suite.Equal("provider down", existing.ErrorSummary)
}

func (suite *DedupSuite) TestCheckAndClaim_ReclaimFailedEnabled() {
	ctx := context.Background()

	_, _, err := suite.reclaimStore.CheckAndClaim(ctx, record("fp-1"))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.reclaimStore.MarkTerminal(ctx, "fp-1", domain.StatusFailed, "", "provider down"))

	// A failed record is atomically taken over
	claimed, _, err := suite.reclaimStore.CheckAndClaim(ctx, record("fp-1"))
	suite.NoError(err)
	suite.False(claimed)

	stored, err := suite.reclaimStore.GetRecord(ctx, "fp-1")
	suite.Require().NoError(err)
	suite.Equal(domain.StatusProcessing, stored.Status)
	suite.Empty(stored.ErrorSummary)

	// Completed records stay untouchable even with reclaim enabled
	suite.Require().NoError(suite.reclaimStore.MarkTerminal(ctx, "fp-1", domain.StatusCompleted, "1001", ""))
	claimed, existing, err := suite.reclaimStore.CheckAndClaim(ctx, record("fp-1"))
	suite.NoError(err)
	suite.True(claimed)
	suite.Equal("1001", existing.TicketID)
}
