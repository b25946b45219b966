package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-web3-uploader/internal/config"
	"github.com/MKhiriev/go-web3-uploader/internal/logger"
	"github.com/MKhiriev/go-web3-uploader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "results.db")

	storages, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	repo := storages.ResultRepository
	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, repo.CreateRun(ctx, models.Run{RunID: "run-1", Network: "public", Total: 2, StartedAt: started}))

	ok := models.NewOutputRecord("https://a/1.txt", models.NewPinSuccess("bafy1", "https://gw/ipfs/bafy1"))
	bad := models.NewOutputRecord("https://a/2.txt", models.NewPinFailure(assert.AnError))

	// inserted out of order, read back by position
	require.NoError(t, repo.SaveRecord(ctx, "run-1", 1, bad))
	require.NoError(t, repo.SaveRecord(ctx, "run-1", 0, ok))
	assert.ErrorIs(t, repo.SaveRecord(ctx, "run-1", 0, ok), ErrRecordAlreadyExists)

	records, err := repo.GetRecords(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, []models.OutputRecord{ok, bad}, records)

	require.NoError(t, repo.FinishRun(ctx, "run-1", started.Add(time.Second)))
	assert.ErrorIs(t, repo.FinishRun(ctx, "nope", started), ErrRunNotFound)

	run, err := repo.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 2, run.Total)
	require.NotNil(t, run.FinishedAt)
	assert.True(t, started.Add(time.Second).Equal(*run.FinishedAt))

	_, err = repo.GetRun(ctx, "nope")
	assert.ErrorIs(t, err, ErrRunNotFound)

	runs, err := repo.GetRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestNewStorages_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	cfg := config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "results.db")}}

	first, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, second.Close())
}

func TestNewStorages_BadPath(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "missing", "dir", "results.db")

	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	assert.Error(t, err)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}
