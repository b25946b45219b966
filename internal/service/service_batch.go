package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-web3-uploader/internal/logger"
	"github.com/MKhiriev/go-web3-uploader/internal/store"
	"github.com/MKhiriev/go-web3-uploader/internal/utils"
	"github.com/MKhiriev/go-web3-uploader/models"
)

type idGenerator interface {
	Generate() string
}

type batchService struct {
	pinService PinService
	repository store.ResultRepository

	ids idGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewBatchService builds a [BatchService] that pins with pinService and
// records into repository.
func NewBatchService(pinService PinService, repository store.ResultRepository, logger *logger.Logger) BatchService {
	return &batchService{
		pinService: pinService,
		repository: repository,
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

// Run implements [BatchService].
//
// Entries are processed one at a time in input order. Each record is written
// to the store before the next entry starts, and cfg.Delay is waited between
// consecutive entries only. A failed entry never stops the batch; a failed
// store write or a cancelled ctx does, and the records written so far are
// returned with the error.
func (s *batchService) Run(ctx context.Context, entries []models.InputEntry, cfg models.RunConfig) ([]models.OutputRecord, error) {
	if len(entries) == 0 {
		return nil, &ConfigError{Err: ErrNoURLsProvided}
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &ConfigError{Err: ErrAPIKeyRequired}
	}

	run := models.Run{
		RunID:     s.ids.Generate(),
		Network:   cfg.Network.String(),
		Total:     len(entries),
		StartedAt: s.now().UTC(),
	}

	log := s.logger.WithRunID(run.RunID)
	ctx = log.WithContext(context.WithValue(ctx, utils.RunIDCtxKey, run.RunID))

	if err := s.repository.CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}

	log.Info().
		Int("total", run.Total).
		Str("network", run.Network).
		Dur("delay", cfg.Delay).
		Msg("run started")

	records := make([]models.OutputRecord, 0, len(entries))
	failed := 0
	for i, entry := range entries {
		log.Info().Int("position", i).Str("url", entry.URL).Msg("processing url")

		result := s.pinService.Pin(ctx, entry.URL, cfg.APIKey, cfg.Network)
		if err := ctx.Err(); err != nil {
			log.Warn().Int("position", i).Msg("run cancelled")
			return records, err
		}

		record := models.NewOutputRecord(entry.URL, result)
		if err := s.repository.SaveRecord(ctx, run.RunID, i, record); err != nil {
			return records, fmt.Errorf("save record %d: %w", i, err)
		}
		records = append(records, record)
		if !record.Succeeded() {
			failed++
		}

		if i < len(entries)-1 {
			if err := sleepContext(ctx, cfg.Delay); err != nil {
				log.Warn().Int("position", i).Msg("run cancelled")
				return records, err
			}
		}
	}

	if err := s.repository.FinishRun(ctx, run.RunID, s.now().UTC()); err != nil {
		return records, fmt.Errorf("finish run: %w", err)
	}

	log.Info().
		Int("succeeded", len(records)-failed).
		Int("failed", failed).
		Msg("run finished")

	return records, nil
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
