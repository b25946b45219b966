package service

import (
	"context"

	"github.com/MKhiriev/go-web3-uploader/internal/logger"
	"github.com/MKhiriev/go-web3-uploader/internal/store"
	"github.com/MKhiriev/go-web3-uploader/models"
)

type resultService struct {
	repository store.ResultRepository

	logger *logger.Logger
}

func NewResultService(repository store.ResultRepository, logger *logger.Logger) ResultService {
	return &resultService{
		repository: repository,
		logger:     logger,
	}
}

func (s *resultService) ListRuns(ctx context.Context) ([]models.Run, error) {
	return s.repository.GetRuns(ctx)
}

// GetRun returns [store.ErrRunNotFound] for unknown ids.
func (s *resultService) GetRun(ctx context.Context, runID string) (models.Run, error) {
	return s.repository.GetRun(ctx, runID)
}

// GetRunRecords returns [store.ErrRunNotFound] for unknown ids so that an
// unknown run is distinguishable from a run without records.
func (s *resultService) GetRunRecords(ctx context.Context, runID string) ([]models.OutputRecord, error) {
	if _, err := s.repository.GetRun(ctx, runID); err != nil {
		return nil, err
	}
	return s.repository.GetRecords(ctx, runID)
}
