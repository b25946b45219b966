package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-web3-uploader/internal/logger"
	"github.com/MKhiriev/go-web3-uploader/internal/mock"
	"github.com/MKhiriev/go-web3-uploader/internal/store"
	"github.com/MKhiriev/go-web3-uploader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResultService_ListRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockResultRepository(ctrl)
	svc := NewResultService(mockRepo, logger.Nop())

	runs := []models.Run{{RunID: "b"}, {RunID: "a"}}
	mockRepo.EXPECT().GetRuns(gomock.Any()).Return(runs, nil)

	got, err := svc.ListRuns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, runs, got)
}

func TestResultService_GetRunRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockResultRepository(ctrl)
	svc := NewResultService(mockRepo, logger.Nop())

	records := []models.OutputRecord{{URL: "u", Status: "success"}}
	gomock.InOrder(
		mockRepo.EXPECT().GetRun(gomock.Any(), "run-1").Return(models.Run{RunID: "run-1"}, nil),
		mockRepo.EXPECT().GetRecords(gomock.Any(), "run-1").Return(records, nil),
	)

	got, err := svc.GetRunRecords(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestResultService_GetRunRecords_UnknownRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockResultRepository(ctrl)
	svc := NewResultService(mockRepo, logger.Nop())

	mockRepo.EXPECT().GetRun(gomock.Any(), "nope").Return(models.Run{}, store.ErrRunNotFound)

	_, err := svc.GetRunRecords(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}
