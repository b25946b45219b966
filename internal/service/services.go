package service

import (
	"github.com/MKhiriev/go-web3-uploader/internal/adapter"
	"github.com/MKhiriev/go-web3-uploader/internal/config"
	"github.com/MKhiriev/go-web3-uploader/internal/logger"
	"github.com/MKhiriev/go-web3-uploader/internal/store"
)

type Services struct {
	PinService    PinService
	BatchService  BatchService
	ResultService ResultService
}

func NewServices(storages *store.Storages, pinningAdapter adapter.PinningAdapter, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	pinService := NewPinService(pinningAdapter, cfg.Adapter, logger)

	return &Services{
		PinService:    pinService,
		BatchService:  NewBatchService(pinService, storages.ResultRepository, logger),
		ResultService: NewResultService(storages.ResultRepository, logger),
	}
}

// NewResultServices builds the subset of services needed by the results API.
func NewResultServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		ResultService: NewResultService(storages.ResultRepository, logger),
	}
}
