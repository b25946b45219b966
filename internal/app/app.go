package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-web3-uploader/internal/config"
	"github.com/MKhiriev/go-web3-uploader/internal/logger"
	"github.com/MKhiriev/go-web3-uploader/internal/service"
)

// App is the one-shot uploader: it reads the input document, runs the batch
// and prints a summary.
type App struct {
	batchService service.BatchService
	cfg          config.App

	out io.Writer
	now func() time.Time

	logger *logger.Logger
}

func NewApp(batchService service.BatchService, cfg config.App, out io.Writer, logger *logger.Logger) *App {
	return &App{
		batchService: batchService,
		cfg:          cfg,
		out:          out,
		now:          time.Now,
		logger:       logger,
	}
}

// Run executes one batch. A [*service.ConfigError] is returned as is. Failed
// entries are not errors: they appear in the summary and Run returns nil.
func (a *App) Run(ctx context.Context) error {
	input, err := ReadInput(a.cfg.InputFilePath)
	if err != nil {
		return err
	}

	runCfg := BuildRunConfig(input, a.cfg, a.logger)
	checkAPIKey(runCfg.APIKey, a.now(), a.logger)

	records, err := a.batchService.Run(ctx, input.StartURLs, runCfg)

	var cfgErr *service.ConfigError
	if errors.As(err, &cfgErr) {
		return err
	}

	if len(records) > 0 {
		fmt.Fprintln(a.out, RenderSummary(records))
	}

	if err != nil {
		return fmt.Errorf("batch interrupted after %d of %d urls: %w", len(records), len(input.StartURLs), err)
	}

	return nil
}
