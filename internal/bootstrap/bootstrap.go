package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/wahmd/weatherman/config"
	"github.com/wahmd/weatherman/internal/application"
	"github.com/wahmd/weatherman/internal/domain/ports"
	"github.com/wahmd/weatherman/internal/infrastructure/csvsource"
	"github.com/wahmd/weatherman/internal/infrastructure/excel"
	"github.com/wahmd/weatherman/internal/infrastructure/terminal"
	"github.com/wahmd/weatherman/internal/pkg/logger"
)

const sourceUnavailableMessage = "Record Not found or Invalid Path"

type Bootstrap struct {
	config *config.Config
	logger logger.Logger
	stdout io.Writer
	stderr io.Writer
}

func NewBootstrap(stdout, stderr io.Writer) (*Bootstrap, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return New(cfg, logger.New(cfg.App.LogLevel, cfg.App.Env).WithField("service", cfg.App.Name), stdout, stderr), nil
}

func New(cfg *config.Config, log logger.Logger, stdout, stderr io.Writer) *Bootstrap {
	return &Bootstrap{
		config: cfg,
		logger: log,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run executes one report and returns the process exit code.
func (b *Bootstrap) Run(args []string) int {
	run, err := config.ParseArgs(args, b.config.Discovery.Limit)
	if err != nil {
		fmt.Fprintln(b.stderr, err)
		if !errors.Is(err, config.ErrUsage) {
			fmt.Fprintln(b.stderr, config.Usage)
		}
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver := application.NewReportDriver(
		csvsource.NewCSVSource(b.logger),
		terminal.NewMarkers(b.config.Chart.Color),
		b.exporter(),
		b.logger,
	)

	report, err := driver.Run(ctx, run, b.stdout)
	if err != nil {
		if errors.Is(err, ports.ErrSourceUnavailable) {
			b.logger.Debugf("Source unavailable: %s", logger.FormatError(err))
			fmt.Fprintln(b.stderr, sourceUnavailableMessage)
			return 1
		}
		b.logger.Errorf("Report failed: %v", err)
		fmt.Fprintln(b.stderr, err)
		return 1
	}

	if report.ExportPath != "" {
		fmt.Fprintf(b.stderr, "Report exported to %s\n", report.ExportPath)
	}
	return 0
}

func (b *Bootstrap) exporter() ports.ReportExporter {
	if b.config.Export.ExcelDir == "" {
		return nil
	}
	return excel.NewExcelExporter(b.config.Export.ExcelDir, b.logger)
}
