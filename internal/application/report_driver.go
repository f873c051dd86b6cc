package application

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/wahmd/weatherman/config"
	"github.com/wahmd/weatherman/internal/domain/entities"
	"github.com/wahmd/weatherman/internal/domain/ports"
	"github.com/wahmd/weatherman/internal/pkg/logger"
)

const specifyMonth = "Please Specify Month."

type stationFile struct {
	name    string
	records [][]string
}

// Report is what one run printed, plus the exported workbook path if any.
type Report struct {
	Summaries  []entities.Summary
	Chart      []entities.ChartRow
	ExportPath string
}

type ReportDriver struct {
	source   ports.RecordSource
	markers  ports.MarkerRenderer
	exporter ports.ReportExporter
	logger   logger.Logger
}

// NewReportDriver wires the collaborators. exporter may be nil to disable export.
func NewReportDriver(
	source ports.RecordSource,
	markers ports.MarkerRenderer,
	exporter ports.ReportExporter,
	log logger.Logger,
) *ReportDriver {
	return &ReportDriver{
		source:   source,
		markers:  markers,
		exporter: exporter,
		logger:   log.WithField("component", "report_driver"),
	}
}

// Run prints the report selected by run to out. Every station file is read
// before anything is printed, so a read failure leaves out untouched.
func (d *ReportDriver) Run(ctx context.Context, run config.RunConfig, out io.Writer) (*Report, error) {
	d.logger.WithFields(map[string]interface{}{
		"mode":   run.Mode,
		"target": run.Target.String(),
	}).Info("Running report")

	if run.Mode == entities.ModeChart && !run.Target.HasMonth() {
		if _, err := fmt.Fprintln(out, specifyMonth); err != nil {
			return nil, fmt.Errorf("write output: %w", err)
		}
		return &Report{}, nil
	}

	names, err := d.resolve(ctx, run)
	if err != nil {
		return nil, err
	}

	files, err := d.load(ctx, run.Target, names)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	switch run.Mode {
	case entities.ModeExtremes:
		report.Summaries = d.extremes(files)
	case entities.ModeAverages:
		report.Summaries = d.averages(files)
	case entities.ModeChart:
		chart := NewChartRenderer(d.markers)
		for _, file := range files {
			rows, err := chart.Render(out, file.records, run.Target.Label())
			if err != nil {
				return nil, err
			}
			report.Chart = append(report.Chart, rows...)
		}
	default:
		return nil, fmt.Errorf("unsupported mode %q", run.Mode)
	}

	for _, summary := range report.Summaries {
		for _, line := range summary.Lines {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return nil, fmt.Errorf("write output: %w", err)
			}
		}
	}

	if d.exporter != nil {
		path, err := d.exporter.Export(ctx, run.Mode, run.Target, report.Summaries, report.Chart)
		if err != nil {
			return nil, fmt.Errorf("export report: %w", err)
		}
		report.ExportPath = path
	}

	return report, nil
}

func (d *ReportDriver) resolve(ctx context.Context, run config.RunConfig) ([]string, error) {
	if run.Target.HasMonth() {
		name, err := run.Target.MonthFileName()
		if err != nil {
			return nil, err
		}
		return []string{name}, nil
	}

	names, err := d.source.Discover(ctx, run.Target.Dir, run.Target.Folder, run.Target.Year, run.DiscoveryLimit)
	if err != nil {
		return nil, fmt.Errorf("discover station files: %w", err)
	}
	d.logger.Debugf("Resolved %d files for %s", len(names), run.Target)
	return names, nil
}

func (d *ReportDriver) load(ctx context.Context, target entities.Target, names []string) ([]stationFile, error) {
	files := make([]stationFile, 0, len(names))
	for _, name := range names {
		records, err := d.source.Read(ctx, filepath.Join(target.Dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		files = append(files, stationFile{name: name, records: records})
	}
	return files, nil
}

func (d *ReportDriver) extremes(files []stationFile) []entities.Summary {
	temperature := NewTemperatureAggregator(d.logger)
	humidity := NewHumidityAggregator(d.logger)

	for _, file := range files {
		d.logger.Debugf("Aggregating extremes from %s", file.name)
		temperature.UpdateFromMaxColumn(file.records)
		temperature.UpdateFromMinColumn(file.records)
		humidity.UpdateMaxHumidity(file.records)
	}

	return []entities.Summary{temperature.Extremes(), humidity.Extremes()}
}

func (d *ReportDriver) averages(files []stationFile) []entities.Summary {
	temperature := NewTemperatureAggregator(d.logger)
	humidity := NewHumidityAggregator(d.logger)

	for _, file := range files {
		d.logger.Debugf("Aggregating averages from %s", file.name)
		temperature.UpdateMeanMinMax(file.records)
		humidity.UpdateMeanMaxHumidity(file.records)
	}

	return []entities.Summary{temperature.Averages(), humidity.Averages()}
}
