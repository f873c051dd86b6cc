package excel

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/wahmd/weatherman/internal/domain/entities"
	"github.com/wahmd/weatherman/internal/pkg/dateutil"
	"github.com/wahmd/weatherman/internal/pkg/logger"
)

const (
	summarySheet = "Summary"
	chartSheet   = "Chart"
)

type ExcelExporter struct {
	dir    string
	now    func() time.Time
	logger logger.Logger
}

func NewExcelExporter(dir string, log logger.Logger) *ExcelExporter {
	return &ExcelExporter{
		dir:    dir,
		now:    time.Now,
		logger: log.WithField("component", "excel_exporter"),
	}
}

// Export writes the printed report into a workbook under the export directory
// and returns its path.
func (e *ExcelExporter) Export(
	ctx context.Context,
	mode entities.Mode,
	target entities.Target,
	summaries []entities.Summary,
	chart []entities.ChartRow,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	reportID := uuid.New().String()
	e.logger.Infof("Exporting %s report %s for %s", mode.Name(), reportID, target)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       fmt.Sprintf("Weather Report - %s", mode.Name()),
		Subject:     "Weather Data Analysis",
		Creator:     "weatherman",
		Identifier:  reportID,
		Description: fmt.Sprintf("Weather %s report for %s", mode.Name(), target),
		Created:     e.now().UTC().Format(time.RFC3339),
	}); err != nil {
		return "", fmt.Errorf("failed to set document properties: %w", err)
	}

	if err := e.createSummarySheet(f, mode, target, summaries); err != nil {
		return "", fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if len(chart) > 0 {
		if err := e.createChartSheet(f, chart); err != nil {
			return "", fmt.Errorf("failed to create chart sheet: %w", err)
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("failed to drop default sheet: %w", err)
	}

	path := filepath.Join(e.dir, fileName(mode, target, reportID))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	e.logger.Infof("Exported report to %s", path)
	return path, nil
}

func (e *ExcelExporter) createSummarySheet(
	f *excelize.File,
	mode entities.Mode,
	target entities.Target,
	summaries []entities.Summary,
) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	header := []interface{}{
		fmt.Sprintf("Station: %s", target.Folder),
		fmt.Sprintf("Period: %s", target.Label()),
		fmt.Sprintf("Report Type: %s", mode.Name()),
	}
	for i, value := range header {
		if err := f.SetCellValue(summarySheet, e.cell(1, i+1), value); err != nil {
			return err
		}
	}

	row := len(header) + 2
	for _, summary := range summaries {
		if err := f.SetCellValue(summarySheet, e.cell(1, row), summary.Title); err != nil {
			return err
		}
		for _, line := range summary.Lines {
			if err := f.SetCellValue(summarySheet, e.cell(2, row), line); err != nil {
				return err
			}
			row++
		}
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 22); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "B", "B", 36)
}

func (e *ExcelExporter) createChartSheet(f *excelize.File, chart []entities.ChartRow) error {
	if _, err := f.NewSheet(chartSheet); err != nil {
		return err
	}

	headers := []string{"Day", "Lowest (°C)", "Highest (°C)"}
	for i, header := range headers {
		if err := f.SetCellValue(chartSheet, e.cell(i+1, 1), header); err != nil {
			return err
		}
	}

	for i, row := range chart {
		r := i + 2
		values := []interface{}{row.Day, row.Low, row.High}
		for col, value := range values {
			if err := f.SetCellValue(chartSheet, e.cell(col+1, r), value); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth(chartSheet, "A", e.colLetter(len(headers)), 15)
}

func (e *ExcelExporter) cell(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}

func (e *ExcelExporter) colLetter(col int) string {
	letter, _ := excelize.ColumnNumberToName(col)
	return letter
}

// fileName builds e.g. Murree_weather_2004_Aug_chart_1b4e28ba.xlsx.
func fileName(mode entities.Mode, target entities.Target, reportID string) string {
	name := fmt.Sprintf("%s_%s", target.Folder, target.Year)
	if abbrev, err := dateutil.MonthAbbrev(target.Month); err == nil {
		name += "_" + abbrev
	}
	return fmt.Sprintf("%s_%s_%s.xlsx", name, mode.Name(), reportID[:8])
}
