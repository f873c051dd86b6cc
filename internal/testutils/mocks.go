package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wahmd/weatherman/internal/domain/entities"
	"github.com/wahmd/weatherman/internal/domain/ports"
)

type MockRecordSource struct {
	mock.Mock
}

func (m *MockRecordSource) Read(ctx context.Context, path string) ([][]string, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]string), args.Error(1)
}

func (m *MockRecordSource) Discover(ctx context.Context, dir, folder, year string, limit int) ([]string, error) {
	args := m.Called(ctx, dir, folder, year, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockReportExporter struct {
	mock.Mock
}

func (m *MockReportExporter) Export(
	ctx context.Context,
	mode entities.Mode,
	target entities.Target,
	summaries []entities.Summary,
	chart []entities.ChartRow,
) (string, error) {
	args := m.Called(ctx, mode, target, summaries, chart)
	return args.String(0), args.Error(1)
}

var (
	_ ports.RecordSource   = (*MockRecordSource)(nil)
	_ ports.ReportExporter = (*MockReportExporter)(nil)
)
