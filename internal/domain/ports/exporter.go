package ports

import (
	"context"

	"github.com/wahmd/weatherman/internal/domain/entities"
)

type ReportExporter interface {
	Export(
		ctx context.Context,
		mode entities.Mode,
		target entities.Target,
		summaries []entities.Summary,
		chart []entities.ChartRow,
	) (string, error)
}
