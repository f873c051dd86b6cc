package application

import (
	"fmt"

	"github.com/wahmd/weatherman/internal/domain/entities"
	"github.com/wahmd/weatherman/internal/pkg/logger"
)

type HumidityAggregator struct {
	highest  *entities.Extremum[int]
	meanHigh *entities.Extremum[int]
	logger   logger.Logger
}

func NewHumidityAggregator(log logger.Logger) *HumidityAggregator {
	return &HumidityAggregator{
		highest:  entities.NewMaxExtremum[int](),
		meanHigh: entities.NewMaxExtremum[int](),
		logger:   log.WithField("component", "humidity_aggregator"),
	}
}

func (a *HumidityAggregator) UpdateMaxHumidity(records [][]string) {
	offerFileExtremum(a.highest, records, maxHumidityColumn, greater)
}

// UpdateMeanMaxHumidity offers the file's largest mean humidity to the running maximum.
func (a *HumidityAggregator) UpdateMeanMaxHumidity(records [][]string) {
	values := columnValues(records, entities.ColMeanHumidity)
	if len(values) == 0 {
		a.logger.Debug("Skipping file without mean humidity values")
		return
	}

	_, hi := minMax(values)
	a.meanHigh.Offer(hi, "")
}

func (a *HumidityAggregator) Extremes() entities.Summary {
	summary := entities.Summary{Title: "Humidity"}
	if a.highest.Found() {
		summary.Lines = append(summary.Lines,
			fmt.Sprintf("Humid:  %d%% on %s", a.highest.Value(), a.highest.Date()))
	}
	return finish(summary, recordNotFound)
}

func (a *HumidityAggregator) Averages() entities.Summary {
	summary := entities.Summary{Title: "Average Humidity"}
	if a.meanHigh.Found() {
		summary.Lines = append(summary.Lines,
			fmt.Sprintf("Average Humidity: %d%%", a.meanHigh.Value()))
	}
	return finish(summary, noRecordFound)
}
