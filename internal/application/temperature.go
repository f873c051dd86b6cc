package application

import (
	"fmt"

	"github.com/wahmd/weatherman/internal/domain/entities"
	"github.com/wahmd/weatherman/internal/pkg/dateutil"
	"github.com/wahmd/weatherman/internal/pkg/logger"
)

const (
	recordNotFound = "RECORD NOT FOUND."
	noRecordFound  = "NO RECORD FOUND."
	minMeanValues  = 2
)

// TemperatureAggregator folds station files into temperature extremes and mean extremes.
type TemperatureAggregator struct {
	highest  *entities.Extremum[int]
	lowest   *entities.Extremum[int]
	meanHigh *entities.Extremum[int]
	meanLow  *entities.Extremum[int]
	logger   logger.Logger
}

func NewTemperatureAggregator(log logger.Logger) *TemperatureAggregator {
	return &TemperatureAggregator{
		highest:  entities.NewMaxExtremum[int](),
		lowest:   entities.NewMinExtremum[int](),
		meanHigh: entities.NewMaxExtremum[int](),
		meanLow:  entities.NewMinExtremum[int](),
		logger:   log.WithField("component", "temperature_aggregator"),
	}
}

// UpdateFromMaxColumn offers the file's highest max temperature to the running maximum.
func (a *TemperatureAggregator) UpdateFromMaxColumn(records [][]string) {
	offerFileExtremum(a.highest, records, maxTempColumn, greater)
}

// UpdateFromMinColumn offers the file's lowest min temperature to the running minimum.
func (a *TemperatureAggregator) UpdateFromMinColumn(records [][]string) {
	offerFileExtremum(a.lowest, records, minTempColumn, less)
}

// UpdateMeanMinMax widens the running mean range with the file's own range.
// Files with fewer than two mean values are ignored.
func (a *TemperatureAggregator) UpdateMeanMinMax(records [][]string) {
	values := columnValues(records, entities.ColMeanTemp)
	if len(values) < minMeanValues {
		a.logger.Debugf("Skipping file with %d mean temperature values", len(values))
		return
	}

	lo, hi := minMax(values)
	a.meanHigh.Offer(hi, "")
	a.meanLow.Offer(lo, "")
}

func (a *TemperatureAggregator) Extremes() entities.Summary {
	summary := entities.Summary{Title: "Temperature"}
	if a.highest.Found() {
		summary.Lines = append(summary.Lines,
			fmt.Sprintf("Highest:  %dC on %s", a.highest.Value(), a.highest.Date()))
	}
	if a.lowest.Found() {
		summary.Lines = append(summary.Lines,
			fmt.Sprintf("Lowest: %dC on %s", a.lowest.Value(), a.lowest.Date()))
	}
	return finish(summary, recordNotFound)
}

func (a *TemperatureAggregator) Averages() entities.Summary {
	summary := entities.Summary{Title: "Average Temperature"}
	if a.meanHigh.Found() {
		summary.Lines = append(summary.Lines,
			fmt.Sprintf("Highest Average: %dC", a.meanHigh.Value()),
			fmt.Sprintf("Lowest Average: %dC", a.meanLow.Value()),
		)
	}
	return finish(summary, noRecordFound)
}

// offerFileExtremum reduces one file to its best (value, date) and offers it to e.
func offerFileExtremum(e *entities.Extremum[int], records [][]string, column columnFunc, better func(c, cur int) bool) {
	best, ok := fileExtremum(datedValues(entities.DataRows(records), column), better)
	if !ok {
		return
	}
	date, _ := dateutil.FormatShort(best.date)
	e.Offer(best.value, date)
}

func finish(summary entities.Summary, notFound string) entities.Summary {
	summary.Found = len(summary.Lines) > 0
	if !summary.Found {
		summary.Lines = []string{notFound}
	}
	return summary
}
