package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wahmd/weatherman/internal/pkg/logger"
)

var header = []string{
	"PKT", "Max TemperatureC", "Mean TemperatureC", "Min TemperatureC", "Dew PointC",
	"MeanDew PointC", "Min DewpointC", "Max Humidity", " Mean Humidity",
}

func station(rows ...[]string) [][]string {
	return append([][]string{header}, rows...)
}

func TestTemperatureAggregator_Extremes(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		agg := NewTemperatureAggregator(logger.Nop())
		file := station(
			[]string{"2011-1-1", "20", "15", "5"},
			[]string{"2011-1-2", "25", "18", "10"},
		)

		agg.UpdateFromMaxColumn(file)
		agg.UpdateFromMinColumn(file)

		summary := agg.Extremes()
		assert.True(t, summary.Found)
		assert.Equal(t, []string{"Highest:  25C on January 2", "Lowest: 5C on January 1"}, summary.Lines)
	})

	t.Run("across files only strict improvement replaces", func(t *testing.T) {
		agg := NewTemperatureAggregator(logger.Nop())
		jan := station([]string{"2011-1-5", "30", "", "-2"})
		feb := station(
			[]string{"2011-2-1", "30", "", "-2"},
			[]string{"2011-2-2", "12", "", "-7"},
		)

		for _, file := range [][][]string{jan, feb} {
			agg.UpdateFromMaxColumn(file)
			agg.UpdateFromMinColumn(file)
		}

		assert.Equal(t, []string{"Highest:  30C on January 5", "Lowest: -7C on February 2"}, agg.Extremes().Lines)
	})

	t.Run("first date wins a tie inside a file", func(t *testing.T) {
		agg := NewTemperatureAggregator(logger.Nop())
		agg.UpdateFromMaxColumn(station(
			[]string{"2011-3-1", "18"},
			[]string{"2011-3-2", "22"},
			[]string{"2011-3-3", "22"},
		))

		assert.Equal(t, []string{"Highest:  22C on March 2"}, agg.Extremes().Lines)
	})

	t.Run("duplicate date keeps the last row", func(t *testing.T) {
		agg := NewTemperatureAggregator(logger.Nop())
		agg.UpdateFromMaxColumn(station(
			[]string{"2011-3-1", "40"},
			[]string{"2011-3-2", "22"},
			[]string{"2011-3-1", "10"},
		))

		assert.Equal(t, []string{"Highest:  22C on March 2"}, agg.Extremes().Lines)
	})

	t.Run("skips bad dates and missing values", func(t *testing.T) {
		agg := NewTemperatureAggregator(logger.Nop())
		file := station(
			[]string{"garbage", "99", "", "-99"},
			[]string{"2011-4-1", "", "", ""},
			[]string{"2011-4-2", "17", "", "9"},
			[]string{"<!-- 0.262:0 -->"},
		)

		agg.UpdateFromMaxColumn(file)
		agg.UpdateFromMinColumn(file)

		assert.Equal(t, []string{"Highest:  17C on April 2", "Lowest: 9C on April 2"}, agg.Extremes().Lines)
	})

	t.Run("no valid rows is not found", func(t *testing.T) {
		agg := NewTemperatureAggregator(logger.Nop())
		agg.UpdateFromMaxColumn(station())
		agg.UpdateFromMinColumn(station([]string{"garbage", "1", "", "1"}))
		agg.UpdateFromMaxColumn(nil)

		summary := agg.Extremes()
		assert.False(t, summary.Found)
		assert.Equal(t, []string{"RECORD NOT FOUND."}, summary.Lines)
	})
}

func TestTemperatureAggregator_Averages(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		agg := NewTemperatureAggregator(logger.Nop())
		agg.UpdateMeanMinMax(station(
			[]string{"2011-1-1", "", "10"},
			[]string{"2011-1-2", "", "20"},
			[]string{"2011-1-3", "", "30"},
		))

		summary := agg.Averages()
		assert.True(t, summary.Found)
		assert.Equal(t, []string{"Highest Average: 30C", "Lowest Average: 10C"}, summary.Lines)
	})

	t.Run("widens across files", func(t *testing.T) {
		agg := NewTemperatureAggregator(logger.Nop())
		agg.UpdateMeanMinMax(station([]string{"2011-1-1", "", "10"}, []string{"2011-1-2", "", "20"}))
		agg.UpdateMeanMinMax(station([]string{"2011-2-1", "", "5"}, []string{"2011-2-2", "", "15"}))
		agg.UpdateMeanMinMax(station([]string{"2011-3-1", "", "12"}, []string{"2011-3-2", "", "31"}))

		assert.Equal(t, []string{"Highest Average: 31C", "Lowest Average: 5C"}, agg.Averages().Lines)
	})

	t.Run("ignores files with fewer than two values", func(t *testing.T) {
		agg := NewTemperatureAggregator(logger.Nop())
		agg.UpdateMeanMinMax(station([]string{"2011-1-1", "", "10"}, []string{"2011-1-2", "", "20"}))
		agg.UpdateMeanMinMax(station([]string{"2011-2-1", "", "-50"}))

		assert.Equal(t, []string{"Highest Average: 20C", "Lowest Average: 10C"}, agg.Averages().Lines)
	})

	t.Run("stray header value is skipped", func(t *testing.T) {
		agg := NewTemperatureAggregator(logger.Nop())
		agg.UpdateMeanMinMax(station(
			[]string{"PKT", "", "Mean TemperatureC"},
			[]string{"2011-1-1", "", "7"},
		))

		summary := agg.Averages()
		assert.False(t, summary.Found)
		assert.Equal(t, []string{"NO RECORD FOUND."}, summary.Lines)
	})
}
