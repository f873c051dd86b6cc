package entities

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/wahmd/weatherman/internal/pkg/dateutil"
)

// Column positions inside a station-month file.
const (
	ColDate         = 0
	ColMaxTemp      = 1
	ColMeanTemp     = 2
	ColMinTemp      = 3
	ColMaxHumidity  = 7
	ColMeanHumidity = 8
)

// Reading is an optional integer cell. Valid is false for empty or non-numeric cells.
type Reading struct {
	Value int
	Valid bool
}

// ParseReading accepts integers and truncates decimals ("12.7" -> 12).
func ParseReading(cell string) Reading {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return Reading{}
	}
	if v, err := strconv.Atoi(cell); err == nil {
		return Reading{Value: v, Valid: true}
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Reading{}
	}
	return Reading{Value: int(f), Valid: true}
}

// Cell returns the trimmed field at idx, or "" when the record is too short.
func Cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

type WeatherRow struct {
	Date         string
	Day          time.Time
	MaxTemp      Reading
	MeanTemp     Reading
	MinTemp      Reading
	MaxHumidity  Reading
	MeanHumidity Reading
}

// RowResult is the outcome of parsing one record. Invalid rows are skipped by callers.
type RowResult struct {
	Row   WeatherRow
	Valid bool
}

// ParseRow reads a data record. The row is valid only when its date parses.
func ParseRow(record []string) RowResult {
	date := Cell(record, ColDate)
	day, err := dateutil.Parse(date)
	if err != nil {
		return RowResult{}
	}

	return RowResult{
		Valid: true,
		Row: WeatherRow{
			Date:         date,
			Day:          day,
			MaxTemp:      ParseReading(Cell(record, ColMaxTemp)),
			MeanTemp:     ParseReading(Cell(record, ColMeanTemp)),
			MinTemp:      ParseReading(Cell(record, ColMinTemp)),
			MaxHumidity:  ParseReading(Cell(record, ColMaxHumidity)),
			MeanHumidity: ParseReading(Cell(record, ColMeanHumidity)),
		},
	}
}

// DataRows drops the header (row 0) and parses every remaining record.
func DataRows(records [][]string) []RowResult {
	if len(records) <= 1 {
		return nil
	}
	results := make([]RowResult, 0, len(records)-1)
	for _, record := range records[1:] {
		results = append(results, ParseRow(record))
	}
	return results
}
