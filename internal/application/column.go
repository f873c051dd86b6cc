package application

import "github.com/wahmd/weatherman/internal/domain/entities"

type columnFunc func(entities.WeatherRow) entities.Reading

func maxTempColumn(r entities.WeatherRow) entities.Reading     { return r.MaxTemp }
func minTempColumn(r entities.WeatherRow) entities.Reading     { return r.MinTemp }
func maxHumidityColumn(r entities.WeatherRow) entities.Reading { return r.MaxHumidity }

type dated struct {
	date  string
	value int
}

// datedValues maps each date to its column value. A repeated date keeps its
// last value but its first position, so scans stay in file order.
func datedValues(rows []entities.RowResult, column columnFunc) []dated {
	var values []dated
	index := make(map[string]int)

	for _, result := range rows {
		if !result.Valid {
			continue
		}
		reading := column(result.Row)
		if !reading.Valid {
			continue
		}
		if i, ok := index[result.Row.Date]; ok {
			values[i].value = reading.Value
			continue
		}
		index[result.Row.Date] = len(values)
		values = append(values, dated{date: result.Row.Date, value: reading.Value})
	}
	return values
}

// fileExtremum returns the best value of one file and the first date holding it.
func fileExtremum(values []dated, better func(candidate, current int) bool) (dated, bool) {
	if len(values) == 0 {
		return dated{}, false
	}
	best := values[0]
	for _, v := range values[1:] {
		if better(v.value, best.value) {
			best = v
		}
	}
	return best, true
}

// columnValues collects the numeric cells of a column below the header. Dates
// are not checked here. Non-numeric cells, such as a stray header, are skipped.
func columnValues(records [][]string, idx int) []int {
	var values []int
	for i, record := range records {
		if i == 0 {
			continue
		}
		reading := entities.ParseReading(entities.Cell(record, idx))
		if !reading.Valid {
			continue
		}
		values = append(values, reading.Value)
	}
	return values
}

func greater(c, cur int) bool { return c > cur }
func less(c, cur int) bool    { return c < cur }

func minMax(values []int) (int, int) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
