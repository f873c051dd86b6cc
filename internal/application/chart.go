package application

import (
	"fmt"
	"io"
	"strings"

	"github.com/wahmd/weatherman/internal/domain/entities"
	"github.com/wahmd/weatherman/internal/domain/ports"
)

// ChartRenderer draws one bar per day: low temperature markers, then high temperature markers.
type ChartRenderer struct {
	markers ports.MarkerRenderer
}

func NewChartRenderer(markers ports.MarkerRenderer) *ChartRenderer {
	return &ChartRenderer{markers: markers}
}

// Rows extracts the drawable days of a file. Rows with a bad date or a missing
// temperature are left out.
func (c *ChartRenderer) Rows(records [][]string) []entities.ChartRow {
	var rows []entities.ChartRow
	for _, result := range entities.DataRows(records) {
		if !result.Valid {
			continue
		}
		row := result.Row
		if !row.MaxTemp.Valid || !row.MinTemp.Valid {
			continue
		}
		rows = append(rows, entities.ChartRow{
			Day:  fmt.Sprintf("%02d", row.Day.Day()),
			Low:  row.MinTemp.Value,
			High: row.MaxTemp.Value,
		})
	}
	return rows
}

// Render prints label once and then a bar for every drawable day.
func (c *ChartRenderer) Render(w io.Writer, records [][]string, label string) ([]entities.ChartRow, error) {
	if _, err := fmt.Fprintln(w, label); err != nil {
		return nil, fmt.Errorf("write chart label: %w", err)
	}

	rows := c.Rows(records)
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, c.line(row)); err != nil {
			return nil, fmt.Errorf("write chart row %s: %w", row.Day, err)
		}
	}
	return rows, nil
}

func (c *ChartRenderer) line(row entities.ChartRow) string {
	var b strings.Builder
	b.WriteString(row.Day)
	b.WriteByte(' ')
	b.WriteString(c.bar(ports.MarkerLow, row.Low))
	b.WriteString(c.bar(ports.MarkerHigh, row.High))
	fmt.Fprintf(&b, " %dC - %dC", row.Low, row.High)
	return b.String()
}

// bar repeats the marker n times. Negative temperatures draw nothing.
func (c *ChartRenderer) bar(kind ports.MarkerKind, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(c.markers.Marker(kind), n)
}
