package entities

import (
	"fmt"
	"path/filepath"

	"github.com/wahmd/weatherman/internal/pkg/dateutil"
)

type Mode string

const (
	ModeExtremes Mode = "-e"
	ModeAverages Mode = "-a"
	ModeChart    Mode = "-c"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeExtremes, ModeAverages, ModeChart:
		return true
	}
	return false
}

func (m Mode) Name() string {
	switch m {
	case ModeExtremes:
		return "extremes"
	case ModeAverages:
		return "averages"
	case ModeChart:
		return "chart"
	}
	return string(m)
}

// Target names the station folder and the period a report covers.
// Month is 0 when only a year was requested.
type Target struct {
	Dir    string
	Folder string
	Year   string
	Month  int
}

func NewTarget(path, year string, month int) Target {
	dir := filepath.Clean(path)
	return Target{
		Dir:    dir,
		Folder: filepath.Base(dir),
		Year:   year,
		Month:  month,
	}
}

func (t Target) HasMonth() bool {
	return t.Month > 0
}

// MonthFileName is the station-month file of a month-qualified target,
// e.g. Murree_weather_2004_Aug.txt.
func (t Target) MonthFileName() (string, error) {
	abbrev, err := dateutil.MonthAbbrev(t.Month)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s_%s.txt", t.Folder, t.Year, abbrev), nil
}

// Label heads a chart, e.g. "Aug 2004".
func (t Target) Label() string {
	abbrev, err := dateutil.MonthAbbrev(t.Month)
	if err != nil {
		return t.Year
	}
	return fmt.Sprintf("%s %s", abbrev, t.Year)
}

func (t Target) String() string {
	if t.HasMonth() {
		return fmt.Sprintf("%s %s/%d", t.Folder, t.Year, t.Month)
	}
	return fmt.Sprintf("%s %s", t.Folder, t.Year)
}

// Summary is one block of printed report lines, e.g. the temperature extremes.
type Summary struct {
	Title string
	Found bool
	Lines []string
}

// ChartRow is one drawn day of a temperature chart.
type ChartRow struct {
	Day  string
	Low  int
	High int
}
