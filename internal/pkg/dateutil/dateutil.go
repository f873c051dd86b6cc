// Package dateutil parses the loosely formatted dates found in station-month files.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var ErrEmptyDate = errors.New("empty date")

// Station files write dates without zero padding, e.g. 2011-1-2.
var layouts = []string{
	"2006-1-2",
	"2006/1/2",
}

// Parse tries the station layouts first and falls back to dateparse for
// anything else a human might have typed.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyDate
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

func IsDate(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// FormatShort renders s as "June 3". ok is false when s is empty or unparsable.
func FormatShort(s string) (string, bool) {
	t, err := Parse(s)
	if err != nil {
		return "", false
	}
	return Short(t), true
}

func Short(t time.Time) string {
	return fmt.Sprintf("%s %d", t.Month(), t.Day())
}

// MonthAbbrev maps a 1-based month number to its three letter name.
func MonthAbbrev(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	return time.Month(month).String()[:3], nil
}
