package csvsource

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/wahmd/weatherman/internal/domain/ports"
	"github.com/wahmd/weatherman/internal/pkg/logger"
)

type CSVSource struct {
	logger logger.Logger
}

func NewCSVSource(log logger.Logger) *CSVSource {
	return &CSVSource{
		logger: log.WithField("component", "csv_source"),
	}
}

func (s *CSVSource) Read(ctx context.Context, path string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ports.ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ports.ErrSourceUnavailable, path, err)
	}

	s.logger.Debugf("Read %d records from %s", len(records), path)
	return records, nil
}

// Discover lists the files in dir whose name contains year, ordered by the
// month abbreviation in the name. A positive limit caps the result.
func (s *CSVSource) Discover(ctx context.Context, dir, folder, year string, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", ports.ErrSourceUnavailable, dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if strings.Contains(entry.Name(), year) {
			names = append(names, entry.Name())
		}
	}

	sort.SliceStable(names, func(i, j int) bool {
		mi, mj := monthOf(names[i]), monthOf(names[j])
		if mi != mj {
			return mi < mj
		}
		return names[i] < names[j]
	})

	if limit > 0 && len(names) > limit {
		s.logger.Warnf("Found %d files for %s %s, using the first %d", len(names), folder, year, limit)
		names = names[:limit]
	}

	s.logger.WithFields(map[string]interface{}{
		"folder": folder,
		"year":   year,
		"files":  len(names),
	}).Debug("Discovered station files")

	return names, nil
}

// monthOf reads the trailing _Mon part of a file name. Unknown months sort last.
func monthOf(name string) int {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	idx := strings.LastIndex(base, "_")
	if idx < 0 {
		return 13
	}
	abbrev := base[idx+1:]
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String()[:3], abbrev) {
			return int(m)
		}
	}
	return 13
}
