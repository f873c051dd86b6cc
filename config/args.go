package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wahmd/weatherman/internal/domain/entities"
)

const Usage = "usage: weatherman <-e|-a|-c> <year[/month]> <path/to/folder>"

var ErrUsage = errors.New(Usage)

// RunConfig is everything one invocation needs. It is built once from the
// command line and never changed afterwards.
type RunConfig struct {
	Mode           entities.Mode
	Target         entities.Target
	DiscoveryLimit int
}

func ParseArgs(args []string, discoveryLimit int) (RunConfig, error) {
	fields := args
	if len(fields) < 3 {
		// Arguments may arrive quoted together, e.g. "-e 2004 Murree".
		fields = strings.Fields(strings.Join(args, " "))
	}
	if len(fields) < 3 {
		return RunConfig{}, ErrUsage
	}

	mode := entities.Mode(fields[0])
	if !mode.Valid() {
		return RunConfig{}, fmt.Errorf("unknown mode %q: %w", fields[0], ErrUsage)
	}

	year, month, err := parsePeriod(fields[1])
	if err != nil {
		return RunConfig{}, err
	}

	return RunConfig{
		Mode:           mode,
		Target:         entities.NewTarget(fields[2], year, month),
		DiscoveryLimit: discoveryLimit,
	}, nil
}

// parsePeriod splits "2004" or "2004/8". month is 0 when absent.
func parsePeriod(s string) (string, int, error) {
	yearPart, monthPart, hasMonth := strings.Cut(s, "/")

	year, err := strconv.Atoi(yearPart)
	if err != nil || year <= 0 {
		return "", 0, fmt.Errorf("invalid year %q", yearPart)
	}

	if !hasMonth {
		return yearPart, 0, nil
	}

	month, err := strconv.Atoi(monthPart)
	if err != nil || month < 1 || month > 12 {
		return "", 0, fmt.Errorf("invalid month %q", monthPart)
	}
	return yearPart, month, nil
}
