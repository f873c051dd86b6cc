package ports

import (
	"context"
	"errors"
)

// ErrSourceUnavailable marks a station file or folder that cannot be read.
// It is fatal for the whole run.
var ErrSourceUnavailable = errors.New("record source unavailable")

type RecordSource interface {
	Read(ctx context.Context, path string) ([][]string, error)
	Discover(ctx context.Context, dir, folder, year string, limit int) ([]string, error)
}
