package usecase

import (
	"bytes"
	"context"
	"errors"
	"os"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultReadmePath is the readme stamped with the last check time
const DefaultReadmePath = "README.md"

const (
	lastCheckPrefix = "Last check ran on:"
	lastCheckLayout = "2006-01-02 15:04:05"
)

// stampReadme rewrites the "Last check ran on:" line of the readme at path,
// appending one when absent. A missing readme is left alone.
func stampReadme(ctx context.Context, path string, now time.Time) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			ctxlog.From(ctx).Debug("Readme not found, skip stamping", "path", path)
			return nil
		}
		return goerr.Wrap(err, "failed to read readme", goerr.V("path", path))
	}

	stamp := []byte(lastCheckPrefix + " " + now.Format(lastCheckLayout))

	lines := bytes.SplitAfter(data, []byte("\n"))
	found := false
	for i, line := range lines {
		if bytes.HasPrefix(line, []byte(lastCheckPrefix)) {
			lines[i] = append(append([]byte{}, stamp...), '\n')
			found = true
		}
	}

	out := bytes.Join(lines, nil)
	if !found {
		out = append(out, '\n')
		out = append(out, stamp...)
		out = append(out, '\n')
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return goerr.Wrap(err, "failed to write readme", goerr.V("path", path))
	}

	ctxlog.From(ctx).Debug("Stamped readme", "path", path, "appended", !found)
	return nil
}
