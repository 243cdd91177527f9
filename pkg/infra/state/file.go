package state

import (
	"context"
	"errors"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relcheck/pkg/domain/model"
)

// DefaultPath is the local state file used when none is given
const DefaultPath = "tracked_versions.json"

// File stores the tracked versions document in a local file.
// Write truncates and rewrites the file in place.
type File struct {
	path string
}

// NewFile creates a file backed state store
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the file path
func (f *File) Path() string {
	return f.path
}

// Read returns the file content or model.ErrStateNotFound when it does not exist
func (f *File) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, goerr.Wrap(model.ErrStateNotFound, "state file does not exist", goerr.V("path", f.path))
		}
		return nil, goerr.Wrap(err, "failed to read state file", goerr.V("path", f.path))
	}
	return data, nil
}

// Write replaces the file content with data
func (f *File) Write(_ context.Context, data []byte) error {
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write state file", goerr.V("path", f.path))
	}
	return nil
}
