package interfaces

import "context"

// StateStore persists the tracked versions document as a whole.
// Read returns model.ErrStateNotFound when nothing has been written yet.
type StateStore interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}
