package state_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/relcheck/pkg/domain/model"
	"github.com/m-mizutani/relcheck/pkg/infra/state"
)

func TestFile_ReadMissing(t *testing.T) {
	store := state.NewFile(filepath.Join(t.TempDir(), "tracked_versions.json"))

	data, err := store.Read(context.Background())
	gt.Error(t, err)
	gt.B(t, errors.Is(err, model.ErrStateNotFound)).True()
	gt.Value(t, data).Nil()
}

func TestFile_WriteOverwrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tracked_versions.json")
	store := state.NewFile(path)

	gt.NoError(t, store.Write(ctx, []byte(`{"a/b": "v1.0.0", "c/d": "v0.1.0"}`)))
	gt.NoError(t, store.Write(ctx, []byte(`{"a/b": "v2.0.0"}`)))

	data, err := store.Read(ctx)
	gt.NoError(t, err)
	gt.Equal(t, string(data), `{"a/b": "v2.0.0"}`)

	raw, err := os.ReadFile(path)
	gt.NoError(t, err)
	gt.Equal(t, string(raw), `{"a/b": "v2.0.0"}`)
}

func TestParseGCSURL(t *testing.T) {
	tests := []struct {
		location   string
		wantBucket string
		wantObject string
		wantErr    bool
	}{
		{location: "gs://my-bucket/tracked_versions.json", wantBucket: "my-bucket", wantObject: "tracked_versions.json"},
		{location: "gs://my-bucket/relcheck/state.json", wantBucket: "my-bucket", wantObject: "relcheck/state.json"},
		{location: "gs://my-bucket", wantErr: true},
		{location: "gs://my-bucket/", wantErr: true},
		{location: "gs:///object.json", wantErr: true},
		{location: "gs://my-bucket/dir/", wantErr: true},
		{location: "tracked_versions.json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			bucket, object, err := state.ParseGCSURL(tt.location)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, bucket, tt.wantBucket)
			gt.Equal(t, object, tt.wantObject)
		})
	}
}
