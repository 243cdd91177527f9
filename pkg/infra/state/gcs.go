package state

import (
	"context"
	"errors"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relcheck/pkg/domain/model"
)

// GCSScheme prefixes state locations stored in Google Cloud Storage
const GCSScheme = "gs://"

// GCS stores the tracked versions document as a single Cloud Storage object
type GCS struct {
	client *storage.Client
	bucket string
	object string
}

// NewGCS creates a Cloud Storage backed state store
func NewGCS(client *storage.Client, bucket, object string) *GCS {
	return &GCS{
		client: client,
		bucket: bucket,
		object: object,
	}
}

// ParseGCSURL splits "gs://bucket/path/to/object" into bucket and object
func ParseGCSURL(location string) (string, string, error) {
	if !strings.HasPrefix(location, GCSScheme) {
		return "", "", goerr.New("state location is not a gs:// URL", goerr.V("location", location))
	}

	bucket, object, ok := strings.Cut(strings.TrimPrefix(location, GCSScheme), "/")
	if !ok || bucket == "" || object == "" || strings.HasSuffix(object, "/") {
		return "", "", goerr.New("state location must be gs://bucket/object", goerr.V("location", location))
	}
	return bucket, object, nil
}

// Read downloads the object or returns model.ErrStateNotFound when it does not exist
func (g *GCS) Read(ctx context.Context) ([]byte, error) {
	r, err := g.client.Bucket(g.bucket).Object(g.object).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, goerr.Wrap(model.ErrStateNotFound, "state object does not exist",
				goerr.V("bucket", g.bucket),
				goerr.V("object", g.object),
			)
		}
		return nil, goerr.Wrap(err, "failed to open state object",
			goerr.V("bucket", g.bucket),
			goerr.V("object", g.object),
		)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read state object",
			goerr.V("bucket", g.bucket),
			goerr.V("object", g.object),
		)
	}
	return data, nil
}

// Write uploads data, replacing the object
func (g *GCS) Write(ctx context.Context, data []byte) error {
	w := g.client.Bucket(g.bucket).Object(g.object).NewWriter(ctx)
	w.ContentType = "application/json"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write state object",
			goerr.V("bucket", g.bucket),
			goerr.V("object", g.object),
		)
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize state object",
			goerr.V("bucket", g.bucket),
			goerr.V("object", g.object),
		)
	}
	return nil
}
