package config

import (
	"context"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relcheck/pkg/domain/interfaces"
	"github.com/m-mizutani/relcheck/pkg/infra/state"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

// State holds tracked versions storage configuration
type State struct {
	Location           string
	GCSCredentialsFile string
}

// Flags returns CLI flags for state configuration
func (c *State) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "state",
			Usage:       "Tracked versions file, or gs://bucket/object",
			Value:       state.DefaultPath,
			Destination: &c.Location,
			Sources:     cli.EnvVars("RELCHECK_STATE"),
		},
		&cli.StringFlag{
			Name:        "gcs-credentials-file",
			Usage:       "Service account key for gs:// state, application default credentials when empty",
			Destination: &c.GCSCredentialsFile,
			Sources:     cli.EnvVars("RELCHECK_GCS_CREDENTIALS_FILE"),
		},
	}
}

// NewStore creates the state store. The returned function releases its resources.
func (c *State) NewStore(ctx context.Context) (interfaces.StateStore, func(), error) {
	if !strings.HasPrefix(c.Location, state.GCSScheme) {
		return state.NewFile(c.Location), func() {}, nil
	}

	bucket, object, err := state.ParseGCSURL(c.Location)
	if err != nil {
		return nil, nil, err
	}

	var opts []option.ClientOption
	if c.GCSCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(c.GCSCredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create Cloud Storage client")
	}

	return state.NewGCS(client, bucket, object), func() { _ = client.Close() }, nil
}
