package config_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relcheck/pkg/cli/config"
	"github.com/m-mizutani/relcheck/pkg/infra/state"
)

func TestState_NewStore_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracked_versions.json")
	cfg := &config.State{Location: path}

	store, closeStore, err := cfg.NewStore(context.Background())
	gt.NoError(t, err)
	defer closeStore()

	file, ok := store.(*state.File)
	gt.B(t, ok).True()
	gt.Equal(t, file.Path(), path)
}

func TestState_NewStore_InvalidGCSURL(t *testing.T) {
	cfg := &config.State{Location: "gs://bucket-only"}

	_, _, err := cfg.NewStore(context.Background())
	gt.Error(t, err)
}

func TestSlack_NewNotifier(t *testing.T) {
	gt.Value(t, (&config.Slack{}).NewNotifier("acme/checker")).Nil()
	gt.Value(t, (&config.Slack{WebhookURL: "https://hooks.slack.com/services/x"}).NewNotifier("acme/checker")).NotNil()
}

func TestSentry_ConfigureDisabled(t *testing.T) {
	flush, err := (&config.Sentry{}).Configure()
	gt.NoError(t, err)
	flush()
}
