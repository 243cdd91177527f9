package cli_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relcheck/pkg/cli"
	"github.com/m-mizutani/relcheck/pkg/domain/model"
)

func newGitHubServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widget/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"tag_name": "v1.2.0",
			"body": "bug fixes",
			"assets": [
				{"name": "widget_linux_amd64.tar.gz", "browser_download_url": "https://example.com/widget_linux_amd64.tar.gz"}
			]
		}`))
	})
	mux.HandleFunc("/repos/acme/gadget/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRun_CheckJSON(t *testing.T) {
	srv := newGitHubServer(t)
	dir := t.TempDir()

	configPath := filepath.Join(dir, "dependencies.yml")
	gt.NoError(t, os.WriteFile(configPath, []byte("repositories:\n  - acme/widget\n  - acme/gadget\n"), 0644))
	statePath := filepath.Join(dir, "tracked_versions.json")
	outputPath := filepath.Join(dir, "report.json")

	err := cli.Run(context.Background(), []string{
		"relcheck", "--log-level", "error",
		"check",
		"--format", "json",
		"--config", configPath,
		"--state", statePath,
		"--output", outputPath,
		"--readme=",
		"--github-token=",
		"--github-api-url", srv.URL,
	})
	gt.NoError(t, err)

	raw, err := os.ReadFile(outputPath)
	gt.NoError(t, err)
	var records []*model.ResultRecord
	gt.NoError(t, json.Unmarshal(raw, &records))
	gt.A(t, records).Length(1)
	gt.Equal(t, records[0].Package, "acme/widget")
	gt.Equal(t, records[0].PreviousVersion, model.NoVersion)
	gt.Equal(t, records[0].LatestVersion, "v1.2.0")
	gt.B(t, records[0].IsNew).True()
	gt.A(t, records[0].Assets).Length(1)
	gt.Equal(t, records[0].ReleaseNotes, "bug fixes")

	state, err := os.ReadFile(statePath)
	gt.NoError(t, err)
	var tracked map[string]string
	gt.NoError(t, json.Unmarshal(state, &tracked))
	gt.Equal(t, tracked, map[string]string{"acme/widget": "v1.2.0"})
}

func TestRun_CheckMarkdownSecondRunIsNotNew(t *testing.T) {
	srv := newGitHubServer(t)
	dir := t.TempDir()

	configPath := filepath.Join(dir, "dependencies.yml")
	gt.NoError(t, os.WriteFile(configPath, []byte("repositories:\n  - acme/widget\n"), 0644))
	statePath := filepath.Join(dir, "tracked_versions.json")
	gt.NoError(t, os.WriteFile(statePath, []byte(`{"acme/widget": "v1.2.0"}`), 0644))
	outputPath := filepath.Join(dir, "output.md")

	err := cli.Run(context.Background(), []string{
		"relcheck", "--log-level", "error",
		"check",
		"-f", "markdown",
		"--config", configPath,
		"--state", statePath,
		"--output", outputPath,
		"--readme=",
		"--github-token=",
		"--github-api-url", srv.URL,
	})
	gt.NoError(t, err)

	raw, err := os.ReadFile(outputPath)
	gt.NoError(t, err)
	gt.S(t, string(raw)).Contains("| acme/widget | v1.2.0 | v1.2.0 | 1 found |")
	gt.S(t, string(raw)).NotContains("🆕")
}

func TestRun_InvalidFormat(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"relcheck", "--log-level", "error",
		"check", "--format", "yaml",
	})
	gt.Error(t, err)
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"relcheck", "--log-level", "verbose",
		"check",
	})
	gt.Error(t, err)
}

func TestRun_InvalidSentryDSN(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"relcheck", "--log-level", "error", "--sentry-dsn", "not-a-dsn",
		"check", "--config", filepath.Join(t.TempDir(), "dependencies.yml"),
	})
	gt.Error(t, err)
}

func TestRun_WriteFailureIsFatal(t *testing.T) {
	srv := newGitHubServer(t)
	dir := t.TempDir()

	configPath := filepath.Join(dir, "dependencies.yml")
	gt.NoError(t, os.WriteFile(configPath, []byte("repositories: []\n"), 0644))

	err := cli.Run(context.Background(), []string{
		"relcheck", "--log-level", "error",
		"check",
		"--format", "json",
		"--config", configPath,
		"--state", filepath.Join(dir, "tracked_versions.json"),
		"--output", filepath.Join(dir, "missing", "output.json"),
		"--readme=",
		"--github-api-url", srv.URL,
	})
	gt.Error(t, err)
}
