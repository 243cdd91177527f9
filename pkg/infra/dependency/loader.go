// Package dependency loads the list of tracked repositories.
package dependency

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relcheck/pkg/domain/model"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a dependency file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// DefaultPath is the dependency file read when none is given
const DefaultPath = "dependencies.yml"

// FormatOf detects the file format from its extension. Anything but .toml is YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// document is the raw file structure. Entries are either a bare repository
// name or a table with name, custom_url and dist_path.
type document struct {
	Repositories []any `yaml:"repositories" toml:"repositories"`
}

// Load reads the dependency file at path. A missing or unparsable file yields
// an empty list; the run continues with nothing to check.
func Load(ctx context.Context, path string) []*model.RepositoryConfig {
	logger := ctxlog.From(ctx)

	//nolint:gosec // G304: path is the dependency file given by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("Dependency file not found", "path", path)
		} else {
			logger.Error("Failed to read dependency file", "path", path, "error", err)
		}
		return []*model.RepositoryConfig{}
	}

	repos, err := Parse(ctx, data, FormatOf(path))
	if err != nil {
		logger.Error("Failed to parse dependency file", "path", path, "error", err)
		return []*model.RepositoryConfig{}
	}

	logger.Debug("Loaded dependency file", "path", path, "count", len(repos))
	return repos
}

// Parse decodes a dependency document. Malformed entries and duplicate names are skipped.
func Parse(ctx context.Context, data []byte, format Format) ([]*model.RepositoryConfig, error) {
	logger := ctxlog.From(ctx)

	var doc document
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, goerr.Wrap(err, "failed to parse TOML")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, goerr.Wrap(err, "failed to parse YAML")
		}
	default:
		return nil, goerr.New("unsupported dependency file format", goerr.V("format", format))
	}

	repos := make([]*model.RepositoryConfig, 0, len(doc.Repositories))
	seen := make(map[string]struct{}, len(doc.Repositories))
	for i, item := range doc.Repositories {
		repo, ok := normalize(item)
		if !ok {
			logger.Warn("Skipping malformed repository entry", "index", i, "entry", item)
			continue
		}
		if _, dup := seen[repo.Name]; dup {
			logger.Warn("Skipping duplicate repository entry", "index", i, "name", repo.Name)
			continue
		}
		seen[repo.Name] = struct{}{}
		repos = append(repos, repo)
	}

	return repos, nil
}

func normalize(item any) (*model.RepositoryConfig, bool) {
	switch v := item.(type) {
	case string:
		if v == "" {
			return nil, false
		}
		return &model.RepositoryConfig{Name: v}, true

	case map[string]any:
		name, _ := v["name"].(string)
		if name == "" {
			return nil, false
		}
		repo := &model.RepositoryConfig{Name: name}
		repo.CustomURL, _ = v["custom_url"].(string)
		repo.DistPath, _ = v["dist_path"].(string)
		return repo, true

	default:
		return nil, false
	}
}
