package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"maps"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relcheck/pkg/domain/interfaces"
	"github.com/m-mizutani/relcheck/pkg/domain/model"
)

// Tracker holds the last recorded release tag of each repository
type Tracker struct {
	store    interfaces.StateStore
	versions map[string]string
}

// NewTracker loads tracked versions from store. A missing, unreadable or
// corrupt state is treated as empty history.
func NewTracker(ctx context.Context, store interfaces.StateStore) *Tracker {
	return &Tracker{
		store:    store,
		versions: loadVersions(ctx, store),
	}
}

func loadVersions(ctx context.Context, store interfaces.StateStore) map[string]string {
	logger := ctxlog.From(ctx)

	data, err := store.Read(ctx)
	if err != nil {
		if errors.Is(err, model.ErrStateNotFound) {
			logger.Debug("No tracked versions yet", "error", err)
		} else {
			logger.Warn("Failed to read tracked versions, starting from empty history", "error", err)
		}
		return map[string]string{}
	}

	var versions map[string]string
	if err := json.Unmarshal(data, &versions); err != nil {
		logger.Warn("Tracked versions are corrupt, starting from empty history", "error", err)
		return map[string]string{}
	}
	if versions == nil {
		versions = map[string]string{}
	}

	logger.Debug("Loaded tracked versions", "count", len(versions))
	return versions
}

// Get returns the recorded tag of name and whether one exists
func (t *Tracker) Get(name string) (string, bool) {
	tag, ok := t.versions[name]
	return tag, ok
}

// Update records tag for name in memory. Call Save to persist.
func (t *Tracker) Update(name, tag string) {
	t.versions[name] = tag
}

// Versions returns a copy of all recorded tags
func (t *Tracker) Versions() map[string]string {
	return maps.Clone(t.versions)
}

// Save writes the full mapping to the store, replacing previous content
func (t *Tracker) Save(ctx context.Context) error {
	data, err := json.MarshalIndent(t.versions, "", "    ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal tracked versions")
	}

	if err := t.store.Write(ctx, data); err != nil {
		return goerr.Wrap(err, "failed to save tracked versions", goerr.V("count", len(t.versions)))
	}

	ctxlog.From(ctx).Debug("Saved tracked versions", "count", len(t.versions))
	return nil
}
