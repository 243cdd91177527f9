package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/relcheck/pkg/domain/interfaces"
	"github.com/m-mizutani/relcheck/pkg/domain/model"
	"github.com/m-mizutani/relcheck/pkg/utils/errutil"
)

// Option is a functional option for ReleaseManager configuration
type Option func(*ReleaseManager)

// WithReadme sets the readme stamped after a run with changes. Empty disables stamping.
func WithReadme(path string) Option {
	return func(m *ReleaseManager) {
		m.readmePath = path
	}
}

// WithClock replaces the clock used for the readme stamp
func WithClock(now func() time.Time) Option {
	return func(m *ReleaseManager) {
		m.now = now
	}
}

// WithNotifier sets a notifier receiving the new releases of a run
func WithNotifier(notifier interfaces.Notifier) Option {
	return func(m *ReleaseManager) {
		m.notifier = notifier
	}
}

// WithCurrentRepo sets the repository running the check, for logging only
func WithCurrentRepo(repo string) Option {
	return func(m *ReleaseManager) {
		m.currentRepo = repo
	}
}

var _ interfaces.ReleaseUseCase = (*ReleaseManager)(nil)

// ReleaseManager checks tracked repositories for new releases
type ReleaseManager struct {
	source     interfaces.RepositorySource
	discoverer *AssetDiscoverer
	tracker    *Tracker

	notifier    interfaces.Notifier
	readmePath  string
	currentRepo string
	now         func() time.Time
}

// NewReleaseManager creates a new ReleaseManager
func NewReleaseManager(source interfaces.RepositorySource, discoverer *AssetDiscoverer, tracker *Tracker, opts ...Option) *ReleaseManager {
	m := &ReleaseManager{
		source:     source,
		discoverer: discoverer,
		tracker:    tracker,
		readmePath: DefaultReadmePath,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CheckAndUpdate fetches the latest release of each repository in order,
// compares it with the tracked tag and records changes. A repository whose
// release cannot be fetched is skipped. Tracked versions are saved only when
// at least one tag changed.
func (m *ReleaseManager) CheckAndUpdate(ctx context.Context, repos []*model.RepositoryConfig) []*model.ResultRecord {
	logger := ctxlog.From(ctx)

	logger.Info("Checking releases",
		"count", len(repos),
		"current_repo", m.currentRepo,
	)

	results := make([]*model.ResultRecord, 0, len(repos))
	changed := false

	for _, repo := range repos {
		release, err := m.source.GetLatestRelease(ctx, repo.Name)
		if err != nil {
			errutil.Handle(ctx, "Failed to fetch latest release", err, "repo", repo.Name)
			continue
		}
		if release == nil {
			continue
		}

		previous, tracked := m.tracker.Get(repo.Name)
		isNew := !tracked || previous != release.TagName

		assets := m.discoverer.Discover(ctx, repo, release)

		if isNew {
			logger.Info("New version found",
				"repo", repo.Name,
				"tag_name", release.TagName,
				"previous", previousOrNone(previous, tracked),
			)
			m.tracker.Update(repo.Name, release.TagName)
			changed = true
		}

		results = append(results, &model.ResultRecord{
			Package:         repo.Name,
			PreviousVersion: previousOrNone(previous, tracked),
			LatestVersion:   release.TagName,
			IsNew:           isNew,
			Assets:          assets,
			ReleaseNotes:    release.Body,
		})
	}

	if changed {
		m.afterChange(ctx, results)
	}

	logger.Info("Release check completed",
		"checked", len(results),
		"skipped", len(repos)-len(results),
		"changed", changed,
	)

	return results
}

// afterChange persists tracked versions, stamps the readme and sends notifications.
// None of these steps aborts the run.
func (m *ReleaseManager) afterChange(ctx context.Context, results []*model.ResultRecord) {
	if err := m.tracker.Save(ctx); err != nil {
		errutil.Handle(ctx, "Failed to save tracked versions", err)
	}

	if m.readmePath != "" {
		if err := stampReadme(ctx, m.readmePath, m.now()); err != nil {
			errutil.Handle(ctx, "Failed to update readme", err, "path", m.readmePath)
		}
	}

	if m.notifier != nil {
		var updates []*model.ResultRecord
		for _, rec := range results {
			if rec.IsNew {
				updates = append(updates, rec)
			}
		}
		if err := m.notifier.Notify(ctx, updates); err != nil {
			errutil.Handle(ctx, "Failed to send notification", err, "count", len(updates))
		}
	}
}

func previousOrNone(previous string, tracked bool) string {
	if !tracked {
		return model.NoVersion
	}
	return previous
}
