package interfaces

import (
	"context"

	"github.com/m-mizutani/relcheck/pkg/domain/model"
)

// RepositorySource defines read-only operations against a source code hosting API
type RepositorySource interface {
	// GetLatestRelease returns the latest published release of repo ("owner/name").
	// It returns nil without error when the repository has no release.
	GetLatestRelease(ctx context.Context, repo string) (*model.ReleaseInfo, error)

	// PathExists reports whether path exists in repo at ref
	PathExists(ctx context.Context, repo, path, ref string) (bool, error)
}
