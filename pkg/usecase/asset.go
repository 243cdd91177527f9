package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/relcheck/pkg/domain/interfaces"
	"github.com/m-mizutani/relcheck/pkg/domain/model"
	"github.com/m-mizutani/relcheck/pkg/utils/errutil"
)

// DefaultWebURL is the web front end used to link distribution directories
const DefaultWebURL = "https://github.com"

// AssetDiscoverer finds downloadable assets of a release
type AssetDiscoverer struct {
	source interfaces.RepositorySource
	webURL string
}

// AssetOption is a functional option for AssetDiscoverer configuration
type AssetOption func(*AssetDiscoverer)

// WithWebURL sets the web front end base URL of distribution directory links
func WithWebURL(webURL string) AssetOption {
	return func(d *AssetDiscoverer) {
		d.webURL = strings.TrimSuffix(webURL, "/")
	}
}

// NewAssetDiscoverer creates a new AssetDiscoverer
func NewAssetDiscoverer(source interfaces.RepositorySource, opts ...AssetOption) *AssetDiscoverer {
	d := &AssetDiscoverer{
		source: source,
		webURL: DefaultWebURL,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Discover returns asset references in this order: the custom URL link, then
// every release asset. Only when the release has no assets is the distribution
// directory probed at the release tag.
func (d *AssetDiscoverer) Discover(ctx context.Context, cfg *model.RepositoryConfig, release *model.ReleaseInfo) []model.AssetReference {
	assets := make([]model.AssetReference, 0, len(release.Assets)+1)

	if cfg.CustomURL != "" {
		assets = append(assets, model.AssetReference{
			Name: model.CustomAssetName,
			URL:  strings.ReplaceAll(cfg.CustomURL, model.VersionPlaceholder, release.TagName),
		})
	}

	for _, asset := range release.Assets {
		assets = append(assets, model.AssetReference{
			Name: asset.Name,
			URL:  asset.DownloadURL,
		})
	}

	if len(release.Assets) > 0 {
		return assets
	}

	distPath := cfg.DistPathOrDefault()
	exists, err := d.source.PathExists(ctx, cfg.Name, distPath, release.TagName)
	if err != nil {
		errutil.Handle(ctx, "Failed to probe distribution path", err,
			"repo", cfg.Name,
			"path", distPath,
			"ref", release.TagName,
		)
		return assets
	}
	if exists {
		assets = append(assets, model.AssetReference{
			Name: distPath + " directory",
			URL:  d.webURL + "/" + cfg.Name + "/tree/" + release.TagName + "/" + distPath,
		})
	}

	return assets
}
