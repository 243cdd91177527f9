package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relcheck/pkg/domain/model"
	"github.com/m-mizutani/relcheck/pkg/domain/types"
)

// DefaultTimeout bounds every GitHub API call
const DefaultTimeout = 30 * time.Second

// config holds internal client configuration
type config struct {
	token   string
	baseURL string
	timeout time.Duration
}

// Option is a functional option for Client configuration
type Option func(*config)

// WithToken sets a personal access token. Requests are unauthenticated without it.
func WithToken(token string) Option {
	return func(c *config) {
		c.token = token
	}
}

// WithBaseURL sets the REST API endpoint, e.g. for GitHub Enterprise Server
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.timeout = timeout
	}
}

// Client reads releases and repository contents through the GitHub REST API
type Client struct {
	githubClient *github.Client
}

// NewClient creates a new GitHub client
func NewClient(opts ...Option) (*Client, error) {
	cfg := &config{
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	githubClient := github.NewClient(&http.Client{Timeout: cfg.timeout})
	githubClient.UserAgent = "relcheck/" + types.Version

	if cfg.token != "" {
		githubClient = githubClient.WithAuthToken(cfg.token)
	}

	if cfg.baseURL != "" {
		baseURL := cfg.baseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse GitHub API URL", goerr.V("url", cfg.baseURL))
		}
		githubClient.BaseURL = u
	}

	return &Client{
		githubClient: githubClient,
	}, nil
}

// GetLatestRelease returns the latest published release of repo, or nil when the repository has none
func (c *Client) GetLatestRelease(ctx context.Context, repo string) (*model.ReleaseInfo, error) {
	logger := ctxlog.From(ctx)

	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	release, resp, err := c.githubClient.Repositories.GetLatestRelease(ctx, owner, name)
	if err != nil {
		if statusCode(resp) == http.StatusNotFound {
			logger.Info("Release not found", "repo", repo, "status", http.StatusNotFound)
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get latest release",
			goerr.V("repo", repo),
			goerr.V("status", statusCode(resp)),
		)
	}

	info := &model.ReleaseInfo{
		TagName: release.GetTagName(),
		Body:    release.GetBody(),
		Assets:  make([]model.ReleaseAsset, 0, len(release.Assets)),
	}
	for _, asset := range release.Assets {
		info.Assets = append(info.Assets, model.ReleaseAsset{
			Name:        asset.GetName(),
			DownloadURL: asset.GetBrowserDownloadURL(),
		})
	}

	logger.Debug("Fetched latest release",
		"repo", repo,
		"tag_name", info.TagName,
		"asset_count", len(info.Assets),
	)

	return info, nil
}

// PathExists reports whether path exists in repo at ref
func (c *Client) PathExists(ctx context.Context, repo, path, ref string) (bool, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return false, err
	}

	_, _, resp, err := c.githubClient.Repositories.GetContents(ctx, owner, name, path, &github.RepositoryContentGetOptions{
		Ref: ref,
	})
	if err != nil {
		if statusCode(resp) == http.StatusNotFound {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to get repository contents",
			goerr.V("repo", repo),
			goerr.V("path", path),
			goerr.V("ref", ref),
			goerr.V("status", statusCode(resp)),
		)
	}

	return true, nil
}

// splitRepo splits "owner/name" into its parts
func splitRepo(repo string) (string, string, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", goerr.Wrap(model.ErrInvalidRepository, "repository must be owner/name", goerr.V("repo", repo))
	}
	return owner, name, nil
}

func statusCode(resp *github.Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}
