package config

import (
	"time"

	githubinfra "github.com/m-mizutani/relcheck/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub API configuration
type GitHub struct {
	Token       string `masq:"secret"`
	APIURL      string
	WebURL      string
	Timeout     time.Duration
	CurrentRepo string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token, requests are unauthenticated when empty",
			Destination: &c.Token,
			Sources:     cli.EnvVars("RELCHECK_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL",
			Value:       "https://api.github.com/",
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("RELCHECK_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "github-web-url",
			Usage:       "GitHub web URL used for distribution directory links",
			Value:       "https://github.com",
			Destination: &c.WebURL,
			Sources:     cli.EnvVars("RELCHECK_GITHUB_WEB_URL"),
		},
		&cli.DurationFlag{
			Name:        "http-timeout",
			Usage:       "Timeout of each GitHub API request",
			Value:       githubinfra.DefaultTimeout,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("RELCHECK_HTTP_TIMEOUT"),
		},
		&cli.StringFlag{
			Name:        "current-repo",
			Usage:       "Repository running the check (informational)",
			Destination: &c.CurrentRepo,
			Sources:     cli.EnvVars("RELCHECK_CURRENT_REPO", "GITHUB_REPOSITORY"),
		},
	}
}

// NewClient creates a GitHub client from the configuration
func (c *GitHub) NewClient() (*githubinfra.Client, error) {
	return githubinfra.NewClient(
		githubinfra.WithToken(c.Token),
		githubinfra.WithBaseURL(c.APIURL),
		githubinfra.WithTimeout(c.Timeout),
	)
}
