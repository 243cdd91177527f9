package config

import (
	"github.com/m-mizutani/relcheck/pkg/domain/interfaces"
	slackinfra "github.com/m-mizutani/relcheck/pkg/infra/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack notification configuration
type Slack struct {
	WebhookURL string `masq:"secret"`
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL notified of new releases",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("RELCHECK_SLACK_WEBHOOK_URL"),
		},
	}
}

// NewNotifier returns a Slack notifier, or nil when no webhook is configured
func (c *Slack) NewNotifier(currentRepo string) interfaces.Notifier {
	if c.WebhookURL == "" {
		return nil
	}
	return slackinfra.NewNotifier(c.WebhookURL, slackinfra.WithCurrentRepo(currentRepo))
}
