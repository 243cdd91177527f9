package slack

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relcheck/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Notifier posts new release announcements to a Slack incoming webhook
type Notifier struct {
	webhookURL  string
	currentRepo string
	httpClient  *http.Client
}

// Option is a functional option for Notifier configuration
type Option func(*Notifier)

// WithCurrentRepo adds the repository running the check to the message footer
func WithCurrentRepo(repo string) Option {
	return func(n *Notifier) {
		n.currentRepo = repo
	}
}

// WithHTTPClient replaces the HTTP client used to post the webhook
func WithHTTPClient(client *http.Client) Option {
	return func(n *Notifier) {
		n.httpClient = client
	}
}

// NewNotifier creates a Slack webhook notifier
func NewNotifier(webhookURL string, opts ...Option) *Notifier {
	n := &Notifier{
		webhookURL: webhookURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

const (
	// MaxRecordsPerMessage keeps a message with header and footer within Slack's 50 block limit
	MaxRecordsPerMessage = 45

	// maxSectionText is Slack's limit for the text of a section block
	maxSectionText = 3000
)

// Notify posts the records in messages of at most MaxRecordsPerMessage sections.
// Nothing is sent for an empty list.
func (n *Notifier) Notify(ctx context.Context, records []*model.ResultRecord) error {
	if len(records) == 0 {
		return nil
	}

	chunks := slices.Collect(slices.Chunk(records, MaxRecordsPerMessage))
	for i, chunk := range chunks {
		title := "New releases"
		if len(chunks) > 1 {
			title = fmt.Sprintf("New releases (%d/%d)", i+1, len(chunks))
		}

		msg := &slack.WebhookMessage{
			Text:   fmt.Sprintf("%d new release(s) detected", len(records)),
			Blocks: buildBlocks(title, chunk, n.currentRepo),
		}

		if err := slack.PostWebhookCustomHTTPContext(ctx, n.webhookURL, n.httpClient, msg); err != nil {
			return goerr.Wrap(err, "failed to post Slack webhook",
				goerr.V("count", len(records)),
				goerr.V("part", i+1),
			)
		}
	}
	return nil
}

func buildBlocks(title string, records []*model.ResultRecord, currentRepo string) *slack.Blocks {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, title, false, false)),
	}

	for _, rec := range records {
		var b strings.Builder
		fmt.Fprintf(&b, "*%s*: %s → *%s*", rec.Package, rec.PreviousVersion, rec.LatestVersion)
		for _, asset := range rec.Assets {
			fmt.Fprintf(&b, "\n• <%s|%s>", asset.URL, asset.Name)
		}
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, truncate(b.String(), maxSectionText), false, false), nil, nil,
		))
	}

	if currentRepo != "" {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, "checked by "+currentRepo, false, false),
		))
	}

	return &slack.Blocks{BlockSet: blocks}
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}
