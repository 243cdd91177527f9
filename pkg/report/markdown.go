package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relcheck/pkg/domain/model"
)

// NewMarker is appended to the latest version of a new release in the summary table
const NewMarker = " 🆕"

// Markdown renders a summary table followed by one section per package
type Markdown struct{}

// Format implements Formatter
func (f *Markdown) Format(records []*model.ResultRecord) (string, error) {
	lines := []string{
		"# Dependency Release Check",
		"",
		"| Package | Current | Latest | Assets |",
		"|---|---|---|---|",
	}

	for _, rec := range records {
		marker := ""
		if rec.IsNew {
			marker = NewMarker
		}
		lines = append(lines, fmt.Sprintf("| %s | %s | %s%s | %s |",
			rec.Package, rec.PreviousVersion, rec.LatestVersion, marker, assetSummary(rec)))
	}
	lines = append(lines, "")

	for _, rec := range records {
		lines = append(lines, "## "+rec.Package, "", "**Assets:**")
		if len(rec.Assets) == 0 {
			lines = append(lines, none)
		}
		for _, asset := range rec.Assets {
			lines = append(lines, fmt.Sprintf("- [%s](%s)", asset.Name, asset.URL))
		}
		lines = append(lines, "")

		lines = append(lines, "**Release Notes:**", "")
		notes := strings.TrimSpace(rec.ReleaseNotes)
		if notes == "" {
			notes = none
		}
		lines = append(lines, notes, "")
	}

	return strings.Join(lines, "\n"), nil
}

// Render formats Markdown for display in a terminal of the given width
func Render(markdown string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create markdown renderer")
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return "", goerr.Wrap(err, "failed to render markdown")
	}
	return out, nil
}
