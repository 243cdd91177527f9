package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/m-mizutani/relcheck/pkg/domain/model"
)

var cellStyle = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Left)

// Table renders a left-aligned console table
type Table struct{}

// Format implements Formatter
func (f *Table) Format(records []*model.ResultRecord) (string, error) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Package", "Version", "Latest", "Assets").
		StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle
		})

	for _, rec := range records {
		t.Row(rec.Package, rec.PreviousVersion, rec.LatestVersion, assetSummary(rec))
	}

	return t.String(), nil
}
