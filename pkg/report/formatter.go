// Package report renders release check results.
package report

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relcheck/pkg/domain/model"
)

// Kind identifies an output representation
type Kind string

const (
	KindTable    Kind = "table"
	KindJSON     Kind = "json"
	KindMarkdown Kind = "markdown"
)

// none is printed for empty cells and sections
const none = "None"

// Kinds lists every supported representation
var Kinds = []Kind{KindTable, KindJSON, KindMarkdown}

// Formatter renders result records into text
type Formatter interface {
	Format(records []*model.ResultRecord) (string, error)
}

// New returns the formatter of kind
func New(kind Kind) (Formatter, error) {
	switch kind {
	case KindTable:
		return &Table{}, nil
	case KindJSON:
		return &JSON{}, nil
	case KindMarkdown:
		return &Markdown{}, nil
	default:
		return nil, goerr.New("unsupported output format", goerr.V("format", kind))
	}
}

// OutputFile returns the file a kind is written to. The table is printed to the console and has none.
func OutputFile(kind Kind) string {
	switch kind {
	case KindJSON:
		return "output.json"
	case KindMarkdown:
		return "output.md"
	default:
		return ""
	}
}

func assetSummary(rec *model.ResultRecord) string {
	if len(rec.Assets) == 0 {
		return none
	}
	return fmt.Sprintf("%d found", len(rec.Assets))
}
