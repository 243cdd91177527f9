package report

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relcheck/pkg/domain/model"
)

// JSON renders records as an indented JSON array
type JSON struct{}

// Format implements Formatter
func (f *JSON) Format(records []*model.ResultRecord) (string, error) {
	if records == nil {
		records = []*model.ResultRecord{}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal results")
	}
	return string(data), nil
}
