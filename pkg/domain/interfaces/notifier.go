package interfaces

import (
	"context"

	"github.com/m-mizutani/relcheck/pkg/domain/model"
)

// Notifier announces newly detected releases
type Notifier interface {
	Notify(ctx context.Context, records []*model.ResultRecord) error
}
