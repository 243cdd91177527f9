package interfaces

import (
	"context"

	"github.com/m-mizutani/relcheck/pkg/domain/model"
)

// ReleaseUseCase defines the release check workflow
type ReleaseUseCase interface {
	// CheckAndUpdate checks every repository for a new release and records changes
	CheckAndUpdate(ctx context.Context, repos []*model.RepositoryConfig) []*model.ResultRecord
}
