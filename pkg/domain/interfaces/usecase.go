package interfaces

import (
	"context"

	"github.com/m-mizutani/drover/pkg/domain/model"
)

// ReleaseUseCase runs the release pipeline: resolve the version, publish
// the tag and release, fan out to tenants, and notify.
type ReleaseUseCase interface {
	// Run executes one pipeline run. A non-nil report may accompany an
	// error, so the caller can still print a per-target summary.
	Run(ctx context.Context, input *model.ReleaseInput) (*model.RunReport, error)
}
