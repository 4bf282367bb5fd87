package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/drover/pkg/domain/types"
	"github.com/m-mizutani/drover/pkg/utils/async"
)

// dispatchTenants fires one workflow_dispatch per tenant/environment pair,
// carrying the released version. Targets are independent: one failure
// never blocks the others, and nothing is retried within the run. The
// report preserves input order even though targets run in parallel.
func (uc *releaseUseCase) dispatchTenants(ctx context.Context, input *model.ReleaseInput, version string) model.DispatchReport {
	logger := ctxlog.From(ctx)

	targets, malformed := model.ParseTenantTargets(input.TenantEnvironments)
	for _, line := range malformed {
		logger.Warn("Skipping malformed tenant mapping line, expected 'tenant=env'", "line", line)
	}

	if len(targets) == 0 {
		logger.Info("Skip tenant environments update")
		return nil
	}

	errs := async.Parallel(ctx, len(targets), func(ctx context.Context, idx int) error {
		target := targets[idx]
		return uc.githubClient.DispatchWorkflow(ctx,
			input.Owner,
			target.RepoName(),
			input.WorkflowFile,
			target.Environment,
			map[string]any{
				"project_dependency_name":    input.Repo,
				"project_dependency_version": version,
			},
		)
	})

	report := make(model.DispatchReport, len(targets))
	for i, target := range targets {
		outcome := model.DispatchOutcome{Target: target, Err: errs[i]}

		switch {
		case errs[i] == nil:
			outcome.Status = model.DispatchDispatched
			logger.Info("Dispatched tenant workflow",
				"tenant", target.Tenant,
				"environment", target.Environment,
				"version", version)
		case errors.Is(errs[i], types.ErrTargetNotFound):
			outcome.Status = model.DispatchSkipped
			logger.Warn("Tenant workflow not found, skipped",
				"tenant", target.Tenant,
				"environment", target.Environment,
				"error", errs[i])
		default:
			outcome.Status = model.DispatchFailed
			logger.Error("Failed to dispatch tenant workflow",
				"tenant", target.Tenant,
				"environment", target.Environment,
				"error", errs[i])
		}

		report[i] = outcome
	}

	return report
}
