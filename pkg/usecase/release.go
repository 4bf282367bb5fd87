package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/drover/pkg/domain/interfaces"
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/drover/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type releaseUseCase struct {
	githubClient interfaces.GitHubClient
	notifier     interfaces.Notifier
	repoRoot     string
}

// Option configures the release use case
type Option func(*releaseUseCase)

// WithNotifier sets the notifier used for the release summary.
func WithNotifier(notifier interfaces.Notifier) Option {
	return func(uc *releaseUseCase) {
		uc.notifier = notifier
	}
}

// WithRepoRoot sets the repository root used to look up the manifest and
// release notes files. Defaults to the working directory.
func WithRepoRoot(root string) Option {
	return func(uc *releaseUseCase) {
		uc.repoRoot = root
	}
}

// NewRelease creates a new instance of ReleaseUseCase
func NewRelease(githubClient interfaces.GitHubClient, opts ...Option) interfaces.ReleaseUseCase {
	uc := &releaseUseCase{
		githubClient: githubClient,
		repoRoot:     ".",
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run executes the pipeline: classify the branch, snapshot the tag
// history, resolve the version, publish the tag and release, fan out to
// tenants, and notify. Resolution and publish errors abort the remaining
// steps; dispatch and notification results are collected into the report.
func (uc *releaseUseCase) Run(ctx context.Context, input *model.ReleaseInput) (*model.RunReport, error) {
	logger := ctxlog.From(ctx)

	branch, err := model.ClassifyBranch(input.RefName, input.MajorVersionBranch)
	if err != nil {
		return nil, err
	}

	logger.Info("Starting release pipeline",
		"repository", input.Repository(),
		"branch", branch.Name,
		"role", string(branch.Role),
		"commit", input.CommitSHA,
	)

	tags, err := uc.githubClient.ListTags(ctx, input.Owner, input.Repo)
	if err != nil {
		return nil, err
	}
	history := model.NewTagHistory(tags)

	version, err := ResolveVersion(branch, input.ExplicitVersion, input.AutoTag, history)
	if err != nil {
		return nil, err
	}
	logger.Info("Resolved artifact version", "version", version.String())

	req := newReleaseRequest(version, input.CommitSHA, selectAttachments(uc.repoRoot))

	report := &model.RunReport{
		Version: version.String(),
		Branch:  branch,
	}

	report.Publish, err = uc.publish(ctx, input, branch, req)
	if err != nil {
		return report, err
	}

	// No point dispatching tenants or announcing a release for a version
	// that was never tagged.
	if report.Publish.Status != model.PublishSkipped {
		report.Dispatches = uc.dispatchTenants(ctx, input, version.String())
		report.Notified, report.NotifyErr = uc.notify(ctx, input, version.String(), report.Dispatches)
	} else {
		logger.Info("Skip tenant environments update and notification",
			"reason", report.Publish.Reason)
	}

	if input.DispatchFailuresFatal {
		if _, _, failed := report.Dispatches.Counts(); failed > 0 {
			return report, goerr.Wrap(types.ErrDispatchFailed,
				"one or more tenant dispatches failed",
				goerr.V("failed", failed))
		}
	}

	return report, nil
}
