package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/drover/pkg/domain/model"
)

// manifestFile is the single well-known attachment candidate at the
// repository root. No globbing: presence alone decides inclusion.
const manifestFile = "project.yaml"

// selectAttachments returns the manifest path when it exists under root.
// A missing manifest is not an error.
func selectAttachments(root string) []string {
	path := filepath.Join(root, manifestFile)
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return []string{path}
}

func newReleaseRequest(version model.Version, sha string, attachments []string) *model.ReleaseRequest {
	tag := version.String()
	return &model.ReleaseRequest{
		Version:      version,
		TargetCommit: sha,
		Name:         "Artifact version - " + tag,
		Notes: fmt.Sprintf("All dependency versions for the artifact version: `%s` "+
			"are described in the asset file: `%s`", tag, manifestFile),
		Attachments: attachments,
	}
}

// publish creates the annotated tag and the release for the resolved
// version. Only mainline and hotfix-major branches publish on their own;
// an explicit version input allows any branch (the manual path). An
// existing release turns the step into an "already exists" no-op, which
// makes re-runs after partial failure safe.
func (uc *releaseUseCase) publish(ctx context.Context, input *model.ReleaseInput, branch model.BranchContext, req *model.ReleaseRequest) (model.PublishResult, error) {
	logger := ctxlog.From(ctx)
	tag := req.Version.String()

	if !input.AutoTag && !input.PushTag {
		logger.Info("Skip tag and release creation", "reason", "neither autotag nor push_tag is set")
		return model.PublishResult{Status: model.PublishSkipped, Tag: tag, Reason: "tag push not requested"}, nil
	}

	if !branch.Publishable() && input.ExplicitVersion == "" {
		logger.Info("Skip tag and release creation",
			"branch", branch.Name,
			"reason", "not a designated release branch")
		return model.PublishResult{Status: model.PublishSkipped, Tag: tag, Reason: "branch is not designated for releases"}, nil
	}

	logger.Info("Pushing annotated tag", "tag", tag, "commit", req.TargetCommit)
	if err := uc.githubClient.PushTag(ctx, input.Owner, input.Repo, tag, "Release "+tag, req.TargetCommit); err != nil {
		return model.PublishResult{}, err
	}

	existing, err := uc.githubClient.GetReleaseByTag(ctx, input.Owner, input.Repo, tag)
	if err != nil {
		return model.PublishResult{}, err
	}
	if existing != nil {
		logger.Info("Release already exists, skipping creation", "tag", tag)
		return model.PublishResult{Status: model.PublishAlreadyExists, Tag: tag}, nil
	}

	logger.Info("Creating release", "tag", tag)
	release, err := uc.githubClient.CreateRelease(ctx, input.Owner, input.Repo, &github.RepositoryRelease{
		TagName:         github.Ptr(tag),
		Name:            github.Ptr(req.Name),
		Body:            github.Ptr(req.Notes),
		TargetCommitish: github.Ptr(req.TargetCommit),
		Draft:           github.Ptr(false),
		Prerelease:      github.Ptr(false),
	})
	if err != nil {
		return model.PublishResult{}, err
	}

	for _, path := range req.Attachments {
		if err := uc.githubClient.UploadReleaseAsset(ctx, input.Owner, input.Repo, release.GetID(), path); err != nil {
			return model.PublishResult{}, err
		}
		logger.Info("Uploaded release asset", "path", path, "tag", tag)
	}

	return model.PublishResult{Status: model.PublishCreated, Tag: tag}, nil
}
