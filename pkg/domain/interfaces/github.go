package interfaces

import (
	"context"

	"github.com/google/go-github/v75/github"
)

// GitHubClient defines the remote operations the release pipeline needs.
// The remote tag and release state is the sole source of truth for "has
// this version already been released".
type GitHubClient interface {
	// ListTags returns all tag names of the repository
	ListTags(ctx context.Context, owner, repo string) ([]string, error)

	// GetReleaseByTag returns the release for a tag, or nil when no such
	// release exists
	GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*github.RepositoryRelease, error)

	// CreateRelease creates a new release
	CreateRelease(ctx context.Context, owner, repo string, release *github.RepositoryRelease) (*github.RepositoryRelease, error)

	// UploadReleaseAsset attaches a local file to an existing release
	UploadReleaseAsset(ctx context.Context, owner, repo string, releaseID int64, path string) error

	// PushTag creates an annotated tag object for the commit and force
	// updates the tag ref, so re-pushing the same tag is idempotent
	PushTag(ctx context.Context, owner, repo, tag, message, sha string) error

	// DispatchWorkflow fires a workflow_dispatch event on the named
	// workflow file of a repository. A missing repository or workflow
	// surfaces as types.ErrTargetNotFound.
	DispatchWorkflow(ctx context.Context, owner, repo, workflowFile, ref string, inputs map[string]any) error
}
