package github

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/drover/pkg/domain/interfaces"
	"github.com/m-mizutani/drover/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type client struct {
	githubClient *github.Client
}

// NewClient creates a GitHub client authenticated with a personal access
// token.
func NewClient(token string) interfaces.GitHubClient {
	return &client{
		githubClient: github.NewClient(nil).WithAuthToken(token),
	}
}

// ListTags returns all tag names of the repository, following pagination.
func (c *client) ListTags(ctx context.Context, owner, repo string) ([]string, error) {
	var names []string
	opts := &github.ListOptions{PerPage: 100}

	for {
		tags, resp, err := c.githubClient.Repositories.ListTags(ctx, owner, repo, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list tags",
				goerr.V("repo", owner+"/"+repo))
		}
		for _, tag := range tags {
			names = append(names, tag.GetName())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return names, nil
}

// GetReleaseByTag returns the release for a tag, or nil when none exists.
func (c *client) GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*github.RepositoryRelease, error) {
	release, resp, err := c.githubClient.Repositories.GetReleaseByTag(ctx, owner, repo, tag)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to check release existence",
			goerr.V("repo", owner+"/"+repo), goerr.V("tag", tag))
	}
	return release, nil
}

// CreateRelease creates a new release.
func (c *client) CreateRelease(ctx context.Context, owner, repo string, release *github.RepositoryRelease) (*github.RepositoryRelease, error) {
	created, _, err := c.githubClient.Repositories.CreateRelease(ctx, owner, repo, release)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create release",
			goerr.V("repo", owner+"/"+repo), goerr.V("tag", release.GetTagName()))
	}
	return created, nil
}

// UploadReleaseAsset attaches a local file to an existing release.
func (c *client) UploadReleaseAsset(ctx context.Context, owner, repo string, releaseID int64, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return goerr.Wrap(err, "failed to open release asset", goerr.V("path", path))
	}
	defer f.Close()

	opts := &github.UploadOptions{Name: filepath.Base(path)}
	if _, _, err := c.githubClient.Repositories.UploadReleaseAsset(ctx, owner, repo, releaseID, opts, f); err != nil {
		return goerr.Wrap(err, "failed to upload release asset",
			goerr.V("repo", owner+"/"+repo), goerr.V("path", path))
	}
	return nil
}

// PushTag creates an annotated tag object pointing at the commit, then
// creates the tag ref or force updates it when it already exists. The
// force update keeps re-runs idempotent; concurrent runs are last writer
// wins.
func (c *client) PushTag(ctx context.Context, owner, repo, tag, message, sha string) error {
	tagObj, _, err := c.githubClient.Git.CreateTag(ctx, owner, repo, github.CreateTag{
		Tag:     tag,
		Message: message,
		Object:  sha,
		Type:    "commit",
	})
	if err != nil {
		return goerr.Wrap(err, "failed to create tag object",
			goerr.V("repo", owner+"/"+repo), goerr.V("tag", tag))
	}

	refName := "refs/tags/" + tag

	if _, _, err := c.githubClient.Git.CreateRef(ctx, owner, repo, github.CreateRef{Ref: refName, SHA: tagObj.GetSHA()}); err != nil {
		if _, _, err := c.githubClient.Git.UpdateRef(ctx, owner, repo, refName, github.UpdateRef{SHA: tagObj.GetSHA(), Force: github.Ptr(true)}); err != nil {
			return goerr.Wrap(err, "failed to push tag ref",
				goerr.V("repo", owner+"/"+repo), goerr.V("tag", tag))
		}
	}

	return nil
}

// DispatchWorkflow fires a workflow_dispatch event on the named workflow
// file.
func (c *client) DispatchWorkflow(ctx context.Context, owner, repo, workflowFile, ref string, inputs map[string]any) error {
	req := github.CreateWorkflowDispatchEventRequest{
		Ref:    ref,
		Inputs: inputs,
	}

	resp, err := c.githubClient.Actions.CreateWorkflowDispatchEventByFileName(ctx, owner, repo, workflowFile, req)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return goerr.Wrap(types.ErrTargetNotFound, "workflow dispatch target not found",
				goerr.V("repo", owner+"/"+repo), goerr.V("workflow", workflowFile), goerr.V("cause", err))
		}
		return goerr.Wrap(types.ErrDispatchFailed, "failed to dispatch workflow",
			goerr.V("repo", owner+"/"+repo), goerr.V("workflow", workflowFile), goerr.V("cause", err))
	}

	return nil
}
