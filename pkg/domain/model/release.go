package model

import "strings"

// ReleaseInput is the immutable per-run configuration threaded through the
// pipeline. It is assembled once from inputs and the GitHub context.
type ReleaseInput struct {
	Owner     string // Repository owner (organization)
	Repo      string // Repository name
	RefName   string // Branch name the run was triggered on
	CommitSHA string // Target commit for the tag and release

	ExplicitVersion    string // Explicit SemVer input; takes precedence over auto-tag
	AutoTag            bool   // Compute the next patch version from tag history
	PushTag            bool   // Publish the tag and release for an explicit version
	MajorVersionBranch string // Hotfix branch override, "<name>-v<major>"

	TenantEnvironments    string // Newline-delimited "tenant=environments" list
	WorkflowFile          string // Tenant workflow file to dispatch
	DispatchFailuresFatal bool   // Escalate failed dispatches to a fatal run result

	SlackEnabled     bool
	ReleaseNotesPath string // Optional release notes file, relative to repo root
	Details          string // Free-form text appended to the notification verbatim
	TenantName       string // Display name override for the notification
}

// Repository returns the "owner/name" form.
func (i *ReleaseInput) Repository() string {
	return i.Owner + "/" + i.Repo
}

// DisplayName is the tenant name shown in notifications: the override if
// set, otherwise the repository name up to the first dot.
func (i *ReleaseInput) DisplayName() string {
	if i.TenantName != "" {
		return i.TenantName
	}
	name, _, _ := strings.Cut(i.Repo, ".")
	return name
}

// ReleaseRequest describes the tag and release to publish. Built by the
// orchestrator after version resolution, consumed by the publisher, and
// discarded when the run ends.
type ReleaseRequest struct {
	Version      Version
	TargetCommit string
	Name         string
	Notes        string
	Attachments  []string // Existing file paths only
}

// PublishStatus is the outcome of the tag-and-release step
type PublishStatus string

const (
	PublishCreated       PublishStatus = "created"
	PublishAlreadyExists PublishStatus = "already_exists"
	PublishSkipped       PublishStatus = "skipped" // branch not designated for publishing
)

// PublishResult records what the publisher did.
type PublishResult struct {
	Status PublishStatus
	Tag    string
	Reason string // set for skipped results
}

// RunReport is the aggregated result of one pipeline run.
type RunReport struct {
	Version    string
	Branch     BranchContext
	Publish    PublishResult
	Dispatches DispatchReport
	Notified   bool
	NotifyErr  error
}
