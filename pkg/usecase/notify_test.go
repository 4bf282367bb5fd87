package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/drover/pkg/usecase"
)

// MockNotifier records posted messages
type MockNotifier struct {
	posted  []string
	postErr error
}

func (m *MockNotifier) Post(ctx context.Context, text string) error {
	if m.postErr != nil {
		return m.postErr
	}
	m.posted = append(m.posted, text)
	return nil
}

func TestNotify_Disabled(t *testing.T) {
	ctx := context.Background()

	notifier := &MockNotifier{}
	mockClient := &MockGitHubClient{tags: []string{"v1.0.0"}}
	uc := usecase.NewRelease(mockClient, usecase.WithNotifier(notifier))

	report, err := uc.Run(ctx, newInput())

	gt.NoError(t, err)
	gt.Value(t, report.Notified).Equal(false)
	gt.Value(t, len(notifier.posted)).Equal(0)
}

func TestNotify_MessageContent(t *testing.T) {
	ctx := context.Background()

	repoRoot := t.TempDir()
	notesPath := "docs/release-notes.md"
	gt.NoError(t, os.MkdirAll(filepath.Join(repoRoot, "docs"), 0700))
	gt.NoError(t, os.WriteFile(filepath.Join(repoRoot, notesPath), []byte("- fixed everything\n"), 0600))

	notifier := &MockNotifier{}
	mockClient := &MockGitHubClient{tags: []string{"v4.1.1"}}
	uc := usecase.NewRelease(mockClient,
		usecase.WithNotifier(notifier),
		usecase.WithRepoRoot(repoRoot),
	)

	input := newInput()
	input.SlackEnabled = true
	input.ReleaseNotesPath = notesPath
	input.Details = "rollout window: tonight"
	input.TenantEnvironments = "acme=develop"

	report, err := uc.Run(ctx, input)

	gt.NoError(t, err)
	gt.Value(t, report.Notified).Equal(true)
	gt.Value(t, len(notifier.posted)).Equal(1)

	msg := notifier.posted[0]
	gt.String(t, msg).Contains("*Released a new version of acme*")
	gt.String(t, msg).Contains("*Branch*: production")
	gt.String(t, msg).Contains("https://github.com/edenlabllc/acme.artifact.infra/tree/v4.1.2|v4.1.2")
	gt.String(t, msg).Contains("https://github.com/edenlabllc/acme.artifact.infra/blob/v4.1.2/" + notesPath)
	gt.String(t, msg).Contains("- fixed everything")
	gt.String(t, msg).Contains("*Tenant updates*: 1 dispatched, 0 skipped, 0 failed")
	gt.String(t, msg).Contains("*Details*: rollout window: tonight")
}

func TestNotify_CustomTenantName(t *testing.T) {
	ctx := context.Background()

	notifier := &MockNotifier{}
	mockClient := &MockGitHubClient{tags: []string{"v1.0.0"}}
	uc := usecase.NewRelease(mockClient, usecase.WithNotifier(notifier))

	input := newInput()
	input.SlackEnabled = true
	input.TenantName = "client-x"

	_, err := uc.Run(ctx, input)

	gt.NoError(t, err)
	gt.Value(t, len(notifier.posted)).Equal(1)
	gt.String(t, notifier.posted[0]).Contains("*Released a new version of client-x*")
}

func TestNotify_MissingNotesFileOmitsSection(t *testing.T) {
	ctx := context.Background()

	notifier := &MockNotifier{}
	mockClient := &MockGitHubClient{tags: []string{"v1.0.0"}}
	uc := usecase.NewRelease(mockClient,
		usecase.WithNotifier(notifier),
		usecase.WithRepoRoot(t.TempDir()),
	)

	input := newInput()
	input.SlackEnabled = true
	input.ReleaseNotesPath = "missing.md"

	report, err := uc.Run(ctx, input)

	gt.NoError(t, err)
	gt.Value(t, report.Notified).Equal(true)
	// The link still appears; only the contents section is omitted.
	gt.String(t, notifier.posted[0]).Contains("*Release notes*:")
}

func TestNotify_SkippedPublishSendsNothing(t *testing.T) {
	ctx := context.Background()

	notifier := &MockNotifier{}
	mockClient := &MockGitHubClient{tags: []string{"v1.0.0"}}
	uc := usecase.NewRelease(mockClient, usecase.WithNotifier(notifier))

	input := newInput()
	input.RefName = "feature/cache"
	input.SlackEnabled = true

	report, err := uc.Run(ctx, input)

	gt.NoError(t, err)
	gt.Value(t, report.Publish.Status).Equal(model.PublishSkipped)
	gt.Value(t, report.Notified).Equal(false)
	gt.Value(t, len(notifier.posted)).Equal(0)
}

func TestNotify_FailureIsNotFatal(t *testing.T) {
	ctx := context.Background()

	notifier := &MockNotifier{postErr: goerr.New("webhook down")}
	mockClient := &MockGitHubClient{tags: []string{"v1.0.0"}}
	uc := usecase.NewRelease(mockClient, usecase.WithNotifier(notifier))

	input := newInput()
	input.SlackEnabled = true

	report, err := uc.Run(ctx, input)

	gt.NoError(t, err)
	gt.Value(t, report.Notified).Equal(false)
	gt.Error(t, report.NotifyErr)
	// The release itself still went through.
	gt.Value(t, report.Publish.Status).Equal(model.PublishCreated)
}
