package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/drover/pkg/domain/model"
)

const githubServerURL = "https://github.com"

// buildNotification composes the Slack message text: the released version
// with a tag link, the branch, the release notes link and contents when
// the file exists, the dispatch summary, and the caller's details
// verbatim.
func buildNotification(input *model.ReleaseInput, version string, dispatches model.DispatchReport, notes string) string {
	repoURL := githubServerURL + "/" + input.Repository()

	var b strings.Builder
	fmt.Fprintf(&b, "*Released a new version of %s*: <%s/tree/%s|%s>\n",
		input.DisplayName(), repoURL, version, version)
	fmt.Fprintf(&b, "*Branch*: %s\n", input.RefName)

	if input.ReleaseNotesPath != "" {
		fmt.Fprintf(&b, "*Release notes*: %s/blob/%s/%s\n", repoURL, version, input.ReleaseNotesPath)
	}
	if notes != "" {
		fmt.Fprintf(&b, "%s\n", strings.TrimRight(notes, "\n"))
	}

	if len(dispatches) > 0 {
		dispatched, skipped, failed := dispatches.Counts()
		fmt.Fprintf(&b, "*Tenant updates*: %d dispatched, %d skipped, %d failed\n",
			dispatched, skipped, failed)
	}

	if input.Details != "" {
		fmt.Fprintf(&b, "*Details*: %s", input.Details)
	}

	return strings.TrimRight(b.String(), "\n")
}

// notify posts the release summary when notifications are enabled. The
// webhook presence was validated before the run started; a delivery
// failure is returned for the report but never aborts anything.
func (uc *releaseUseCase) notify(ctx context.Context, input *model.ReleaseInput, version string, dispatches model.DispatchReport) (bool, error) {
	logger := ctxlog.From(ctx)

	if !input.SlackEnabled || uc.notifier == nil {
		logger.Info("Skip Slack notification", "enabled", input.SlackEnabled)
		return false, nil
	}

	var notes string
	if input.ReleaseNotesPath != "" {
		data, err := os.ReadFile(filepath.Join(uc.repoRoot, input.ReleaseNotesPath))
		if err == nil {
			notes = string(data)
		} else {
			logger.Warn("Release notes file not readable, section omitted",
				"path", input.ReleaseNotesPath, "error", err)
		}
	}

	text := buildNotification(input, version, dispatches, notes)
	if err := uc.notifier.Post(ctx, text); err != nil {
		logger.Error("Failed to send Slack notification", "error", err)
		return false, err
	}

	logger.Info("Sent Slack notification", "version", version)
	return true, nil
}
