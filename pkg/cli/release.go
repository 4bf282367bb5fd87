package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/drover/pkg/cli/config"
	"github.com/m-mizutani/drover/pkg/domain/model"
	githubinfra "github.com/m-mizutani/drover/pkg/infra/github"
	slackinfra "github.com/m-mizutani/drover/pkg/infra/slack"
	"github.com/m-mizutani/drover/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRelease() *cli.Command {
	var (
		githubCfg  config.GitHub
		releaseCfg config.Release
		tenantCfg  config.Tenant
		slackCfg   config.Slack
	)

	flags := append(githubCfg.Flags(), releaseCfg.Flags()...)
	flags = append(flags, tenantCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "release",
		Aliases: []string{"r"},
		Usage:   "Resolve the next version, publish the tag and release, and fan out to tenants",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			// All configuration errors surface before any remote mutation.
			if err := githubCfg.Validate(); err != nil {
				return err
			}
			if err := slackCfg.Validate(); err != nil {
				return err
			}

			logger.Info("Starting drover release",
				slog.String("repository", githubCfg.Repository),
				slog.String("branch", githubCfg.RefName),
			)

			opts := []usecase.Option{}
			if slackCfg.Enabled {
				opts = append(opts, usecase.WithNotifier(slackinfra.NewNotifier(slackCfg.WebhookURL)))
			}

			uc := usecase.NewRelease(githubinfra.NewClient(githubCfg.Token), opts...)

			input := &model.ReleaseInput{
				Owner:     githubCfg.Owner(),
				Repo:      githubCfg.Name(),
				RefName:   githubCfg.RefName,
				CommitSHA: githubCfg.SHA,

				ExplicitVersion:    releaseCfg.ArtifactVersion,
				AutoTag:            releaseCfg.AutoTag,
				PushTag:            releaseCfg.PushTag,
				MajorVersionBranch: releaseCfg.MajorVersionBranch,

				TenantEnvironments:    tenantCfg.Environments,
				WorkflowFile:          tenantCfg.WorkflowFile,
				DispatchFailuresFatal: tenantCfg.FailuresFatal,

				SlackEnabled:     slackCfg.Enabled,
				ReleaseNotesPath: slackCfg.ReleaseNotesPath,
				Details:          slackCfg.Details,
				TenantName:       releaseCfg.CustomTenantName,
			}

			report, err := uc.Run(ctx, input)
			if report != nil {
				printReport(report)
			}
			return err
		},
	}
}

// printReport writes the human-facing run summary to stdout, one line per
// step plus one per dispatch target.
func printReport(report *model.RunReport) {
	w := os.Stdout

	fmt.Fprintf(w, "Version: %s (branch %s)\n", report.Version, report.Branch.Name)

	switch report.Publish.Status {
	case model.PublishCreated:
		color.New(color.FgGreen).Fprintf(w, "Release %s created\n", report.Publish.Tag)
	case model.PublishAlreadyExists:
		color.New(color.FgYellow).Fprintf(w, "Release %s already exists\n", report.Publish.Tag)
	case model.PublishSkipped:
		fmt.Fprintf(w, "Release skipped: %s\n", report.Publish.Reason)
	}

	for _, outcome := range report.Dispatches {
		line := fmt.Sprintf("Tenant %s (%s): %s", outcome.Target.Tenant, outcome.Target.Environment, outcome.Status)
		switch outcome.Status {
		case model.DispatchDispatched:
			color.New(color.FgGreen).Fprintln(w, line)
		case model.DispatchSkipped:
			color.New(color.FgYellow).Fprintln(w, line)
		case model.DispatchFailed:
			color.New(color.FgRed).Fprintf(w, "%s: %v\n", line, outcome.Err)
		}
	}

	if report.NotifyErr != nil {
		color.New(color.FgYellow).Fprintf(w, "Notification failed: %v\n", report.NotifyErr)
	}
}
