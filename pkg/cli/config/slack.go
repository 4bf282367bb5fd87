package config

import (
	"github.com/m-mizutani/drover/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Slack holds notification configuration
type Slack struct {
	Enabled          bool
	WebhookURL       string `masq:"secret"`
	ReleaseNotesPath string
	Details          string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "slack-notifications",
			Usage:       "Enable Slack notifications",
			Destination: &c.Enabled,
			Sources:     cli.EnvVars("INPUT_SLACK_NOTIFICATIONS"),
		},
		&cli.StringFlag{
			Name:        "slack-webhook",
			Usage:       "Slack incoming webhook URL (required when notifications are enabled)",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("INPUT_SLACK_WEBHOOK"),
		},
		&cli.StringFlag{
			Name:        "slack-release-notes-path",
			Usage:       "Release notes file path relative to the repository root",
			Destination: &c.ReleaseNotesPath,
			Sources:     cli.EnvVars("INPUT_SLACK_MESSAGE_RELEASE_NOTES_PATH"),
		},
		&cli.StringFlag{
			Name:        "slack-details",
			Usage:       "Additional text appended to the notification body",
			Destination: &c.Details,
			Sources:     cli.EnvVars("INPUT_SLACK_MESSAGE_DETAILS"),
		},
	}
}

// Validate fails fast when notifications are enabled without a webhook, so
// no remote mutation happens on a run that cannot report its outcome.
func (c *Slack) Validate() error {
	if c.Enabled && c.WebhookURL == "" {
		return goerr.Wrap(types.ErrConfiguration,
			"slack notifications are enabled but no webhook URL is configured")
	}
	return nil
}
