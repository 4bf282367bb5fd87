package slack

import (
	"context"

	"github.com/m-mizutani/drover/pkg/domain/interfaces"
	"github.com/m-mizutani/drover/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

const (
	webhookUsername = "Tenant artifact action"
	webhookIcon     = ":package:"
)

type notifier struct {
	webhookURL string
}

// NewNotifier creates a Slack notifier posting to an incoming webhook.
func NewNotifier(webhookURL string) interfaces.Notifier {
	return &notifier{webhookURL: webhookURL}
}

// Post sends a single webhook message.
func (n *notifier) Post(ctx context.Context, text string) error {
	msg := &slack.WebhookMessage{
		Username:  webhookUsername,
		IconEmoji: webhookIcon,
		Text:      text,
	}

	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(types.ErrNotificationFailed, "failed to post Slack webhook",
			goerr.V("cause", err))
	}

	return nil
}
