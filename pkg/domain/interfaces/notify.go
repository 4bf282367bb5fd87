package interfaces

import "context"

// Notifier posts a release summary to a messaging endpoint. Delivery is
// best effort: a failure never rolls back the release steps.
type Notifier interface {
	Post(ctx context.Context, text string) error
}
