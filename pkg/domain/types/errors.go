package types

import "github.com/m-mizutani/goerr/v2"

// Error kinds of the release pipeline. Resolution and publish errors are
// fatal and abort the run; dispatch and notification errors are collected
// into the run report instead.
var (
	// ErrInvalidVersionFormat indicates an explicit version that does not
	// parse as strict SemVer.
	ErrInvalidVersionFormat = goerr.New("invalid version format")

	// ErrVersionAlreadyReleased indicates the resolved version already has
	// a tag or release on the remote.
	ErrVersionAlreadyReleased = goerr.New("version already released")

	// ErrConfiguration indicates missing or inconsistent inputs, detected
	// before any remote mutation.
	ErrConfiguration = goerr.New("configuration error")

	// ErrTargetNotFound indicates a tenant repository or workflow file
	// that does not exist; the target is reported as skipped.
	ErrTargetNotFound = goerr.New("target repository or workflow not found")

	// ErrDispatchFailed indicates a workflow_dispatch call that failed for
	// a reason other than a missing target.
	ErrDispatchFailed = goerr.New("workflow dispatch failed")

	// ErrNotificationFailed indicates the Slack webhook call failed. Never
	// fatal: the release steps already completed.
	ErrNotificationFailed = goerr.New("notification failed")
)
