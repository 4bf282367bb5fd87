package config

import "github.com/urfave/cli/v3"

// Tenant holds the fan-out inputs
type Tenant struct {
	Environments  string
	WorkflowFile  string
	FailuresFatal bool
}

// Flags returns CLI flags for tenant fan-out configuration
func (c *Tenant) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tenant-environments",
			Usage:       "Newline-delimited 'tenant=environment' list to dispatch the new version to",
			Destination: &c.Environments,
			Sources:     cli.EnvVars("INPUT_UPDATE_TENANT_ENVIRONMENTS"),
		},
		&cli.StringFlag{
			Name:        "tenant-workflow-file",
			Usage:       "Tenant workflow file with an on.workflow_dispatch trigger",
			Value:       "project-update.yaml",
			Destination: &c.WorkflowFile,
			Sources:     cli.EnvVars("INPUT_UPDATE_TENANT_WORKFLOW_FILE"),
		},
		&cli.BoolFlag{
			Name:        "dispatch-failures-fatal",
			Usage:       "Fail the run when any tenant dispatch fails",
			Destination: &c.FailuresFatal,
			Sources:     cli.EnvVars("DROVER_DISPATCH_FAILURES_FATAL"),
		},
	}
}
