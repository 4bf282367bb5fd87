package config

import "github.com/urfave/cli/v3"

// Release holds the versioning inputs
type Release struct {
	ArtifactVersion    string
	AutoTag            bool
	PushTag            bool
	MajorVersionBranch string
	CustomTenantName   string
}

// Flags returns CLI flags for release configuration
func (c *Release) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "artifact-version",
			Usage:       "Explicit artifact release version (SemVer); takes precedence over autotag",
			Destination: &c.ArtifactVersion,
			Sources:     cli.EnvVars("INPUT_ARTIFACT_VERSION"),
		},
		&cli.BoolFlag{
			Name:        "autotag",
			Usage:       "Derive the next patch version from existing tags",
			Destination: &c.AutoTag,
			Sources:     cli.EnvVars("INPUT_AUTOTAG"),
		},
		&cli.BoolFlag{
			Name:        "push-tag",
			Usage:       "Push the tag and create the release for an explicit version",
			Destination: &c.PushTag,
			Sources:     cli.EnvVars("INPUT_PUSH_TAG"),
		},
		&cli.StringFlag{
			Name:        "major-version-branch",
			Usage:       "Maintenance branch pinned to one major line, '<name>-v<major>'",
			Destination: &c.MajorVersionBranch,
			Sources:     cli.EnvVars("INPUT_MAJOR_VERSION_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "custom-tenant-name",
			Usage:       "Tenant display name override for notifications",
			Destination: &c.CustomTenantName,
			Sources:     cli.EnvVars("INPUT_CUSTOM_TENANT_NAME"),
		},
	}
}
