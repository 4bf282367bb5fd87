package config

import (
	"strings"

	"github.com/m-mizutani/drover/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// GitHub holds the access token and the repository context the run was
// triggered in. The context values come straight from the standard
// GITHUB_* variables of the CI environment.
type GitHub struct {
	Token      string `masq:"secret"`
	Repository string // "owner/name"
	RefName    string
	SHA        string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token with full repository access",
			Required:    true,
			Destination: &c.Token,
			Sources:     cli.EnvVars("INPUT_GITHUB_TOKEN_REPO_FULL_ACCESS", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-repository",
			Usage:       "Repository in 'owner/name' form",
			Required:    true,
			Destination: &c.Repository,
			Sources:     cli.EnvVars("GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "github-ref-name",
			Usage:       "Branch name the run was triggered on",
			Required:    true,
			Destination: &c.RefName,
			Sources:     cli.EnvVars("GITHUB_REF_NAME"),
		},
		&cli.StringFlag{
			Name:        "github-sha",
			Usage:       "Commit SHA to tag and release",
			Required:    true,
			Destination: &c.SHA,
			Sources:     cli.EnvVars("GITHUB_SHA"),
		},
	}
}

// Validate checks the repository format.
func (c *GitHub) Validate() error {
	if owner, name, ok := strings.Cut(c.Repository, "/"); !ok || owner == "" || name == "" {
		return goerr.Wrap(types.ErrConfiguration, "github repository must be 'owner/name'",
			goerr.V("repository", c.Repository))
	}
	return nil
}

// Owner returns the repository owner.
func (c *GitHub) Owner() string {
	owner, _, _ := strings.Cut(c.Repository, "/")
	return owner
}

// Name returns the repository name without the owner.
func (c *GitHub) Name() string {
	_, name, _ := strings.Cut(c.Repository, "/")
	return name
}
