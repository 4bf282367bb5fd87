package model

import "strings"

// TenantRepoSuffix is appended to a tenant name to form its bootstrap
// repository name, e.g. "acme" -> "acme.bootstrap.infra".
const TenantRepoSuffix = ".bootstrap.infra"

// TenantTarget is one (tenant repository, environment) pair to notify
// about a new artifact version.
type TenantTarget struct {
	Tenant      string // Tenant name, without the repository suffix
	Environment string // Environment branch to dispatch against
}

// RepoName returns the tenant bootstrap repository name, without the
// organization prefix.
func (t TenantTarget) RepoName() string {
	return t.Tenant + TenantRepoSuffix
}

// ParseTenantTargets parses the newline-delimited "tenant=environments"
// input. Environments may be a comma-separated list; each entry becomes
// its own target. Duplicates collapse and order follows the input. Lines
// without "=" or with an empty side are returned separately so the caller
// can log them; they never fail the parse.
func ParseTenantTargets(input string) (targets []TenantTarget, malformed []string) {
	seen := map[TenantTarget]struct{}{}

	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		tenant, envs, ok := strings.Cut(line, "=")
		tenant = strings.TrimSpace(tenant)
		if !ok || tenant == "" {
			malformed = append(malformed, line)
			continue
		}

		added := false
		for _, env := range strings.Split(envs, ",") {
			env = strings.TrimSpace(env)
			if env == "" {
				continue
			}
			target := TenantTarget{Tenant: tenant, Environment: env}
			if _, dup := seen[target]; dup {
				added = true
				continue
			}
			seen[target] = struct{}{}
			targets = append(targets, target)
			added = true
		}
		if !added {
			malformed = append(malformed, line)
		}
	}

	return targets, malformed
}

// DispatchStatus is the per-target result of a workflow dispatch
type DispatchStatus string

const (
	DispatchDispatched DispatchStatus = "dispatched"
	DispatchSkipped    DispatchStatus = "skipped" // target repo or workflow not found
	DispatchFailed     DispatchStatus = "failed"  // transient error, never retried in-run
)

// DispatchOutcome records what happened to one target.
type DispatchOutcome struct {
	Target TenantTarget
	Status DispatchStatus
	Err    error // set for skipped and failed outcomes
}

// DispatchReport aggregates outcomes in input order.
type DispatchReport []DispatchOutcome

// Counts returns the number of dispatched, skipped and failed targets.
func (r DispatchReport) Counts() (dispatched, skipped, failed int) {
	for _, o := range r {
		switch o.Status {
		case DispatchDispatched:
			dispatched++
		case DispatchSkipped:
			skipped++
		case DispatchFailed:
			failed++
		}
	}
	return
}
