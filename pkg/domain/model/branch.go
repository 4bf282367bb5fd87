package model

import (
	"regexp"
	"strconv"

	"github.com/m-mizutani/drover/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// BranchRole classifies the branch a run was triggered on
type BranchRole string

const (
	// RoleMainline is the default release line (staging or production)
	RoleMainline BranchRole = "mainline"
	// RoleHotfixMajor is a maintenance branch pinned to one major line,
	// named "<name>-v<major>"
	RoleHotfixMajor BranchRole = "hotfix_major"
	// RoleOther is any branch that never triggers a publish on its own
	RoleOther BranchRole = "other"
)

// BranchContext is the classification of the current ref, derived once per
// run and immutable afterwards.
type BranchContext struct {
	Name  string     // Branch name (GITHUB_REF_NAME)
	Role  BranchRole // Closed role variant
	Major uint64     // Encoded major line, set only for RoleHotfixMajor
}

var majorBranchPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+-v(\d+)$`)

// ClassifyBranch derives the branch context from the ref name and the
// optional major-version branch override. A non-empty override that does
// not match "<name>-v<major>" is a configuration error.
func ClassifyBranch(refName, majorVersionBranch string) (BranchContext, error) {
	if majorVersionBranch != "" {
		m := majorBranchPattern.FindStringSubmatch(majorVersionBranch)
		if m == nil {
			return BranchContext{}, goerr.Wrap(types.ErrConfiguration,
				"invalid major version branch format, expected '<name>-v<major>'",
				goerr.V("major_version_branch", majorVersionBranch))
		}
		if refName == majorVersionBranch {
			major, err := strconv.ParseUint(m[1], 10, 64)
			if err != nil {
				return BranchContext{}, goerr.Wrap(types.ErrConfiguration,
					"major version branch number out of range",
					goerr.V("major_version_branch", majorVersionBranch))
			}
			return BranchContext{Name: refName, Role: RoleHotfixMajor, Major: major}, nil
		}
	}

	switch refName {
	case "staging", "production":
		return BranchContext{Name: refName, Role: RoleMainline}, nil
	default:
		return BranchContext{Name: refName, Role: RoleOther}, nil
	}
}

// Publishable reports whether this branch is allowed to create tags and
// releases on its own (an explicit version input overrides this).
func (c BranchContext) Publishable() bool {
	return c.Role == RoleMainline || c.Role == RoleHotfixMajor
}
