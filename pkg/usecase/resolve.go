package usecase

import (
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/drover/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ResolveVersion decides the version to release. It is a pure function of
// the branch context, the explicit version input, and the tag snapshot.
//
// Precedence: an explicit version always wins and the auto-tag path is
// skipped, even when both inputs are set. The explicit string must be
// strict SemVer and must not match any existing tag. The auto-tag path
// bumps the patch component of the highest tag in the applicable major
// line; a hotfix-major line with no tags yet starts at "<major>.0.0".
func ResolveVersion(branch model.BranchContext, explicit string, autoTag bool, history model.TagHistory) (model.Version, error) {
	if explicit != "" {
		version, err := model.ParseVersion(explicit)
		if err != nil {
			return model.Version{}, err
		}
		if history.Contains(version) {
			return model.Version{}, goerr.Wrap(types.ErrVersionAlreadyReleased,
				"tag already exists for the requested version",
				goerr.V("version", explicit))
		}
		return version, nil
	}

	if !autoTag {
		return model.Version{}, goerr.Wrap(types.ErrConfiguration,
			"either an explicit artifact version or the autotag input is required")
	}

	if branch.Role == model.RoleHotfixMajor {
		latest, ok := history.LatestInMajor(branch.Major)
		if !ok {
			return model.InitialVersion(branch.Major), nil
		}
		return latest.NextPatch(), nil
	}

	// Mainline and other branches follow the latest major line.
	latest, ok := history.Latest()
	if !ok {
		return model.Version{}, goerr.Wrap(types.ErrConfiguration,
			"at least one version tag is required in the repository; tag a commit manually before running the workflow",
			goerr.V("branch", branch.Name))
	}
	return latest.NextPatch(), nil
}
