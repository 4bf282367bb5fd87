package model

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/drover/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Version is an immutable SemVer value that remembers the exact string it
// was parsed from, so a published tag never drifts from the caller's input.
type Version struct {
	sv  *semver.Version
	raw string
}

// ParseVersion parses s as strict SemVer. A leading "v" is accepted and
// preserved in the String form.
func ParseVersion(s string) (Version, error) {
	sv, err := semver.StrictNewVersion(strings.TrimPrefix(s, "v"))
	if err != nil {
		return Version{}, goerr.Wrap(types.ErrInvalidVersionFormat, "failed to parse version", goerr.V("input", s))
	}
	return Version{sv: sv, raw: s}, nil
}

func (v Version) String() string { return v.raw }

// Major returns the major component of the version.
func (v Version) Major() uint64 { return v.sv.Major() }

// Compare follows SemVer precedence: -1 if v < o, 0 if equal, +1 if v > o.
func (v Version) Compare(o Version) int { return v.sv.Compare(o.sv) }

// NextPatch returns the next version on the same major.minor line. A
// pre-release is finalized to its release version, so no patch number is
// ever skipped; otherwise the patch component is incremented by one. The
// "v" prefix style of the receiver is preserved.
func (v Version) NextPatch() Version {
	patch := v.sv.Patch()
	if v.sv.Prerelease() == "" {
		patch++
	}
	next := semver.New(v.sv.Major(), v.sv.Minor(), patch, "", "")
	raw := next.String()
	if strings.HasPrefix(v.raw, "v") {
		raw = "v" + raw
	}
	return Version{sv: next, raw: raw}
}

// InitialVersion returns the first version of a major line, v-prefixed as
// release tags conventionally are.
func InitialVersion(major uint64) Version {
	return Version{
		sv:  semver.New(major, 0, 0, "", ""),
		raw: fmt.Sprintf("v%d.0.0", major),
	}
}

// TagHistory is a read-only snapshot of the repository's version tags,
// taken once at run start. Tag names that do not parse as SemVer are
// dropped at construction.
type TagHistory struct {
	versions []Version
}

// NewTagHistory builds a snapshot from raw tag names.
func NewTagHistory(tags []string) TagHistory {
	var versions []Version
	for _, tag := range tags {
		v, err := ParseVersion(tag)
		if err != nil {
			continue
		}
		versions = append(versions, v)
	}
	return TagHistory{versions: versions}
}

// Contains reports whether an existing tag has the same SemVer precedence
// as v, regardless of prefix style.
func (h TagHistory) Contains(v Version) bool {
	for _, existing := range h.versions {
		if existing.Compare(v) == 0 {
			return true
		}
	}
	return false
}

// Latest returns the highest version across all major lines.
func (h TagHistory) Latest() (Version, bool) {
	return h.highest(func(Version) bool { return true })
}

// LatestInMajor returns the highest version within one major line.
func (h TagHistory) LatestInMajor(major uint64) (Version, bool) {
	return h.highest(func(v Version) bool { return v.Major() == major })
}

func (h TagHistory) highest(match func(Version) bool) (Version, bool) {
	var best Version
	found := false
	for _, v := range h.versions {
		if !match(v) {
			continue
		}
		if !found || v.Compare(best) > 0 {
			best = v
			found = true
		}
	}
	return best, found
}
