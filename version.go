// Package jstext holds release metadata for the jstext module. The string API
// itself lives in package str.
package jstext

import (
	_ "embed"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the library version string in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// Info describes the build for display.
type Info struct {
	Version string
	Unicode string
}

// About returns the module version together with the Unicode tables in use.
func About() Info {
	return Info{Version: Version(), Unicode: UnicodeVersion()}
}

func (i Info) String() string {
	return "jstext " + i.Version + " (unicode " + i.Unicode + ")"
}

// UnicodeVersion reports the Unicode version of the normalization and
// casing tables compiled into the module.
func UnicodeVersion() string {
	return norm.Version
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// VersionIsSemver reports whether the embedded Version is valid SemVer.
func VersionIsSemver() bool {
	return IsSemver(Version())
}
