// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package semver

import (
	"math/big"
	"strings"
)

// Version is an immutable semantic version.
//
// The zero Version is valid and represents "0.0.0". Versions are
// constructed by Parse, New, or NewBig and are never mutated afterwards,
// so they are safe to copy and to use concurrently without
// synchronization.
type Version struct {
	major *big.Int
	minor *big.Int
	patch *big.Int

	prerelease []identifier
	build      []string
}

// identifier is a single dot-separated pre-release identifier. num is
// non-nil exactly when the identifier consists only of digits, in which
// case it holds the parsed value.
type identifier struct {
	str string
	num *big.Int
}

var zero = big.NewInt(0)

// number guards against the nil components of a zero Version, which
// represent the literal number 0.
func number(n *big.Int) *big.Int {
	if n == nil {
		return zero
	}

	return n
}

// New returns the version major.minor.patch with no pre-release or
// build metadata.
func New(major, minor, patch uint64) Version {
	return Version{
		major: new(big.Int).SetUint64(major),
		minor: new(big.Int).SetUint64(minor),
		patch: new(big.Int).SetUint64(patch),
	}
}

// NewBig returns the version major.minor.patch for arbitrary-precision
// version numbers. A nil component is treated as 0. Negative components
// are rejected with a *ParseError.
func NewBig(major, minor, patch *big.Int) (Version, error) {
	for _, n := range []*big.Int{major, minor, patch} {
		if n != nil && n.Sign() < 0 {
			str := n.String()

			return Version{}, &ParseError{
				Input:    str,
				Fragment: str,
				Reason:   "version numbers must not be negative",
			}
		}
	}

	return Version{
		major: new(big.Int).Set(number(major)),
		minor: new(big.Int).Set(number(minor)),
		patch: new(big.Int).Set(number(patch)),
	}, nil
}

// Major returns a copy of the major version number.
func (v Version) Major() *big.Int { return new(big.Int).Set(number(v.major)) }

// Minor returns a copy of the minor version number.
func (v Version) Minor() *big.Int { return new(big.Int).Set(number(v.minor)) }

// Patch returns a copy of the patch version number.
func (v Version) Patch() *big.Int { return new(big.Int).Set(number(v.patch)) }

// PreRelease returns the dot-joined pre-release identifiers, or ""
// when the version has no pre-release.
func (v Version) PreRelease() string {
	if len(v.prerelease) == 0 {
		return ""
	}

	strs := make([]string, len(v.prerelease))
	for i, id := range v.prerelease {
		strs[i] = id.str
	}

	return strings.Join(strs, ".")
}

// PreReleaseIdentifiers returns a copy of the individual pre-release
// identifiers, or nil when the version has no pre-release.
func (v Version) PreReleaseIdentifiers() []string {
	if len(v.prerelease) == 0 {
		return nil
	}

	strs := make([]string, len(v.prerelease))
	for i, id := range v.prerelease {
		strs[i] = id.str
	}

	return strs
}

// Build returns the dot-joined build metadata identifiers, or "" when
// the version has no build metadata.
func (v Version) Build() string {
	return strings.Join(v.build, ".")
}

// BuildIdentifiers returns a copy of the individual build metadata
// identifiers, or nil when the version has no build metadata.
func (v Version) BuildIdentifiers() []string {
	if len(v.build) == 0 {
		return nil
	}

	strs := make([]string, len(v.build))
	copy(strs, v.build)

	return strs
}

// IsPreRelease reports whether the version has a pre-release.
func (v Version) IsPreRelease() bool { return len(v.prerelease) > 0 }

// Core returns the version with its pre-release and build metadata
// stripped.
func (v Version) Core() Version {
	return Version{major: v.major, minor: v.minor, patch: v.patch}
}

// String returns the canonical textual form of the version,
// major.minor.patch followed by "-" and the pre-release identifiers if
// present, followed by "+" and the build identifiers if present.
// Parsing the result yields a version equal to v.
func (v Version) String() string {
	var sb strings.Builder

	sb.WriteString(number(v.major).String())
	sb.WriteByte('.')
	sb.WriteString(number(v.minor).String())
	sb.WriteByte('.')
	sb.WriteString(number(v.patch).String())

	if len(v.prerelease) > 0 {
		sb.WriteByte('-')
		sb.WriteString(v.PreRelease())
	}
	if len(v.build) > 0 {
		sb.WriteByte('+')
		sb.WriteString(v.Build())
	}

	return sb.String()
}

// WithPreRelease returns a copy of v with the given dot-joined
// pre-release identifiers, validated against the same grammar Parse
// enforces. An empty string clears the pre-release.
func (v Version) WithPreRelease(prerelease string) (Version, error) {
	v.prerelease = nil
	if prerelease == "" {
		return v, nil
	}

	ids, err := parsePreRelease(prerelease, prerelease, 0)
	if err != nil {
		return Version{}, err
	}

	v.prerelease = ids

	return v, nil
}

// WithBuild returns a copy of v with the given dot-joined build
// metadata identifiers, validated against the same grammar Parse
// enforces. An empty string clears the build metadata.
func (v Version) WithBuild(build string) (Version, error) {
	v.build = nil
	if build == "" {
		return v, nil
	}

	ids, err := parseBuild(build, build, 0)
	if err != nil {
		return Version{}, err
	}

	v.build = ids

	return v, nil
}
