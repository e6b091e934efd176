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
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidVersion is wrapped by every error returned from Parse and
// the other validating constructors, so callers can match them all
// with errors.Is.
var ErrInvalidVersion = errors.New("invalid semantic version")

// ParseError describes why a string failed to parse as a semantic
// version. It matches ErrInvalidVersion under errors.Is.
type ParseError struct {
	// Input is the full string that was being parsed.
	Input string
	// Offset is the byte offset of Fragment within Input.
	Offset int
	// Fragment is the offending part of Input.
	Fragment string
	// Reason says which grammar rule the fragment violates.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v %q: %s (%q at offset %d)",
		ErrInvalidVersion, e.Input, e.Reason, e.Fragment, e.Offset)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidVersion
}

// MustParse is like Parse but panics if the string is not a valid
// semantic version.
func MustParse(str string) Version {
	v, err := Parse(str)

	if err != nil {
		panic(err)
	}

	return v
}

// Parse parses str as a Semantic Versioning 2.0.0 version.
//
// The string must be fully compliant: a version core of exactly three
// dot-separated numeric identifiers without leading zeros, optionally
// followed by "-" and dot-separated pre-release identifiers, optionally
// followed by "+" and dot-separated build identifiers. No surrounding
// whitespace, leading "v", or other deviation is accepted, and nothing
// is normalized away.
//
// On failure the returned error is a *ParseError and matches
// ErrInvalidVersion under errors.Is.
func Parse(str string) (Version, error) {
	core := str
	prerelease, build := "", ""
	preAt, buildAt := -1, -1

	// Build metadata is introduced by the first "+", and within what
	// remains the pre-release is introduced by the first "-". Later
	// hyphens are ordinary identifier characters.
	if i := strings.IndexByte(core, '+'); i >= 0 {
		core, build, buildAt = core[:i], core[i+1:], i+1
	}
	if i := strings.IndexByte(core, '-'); i >= 0 {
		core, prerelease, preAt = core[:i], core[i+1:], i+1
	}

	nums := strings.Split(core, ".")
	if len(nums) != 3 {
		return Version{}, &ParseError{
			Input:    str,
			Offset:   0,
			Fragment: core,
			Reason:   "version core must be exactly three dot-separated numeric identifiers",
		}
	}

	var v Version
	dst := []**big.Int{&v.major, &v.minor, &v.patch}
	offset := 0

	for i, num := range nums {
		n, err := parseNumericIdentifier(str, num, offset)
		if err != nil {
			return Version{}, err
		}

		*dst[i] = n
		offset += len(num) + 1
	}

	if preAt >= 0 {
		ids, err := parsePreRelease(str, prerelease, preAt)
		if err != nil {
			return Version{}, err
		}

		v.prerelease = ids
	}

	if buildAt >= 0 {
		ids, err := parseBuild(str, build, buildAt)
		if err != nil {
			return Version{}, err
		}

		v.build = ids
	}

	return v, nil
}

// parseNumericIdentifier validates and converts one numeric identifier
// of the version core: digits only, no leading zero unless the
// identifier is exactly "0".
func parseNumericIdentifier(input, num string, offset int) (*big.Int, error) {
	fail := func(reason string) (*big.Int, error) {
		return nil, &ParseError{Input: input, Offset: offset, Fragment: num, Reason: reason}
	}

	if num == "" {
		return fail("numeric identifier must not be empty")
	}
	for _, c := range num {
		if !isASCIIDigit(c) {
			return fail("numeric identifier must contain only digits")
		}
	}
	if len(num) > 1 && num[0] == '0' {
		return fail("numeric identifier must not have a leading zero")
	}

	n, ok := new(big.Int).SetString(num, 10)
	if !ok {
		return fail("numeric identifier is not a number")
	}

	return n, nil
}

// parsePreRelease validates the dot-separated pre-release identifiers
// in section, which starts at the given byte offset within input.
func parsePreRelease(input, section string, offset int) ([]identifier, error) {
	if section == "" {
		return nil, &ParseError{
			Input:    input,
			Offset:   offset,
			Fragment: section,
			Reason:   "pre-release must not be empty",
		}
	}

	parts := strings.Split(section, ".")
	ids := make([]identifier, 0, len(parts))

	for _, part := range parts {
		id, err := parsePreReleaseIdentifier(input, part, offset)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
		offset += len(part) + 1
	}

	return ids, nil
}

// parsePreReleaseIdentifier validates a single pre-release identifier.
// A purely numeric identifier must not have a leading zero and is
// stored with its parsed value; any other identifier may only contain
// ASCII letters, digits, and hyphens.
func parsePreReleaseIdentifier(input, part string, offset int) (identifier, error) {
	fail := func(reason string) (identifier, error) {
		return identifier{}, &ParseError{Input: input, Offset: offset, Fragment: part, Reason: reason}
	}

	if part == "" {
		return fail("pre-release identifier must not be empty")
	}

	numeric := true
	for _, c := range part {
		if isASCIIDigit(c) {
			continue
		}
		if !isASCIILetter(c) && c != '-' {
			return fail("pre-release identifier must contain only letters, digits, and hyphens")
		}

		numeric = false
	}

	if !numeric {
		return identifier{str: part}, nil
	}

	if len(part) > 1 && part[0] == '0' {
		return fail("numeric pre-release identifier must not have a leading zero")
	}

	n, ok := new(big.Int).SetString(part, 10)
	if !ok {
		return fail("numeric pre-release identifier is not a number")
	}

	return identifier{str: part, num: n}, nil
}

// parseBuild validates the dot-separated build metadata identifiers in
// section, which starts at the given byte offset within input. Build
// identifiers are any non-empty run of letters, digits, and hyphens;
// leading zeros are permitted.
func parseBuild(input, section string, offset int) ([]string, error) {
	fail := func(part, reason string) ([]string, error) {
		return nil, &ParseError{Input: input, Offset: offset, Fragment: part, Reason: reason}
	}

	if section == "" {
		return fail(section, "build metadata must not be empty")
	}

	parts := strings.Split(section, ".")

	for _, part := range parts {
		if part == "" {
			return fail(part, "build identifier must not be empty")
		}
		for _, c := range part {
			if !isASCIIDigit(c) && !isASCIILetter(c) && c != '-' {
				return fail(part, "build identifier must contain only letters, digits, and hyphens")
			}
		}

		offset += len(part) + 1
	}

	return parts, nil
}

// isASCIIDigit returns true if the given rune is an ASCII digit.
//
// Unicode digits are not considered ASCII digits by this function.
func isASCIIDigit(c rune) bool {
	return c >= 48 && c <= 57
}

// isASCIILetter returns true if the given rune is an ASCII letter.
//
// Unicode letters are not considered ASCII letters by this function.
func isASCIILetter(c rune) bool {
	return (c >= 65 && c <= 90) || (c >= 97 && c <= 122)
}
