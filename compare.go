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

import "strings"

// Compare returns -1, 0, or +1 depending on whether a has lower, equal,
// or higher precedence than b under the Semantic Versioning 2.0.0
// precedence rules. Build metadata is ignored, so versions that differ
// only in build metadata compare as equal.
func Compare(a, b Version) int {
	if diff := number(a.major).Cmp(number(b.major)); diff != 0 {
		return diff
	}
	if diff := number(a.minor).Cmp(number(b.minor)); diff != 0 {
		return diff
	}
	if diff := number(a.patch).Cmp(number(b.patch)); diff != 0 {
		return diff
	}

	return comparePreRelease(a.prerelease, b.prerelease)
}

func comparePreRelease(a, b []identifier) int {
	// A version without a pre-release has higher precedence than the
	// same version with one.
	// https://semver.org/spec/v2.0.0.html#spec-item-11
	if len(a) == 0 && len(b) != 0 {
		return +1
	}
	if len(a) != 0 && len(b) == 0 {
		return -1
	}

	for i := 0; i < min(len(a), len(b)); i++ {
		var diff int

		switch {
		// 1. Identifiers consisting of only digits are compared numerically.
		case a[i].num != nil && b[i].num != nil:
			diff = a[i].num.Cmp(b[i].num)
		// 2. Identifiers with letters or hyphens are compared lexically in ASCII sort order.
		case a[i].num == nil && b[i].num == nil:
			diff = strings.Compare(a[i].str, b[i].str)
		// 3. Numeric identifiers always have lower precedence than non-numeric identifiers.
		case a[i].num != nil:
			diff = -1
		default:
			diff = +1
		}

		if diff != 0 {
			return diff
		}
	}

	// 4. A larger set of pre-release fields has a higher precedence than
	//    a smaller set, if all the preceding identifiers are equal.
	if len(a) > len(b) {
		return +1
	}
	if len(a) < len(b) {
		return -1
	}

	return 0
}

// Compare returns -1, 0, or +1 depending on whether v has lower, equal,
// or higher precedence than w.
func (v Version) Compare(w Version) int {
	return Compare(v, w)
}

// CompareStr parses str and returns the precedence of v relative to it:
// -1 if v < str, 0 if v == str, or +1 if v > str. An error is returned
// if str is not a valid semantic version.
func (v Version) CompareStr(str string) (int, error) {
	w, err := Parse(str)
	if err != nil {
		return 0, err
	}

	return Compare(v, w), nil
}

// Equal reports whether v and w have equal precedence. Versions that
// differ only in build metadata are equal.
func (v Version) Equal(w Version) bool { return Compare(v, w) == 0 }

// Less reports whether v has lower precedence than w.
func (v Version) Less(w Version) bool { return Compare(v, w) < 0 }

// LessOrEqual reports whether v has lower or equal precedence to w.
func (v Version) LessOrEqual(w Version) bool { return Compare(v, w) <= 0 }

// Greater reports whether v has higher precedence than w.
func (v Version) Greater(w Version) bool { return Compare(v, w) > 0 }

// GreaterOrEqual reports whether v has higher or equal precedence to w.
func (v Version) GreaterOrEqual(w Version) bool { return Compare(v, w) >= 0 }
