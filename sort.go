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

import "slices"

// Sort sorts versions in place, ascending by precedence. The sort is
// stable: versions with equal precedence, such as versions that differ
// only in build metadata, keep their original relative order.
func Sort(versions []Version) {
	slices.SortStableFunc(versions, Compare)
}

// IsSorted reports whether versions is in ascending precedence order.
func IsSorted(versions []Version) bool {
	return slices.IsSortedFunc(versions, Compare)
}

// Max returns the version with the highest precedence, or the zero
// Version if versions is empty. When several versions share the
// highest precedence the earliest one is returned.
func Max(versions []Version) Version {
	var best Version

	for i, v := range versions {
		if i == 0 || v.Greater(best) {
			best = v
		}
	}

	return best
}

// Min returns the version with the lowest precedence, or the zero
// Version if versions is empty. When several versions share the lowest
// precedence the earliest one is returned.
func Min(versions []Version) Version {
	var best Version

	for i, v := range versions {
		if i == 0 || v.Less(best) {
			best = v
		}
	}

	return best
}
