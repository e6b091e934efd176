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

import "math/big"

var one = big.NewInt(1)

// BumpMajor returns the next major version: the major number is
// incremented, the minor and patch numbers are reset to 0, and any
// pre-release and build metadata are dropped. Use WithPreRelease or
// WithBuild on the result to attach new ones.
func (v Version) BumpMajor() Version {
	return Version{
		major: new(big.Int).Add(number(v.major), one),
		minor: new(big.Int),
		patch: new(big.Int),
	}
}

// BumpMinor returns the next minor version: the minor number is
// incremented, the patch number is reset to 0, and any pre-release and
// build metadata are dropped.
func (v Version) BumpMinor() Version {
	return Version{
		major: new(big.Int).Set(number(v.major)),
		minor: new(big.Int).Add(number(v.minor), one),
		patch: new(big.Int),
	}
}

// BumpPatch returns the next patch version: the patch number is
// incremented and any pre-release and build metadata are dropped.
func (v Version) BumpPatch() Version {
	return Version{
		major: new(big.Int).Set(number(v.major)),
		minor: new(big.Int).Set(number(v.minor)),
		patch: new(big.Int).Add(number(v.patch), one),
	}
}
