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

// Package semver parses and compares version strings as defined by the
// Semantic Versioning 2.0.0 specification (https://semver.org).
//
// The package is strict: Parse accepts a string only if it is fully
// compliant with the specification, with no trimming, case folding, or
// other normalization applied. A successful parse produces an immutable
// Version value; anything else produces a *ParseError describing the
// offending fragment and its position.
//
// Comparison implements the precedence rules of the specification
// exactly:
//   - The major, minor, and patch numbers are compared numerically,
//     in that order.
//   - A version with a pre-release has lower precedence than the same
//     version without one.
//   - Pre-release identifiers are compared left to right: numeric
//     identifiers numerically, alphanumeric identifiers in ASCII sort
//     order, and numeric identifiers always sort before alphanumeric
//     ones. A shorter set of identifiers sorts before a longer set
//     that it is a prefix of.
//   - Build metadata is ignored entirely, so two versions that differ
//     only in build metadata compare as equal.
//
// Version numbers are held as arbitrary-precision integers, so there
// is no upper bound on the magnitude of the major, minor, or patch
// number beyond available memory.
package semver
