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

import "gopkg.in/yaml.v3"

// MarshalText implements encoding.TextMarshaler, producing the
// canonical textual form of the version. encoding/json and TOML
// encoders pick this up, so a Version field marshals as a plain
// version string.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing text with
// the same strict grammar as Parse.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler, producing the canonical
// textual form of the version.
func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, parsing a scalar YAML
// node with the same strict grammar as Parse.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return err
	}

	parsed, err := Parse(str)
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}
