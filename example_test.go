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

package semver_test

import (
	"fmt"
	"log"

	"github.com/google/semver"
)

func Example() {
	v, err := semver.Parse("1.5.3-rc.4+modified")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("version:", v)
	fmt.Println("core:", v.Core())
	fmt.Println("pre:", v.PreRelease())
	fmt.Println("build:", v.Build())

	release := semver.New(1, 5, 3)
	fmt.Println("less:", v.Less(release))
	fmt.Println("next:", release.BumpMinor())

	// Output:
	// version: 1.5.3-rc.4+modified
	// core: 1.5.3
	// pre: rc.4
	// build: modified
	// less: true
	// next: 1.6.0
}

func ExampleSort() {
	versions := []semver.Version{
		semver.MustParse("1.0.0-beta"),
		semver.MustParse("1.0.0-alpha"),
		semver.MustParse("1.0.0"),
		semver.MustParse("1.0.0-alpha.1"),
	}

	semver.Sort(versions)

	for _, v := range versions {
		fmt.Println(v)
	}

	// Output:
	// 1.0.0-alpha
	// 1.0.0-alpha.1
	// 1.0.0-beta
	// 1.0.0
}

func ExampleParse_invalid() {
	_, err := semver.Parse("1.01.0")
	fmt.Println(err)

	// Output:
	// invalid semantic version "1.01.0": numeric identifier must not have a leading zero ("01" at offset 2)
}
