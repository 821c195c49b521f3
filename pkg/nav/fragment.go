// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nav

import (
	_ "embed"
	"strings"
)

// Version tags the fragment currently shipped with the binary.
const Version = "v2.0"

const versionPlaceholder = "{{VERSION}}"

//go:embed fragment/style.html
var styleSource string

//go:embed fragment/markup.html
var markupSource string

// Fragment is the shared site header injected into every article page.
// Style goes into <head>, Markup right after <body>.
type Fragment struct {
	Version string
	Style   string
	Markup  string
}

var current = NewFragment(Version)

// Current returns the fragment for this build.
func Current() Fragment {
	return current
}

// NewFragment renders the embedded fragment sources tagged with version.
func NewFragment(version string) Fragment {
	r := strings.NewReplacer(versionPlaceholder, version)
	return Fragment{
		Version: version,
		Style:   strings.TrimRight(r.Replace(styleSource), "\r\n"),
		Markup:  strings.TrimRight(r.Replace(markupSource), "\r\n"),
	}
}
