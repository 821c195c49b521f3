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

package meta

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const untitled = "Untitled"

var separators = strings.NewReplacer("-", " ", "_", " ")

// Humanize turns a slug like "big-news_story" into "Big News Story".
func Humanize(slug string) string {
	s := separators.Replace(slug)
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return cases.Title(language.Und).String(s)
}

// defaultHeadline derives a headline from the filename alone.
func defaultHeadline(n Name) string {
	base := n.Slug
	if !n.Matched {
		base = strings.TrimSuffix(n.Filename, ".html")
	}

	if h := Humanize(base); h != "" {
		return h
	}
	if n.Filename != "" {
		return n.Filename
	}
	return untitled
}
