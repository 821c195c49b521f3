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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilename(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		wantMatched bool
		wantValid   bool
		wantSlug    string
		wantDisplay string
		wantSortKey string
	}{
		{
			name:        "dotted_date",
			filename:    "05.03.26-big-news-story.html",
			wantMatched: true,
			wantValid:   true,
			wantSlug:    "big-news-story",
			wantDisplay: "5 Mar 2026",
			wantSortKey: "20260305",
		},
		{
			name:        "underscored_date",
			filename:    "28_02_26-menus.html",
			wantMatched: true,
			wantValid:   true,
			wantSlug:    "menus",
			wantDisplay: "28 Feb 2026",
			wantSortKey: "20260228",
		},
		{
			name:        "mixed_separators",
			filename:    "01_12.25-year-end.html",
			wantMatched: true,
			wantValid:   true,
			wantSlug:    "year-end",
			wantDisplay: "1 Dec 2025",
			wantSortKey: "20251201",
		},
		{
			name:        "uppercase_extension",
			filename:    "10.10.26-LOUD.HTML",
			wantMatched: true,
			wantValid:   true,
			wantSlug:    "LOUD",
			wantDisplay: "10 Oct 2026",
			wantSortKey: "20261010",
		},
		{
			name:        "impossible_date",
			filename:    "31.02.26-no-such-day.html",
			wantMatched: true,
			wantValid:   false,
			wantSlug:    "no-such-day",
			wantDisplay: "31.02.26",
			wantSortKey: "260231",
		},
		{
			name:        "month_out_of_range",
			filename:    "01.13.26-x.html",
			wantMatched: true,
			wantValid:   false,
			wantSlug:    "x",
			wantDisplay: "01.13.26",
			wantSortKey: "261301",
		},
		{
			name:        "no_date",
			filename:    "notes.html",
			wantDisplay: "",
			wantSortKey: NoDateSortKey,
		},
		{
			name:        "single_digit_parts",
			filename:    "5.3.26-story.html",
			wantSortKey: NoDateSortKey,
		},
		{
			name:        "missing_slug",
			filename:    "05.03.26-.html",
			wantSortKey: NoDateSortKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := ParseFilename(tt.filename)

			assert.Equal(t, tt.filename, n.Filename)
			assert.Equal(t, tt.wantMatched, n.Matched, "matched")
			assert.Equal(t, tt.wantValid, n.Valid, "valid")
			assert.Equal(t, tt.wantSlug, n.Slug, "slug")
			assert.Equal(t, tt.wantDisplay, n.DisplayDate(), "display date")
			assert.Equal(t, tt.wantSortKey, n.SortKey(), "sort key")
		})
	}
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "hyphens", in: "big-news-story", want: "Big News Story"},
		{name: "underscores", in: "big_news_story", want: "Big News Story"},
		{name: "upper", in: "LOUD", want: "Loud"},
		{name: "apostrophe", in: "don't-panic", want: "Don't Panic"},
		{name: "only_separators", in: "--_", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Humanize(tt.in))
		})
	}
}

func TestDefaultHeadline(t *testing.T) {
	tests := []struct {
		name string
		n    Name
		want string
	}{
		{name: "slug", n: ParseFilename("05.03.26-big-news-story.html"), want: "Big News Story"},
		{name: "undated", n: ParseFilename("notes.html"), want: "Notes"},
		{name: "separators_only", n: ParseFilename("--.html"), want: "--.html"},
		{name: "nothing", n: Name{}, want: "Untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultHeadline(tt.n))
		})
	}
}
