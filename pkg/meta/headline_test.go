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

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trims", in: "  Plain headline \n", want: "Plain headline"},
		{name: "entities", in: "Fish &amp; Chips &middot; Again", want: "Fish & Chips · Again"},
		{name: "decodes_once", in: "A &amp;amp; B", want: "A &amp; B"},
		{name: "numeric_entities", in: "Caf&#233; &#x26; Bar", want: "Café & Bar"},
		{name: "encoded_tags", in: "&lt;em&gt;Bold&lt;/em&gt; move", want: "Bold move"},
		{name: "encoded_tags_keep_inner_entities", in: "&lt;b&gt;Fish &amp;amp; Chips&lt;/b&gt;", want: "Fish &amp; Chips"},
		{name: "literal_tags", in: "<span class=\"x\">Menus</span> lie", want: "Menus lie"},
		{name: "only_tags", in: "&lt;br&gt;", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestAccept(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{name: "no_brand", candidate: "Rising Rents", want: true},
		{name: "generic_brand_title", candidate: "The Contrarian", want: false},
		{name: "brand_at_limit", candidate: "The Contrarian Daily", want: false},
		{name: "brand_over_limit", candidate: "The Contrarian on rising rents", want: true},
		{name: "empty", candidate: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, accept(tt.candidate, DefaultBrand, DefaultBrandMaxLen))
		})
	}

	t.Run("no_brand_configured", func(t *testing.T) {
		assert.True(t, accept("The Contrarian", "", DefaultBrandMaxLen))
	})
}

func TestStrategy_Candidate(t *testing.T) {
	italic, title := DefaultStrategies[0], DefaultStrategies[1]

	got, ok := italic.Candidate(`<div style="font-weight:900;font-style:italic;letter-spacing:-0.5px;">Why Menus Lie to You</div>`)
	assert.True(t, ok)
	assert.Equal(t, "Why Menus Lie to You", got)

	_, ok = italic.Candidate(`<div style="font-style:italic;">Too short</div>`)
	assert.False(t, ok, "fewer than ten characters")

	got, ok = title.Candidate("<TITLE>Rents Are Rising</TITLE>")
	assert.True(t, ok)
	assert.Equal(t, "Rents Are Rising", got)

	_, ok = title.Candidate("<title>Hey</title>")
	assert.False(t, ok, "fewer than five characters")
}
