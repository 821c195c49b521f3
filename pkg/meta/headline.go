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
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// 🔎 Strategy pulls a headline candidate out of a rendered page.
type Strategy struct {
	Name    string
	Pattern *regexp.Regexp // first submatch is the candidate
}

// Candidate returns the raw first match, if any.
func (s Strategy) Candidate(page string) (string, bool) {
	m := s.Pattern.FindStringSubmatch(page)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// DefaultStrategies are tried in order; the first accepted candidate wins.
var DefaultStrategies = []Strategy{
	// the piece header renders the headline in an italic div
	{Name: "italic", Pattern: regexp.MustCompile(`font-style:italic[^>]*>([^<]{10,120})</div>`)},
	{Name: "title", Pattern: regexp.MustCompile(`(?i)<title>([^<]{5,120})</title>`)},
}

// Clean trims s, decodes HTML entities once and drops any markup that the
// decoding exposed, leaving plain display text.
func Clean(s string) string {
	s = html.UnescapeString(strings.TrimSpace(s))
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF once the input is consumed
			return strings.TrimSpace(b.String())
		case html.TextToken:
			// Raw keeps entities as they are, the string is already decoded
			b.Write(z.Raw())
		}
	}
}

// accept reports whether a cleaned candidate may replace the default
// headline. Short candidates naming the publication are its generic title.
func accept(candidate, brand string, maxLen int) bool {
	if candidate == "" {
		return false
	}
	if brand == "" || !strings.Contains(candidate, brand) {
		return true
	}
	return utf8.RuneCountInString(candidate) > maxLen
}
