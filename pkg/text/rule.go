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

package text

import (
	"context"
	"io"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
)

// ReplacementRule defines a single text replacement operation
type ReplacementRule struct {
	// Name identifies the rule in logs and reports
	Name string

	// FromText is the literal text to replace, used when Pattern is nil
	FromText string

	// Pattern is a regular expression to replace; takes precedence over FromText
	Pattern *regexp.Regexp

	// ToText is the replacement text; for patterns it may reference groups ($1, ${name})
	ToText string

	// Limit caps the number of replacements (0 means all occurrences)
	Limit int

	// FileFilterGlob restricts the rule to files whose name matches (empty matches everything)
	FileFilterGlob string
}

// AppliesTo reports whether the rule should run for the given file name.
func (r ReplacementRule) AppliesTo(name string) bool {
	if r.FileFilterGlob == "" {
		return true
	}
	matched, err := doublestar.Match(r.FileFilterGlob, name)
	return err == nil && matched
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of replacements made
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies a set of replacement rules to the content
	ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []ReplacementRule) error
}
