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
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

var _ TextReplacer = (*SimpleTextReplacer)(nil)

// SimpleTextReplacer implements TextReplacer with ordered literal and regex rules
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Errorf("replacing text: %w", err)
	}

	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	modified, count := Apply(string(originalContent), rules)

	return &ReplacementResult{
		WasModified:      count > 0,
		ReplacementCount: count,
		OriginalContent:  originalContent,
		ModifiedContent:  []byte(modified),
	}, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.Pattern == nil && rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
		if rule.Pattern == nil && strings.Contains(rule.ToText, rule.FromText) {
			return errors.Errorf("rule %d: to_text must not contain from_text", i)
		}
		if rule.Limit < 0 {
			return errors.Errorf("rule %d: limit must not be negative", i)
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d: invalid file_filter_glob %q", i, rule.FileFilterGlob)
		}
	}
	return nil
}

// Apply runs every rule over content in order and returns the result along
// with the total number of replacements. Rules that match nothing are skipped.
func Apply(content string, rules []ReplacementRule) (string, int) {
	total := 0
	for _, rule := range rules {
		var n int
		content, n = applyRule(content, rule)
		total += n
	}
	return content, total
}

func applyRule(content string, rule ReplacementRule) (string, int) {
	if rule.Pattern != nil {
		return applyPattern(content, rule)
	}
	if rule.FromText == "" {
		return content, 0
	}

	count := strings.Count(content, rule.FromText)
	if count == 0 {
		return content, 0
	}
	limit := -1
	if rule.Limit > 0 {
		limit = rule.Limit
		count = min(count, rule.Limit)
	}
	return strings.Replace(content, rule.FromText, rule.ToText, limit), count
}

func applyPattern(content string, rule ReplacementRule) (string, int) {
	n := -1
	if rule.Limit > 0 {
		n = rule.Limit
	}
	matches := rule.Pattern.FindAllStringSubmatchIndex(content, n)
	if len(matches) == 0 {
		return content, 0
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(content[last:m[0]])
		b.Write(rule.Pattern.ExpandString(nil, rule.ToText, content, m))
		last = m[1]
	}
	b.WriteString(content[last:])
	return b.String(), len(matches)
}
