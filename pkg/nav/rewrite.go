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
	"context"
	"regexp"
	"strings"

	"github.com/walteh/pagerc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

var (
	headCloseRe = regexp.MustCompile(`(?i)</head\s*>`)
	bodyOpenRe  = regexp.MustCompile(`(?i)<body\b[^>]*>`)
)

// Result reports what a rewrite did to a page.
type Result struct {
	Content    string
	Detected   []string // names of markers found before stripping
	Removed    int      // fragments stripped
	Normalized int      // legacy markup fixes applied
}

// Replaced reports whether the page carried a known fragment before the
// rewrite, as opposed to receiving its first one.
func (r Result) Replaced() bool {
	return len(r.Detected) > 0
}

// Rewriter strips every known nav fragment from a page and injects the
// current one. Rewrite(Rewrite(p)) == Rewrite(p) for any p.
type Rewriter struct {
	fragment  Fragment
	strip     []text.ReplacementRule
	normalize []text.ReplacementRule
	extra     []text.ReplacementRule
	replacer  text.TextReplacer
}

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithFragment overrides the injected fragment.
func WithFragment(f Fragment) Option {
	return func(r *Rewriter) {
		r.fragment = f
	}
}

// WithReplacements adds site-specific fixes applied after the built-in
// normalizations. Rules with a FileFilterGlob only run through ApplyFile.
func WithReplacements(rules ...text.ReplacementRule) Option {
	return func(r *Rewriter) {
		r.extra = append(r.extra, rules...)
	}
}

// WithReplacer overrides the replacer that runs the site replacements.
func WithReplacer(t text.TextReplacer) Option {
	return func(r *Rewriter) {
		r.replacer = t
	}
}

// NewRewriter creates a rewriter for the current fragment.
func NewRewriter(opts ...Option) *Rewriter {
	r := &Rewriter{
		fragment:  Current(),
		normalize: normalizations,
		replacer:  text.NewSimpleTextReplacer(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.strip = append(exactRules(r.fragment), signatures...)
	return r
}

// Fragment returns the fragment this rewriter injects.
func (r *Rewriter) Fragment() Fragment {
	return r.fragment
}

// Detect returns the names of known markers present in page.
func (r *Rewriter) Detect(page string) []string {
	var found []string
	for _, m := range Markers {
		if strings.Contains(page, m.Needle) {
			found = append(found, m.Name)
		}
	}
	return found
}

// Rewrite returns page with the nav stripped and reinjected.
func (r *Rewriter) Rewrite(page string) string {
	return r.Apply(page).Content
}

// Apply rewrites page without any file-scoped replacements.
func (r *Rewriter) Apply(page string) Result {
	// SimpleTextReplacer only fails on a cancelled context
	res, _ := r.ApplyFile(context.Background(), "", page)
	return res
}

// ApplyFile rewrites page, running file-scoped replacements that match name.
func (r *Rewriter) ApplyFile(ctx context.Context, name, page string) (Result, error) {
	res := Result{Detected: r.Detect(page)}

	// strip always runs, so a first run also drops a page's own fonts.googleapis links
	page, res.Removed = text.Apply(page, r.strip)

	page, res.Normalized = text.Apply(page, r.normalize)

	var scoped []text.ReplacementRule
	for _, rule := range r.extra {
		if rule.FileFilterGlob == "" || (name != "" && rule.AppliesTo(name)) {
			scoped = append(scoped, rule)
		}
	}
	if len(scoped) > 0 {
		out, err := r.replacer.ReplaceText(ctx, strings.NewReader(page), scoped)
		if err != nil {
			return Result{}, errors.Errorf("applying site replacements to %s: %w", name, err)
		}
		if out.WasModified {
			page = string(out.ModifiedContent)
			res.Normalized += out.ReplacementCount
		}
	}

	res.Content = r.inject(page)
	return res, nil
}

func (r *Rewriter) inject(page string) string {
	style := r.fragment.Style + "\n"
	if loc := headCloseRe.FindStringIndex(page); loc != nil {
		page = page[:loc[0]] + style + page[loc[0]:]
	} else {
		page = style + page
	}

	if loc := bodyOpenRe.FindStringIndex(page); loc != nil {
		page = page[:loc[1]] + "\n" + r.fragment.Markup + "\n" + page[loc[1]:]
	} else {
		page = r.fragment.Markup + "\n" + page
	}

	return page
}
