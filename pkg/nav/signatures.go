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
	"regexp"

	"github.com/walteh/pagerc/pkg/text"
)

// Marker is a needle that identifies an injected fragment of some version.
type Marker struct {
	Name   string
	Needle string
}

// Markers lists every fragment marker ever shipped, newest first.
var Markers = []Marker{
	{Name: "nav-version", Needle: `data-fgm-nav=`},
	{Name: "nav-id", Needle: `id="mainNav"`},
	{Name: "style-comment", Needle: `/* FGM site nav`},
	{Name: "fgm-nav", Needle: `class="fgm-nav"`},
	{Name: "fgm-nav-brand", Needle: `fgm-nav-brand`},
}

// historical fragment shapes. Order matters only for reporting.
var signatures = []text.ReplacementRule{
	{Name: "font-gstatic-link", Pattern: regexp.MustCompile(`<link[^>]*fonts\.gstatic[^>]*>\s*`)},
	{Name: "font-googleapis-link", Pattern: regexp.MustCompile(`<link[^>]*fonts\.googleapis[^>]*>\s*`)},
	{Name: "font-playfair-link", Pattern: regexp.MustCompile(`<link[^>]*Playfair[^>]*>\s*`)},
	{Name: "nav-style", Pattern: regexp.MustCompile(`(?s)<style>\s*/\* FGM site nav.*?</style>\s*`)},
	{Name: "nav", Pattern: regexp.MustCompile(`(?s)<nav class="nav"[^>]*>.*?</nav>\s*`)},
	{Name: "fgm-nav", Pattern: regexp.MustCompile(`(?s)<nav class="fgm-nav"[^>]*>.*?</nav>\s*`)},
	{Name: "mobile-menu", Pattern: regexp.MustCompile(`(?s)<div class="mobile-menu"[^>]*>.*?</div>\s*`)},
	{Name: "fgm-mobile-menu", Pattern: regexp.MustCompile(`(?s)<div class="fgm-mobile-menu"[^>]*>.*?</div>\s*`)},
	{Name: "scroll-script", Pattern: regexp.MustCompile(`(?s)<script>\s*let lastScroll.*?</script>\s*`)},
}

const (
	canonicalBodyStyle = `margin:0;padding:0;background:#0f1f38;`

	legacyHeadlineStyle  = `font-size:clamp(22px,3.5vw,32px);font-weight:900;color:#fff;line-height:1.15;font-style:italic;letter-spacing:-0.5px;`
	currentHeadlineStyle = `font-size:clamp(32px,4.5vw,56px);font-weight:900;color:#fff;line-height:1.1;font-style:italic;letter-spacing:-0.5px;`
)

// legacy markup fixes applied to every page before injection.
var normalizations = []text.ReplacementRule{
	{
		Name:    "body-inline-style",
		Pattern: regexp.MustCompile(`(?i)(<body\b[^>]*?\s)style="[^"]*"`),
		ToText:  `${1}style="` + canonicalBodyStyle + `"`,
		Limit:   1,
	},
	{
		Name:     "headline-font-size",
		FromText: legacyHeadlineStyle,
		ToText:   currentHeadlineStyle,
	},
}

// exactRules strips a fragment exactly as Rewriter injects it, so that a
// second pass restores the pre-injection bytes.
func exactRules(f Fragment) []text.ReplacementRule {
	return []text.ReplacementRule{
		{Name: "current-style", FromText: f.Style + "\n"},
		{Name: "current-markup", FromText: "\n" + f.Markup + "\n"},
		{Name: "current-markup-prepended", FromText: f.Markup + "\n"},
	}
}
