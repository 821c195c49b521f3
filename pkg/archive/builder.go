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

package archive

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"
	"slices"
	"strings"

	"github.com/walteh/pagerc/pkg/meta"
	"github.com/walteh/pagerc/pkg/nav"
	"gitlab.com/tozd/go/errors"
	nethtml "golang.org/x/net/html"
)

//go:embed templates/archive.html.tmpl
var pageSource string

var pageTemplate = template.Must(template.New("archive").Parse(pageSource))

const (
	DefaultTitle   = "The Contrarian · Archive · Food Game Media"
	DefaultHeading = "The Contrarian"
)

// 📦 Artifacts are the regenerated archive outputs.
type Artifacts struct {
	HTML    []byte
	Feed    []byte
	Records []meta.Record // sorted newest first
}

// FeedEntry is one object of the JSON feed.
type FeedEntry struct {
	Date     string `json:"date"`
	Headline string `json:"headline"`
	URL      string `json:"url"`
}

type card struct {
	Href     template.HTMLAttr
	Date     string
	Headline string
}

type page struct {
	Title     string
	Heading   string
	NavStyle  template.HTML
	NavMarkup template.HTML
	Cards     []card
}

// Builder renders the archive page and feed.
type Builder struct {
	Fragment nav.Fragment
	Title    string
	Heading  string
}

func NewBuilder(f nav.Fragment) *Builder {
	return &Builder{
		Fragment: f,
		Title:    DefaultTitle,
		Heading:  DefaultHeading,
	}
}

// Sort orders records newest first. Equal keys keep their relative order.
func Sort(records []meta.Record) {
	slices.SortStableFunc(records, func(a, b meta.Record) int {
		return strings.Compare(b.SortKey, a.SortKey)
	})
}

// Build sorts a copy of records and renders both artifacts from it.
func (b *Builder) Build(records []meta.Record) (*Artifacts, error) {
	sorted := slices.Clone(records)
	Sort(sorted)

	html, err := b.renderPage(sorted)
	if err != nil {
		return nil, errors.Errorf("rendering archive page: %w", err)
	}

	feed, err := renderFeed(sorted)
	if err != nil {
		return nil, errors.Errorf("rendering archive feed: %w", err)
	}

	return &Artifacts{HTML: html, Feed: feed, Records: sorted}, nil
}

func (b *Builder) renderPage(records []meta.Record) ([]byte, error) {
	p := page{
		Title:     b.Title,
		Heading:   b.Heading,
		NavStyle:  template.HTML(b.Fragment.Style),
		NavMarkup: template.HTML(b.Fragment.Markup),
		Cards:     make([]card, 0, len(records)),
	}
	for _, r := range records {
		p.Cards = append(p.Cards, card{Href: hrefAttr(r.URL), Date: r.DisplayDate, Headline: meta.Clean(r.Headline)})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		return nil, errors.Errorf("executing template: %w", err)
	}
	return buf.Bytes(), nil
}

// hrefAttr renders url as an href attribute whose decoded value is url
// byte for byte, the same string the feed carries. html/template would
// percent-encode spaces and non-ASCII filenames in a URL context.
func hrefAttr(url string) template.HTMLAttr {
	return template.HTMLAttr(`href="` + nethtml.EscapeString(url) + `"`)
}

func renderFeed(records []meta.Record) ([]byte, error) {
	entries := make([]FeedEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, FeedEntry{Date: r.DisplayDate, Headline: r.Headline, URL: r.URL})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, errors.Errorf("encoding feed: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseFeed reads a feed written by Build.
func ParseFeed(data []byte) ([]FeedEntry, error) {
	var entries []FeedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Errorf("parsing archive feed: %w", err)
	}
	return entries, nil
}
