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

const (
	DefaultBaseURL     = "https://foodgamemedia.github.io/The-Contrarian/articles/"
	DefaultBrand       = "Contrarian"
	DefaultBrandMaxLen = 20
)

// 📰 Record is the display metadata of one article.
type Record struct {
	Filename    string
	DisplayDate string
	SortKey     string
	Headline    string
	URL         string

	// HeadlineSource names the strategy that produced Headline, or
	// "filename" when none was accepted.
	HeadlineSource string
}

// Dated reports whether the filename carried a date.
func (r Record) Dated() bool {
	return r.SortKey != NoDateSortKey
}

// Extractor derives records from filenames and page content.
type Extractor struct {
	BaseURL     string
	Brand       string // generic-title term
	BrandMaxLen int    // candidates containing Brand must be longer than this
	Strategies  []Strategy
}

func NewExtractor() *Extractor {
	return &Extractor{
		BaseURL:     DefaultBaseURL,
		Brand:       DefaultBrand,
		BrandMaxLen: DefaultBrandMaxLen,
		Strategies:  DefaultStrategies,
	}
}

// Extract builds the record for filename. page is the article as it is on
// disk; an empty page yields the filename-derived defaults.
func (e *Extractor) Extract(filename, page string) Record {
	n := ParseFilename(filename)

	rec := Record{
		Filename:       filename,
		DisplayDate:    n.DisplayDate(),
		SortKey:        n.SortKey(),
		Headline:       defaultHeadline(n),
		URL:            e.BaseURL + filename,
		HeadlineSource: "filename",
	}

	if page == "" {
		return rec
	}

	for _, s := range e.Strategies {
		raw, ok := s.Candidate(page)
		if !ok {
			continue
		}
		if c := Clean(raw); accept(c, e.Brand, e.BrandMaxLen) {
			rec.Headline = c
			rec.HeadlineSource = s.Name
			break
		}
	}

	return rec
}
