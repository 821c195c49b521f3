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
	"fmt"
	"regexp"
	"time"
)

// DD_MM_YY-slug.html or DD.MM.YY-slug.html, separators may be mixed
var filenameRe = regexp.MustCompile(`(?i)^(\d{2})[_.](\d{2})[_.](\d{2})-(.+)\.html$`)

const (
	displayLayout = "2 Jan 2006"
	sortLayout    = "20060102"

	// NoDateSortKey sorts undated files after every dated one.
	NoDateSortKey = "00000000"
)

// 📅 Name is the parsed form of an article filename
type Name struct {
	Filename string
	Matched  bool      // filename follows the dated grammar
	Valid    bool      // the date parts form a real calendar date
	Day      string    // raw two-digit parts as written in the filename
	Month    string
	Year     string
	Slug     string
	Date     time.Time // zero unless Valid
}

// ParseFilename splits a basename into its date parts and slug. It never
// fails; callers inspect Matched and Valid.
func ParseFilename(filename string) Name {
	n := Name{Filename: filename}

	m := filenameRe.FindStringSubmatch(filename)
	if m == nil {
		return n
	}

	n.Matched = true
	n.Day, n.Month, n.Year, n.Slug = m[1], m[2], m[3], m[4]

	dt, err := time.Parse("02/01/2006", fmt.Sprintf("%s/%s/20%s", n.Day, n.Month, n.Year))
	if err == nil {
		n.Valid = true
		n.Date = dt
	}

	return n
}

// DisplayDate renders the date for humans: "5 Mar 2026" for a valid date,
// the raw "DD.MM.YY" literal when the parts are not a real date, and ""
// when the filename carries no date at all.
func (n Name) DisplayDate() string {
	switch {
	case !n.Matched:
		return ""
	case !n.Valid:
		return n.Day + "." + n.Month + "." + n.Year
	default:
		return n.Date.Format(displayLayout)
	}
}

// SortKey is YYYYMMDD for valid dates. Invalid dates keep the short YYMMDD
// form; compared as strings it usually lands above every 20xx key.
func (n Name) SortKey() string {
	switch {
	case !n.Matched:
		return NoDateSortKey
	case !n.Valid:
		return n.Year + n.Month + n.Day
	default:
		return n.Date.Format(sortLayout)
	}
}
