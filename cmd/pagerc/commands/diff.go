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

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// renderDiff writes a line diff of before and after, removed lines in red
// and added lines in green. It returns the number of changed hunks.
func renderDiff(w io.Writer, before, after string) int {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	del := color.New(color.FgRed)
	add := color.New(color.FgGreen)

	hunks := 0
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writeLines(w, del, "- ", d.Text)
			hunks++
		case diffmatchpatch.DiffInsert:
			writeLines(w, add, "+ ", d.Text)
			hunks++
		}
	}
	return hunks
}

func writeLines(w io.Writer, c *color.Color, prefix, text string) {
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		fmt.Fprintln(w, c.Sprint(prefix+line))
	}
}
