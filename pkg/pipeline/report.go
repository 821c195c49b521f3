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

package pipeline

import (
	"github.com/walteh/pagerc/pkg/meta"
	"github.com/walteh/pagerc/pkg/status"
)

const (
	KindArticle = "article"
	KindArchive = "archive"
)

// 📄 PageResult is the outcome for one article
type PageResult struct {
	Name       string            // file name inside the articles directory
	Path       string            // path relative to the site root
	Status     status.FileStatus // write status of the rewritten page
	Replaced   bool              // the page already carried a nav fragment
	Detected   []string          // nav markers found before the rewrite
	Removed    int
	Normalized int
	Record     meta.Record
	Original   string // page before the rewrite
	Content    string // page after the rewrite
}

// 📦 ArtifactResult is the outcome for one archive artifact
type ArtifactResult struct {
	Path     string
	Status   status.FileStatus
	Original string // previous content, only kept when modified
	Content  string
}

// 📊 Report summarizes a run or a dry run
type Report struct {
	DryRun    bool
	Pages     []PageResult
	Artifacts []ArtifactResult
	Records   []meta.Record // newest first
}

// Changed counts pages and artifacts whose content differs from disk.
func (r *Report) Changed() int {
	n := 0
	for _, p := range r.Pages {
		if p.Status.Changed() {
			n++
		}
	}
	for _, a := range r.Artifacts {
		if a.Status.Changed() {
			n++
		}
	}
	return n
}

// Empty reports whether there were no articles to process.
func (r *Report) Empty() bool {
	return len(r.Pages) == 0
}
