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
	"github.com/spf13/cobra"
	"github.com/walteh/pagerc/cmd/pagerc/opts"
	"github.com/walteh/pagerc/pkg/log"
	"github.com/walteh/pagerc/pkg/pipeline"
	"github.com/walteh/pagerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(opts *opts.RootOpts) *cobra.Command {
	var showDiff bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which files a build would change",
		Long: `Status runs the build without writing anything.
It will:
1. Rewrite every article in memory
2. Render both archive artifacts
3. List each file whose content would change
4. Print a line diff per article with --diff`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			p, err := opts.Pipeline()
			if err != nil {
				return err
			}

			report, err := p.Check(ctx)
			if err != nil {
				return errors.Errorf("checking status: %w", err)
			}

			if report.Empty() {
				opts.Logger.Info("No article files found, nothing to do")
				return nil
			}

			opts.Logger.Header("status of " + opts.Config.ArticlesPath())

			for _, page := range report.Pages {
				if !page.Status.Changed() {
					continue
				}
				opts.Logger.LogFileOperation(ctx, fileOperation(page.Path, pipeline.KindArticle, page.Status, page.Normalized))
				if showDiff {
					renderDiff(cmd.OutOrStdout(), page.Original, page.Content)
					opts.Logger.LogNewline()
				}
			}
			for _, a := range report.Artifacts {
				if a.Status.Changed() {
					opts.Logger.LogFileOperation(ctx, fileOperation(a.Path, pipeline.KindArchive, a.Status, 0))
				}
			}

			if n := report.Changed(); n > 0 {
				opts.Logger.Warningf("%d files would change, run pagerc build", n)
			} else {
				opts.Logger.Success("Everything is up to date")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showDiff, "diff", false, "print a line diff for each article that would change")

	return cmd
}

func fileOperation(path, kind string, st status.FileStatus, replacements int) log.FileOperation {
	return log.FileOperation{
		Path:         path,
		Type:         kind,
		Status:       st.String(),
		IsNew:        st == status.StatusNew,
		IsModified:   st == status.StatusModified,
		Replacements: replacements,
	}
}
