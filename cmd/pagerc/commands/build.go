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

	"github.com/spf13/cobra"
	"github.com/walteh/pagerc/cmd/pagerc/opts"
	"github.com/walteh/pagerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewBuildCmd creates a new build command
func NewBuildCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Rewrite article navigation and rebuild the archive",
		Long: `Build processes every article in the articles directory.
It will:
1. Strip old navigation fragments and inject the current one
2. Apply legacy style fixes and configured replacements
3. Read each article's date and headline
4. Write archive.html and archive.json, newest first`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts)
		},
	}

	return cmd
}

// RunBuild is the build command's action, shared with the root command.
func RunBuild(opts *opts.RootOpts) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd, opts)
	}
}

func runBuild(cmd *cobra.Command, opts *opts.RootOpts) error {
	ctx := cmd.Context()

	p, err := opts.Pipeline()
	if err != nil {
		return err
	}

	report, err := p.Run(ctx)
	if err != nil {
		return errors.Errorf("running pipeline: %w", err)
	}
	if report.Empty() {
		return nil
	}

	files, err := opts.Store.ListFiles(ctx)
	if err != nil {
		return errors.Errorf("listing tracked files: %w", err)
	}

	opts.Logger.LogNewline()
	for _, f := range files {
		if f.Status.Changed() {
			fmt.Fprintln(cmd.OutOrStdout(), opts.Store.Describe(f))
		}
	}

	counts := opts.Store.Counts()
	opts.Logger.Successf("%d articles: %d new, %d modified, %d unchanged files",
		len(report.Pages), counts[status.StatusNew], counts[status.StatusModified], counts[status.StatusUnchanged])

	return nil
}
