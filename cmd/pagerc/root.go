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

package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/pagerc/cmd/pagerc/commands"
	"github.com/walteh/pagerc/cmd/pagerc/opts"
	"github.com/walteh/pagerc/pkg/config"
	"github.com/walteh/pagerc/pkg/log"
)

// newRootCmd creates the pagerc command tree. Running it without a
// subcommand builds the site.
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pagerc",
		Short: "Keep article navigation current and rebuild the archive",
		Long: `pagerc rewrites every article of a static site so it carries exactly one
copy of the current navigation, then rebuilds archive.html and archive.json
from the article filenames and headlines.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), o.Level(), cmd.ErrOrStderr())
			if err := o.Load(ctx, cmd.OutOrStdout()); err != nil {
				return err
			}
			cmd.SetContext(log.NewContext(ctx, o.Logger))
			return nil
		},
		RunE: commands.RunBuild(o),
	}

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewBuildCmd(o),
		commands.NewStatusCmd(o),
		commands.NewListCmd(o),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", config.DefaultFile, "config file path")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&o.Root, "root", "r", "", "site root, overrides the config")
}

// setupLogging puts a console zerolog logger on the context
func setupLogging(ctx context.Context, level zerolog.Level, w io.Writer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}
