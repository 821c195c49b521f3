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

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/pagerc/cmd/pagerc/opts"
	"gitlab.com/tozd/go/errors"
)

// NewListCmd creates a new list command
func NewListCmd(opts *opts.RootOpts) *cobra.Command {
	var fromFeed bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List articles newest first",
		Long: `List prints the date, headline, headline source and url of every article,
newest first. By default the records are computed from the articles as a build would see
them. With --feed the archive.json currently on disk is read instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			p, err := opts.Pipeline()
			if err != nil {
				return err
			}

			var rows [][]string
			undated := 0
			if fromFeed {
				entries, err := p.Feed(ctx)
				if err != nil {
					return errors.Errorf("loading feed: %w", err)
				}
				for _, e := range entries {
					if e.Date == "" {
						undated++
					}
					rows = append(rows, []string{dateCell(e.Date, e.Date != ""), e.Headline, "feed", e.URL})
				}
			} else {
				report, err := p.Check(ctx)
				if err != nil {
					return errors.Errorf("reading articles: %w", err)
				}
				for _, rec := range report.Records {
					if !rec.Dated() {
						undated++
					}
					rows = append(rows, []string{dateCell(rec.DisplayDate, rec.Dated()), rec.Headline, rec.HeadlineSource, rec.URL})
				}
			}

			if len(rows) == 0 {
				opts.Logger.Info("No articles")
				return nil
			}

			data := pterm.TableData{{"Date", "Headline", "Source", "URL"}}
			data = append(data, rows...)

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Errorf("rendering table: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)

			opts.Logger.Infof("%d articles, %d undated", len(rows), undated)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromFeed, "feed", false, "read the archive feed on disk instead of the articles")

	return cmd
}

func dateCell(date string, dated bool) string {
	if !dated {
		return "undated"
	}
	return date
}
