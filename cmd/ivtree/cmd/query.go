// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package cmd

import (
	"fmt"
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ajwerner/intervaltree"
	"github.com/ajwerner/intervaltree/interval"
)

var (
	flagStart int64
	flagEnd   int64
	flagPoint int64
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "List the intervals overlapping [start, end) or a single point",
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().Int64Var(&flagStart, "start", 0, "inclusive start of the query")
	queryCmd.Flags().Int64Var(&flagEnd, "end", 0, "exclusive end of the query")
	queryCmd.Flags().Int64Var(&flagPoint, "point", 0, "query the single point instead of [start, end)")
	queryCmd.MarkFlagsMutuallyExclusive("point", "start")
	queryCmd.MarkFlagsMutuallyExclusive("point", "end")
}

func runQuery(cmd *cobra.Command, _ []string) error {
	q := interval.New(flagStart, flagEnd)
	if cmd.Flags().Changed("point") {
		q = interval.Point(flagPoint)
	}
	if !q.Valid() {
		log.Warn().Stringer("query", q).Msg("empty query matches nothing")
	}
	t, err := loadDataset()
	if err != nil {
		return err
	}
	matches := overlapping(t, q)
	log.Debug().Stringer("query", q).Int("matches", len(matches)).Msg("query complete")
	renderEntries(cmd.OutOrStdout(), matches)
	return nil
}

// overlapping returns the entries of t overlapping q in interval order.
func overlapping(t *dataset, q interval.Interval[int64]) []intervaltree.Entry[int64, string] {
	var matches []intervaltree.Entry[int64, string]
	for iv, v := range t.Overlaps(q) {
		matches = append(matches, intervaltree.Entry[int64, string]{Interval: iv, Value: v})
	}
	slices.SortFunc(matches, func(a, b intervaltree.Entry[int64, string]) int {
		return a.Interval.Compare(b.Interval)
	})
	return matches
}

func renderEntries(w io.Writer, entries []intervaltree.Entry[int64, string]) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"start", "end", "value"})
	for _, e := range entries {
		tbl.AppendRow(table.Row{e.Interval.Start, e.Interval.End, e.Value})
	}
	tbl.AppendFooter(table.Row{"", "", fmt.Sprintf("%d matches", len(entries))})
	tbl.Render()
}
