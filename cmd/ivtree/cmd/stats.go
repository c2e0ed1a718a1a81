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

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the shape of a dataset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		t, err := loadDataset()
		if err != nil {
			return err
		}
		tbl := table.NewWriter()
		tbl.SetOutputMirror(cmd.OutOrStdout())
		tbl.SetStyle(table.StyleLight)
		tbl.AppendRow(table.Row{"intervals", t.Len()})
		tbl.AppendRow(table.Row{"height", t.Height()})
		if first, _, ok := t.Nth(0); ok {
			last, _, _ := t.Nth(t.Len() - 1)
			tbl.AppendRow(table.Row{"first", first})
			tbl.AppendRow(table.Row{"last", last})
			tbl.AppendRow(table.Row{"span", spanOf(t)})
		}
		tbl.Render()
		return nil
	},
}

// spanOf returns the smallest interval covering every valid interval in t.
func spanOf(t *dataset) string {
	var lo, hi int64
	var seen bool
	for iv := range t.All() {
		if !iv.Valid() {
			continue
		}
		if !seen {
			lo, hi, seen = iv.Start, iv.End, true
			continue
		}
		lo, hi = min(lo, iv.Start), max(hi, iv.End)
	}
	if !seen {
		return "-"
	}
	return fmt.Sprintf("%d..%d", lo, hi)
}
