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
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagOut       string
	flagOutFormat string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Re-encode a dataset in another format",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&flagOut, "out", "", "path of the converted dataset")
	convertCmd.Flags().StringVar(&flagOutFormat, "out-format", "", "output format, inferred from --out if empty")
	_ = convertCmd.MarkFlagRequired("out")
}

func runConvert(*cobra.Command, []string) error {
	t, err := loadDataset()
	if err != nil {
		return err
	}
	f, err := formatFor(flagOut, flagOutFormat)
	if err != nil {
		return err
	}
	if err := writeDataset(flagOut, f, t); err != nil {
		return errors.Wrapf(err, "writing %s", flagOut)
	}
	log.Info().
		Str("out", flagOut).
		Stringer("format", f).
		Int("intervals", t.Len()).
		Msg("converted dataset")
	return nil
}
