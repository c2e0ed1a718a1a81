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
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagLogLevel = "log-level"
	flagData     = "data"
	flagFormat   = "format"
)

var rootCmd = &cobra.Command{
	Use:          "ivtree",
	Short:        "Query interval datasets",
	SilenceUsage: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		return setupLogging(viper.GetString(flagLogLevel))
	},
}

// Execute runs the command line and exits the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("ivtree failed")
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String(flagLogLevel, "info", "log level (debug, info, warn, error)")
	pf.String(flagData, "", "path of the dataset to load")
	pf.String(flagFormat, "", "dataset format (yaml or cbor), inferred from the file extension if empty")
	_ = viper.BindPFlags(pf)

	rootCmd.AddCommand(queryCmd, statsCmd, convertCmd)
}

// initConfig lets IVTREE_* environment variables stand in for unset flags,
// e.g. IVTREE_LOG_LEVEL=debug.
func initConfig() {
	viper.SetEnvPrefix("IVTREE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", flagLogLevel)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}
