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
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/ajwerner/intervaltree"
	"github.com/ajwerner/intervaltree/codec"
)

// dataset maps integer ranges, such as addresses or timestamps, to labels.
type dataset = intervaltree.Tree[int64, string]

// formatFor returns the explicitly requested format, or the one implied by
// the extension of path.
func formatFor(path, format string) (codec.Format, error) {
	if format != "" {
		return codec.ParseFormat(format)
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return codec.YAML, nil
	case ".cbor":
		return codec.CBOR, nil
	default:
		return 0, errors.Errorf("cannot infer format of %q, set --%s", path, flagFormat)
	}
}

// loadDataset reads the dataset named by the --data flag.
func loadDataset() (*dataset, error) {
	path := viper.GetString(flagData)
	if path == "" {
		return nil, errors.Errorf("--%s is required", flagData)
	}
	f, err := formatFor(path, viper.GetString(flagFormat))
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening dataset")
	}
	defer file.Close()
	t, err := codec.Decode[int64, string](file, f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	log.Debug().
		Str("path", path).
		Stringer("format", f).
		Int("intervals", t.Len()).
		Int("height", t.Height()).
		Msg("loaded dataset")
	return t, nil
}

func writeDataset(path string, f codec.Format, t *dataset) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = errors.Wrap(cerr, "closing output")
		}
	}()
	return codec.Encode(file, f, t)
}
