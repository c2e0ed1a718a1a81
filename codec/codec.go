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

// Package codec serializes the logical contents of an interval tree, the
// set of (interval, value) pairs, independent of the tree's shape.
// Decoding rebuilds a tree by repeated insertion.
package codec

import (
	"cmp"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ajwerner/intervaltree"
	"github.com/ajwerner/intervaltree/interval"
)

// Entry is the serialized form of a stored interval and its value.
type Entry[T cmp.Ordered, V any] struct {
	Start T `cbor:"1,keyasint" yaml:"start"`
	End   T `cbor:"2,keyasint" yaml:"end"`
	Value V `cbor:"3,keyasint" yaml:"value"`
}

// document is the top-level serialized object.
type document[T cmp.Ordered, V any] struct {
	Entries []Entry[T, V] `cbor:"1,keyasint" yaml:"entries"`
}

// Snapshot returns the entries of t in interval order.
func Snapshot[T cmp.Ordered, V any](t *intervaltree.Tree[T, V]) []Entry[T, V] {
	entries := make([]Entry[T, V], 0, t.Len())
	for iv, v := range t.All() {
		entries = append(entries, Entry[T, V]{Start: iv.Start, End: iv.End, Value: v})
	}
	return entries
}

// Restore builds a tree from entries. Entries repeating an earlier
// interval are dropped.
func Restore[T cmp.Ordered, V any](entries []Entry[T, V]) *intervaltree.Tree[T, V] {
	t := intervaltree.New[T, V]()
	for _, e := range entries {
		t.Insert(interval.New(e.Start, e.End), e.Value)
	}
	return t
}

// Format identifies an encoding.
type Format int

const (
	// YAML is a human-editable document with an entries list.
	YAML Format = iota
	// CBOR is a compact deterministic binary encoding.
	CBOR
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case CBOR:
		return "cbor"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name as produced by Format.String.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return YAML, nil
	case "cbor":
		return CBOR, nil
	default:
		return 0, errors.Errorf("unknown format %q", s)
	}
}

var encMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// MarshalCBOR encodes the entries of t.
func MarshalCBOR[T cmp.Ordered, V any](t *intervaltree.Tree[T, V]) ([]byte, error) {
	data, err := encMode.Marshal(document[T, V]{Entries: Snapshot(t)})
	if err != nil {
		return nil, errors.Wrap(err, "encoding cbor")
	}
	return data, nil
}

// UnmarshalCBOR decodes a tree encoded by MarshalCBOR.
func UnmarshalCBOR[T cmp.Ordered, V any](data []byte) (*intervaltree.Tree[T, V], error) {
	var doc document[T, V]
	if err := cbor.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding cbor")
	}
	return Restore(doc.Entries), nil
}

// EncodeYAML writes the entries of t to w.
func EncodeYAML[T cmp.Ordered, V any](w io.Writer, t *intervaltree.Tree[T, V]) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document[T, V]{Entries: Snapshot(t)}); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return errors.Wrap(enc.Close(), "encoding yaml")
}

// DecodeYAML reads a tree written by EncodeYAML from r.
func DecodeYAML[T cmp.Ordered, V any](r io.Reader) (*intervaltree.Tree[T, V], error) {
	var doc document[T, V]
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding yaml")
	}
	return Restore(doc.Entries), nil
}

// Encode writes t to w in the given format.
func Encode[T cmp.Ordered, V any](w io.Writer, f Format, t *intervaltree.Tree[T, V]) error {
	switch f {
	case YAML:
		return EncodeYAML(w, t)
	case CBOR:
		data, err := MarshalCBOR(t)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return errors.Wrap(err, "writing cbor")
	default:
		return errors.Errorf("unknown format %d", f)
	}
}

// Decode reads a tree in the given format from r.
func Decode[T cmp.Ordered, V any](r io.Reader, f Format) (*intervaltree.Tree[T, V], error) {
	switch f {
	case YAML:
		return DecodeYAML[T, V](r)
	case CBOR:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(err, "reading cbor")
		}
		return UnmarshalCBOR[T, V](data)
	default:
		return nil, errors.Errorf("unknown format %d", f)
	}
}
