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

// Package interval defines the half-open interval keys stored in an
// interval tree.
package interval

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Interval is the half-open range [Start, End). An Interval whose Start
// is not less than its End is representable but degenerate: it never
// overlaps anything, itself included.
type Interval[T cmp.Ordered] struct {
	Start, End T
}

// New constructs the interval [start, end). It never fails.
func New[T cmp.Ordered](start, end T) Interval[T] {
	return Interval[T]{Start: start, End: end}
}

// FromInclusive constructs the interval covering the closed range
// [lo, hi], that is [lo, hi+1). If hi is the largest value of T the
// successor wraps and the result is degenerate.
func FromInclusive[T constraints.Integer](lo, hi T) Interval[T] {
	return Interval[T]{Start: lo, End: hi + 1}
}

// Point constructs the unit interval [p, p+1).
func Point[T constraints.Integer](p T) Interval[T] {
	return FromInclusive(p, p)
}

// Valid returns whether Start < End.
func (i Interval[T]) Valid() bool {
	return cmp.Less(i.Start, i.End)
}

// Intersect returns the region shared by i and o. The second return value
// is false if that region is empty, in which case the returned interval is
// the degenerate intersection and must not be used.
func (i Interval[T]) Intersect(o Interval[T]) (Interval[T], bool) {
	r := Interval[T]{Start: max(i.Start, o.Start), End: min(i.End, o.End)}
	return r, r.Valid()
}

// Overlaps returns whether i and o share at least one point.
func (i Interval[T]) Overlaps(o Interval[T]) bool {
	_, ok := i.Intersect(o)
	return ok
}

// Contains returns whether p lies in i.
func (i Interval[T]) Contains(p T) bool {
	return cmp.Compare(i.Start, p) <= 0 && cmp.Less(p, i.End)
}

// Compare orders intervals by Start, breaking ties by End.
func (i Interval[T]) Compare(o Interval[T]) int {
	if c := cmp.Compare(i.Start, o.Start); c != 0 {
		return c
	}
	return cmp.Compare(i.End, o.End)
}

// Equal returns whether both endpoints match.
func (i Interval[T]) Equal(o Interval[T]) bool {
	return i.Compare(o) == 0
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("%v..%v", i.Start, i.End)
}

// Compare is Interval.Compare in function form, suitable as the key
// comparison of an ordered map.
func Compare[T cmp.Ordered](a, b Interval[T]) int {
	return a.Compare(b)
}
