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

// Package intervaltree provides an in-memory index over a dynamic set of
// half-open intervals, each carrying a value, which efficiently answers
// which stored intervals overlap a query interval.
//
// The index is an AVL tree ordered by interval (start, then end) in which
// every node is augmented with the greatest end of any interval beneath
// it. Each distinct interval maps to exactly one value.
//
// A Tree is not safe for concurrent use.
package intervaltree

import (
	"cmp"
	"iter"

	"github.com/ajwerner/intervaltree/interval"
	"github.com/ajwerner/intervaltree/internal/abstract"
)

// Tree maps intervals to values. The zero value is not usable; construct
// a Tree with New or FromEntries.
type Tree[T cmp.Ordered, V any] struct {
	m abstract.Map[interval.Interval[T], V, aug[T]]
}

// Entry is an interval and its associated value.
type Entry[T cmp.Ordered, V any] struct {
	Interval interval.Interval[T]
	Value    V
}

// New returns an empty Tree.
func New[T cmp.Ordered, V any]() *Tree[T, V] {
	return &Tree[T, V]{
		m: abstract.MakeMap[interval.Interval[T], V, aug[T]](
			interval.Compare[T], updater[T, V]{},
		),
	}
}

// FromEntries returns a Tree holding the given entries. It is equivalent to
// inserting them in order, so for repeated intervals the first value wins.
func FromEntries[T cmp.Ordered, V any](entries ...Entry[T, V]) *Tree[T, V] {
	t := New[T, V]()
	for _, e := range entries {
		t.Insert(e.Interval, e.Value)
	}
	return t
}

// IsEmpty returns whether the tree holds no intervals.
func (t *Tree[T, V]) IsEmpty() bool {
	return t.m.Root() == nil
}

// Len returns the number of intervals stored in the tree.
func (t *Tree[T, V]) Len() int {
	return t.m.Len()
}

// Height returns the height of the tree, or -1 if it is empty. A tree with
// a single interval has height 0.
func (t *Tree[T, V]) Height() int {
	return t.m.Height()
}

// Insert associates v with iv. If iv is already present the tree is left
// unchanged, v is discarded and false is returned. Callers wanting to
// replace the value should Delete first.
//
// Degenerate intervals are stored like any other but are never reported
// by queries.
func (t *Tree[T, V]) Insert(iv interval.Interval[T], v V) (inserted bool) {
	return t.m.Insert(iv, v)
}

// Delete removes iv from the tree. Deleting an interval which is not
// present is a no-op.
func (t *Tree[T, V]) Delete(iv interval.Interval[T]) (removed bool) {
	_, _, removed = t.m.Delete(iv)
	return removed
}

// DeleteMin removes the smallest interval, returning it along with its
// value. It returns false if the tree is empty.
func (t *Tree[T, V]) DeleteMin() (interval.Interval[T], V, bool) {
	return t.m.DeleteMin()
}

// DeleteMax removes the largest interval, returning it along with its
// value. It returns false if the tree is empty.
func (t *Tree[T, V]) DeleteMax() (interval.Interval[T], V, bool) {
	return t.m.DeleteMax()
}

// Clear removes every interval from the tree.
func (t *Tree[T, V]) Clear() {
	t.m.Reset()
}

// Get returns the value associated with exactly iv.
func (t *Tree[T, V]) Get(iv interval.Interval[T]) (V, bool) {
	return t.m.Get(iv)
}

// Nth returns the entry at position i in interval order.
func (t *Tree[T, V]) Nth(i int) (interval.Interval[T], V, bool) {
	return t.m.Nth(i)
}

// Rank returns the number of stored intervals which order strictly before
// iv.
func (t *Tree[T, V]) Rank(iv interval.Interval[T]) int {
	return t.m.Rank(iv)
}

// Clone returns a deep copy of the tree. Values are copied by assignment.
func (t *Tree[T, V]) Clone() *Tree[T, V] {
	return &Tree[T, V]{m: t.m.Clone()}
}

// All returns every entry in interval order.
func (t *Tree[T, V]) All() iter.Seq2[interval.Interval[T], V] {
	return func(yield func(interval.Interval[T], V) bool) {
		it := t.m.MakeIter()
		for it.First(); it.Valid(); it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Backward returns every entry in reverse interval order.
func (t *Tree[T, V]) Backward() iter.Seq2[interval.Interval[T], V] {
	return func(yield func(interval.Interval[T], V) bool) {
		it := t.m.MakeIter()
		for it.Last(); it.Valid(); it.Prev() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// AscendFrom returns the entries whose interval orders at or after iv, in
// interval order.
func (t *Tree[T, V]) AscendFrom(iv interval.Interval[T]) iter.Seq2[interval.Interval[T], V] {
	return func(yield func(interval.Interval[T], V) bool) {
		it := t.m.MakeIter()
		for it.SeekGE(iv); it.Valid(); it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// String returns a parenthesized description of the tree's shape, or ";"
// if it is empty.
func (t *Tree[T, V]) String() string {
	return t.m.String()
}
