// Copyright 2018 The Cockroach Authors.
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

package intervaltree

import (
	"cmp"
	"iter"

	"github.com/ajwerner/intervaltree/interval"
	"github.com/ajwerner/intervaltree/internal/abstract"
)

// An overlap scan visits the nodes of the tree which may hold an interval
// overlapping the query bounds. It keeps an explicit work list of subtrees
// still to be explored rather than recursing, so that the scan can be
// suspended between entries. The scan relies on two properties of the
// tree:
//  1. intervals are ordered by their start, so every interval in the right
//     subtree of a node starts at or after the node's start.
//  2. every node holds the greatest end of all intervals in its subtree.
//
// A popped node is discarded along with its whole subtree if the query
// starts at or after the node's max end: nothing below can reach the
// query. Otherwise its left child is queued. If the query ends after the
// node's start, the right child is queued and the node's own interval is
// tested; otherwise nothing in the right subtree, nor the node itself,
// can overlap.
//
// Entries are produced in traversal order, which is deterministic but not
// sorted.
type overlapScan[T cmp.Ordered, V any] struct {
	bounds interval.Interval[T]
	s      abstract.NodeStack[interval.Interval[T], V, aug[T]]
	cur    *node[T, V]
}

func (o *overlapScan[T, V]) reset(root *node[T, V], bounds interval.Interval[T]) {
	o.bounds = bounds
	o.cur = nil
	o.s.Reset()
	// A degenerate query overlaps nothing.
	if root != nil && bounds.Valid() {
		o.s.Push(root)
	}
	o.next()
}

func (o *overlapScan[T, V]) next() {
	for o.s.Len() > 0 {
		n := o.s.Pop()
		if !cmp.Less(o.bounds.Start, n.Aug().max) {
			continue
		}
		if l := n.Left(); l != nil {
			o.s.Push(l)
		}
		if !cmp.Less(n.Key().Start, o.bounds.End) {
			continue
		}
		if r := n.Right(); r != nil {
			o.s.Push(r)
		}
		if n.Key().Overlaps(o.bounds) {
			o.cur = n
			return
		}
	}
	o.cur = nil
}

// Iterator yields the entries overlapping a query interval. It is not
// safe to continue using an Iterator after the tree is modified.
type Iterator[T cmp.Ordered, V any] struct {
	o overlapScan[T, V]
}

// Query returns an Iterator positioned at the first stored interval which
// overlaps q. Each call returns a fresh, independent iterator.
//
//	for it := t.Query(q); it.Valid(); it.Next() {
//		use(it.Interval(), it.Value())
//	}
func (t *Tree[T, V]) Query(q interval.Interval[T]) *Iterator[T, V] {
	it := new(Iterator[T, V])
	it.o.reset(t.m.Root(), q)
	return it
}

// Valid returns whether the Iterator is positioned at an overlapping entry.
func (it *Iterator[T, V]) Valid() bool { return it.o.cur != nil }

// Next advances to the next overlapping entry.
func (it *Iterator[T, V]) Next() { it.o.next() }

// Interval returns the current interval. It is illegal to call Interval if
// the Iterator is not valid.
func (it *Iterator[T, V]) Interval() interval.Interval[T] { return it.o.cur.Key() }

// Value returns the current value. It is illegal to call Value if the
// Iterator is not valid.
func (it *Iterator[T, V]) Value() V { return *it.o.cur.Value() }

// MutIterator is like Iterator but exposes the stored values for
// modification in place. Values take no part in the tree's ordering, so
// writing through Value never disturbs the tree. The tree must not be
// structurally modified while a MutIterator is in use.
type MutIterator[T cmp.Ordered, V any] struct {
	o overlapScan[T, V]
}

// QueryMut returns a MutIterator positioned at the first stored interval
// which overlaps q.
func (t *Tree[T, V]) QueryMut(q interval.Interval[T]) *MutIterator[T, V] {
	it := new(MutIterator[T, V])
	it.o.reset(t.m.Root(), q)
	return it
}

// Valid returns whether the MutIterator is positioned at an overlapping
// entry.
func (it *MutIterator[T, V]) Valid() bool { return it.o.cur != nil }

// Next advances to the next overlapping entry.
func (it *MutIterator[T, V]) Next() { it.o.next() }

// Interval returns the current interval.
func (it *MutIterator[T, V]) Interval() interval.Interval[T] { return it.o.cur.Key() }

// Value returns a pointer to the current value.
func (it *MutIterator[T, V]) Value() *V { return it.o.cur.Value() }

// Overlaps returns the entries overlapping q in traversal order.
func (t *Tree[T, V]) Overlaps(q interval.Interval[T]) iter.Seq2[interval.Interval[T], V] {
	return func(yield func(interval.Interval[T], V) bool) {
		for it := t.Query(q); it.Valid(); it.Next() {
			if !yield(it.Interval(), it.Value()) {
				return
			}
		}
	}
}
