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

package abstract

// Iterator is responsible for in-order traversal within a Map.
type Iterator[K, V, A any] struct {
	r   *Map[K, V, A]
	cur *Node[K, V, A]
	// s holds the ancestors of cur, root first.
	s NodeStack[K, V, A]
}

// MakeIter returns a new Iterator object. It is not safe to continue using an
// Iterator after modifications are made to the tree. If modifications are made,
// create a new Iterator.
func (t *Map[K, V, A]) MakeIter() Iterator[K, V, A] {
	return Iterator[K, V, A]{r: t}
}

// Reset invalidates the iterator.
func (i *Iterator[K, V, A]) Reset() {
	i.cur = nil
	i.s.Reset()
}

// SeekGE seeks to the first key greater-than or equal to the provided
// key.
func (i *Iterator[K, V, A]) SeekGE(key K) {
	i.Reset()
	n := i.r.root
	for n != nil {
		switch c := i.r.cfg.cmp(key, n.key); {
		case c == 0:
			i.cur = n
			return
		case c < 0:
			if n.left == nil {
				i.cur = n
				return
			}
			i.s.Push(n)
			n = n.left
		default:
			if n.right == nil {
				i.cur = n
				i.Next()
				return
			}
			i.s.Push(n)
			n = n.right
		}
	}
}

// First seeks to the first key in the Map.
func (i *Iterator[K, V, A]) First() {
	i.Reset()
	i.leftmost(i.r.root)
}

// Last seeks to the last key in the Map.
func (i *Iterator[K, V, A]) Last() {
	i.Reset()
	i.rightmost(i.r.root)
}

func (i *Iterator[K, V, A]) leftmost(n *Node[K, V, A]) {
	for n != nil && n.left != nil {
		i.s.Push(n)
		n = n.left
	}
	i.cur = n
}

func (i *Iterator[K, V, A]) rightmost(n *Node[K, V, A]) {
	for n != nil && n.right != nil {
		i.s.Push(n)
		n = n.right
	}
	i.cur = n
}

// Next positions the Iterator to the key immediately following
// its current position.
func (i *Iterator[K, V, A]) Next() {
	if i.cur == nil {
		return
	}
	if i.cur.right != nil {
		i.s.Push(i.cur)
		i.leftmost(i.cur.right)
		return
	}
	// Ascend until we leave a left subtree.
	for i.s.Len() > 0 {
		p := i.s.Pop()
		if p.left == i.cur {
			i.cur = p
			return
		}
		i.cur = p
	}
	i.cur = nil
}

// Prev positions the Iterator to the key immediately preceding
// its current position.
func (i *Iterator[K, V, A]) Prev() {
	if i.cur == nil {
		return
	}
	if i.cur.left != nil {
		i.s.Push(i.cur)
		i.rightmost(i.cur.left)
		return
	}
	for i.s.Len() > 0 {
		p := i.s.Pop()
		if p.right == i.cur {
			i.cur = p
			return
		}
		i.cur = p
	}
	i.cur = nil
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[K, V, A]) Valid() bool {
	return i.cur != nil
}

// Key returns the key at the Iterator's current position. It is illegal
// to call Key if the Iterator is not valid.
func (i *Iterator[K, V, A]) Key() K {
	return i.cur.key
}

// Value returns the value at the Iterator's current position. It is illegal
// to call Value if the Iterator is not valid.
func (i *Iterator[K, V, A]) Value() V {
	return i.cur.value
}
