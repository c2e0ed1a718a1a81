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

import "strings"

// Map is an implementation of an augmented AVL tree. Besides the AVL
// height, every node tracks the size of its subtree and an augmentation of
// type A maintained by the configured Updater.
//
// Map is not safe for concurrent use. Reads may run concurrently with each
// other but not with writes.
type Map[K, V, A any] struct {
	root *Node[K, V, A]
	cfg  Config[K, V, A]
}

// MakeMap constructs a new Map with the given key comparison and updater.
// The updater may be nil.
func MakeMap[K, V, A any](cmp func(K, K) int, up Updater[K, V, A]) Map[K, V, A] {
	return Map[K, V, A]{cfg: makeConfig(cmp, up)}
}

// Reset removes all items from the Map. The nodes are released to the
// garbage collector.
func (t *Map[K, V, A]) Reset() {
	t.root = nil
}

// Clone returns a deep copy of the Map. The copy shares no nodes with the
// receiver.
func (t *Map[K, V, A]) Clone() Map[K, V, A] {
	return Map[K, V, A]{root: t.root.clone(), cfg: t.cfg}
}

// Len returns the number of items currently in the tree.
func (t *Map[K, V, A]) Len() int {
	return t.root.getSize()
}

// Height returns the height of the tree, or -1 if it is empty.
func (t *Map[K, V, A]) Height() int {
	return t.root.getHeight()
}

// Get returns the value stored under a key equal to k.
func (t *Map[K, V, A]) Get(k K) (v V, found bool) {
	for n := t.root; n != nil; {
		switch c := t.cfg.cmp(k, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	return v, false
}

// Nth returns the item at position i in key order.
func (t *Map[K, V, A]) Nth(i int) (k K, v V, found bool) {
	if i < 0 || i >= t.Len() {
		return k, v, false
	}
	n := t.root
	for {
		switch l := n.left.getSize(); {
		case i < l:
			n = n.left
		case i > l:
			i -= l + 1
			n = n.right
		default:
			return n.key, n.value, true
		}
	}
}

// Rank returns the number of keys in the tree which order strictly before
// k.
func (t *Map[K, V, A]) Rank(k K) int {
	var rank int
	for n := t.root; n != nil; {
		switch c := t.cfg.cmp(k, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			rank += n.left.getSize() + 1
			n = n.right
		default:
			return rank + n.left.getSize()
		}
	}
	return rank
}

// Insert adds the given item to the tree. If an item in the tree already
// equals the given one, the tree is left untouched and the new value is
// discarded.
func (t *Map[K, V, A]) Insert(k K, v V) (inserted bool) {
	t.root, inserted = t.insert(t.root, k, v)
	return inserted
}

func (t *Map[K, V, A]) insert(n *Node[K, V, A], k K, v V) (_ *Node[K, V, A], inserted bool) {
	if n == nil {
		n = newNode[K, V, A](k, v)
		t.update(n)
		return n, true
	}
	switch c := t.cfg.cmp(k, n.key); {
	case c < 0:
		n.left, inserted = t.insert(n.left, k, v)
	case c > 0:
		n.right, inserted = t.insert(n.right, k, v)
	}
	if !inserted {
		return n, false
	}
	t.update(n)
	return t.balance(n), true
}

// Delete removes an item equal to the passed in key from the tree.
func (t *Map[K, V, A]) Delete(k K) (removedK K, v V, found bool) {
	var removed *Node[K, V, A]
	if t.root, removed = t.delete(t.root, k); removed == nil {
		return removedK, v, false
	}
	return removed.key, removed.value, true
}

// delete removes the node keyed by k from the subtree rooted at n. It
// returns the new root of the subtree and the detached node, if any.
func (t *Map[K, V, A]) delete(n *Node[K, V, A], k K) (_, removed *Node[K, V, A]) {
	if n == nil {
		return nil, nil
	}
	switch c := t.cfg.cmp(k, n.key); {
	case c < 0:
		n.left, removed = t.delete(n.left, k)
	case c > 0:
		n.right, removed = t.delete(n.right, k)
	case n.left == nil:
		return detach(n, n.right)
	case n.right == nil:
		return detach(n, n.left)
	default:
		// Replace n with its in-order successor. The successor node is
		// unlinked from the right subtree and takes over n's position.
		rest, succ := t.removeMin(n.right)
		succ.left, succ.right = n.left, rest
		n.left, n.right = nil, nil
		n, removed = succ, n
	}
	if removed == nil {
		return n, nil
	}
	t.update(n)
	return t.balance(n), removed
}

// DeleteMin removes the minimum item from the tree.
func (t *Map[K, V, A]) DeleteMin() (k K, v V, found bool) {
	if t.root == nil {
		return k, v, false
	}
	var first *Node[K, V, A]
	t.root, first = t.removeMin(t.root)
	return first.key, first.value, true
}

// DeleteMax removes the maximum item from the tree.
func (t *Map[K, V, A]) DeleteMax() (k K, v V, found bool) {
	if t.root == nil {
		return k, v, false
	}
	var last *Node[K, V, A]
	t.root, last = t.removeMax(t.root)
	return last.key, last.value, true
}

// removeMin unlinks the leftmost node of the subtree rooted at n and
// returns the rebalanced remainder along with the unlinked node. The
// unlinked node has no children.
func (t *Map[K, V, A]) removeMin(n *Node[K, V, A]) (rest, first *Node[K, V, A]) {
	if n == nil {
		panic("invariant violated: min of empty subtree")
	}
	if n.left == nil {
		return detach(n, n.right)
	}
	n.left, first = t.removeMin(n.left)
	t.update(n)
	return t.balance(n), first
}

// removeMax is the mirror image of removeMin.
func (t *Map[K, V, A]) removeMax(n *Node[K, V, A]) (rest, last *Node[K, V, A]) {
	if n == nil {
		panic("invariant violated: max of empty subtree")
	}
	if n.right == nil {
		return detach(n, n.left)
	}
	n.right, last = t.removeMax(n.right)
	t.update(n)
	return t.balance(n), last
}

// detach unlinks n from its single remaining child, which is returned in
// its place.
func detach[K, V, A any](n, child *Node[K, V, A]) (_, removed *Node[K, V, A]) {
	n.left, n.right = nil, nil
	return child, n
}

// update recomputes the height, size and augmentation of n. The children
// of n must already be up to date.
func (t *Map[K, V, A]) update(n *Node[K, V, A]) {
	n.updateHeight()
	n.updateSize()
	if t.cfg.Updater != nil {
		t.cfg.Updater.Update(n)
	}
}

// balance restores the AVL property at n, whose children are balanced and
// differ in height by at most 2. It returns the new root of the subtree.
func (t *Map[K, V, A]) balance(n *Node[K, V, A]) *Node[K, V, A] {
	switch bf := n.balanceFactor(); {
	case bf < -1:
		if n.right.balanceFactor() > 0 {
			n.right = t.rotateRight(n.right)
		}
		return t.rotateLeft(n)
	case bf > 1:
		if n.left.balanceFactor() < 0 {
			n.left = t.rotateLeft(n.left)
		}
		return t.rotateRight(n)
	default:
		return n
	}
}

// rotateRight promotes the left child of n.
//
// Before:
//
//	      n
//	     / \
//	    y   c
//	   / \
//	  a   b
//
// After:
//
//	    y
//	   / \
//	  a   n
//	     / \
//	    b   c
func (t *Map[K, V, A]) rotateRight(n *Node[K, V, A]) *Node[K, V, A] {
	y := n.left
	n.left = y.right
	y.right = n
	t.update(n)
	t.update(y)
	return y
}

// rotateLeft promotes the right child of n. It is the mirror image of
// rotateRight.
func (t *Map[K, V, A]) rotateLeft(n *Node[K, V, A]) *Node[K, V, A] {
	y := n.right
	n.right = y.left
	y.left = n
	t.update(n)
	t.update(y)
	return y
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Map[K, V, A]) String() string {
	if t.root == nil {
		return ";"
	}
	var b strings.Builder
	t.root.writeString(&b)
	return b.String()
}
