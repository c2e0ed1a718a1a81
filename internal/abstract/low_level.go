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

// The accessors below are exposed to developers within this module for use
// implementing augmented search functionality. Given this package is
// internal, callers outside of this module cannot reach the nodes.

// Root returns the root node of the Map, or nil if it is empty.
func (t *Map[K, V, A]) Root() *Node[K, V, A] {
	return t.root
}

// Key returns the node's key.
func (n *Node[K, V, A]) Key() K { return n.key }

// Value returns a pointer to the node's value. Writes through the pointer
// are visible to the tree; the value takes no part in ordering.
func (n *Node[K, V, A]) Value() *V { return &n.value }

// Aug returns the node's augmentation.
func (n *Node[K, V, A]) Aug() *A { return &n.aug }

// Left returns the left child, or nil.
func (n *Node[K, V, A]) Left() *Node[K, V, A] { return n.left }

// Right returns the right child, or nil.
func (n *Node[K, V, A]) Right() *Node[K, V, A] { return n.right }

// Height returns the height of the subtree rooted at the node. A leaf has
// height 0.
func (n *Node[K, V, A]) Height() int { return n.height }

// Size returns the number of nodes in the subtree rooted at the node.
func (n *Node[K, V, A]) Size() int { return n.size }
