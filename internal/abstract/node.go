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

import (
	"fmt"
	"strings"
)

// Node is a node of the AVL tree. Each node exclusively owns its children.
type Node[K, V, A any] struct {
	key   K
	value V
	aug   A

	// height is the length of the longest path from this node down to a
	// leaf. A leaf has height 0; an absent subtree counts as -1.
	height int
	// size is the number of nodes in the subtree rooted here, including
	// this one.
	size int

	left, right *Node[K, V, A]
}

func newNode[K, V, A any](k K, v V) *Node[K, V, A] {
	return &Node[K, V, A]{key: k, value: v, size: 1}
}

// getHeight returns the height of the subtree rooted at n, or -1 if n is
// nil.
func (n *Node[K, V, A]) getHeight() int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *Node[K, V, A]) getSize() int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *Node[K, V, A]) balanceFactor() int {
	return n.left.getHeight() - n.right.getHeight()
}

func (n *Node[K, V, A]) updateHeight() {
	n.height = 1 + max(n.left.getHeight(), n.right.getHeight())
}

func (n *Node[K, V, A]) updateSize() {
	n.size = 1 + n.left.getSize() + n.right.getSize()
}

// clone returns a deep copy of the subtree rooted at n. Keys, values and
// augmentations are copied by assignment.
func (n *Node[K, V, A]) clone() *Node[K, V, A] {
	if n == nil {
		return nil
	}
	c := *n
	c.left = n.left.clone()
	c.right = n.right.clone()
	return &c
}

func (n *Node[K, V, A]) writeString(b *strings.Builder) {
	if n.left != nil {
		b.WriteString("(")
		n.left.writeString(b)
		b.WriteString(")")
	}
	fmt.Fprintf(b, "%v:%v", n.key, n.value)
	if n.right != nil {
		b.WriteString("(")
		n.right.writeString(b)
		b.WriteString(")")
	}
}
