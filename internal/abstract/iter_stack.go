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

// NodeStack is a stack of nodes. It captures traversal state as an
// iterator descends a Map without recursing.
type NodeStack[K, V, A any] struct {
	a    nodeStackArr[K, V, A]
	aLen int16 // -1 when using s
	s    []*Node[K, V, A]
}

const nodeStackDepth = 16

// Used to avoid allocations for stacks below a certain size.
type nodeStackArr[K, V, A any] [nodeStackDepth]*Node[K, V, A]

// Push pushes n onto the stack.
func (ns *NodeStack[K, V, A]) Push(n *Node[K, V, A]) {
	if ns.aLen == -1 {
		ns.s = append(ns.s, n)
	} else if int(ns.aLen) == len(ns.a) {
		ns.s = make([]*Node[K, V, A], int(ns.aLen)+1, 2*int(ns.aLen))
		copy(ns.s, ns.a[:])
		ns.s[int(ns.aLen)] = n
		ns.a = nodeStackArr[K, V, A]{}
		ns.aLen = -1
	} else {
		ns.a[ns.aLen] = n
		ns.aLen++
	}
}

// Pop removes and returns the top of the stack. It is illegal to call Pop
// on an empty stack.
func (ns *NodeStack[K, V, A]) Pop() *Node[K, V, A] {
	if ns.aLen == -1 {
		n := ns.s[len(ns.s)-1]
		ns.s[len(ns.s)-1] = nil
		ns.s = ns.s[:len(ns.s)-1]
		return n
	}
	ns.aLen--
	n := ns.a[ns.aLen]
	ns.a[ns.aLen] = nil
	return n
}

// Len returns the number of nodes on the stack.
func (ns *NodeStack[K, V, A]) Len() int {
	if ns.aLen == -1 {
		return len(ns.s)
	}
	return int(ns.aLen)
}

// Reset empties the stack, retaining any spilled capacity.
func (ns *NodeStack[K, V, A]) Reset() {
	if ns.aLen == -1 {
		clear(ns.s)
		ns.s = ns.s[:0]
	} else {
		ns.a = nodeStackArr[K, V, A]{}
		ns.aLen = 0
	}
}
