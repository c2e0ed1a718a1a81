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

	"github.com/ajwerner/intervaltree/interval"
	"github.com/ajwerner/intervaltree/internal/abstract"
)

// aug is the augmentation of every node: the greatest End of any interval
// stored in the subtree rooted at the node.
type aug[T cmp.Ordered] struct {
	max T
}

type node[T cmp.Ordered, V any] = abstract.Node[interval.Interval[T], V, aug[T]]

type updater[T cmp.Ordered, V any] struct{}

// Update recomputes the max end of n from its own interval and the
// already up to date max of its children.
func (updater[T, V]) Update(n *node[T, V]) {
	up := n.Key().End
	if l := n.Left(); l != nil {
		up = max(up, l.Aug().max)
	}
	if r := n.Right(); r != nil {
		up = max(up, r.Aug().max)
	}
	n.Aug().max = up
}
