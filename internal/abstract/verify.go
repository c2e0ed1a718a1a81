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

import "github.com/pkg/errors"

// Verify walks the whole tree and checks the ordering, balance, height and
// size invariants of every node. If check is non-nil it is additionally
// called on every node, after the node's children have been verified, so
// that callers can validate their augmentation.
func (t *Map[K, V, A]) Verify(check func(*Node[K, V, A]) error) error {
	_, err := t.verify(t.root, nil, nil, check)
	return err
}

// verify checks the subtree rooted at n, whose keys must all lie strictly
// between lo and hi when those are non-nil. It returns the number of nodes
// in the subtree.
func (t *Map[K, V, A]) verify(
	n, lo, hi *Node[K, V, A], check func(*Node[K, V, A]) error,
) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && t.cfg.cmp(lo.key, n.key) >= 0 {
		return 0, errors.Errorf("key %v not after %v", n.key, lo.key)
	}
	if hi != nil && t.cfg.cmp(n.key, hi.key) >= 0 {
		return 0, errors.Errorf("key %v not before %v", n.key, hi.key)
	}
	ls, err := t.verify(n.left, lo, n, check)
	if err != nil {
		return 0, err
	}
	rs, err := t.verify(n.right, n, hi, check)
	if err != nil {
		return 0, err
	}
	if bf := n.balanceFactor(); bf < -1 || bf > 1 {
		return 0, errors.Errorf("node %v has balance factor %d", n.key, bf)
	}
	if exp := 1 + max(n.left.getHeight(), n.right.getHeight()); n.height != exp {
		return 0, errors.Errorf("node %v has height %d, expected %d", n.key, n.height, exp)
	}
	if exp := 1 + ls + rs; n.size != exp {
		return 0, errors.Errorf("node %v has size %d, expected %d", n.key, n.size, exp)
	}
	if check != nil {
		if err := check(n); err != nil {
			return 0, errors.Wrapf(err, "node %v", n.key)
		}
	}
	return n.size, nil
}
