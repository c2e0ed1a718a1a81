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

// Config is used to configure the tree. It consists of a comparison function
// for keys and the updater which maintains the node augmentation.
type Config[K, V, A any] struct {

	// Updater is used to update the augmentations to the tree. It may be
	// nil if the tree carries no augmentation beyond height and size.
	Updater Updater[K, V, A]

	cmp func(K, K) int
}

// Updater is used to update the augmentation of the node when the subtree
// changes.
type Updater[K, V, A any] interface {

	// Update should recompute the augmentation of the passed node from the
	// node's own key and value and the augmentations of its children, which
	// are guaranteed to already be up to date.
	Update(*Node[K, V, A])
}

func makeConfig[K, V, A any](
	cmp func(K, K) int, up Updater[K, V, A],
) (c Config[K, V, A]) {
	c.Updater = up
	c.cmp = cmp
	return c
}
