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

package interval_test

import (
	"fmt"

	"github.com/ajwerner/intervaltree/interval"
)

func Example() {
	a := interval.New(0, 10)
	for _, b := range []interval.Interval[int]{
		interval.New(5, 15),
		interval.FromInclusive(10, 12),
		interval.Point(9),
	} {
		if r, ok := a.Intersect(b); ok {
			fmt.Println(a, "∩", b, "=", r)
		} else {
			fmt.Println(a, "∩", b, "= ∅")
		}
	}
	// Output:
	// 0..10 ∩ 5..15 = 5..10
	// 0..10 ∩ 10..13 = ∅
	// 0..10 ∩ 9..10 = 9..10
}
