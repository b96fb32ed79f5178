// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package scalar_test

import (
	"fmt"

	"github.com/born-ml/backprop/scalar"
)

func ExampleGraph() {
	g := scalar.NewGraph()
	a := g.Leaf(6)
	b := g.Leaf(4)

	fmt.Println(a.Add(b).Value(), a.Sub(b).Value(), a.Mul(b).Value(), a.Div(b).Value())
	fmt.Println(g.Len())
	// Output:
	// 10 2 24 1.5
	// 6
}
