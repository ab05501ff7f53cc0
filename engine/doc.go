// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine provides reverse-mode automatic differentiation over scalars.
//
// # Overview
//
// Each arithmetic method on a Value returns a new Value that remembers
// its operands. Backward walks the resulting graph once and accumulates
// the derivative of the root into every reachable node.
//
// # Basic Usage
//
//	import "github.com/born-ml/grad/engine"
//
//	func main() {
//	    a := engine.New(2)
//	    b := engine.New(-3)
//	    c := engine.New(10)
//	    f := engine.New(-2)
//
//	    L := a.Mul(b).Add(c).Mul(f)
//	    L.Backward()
//
//	    fmt.Println(L)        // Value(data=-8.0, grad=1.0)
//	    fmt.Println(a.Grad()) // 6
//	}
//
// # Domain Errors
//
// Div, Pow and Log check their operands before computing anything and
// return a *DomainError instead of a Value:
//
//	_, err := a.Div(engine.New(0))
//	if errors.Is(err, engine.ErrDivisionByZero) {
//	    // no node was created
//	}
//
// # Gradients
//
// Backward never resets gradients. To run an independent second pass over
// nodes that took part in an earlier one, call ZeroGrad on them first.
package engine
