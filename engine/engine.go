// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/born-ml/grad/internal/engine"
	"gonum.org/v1/gonum/graph/simple"
)

// Value is a scalar node in a computation graph.
type Value = engine.Value

// Op identifies the operation that produced a Value.
type Op = engine.Op

// Operations.
const (
	OpLeaf = engine.OpLeaf
	OpAdd  = engine.OpAdd
	OpSub  = engine.OpSub
	OpMul  = engine.OpMul
	OpDiv  = engine.OpDiv
	OpPow  = engine.OpPow
	OpNeg  = engine.OpNeg
	OpReLU = engine.OpReLU
	OpExp  = engine.OpExp
	OpTanh = engine.OpTanh
	OpLog  = engine.OpLog
)

// DomainError reports a forward operation rejected by its numeric domain.
type DomainError = engine.DomainError

// Domain error sentinels, matched with errors.Is.
var (
	ErrDivisionByZero = engine.ErrDivisionByZero
	ErrInvalidPower   = engine.ErrInvalidPower
	ErrInvalidLog     = engine.ErrInvalidLog
)

// New creates a leaf Value.
//
// Example:
//
//	x := engine.New(3)
//	y := x.Mul(x)
//	y.Backward() // x.Grad() == 6
func New(x float64) *Value {
	return engine.New(x)
}

// Sum adds values left to right. An empty call yields a zero leaf.
func Sum(values ...*Value) *Value {
	return engine.Sum(values...)
}

// TopoOrder returns the nodes reachable from root in the order Backward
// visits them: root first, each node before its operands.
func TopoOrder(root *Value) []*Value {
	return engine.TopoOrder(root)
}

// GraphNode wraps a Value as a gonum graph node.
type GraphNode = engine.GraphNode

// Graph returns a gonum directed graph of the computation rooted at root.
func Graph(root *Value) *simple.DirectedGraph {
	return engine.Graph(root)
}

// DOT renders the computation rooted at root in Graphviz DOT format.
func DOT(root *Value, name string) ([]byte, error) {
	return engine.DOT(root, name)
}
