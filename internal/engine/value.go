// Package engine implements reverse-mode automatic differentiation over
// scalar values. See the public engine package for an overview.
package engine

import (
	"math"
	"strconv"
)

// Op identifies the operation that produced a Value.
type Op uint8

// Supported operations.
const (
	OpLeaf Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpNeg
	OpReLU
	OpExp
	OpTanh
	OpLog
)

var opNames = [...]string{
	OpLeaf: "leaf",
	OpAdd:  "+",
	OpSub:  "-",
	OpMul:  "*",
	OpDiv:  "/",
	OpPow:  "**",
	OpNeg:  "neg",
	OpReLU: "relu",
	OpExp:  "exp",
	OpTanh: "tanh",
	OpLog:  "log",
}

// String returns the symbol used when rendering the operation.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "op(" + strconv.Itoa(int(o)) + ")"
}

// Value is a node in a scalar computation graph.
//
// Data is fixed when the Value is created. Grad starts at zero and only
// changes through Backward (which accumulates) or SetGrad/ZeroGrad.
// Values are compared by identity: a Value used by several downstream
// expressions receives the sum of all their contributions.
type Value struct {
	data     float64
	grad     float64
	op       Op
	exponent float64  // Fixed exponent for OpPow
	operands []*Value // 0 (leaf), 1 (unary) or 2 (binary) predecessors
	label    string
}

// New creates a leaf Value holding x with zero gradient.
func New(x float64) *Value {
	return &Value{data: x}
}

// newResult creates a Value produced by op from operands.
func newResult(data float64, op Op, operands ...*Value) *Value {
	return &Value{
		data:     data,
		op:       op,
		operands: operands,
	}
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// Grad returns the accumulated gradient.
func (v *Value) Grad() float64 {
	return v.grad
}

// SetGrad overwrites the accumulated gradient.
//
// Backward never clears gradients between calls, so callers that want an
// independent second pass reset the relevant nodes first.
func (v *Value) SetGrad(g float64) {
	v.grad = g
}

// ZeroGrad resets the accumulated gradient to zero.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Op returns the operation that produced v (OpLeaf for inputs).
func (v *Value) Op() Op {
	return v.op
}

// Exponent returns the fixed exponent of a power node.
func (v *Value) Exponent() float64 {
	return v.exponent
}

// Operands returns the direct predecessors of v in the graph.
// The returned slice must not be modified.
func (v *Value) Operands() []*Value {
	return v.operands
}

// IsLeaf reports whether v has no operands.
func (v *Value) IsLeaf() bool {
	return len(v.operands) == 0
}

// Label returns the optional display name of v.
func (v *Value) Label() string {
	return v.label
}

// SetLabel sets the display name used by DOT rendering and returns v.
func (v *Value) SetLabel(label string) *Value {
	v.label = label
	return v
}

// String renders v as Value(data=<data>, grad=<grad>).
//
// A zero gradient prints as 0, matching the untouched-leaf form
// Value(data=2.0, grad=0). Any other gradient, including the seed of a
// root after Backward, prints like data: Value(data=2.0, grad=1.0).
func (v *Value) String() string {
	g := "0"
	if v.grad != 0 {
		g = formatFloat(v.grad)
	}
	return "Value(data=" + formatFloat(v.data) + ", grad=" + g + ")"
}

// formatFloat prints the shortest round-tripping representation, keeping
// a trailing ".0" on integral values so 2 renders as 2.0.
func formatFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}

	abs := math.Abs(x)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	s := strconv.FormatFloat(x, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s
		}
	}
	return s + ".0"
}
