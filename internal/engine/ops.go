package engine

import "math"

// Add returns v + other.
//
// Backward: d/dv = 1, d/dother = 1.
func (v *Value) Add(other *Value) *Value {
	return newResult(v.data+other.data, OpAdd, v, other)
}

// Sub returns v - other.
//
// Backward: d/dv = 1, d/dother = -1.
func (v *Value) Sub(other *Value) *Value {
	return newResult(v.data-other.data, OpSub, v, other)
}

// Mul returns v * other.
//
// Backward: d/dv = other, d/dother = v.
func (v *Value) Mul(other *Value) *Value {
	return newResult(v.data*other.data, OpMul, v, other)
}

// Div returns v / other.
//
// Backward: d/dv = 1/other, d/dother = -v/other².
//
// Returns a *DomainError wrapping ErrDivisionByZero when other is zero;
// no Value is created in that case.
func (v *Value) Div(other *Value) (*Value, error) {
	if other.data == 0 {
		return nil, &DomainError{Op: OpDiv, Operand: other.data, Err: ErrDivisionByZero}
	}
	return newResult(v.data/other.data, OpDiv, v, other), nil
}

// Pow returns v raised to the constant exponent n.
//
// Backward: d/dv = n * v^(n-1).
//
// Returns a *DomainError wrapping ErrInvalidPower when the result or its
// derivative leaves the reals: a zero base with n < 1, or a negative base
// with a non-integer exponent.
func (v *Value) Pow(n float64) (*Value, error) {
	if (v.data == 0 && n < 1) || (v.data < 0 && n != math.Trunc(n)) {
		return nil, &DomainError{Op: OpPow, Operand: v.data, Exponent: n, Err: ErrInvalidPower}
	}
	out := newResult(math.Pow(v.data, n), OpPow, v)
	out.exponent = n
	return out, nil
}

// Neg returns -v.
//
// Backward: d/dv = -1.
func (v *Value) Neg() *Value {
	return newResult(-v.data, OpNeg, v)
}

// ReLU returns max(0, v).
//
// Backward: d/dv = 1 if v > 0, else 0 (the subgradient at 0 is 0).
func (v *Value) ReLU() *Value {
	return newResult(math.Max(0, v.data), OpReLU, v)
}

// Exp returns e^v.
//
// Backward: d/dv = e^v, read back from the forward result.
func (v *Value) Exp() *Value {
	return newResult(math.Exp(v.data), OpExp, v)
}

// Tanh returns the hyperbolic tangent of v.
//
// Backward: d/dv = 1 - tanh²(v), read back from the forward result.
func (v *Value) Tanh() *Value {
	return newResult(math.Tanh(v.data), OpTanh, v)
}

// Log returns the natural logarithm of v.
//
// Backward: d/dv = 1/v.
//
// Returns a *DomainError wrapping ErrInvalidLog when v is not positive.
func (v *Value) Log() (*Value, error) {
	if v.data <= 0 {
		return nil, &DomainError{Op: OpLog, Operand: v.data, Err: ErrInvalidLog}
	}
	return newResult(math.Log(v.data), OpLog, v), nil
}

// AddScalar returns v + k, wrapping k in a fresh leaf.
func (v *Value) AddScalar(k float64) *Value {
	return v.Add(New(k))
}

// MulScalar returns v * k, wrapping k in a fresh leaf.
func (v *Value) MulScalar(k float64) *Value {
	return v.Mul(New(k))
}

// MustDiv is like Div but panics on a domain error.
// Intended for expressions over literals known to be valid.
func (v *Value) MustDiv(other *Value) *Value {
	out, err := v.Div(other)
	if err != nil {
		panic(err)
	}
	return out
}

// MustPow is like Pow but panics on a domain error.
func (v *Value) MustPow(n float64) *Value {
	out, err := v.Pow(n)
	if err != nil {
		panic(err)
	}
	return out
}

// MustLog is like Log but panics on a domain error.
func (v *Value) MustLog() *Value {
	out, err := v.Log()
	if err != nil {
		panic(err)
	}
	return out
}

// Sum returns the sum of values as a left-leaning chain of additions.
// An empty input yields a zero leaf.
func Sum(values ...*Value) *Value {
	if len(values) == 0 {
		return New(0)
	}
	out := values[0]
	for _, v := range values[1:] {
		out = out.Add(v)
	}
	return out
}
