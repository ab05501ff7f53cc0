package engine_test

import (
	"errors"
	"math"
	"testing"

	"github.com/born-ml/grad/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func TestNew_Leaf(t *testing.T) {
	a := engine.New(3.5)

	assert.Equal(t, 3.5, a.Data())
	assert.Equal(t, 0.0, a.Grad())
	assert.Equal(t, engine.OpLeaf, a.Op())
	assert.True(t, a.IsLeaf())
	assert.Empty(t, a.Operands())
}

func TestAdd(t *testing.T) {
	a := engine.New(2)
	b := engine.New(3)
	c := a.Add(b)
	assert.Equal(t, 5.0, c.Data())

	c.Backward()
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, 1.0, b.Grad())
	assert.Equal(t, 1.0, c.Grad())
}

func TestMul(t *testing.T) {
	a := engine.New(2)
	b := engine.New(3)
	c := a.Mul(b)
	assert.Equal(t, 6.0, c.Data())

	c.Backward()
	assert.Equal(t, b.Data(), a.Grad())
	assert.Equal(t, a.Data(), b.Grad())
}

func TestSub(t *testing.T) {
	a := engine.New(5)
	b := engine.New(3)
	c := a.Sub(b)
	assert.Equal(t, 2.0, c.Data())

	c.Backward()
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, -1.0, b.Grad())
}

func TestDiv(t *testing.T) {
	a := engine.New(6)
	b := engine.New(2)
	c, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, 3.0, c.Data())

	c.Backward()
	assert.InDelta(t, 0.5, a.Grad(), tol)
	assert.InDelta(t, -1.5, b.Grad(), tol)
}

func TestDiv_ByZero(t *testing.T) {
	a := engine.New(1)
	b := engine.New(0)

	c, err := a.Div(b)
	require.Error(t, err)
	assert.Nil(t, c, "no node may be produced on a domain error")
	assert.ErrorIs(t, err, engine.ErrDivisionByZero)

	var de *engine.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, engine.OpDiv, de.Op)
	assert.Equal(t, 0.0, de.Operand)

	// Operands are left untouched.
	assert.Equal(t, 0.0, a.Grad())
	assert.Equal(t, 0.0, b.Grad())
}

func TestMustDiv_Panics(t *testing.T) {
	assert.Panics(t, func() {
		engine.New(1).MustDiv(engine.New(0))
	})
	assert.NotPanics(t, func() {
		engine.New(1).MustDiv(engine.New(4))
	})
}

func TestPow(t *testing.T) {
	a := engine.New(4)
	b, err := a.Pow(3)
	require.NoError(t, err)
	assert.Equal(t, 64.0, b.Data())
	assert.Equal(t, 3.0, b.Exponent())

	b.Backward()
	assert.InDelta(t, 3*4.0*4.0, a.Grad(), tol)
}

func TestPow_Domain(t *testing.T) {
	tests := []struct {
		name string
		base float64
		exp  float64
		ok   bool
	}{
		{"zero base, exponent 2", 0, 2, true},
		{"zero base, exponent 1", 0, 1, true},
		{"zero base, exponent 0.5", 0, 0.5, false},
		{"zero base, exponent -1", 0, -1, false},
		{"negative base, integer exponent", -2, 3, true},
		{"negative base, fractional exponent", -2, 0.5, false},
		{"positive base, negative exponent", 2, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := engine.New(tt.base).Pow(tt.exp)
			if tt.ok {
				require.NoError(t, err)
				assert.InDelta(t, math.Pow(tt.base, tt.exp), out.Data(), tol)
				return
			}
			assert.Nil(t, out)
			assert.ErrorIs(t, err, engine.ErrInvalidPower)
		})
	}
}

func TestNeg(t *testing.T) {
	a := engine.New(3)
	b := a.Neg()
	assert.Equal(t, -3.0, b.Data())

	b.Backward()
	assert.Equal(t, -1.0, a.Grad())
}

func TestReLU(t *testing.T) {
	a := engine.New(-1)
	b := engine.New(2)
	assert.Equal(t, 0.0, a.ReLU().Data())
	assert.Equal(t, 2.0, b.ReLU().Data())
}

func TestReLU_Gradients(t *testing.T) {
	a := engine.New(-5)
	b := engine.New(3)
	z := engine.New(0)
	reluA := a.ReLU()
	reluB := b.ReLU()
	reluZ := z.ReLU()

	reluA.Backward()
	reluB.Backward()
	reluZ.Backward()

	assert.Equal(t, 0.0, reluA.Data())
	assert.Equal(t, 3.0, reluB.Data())
	assert.Equal(t, 0.0, a.Grad())
	assert.Equal(t, 1.0, b.Grad())
	assert.Equal(t, 0.0, z.Grad(), "subgradient at zero is zero")
}

func TestExp(t *testing.T) {
	a := engine.New(2)
	b := a.Exp()
	assert.InDelta(t, math.Exp(2), b.Data(), tol)

	b.Backward()
	assert.InDelta(t, math.Exp(2), a.Grad(), tol)
	assert.Equal(t, b.Data(), a.Grad())
}

func TestTanh(t *testing.T) {
	a := engine.New(0.5)
	b := a.Tanh()
	assert.InDelta(t, math.Tanh(0.5), b.Data(), tol)

	b.Backward()
	th := math.Tanh(0.5)
	assert.InDelta(t, 1-th*th, a.Grad(), tol)
}

func TestLog(t *testing.T) {
	a := engine.New(4)
	b, err := a.Log()
	require.NoError(t, err)
	assert.InDelta(t, math.Log(4), b.Data(), tol)

	b.Backward()
	assert.InDelta(t, 0.25, a.Grad(), tol)

	for _, x := range []float64{0, -1} {
		out, err := engine.New(x).Log()
		assert.Nil(t, out)
		assert.ErrorIs(t, err, engine.ErrInvalidLog)
	}
}

func TestScalarHelpers(t *testing.T) {
	a := engine.New(3)
	b := a.MulScalar(2).AddScalar(1)
	assert.Equal(t, 7.0, b.Data())

	b.Backward()
	assert.Equal(t, 2.0, a.Grad())
}

func TestSum(t *testing.T) {
	a, b, c := engine.New(1), engine.New(2), engine.New(3)
	s := engine.Sum(a, b, c)
	assert.Equal(t, 6.0, s.Data())

	s.Backward()
	for _, v := range []*engine.Value{a, b, c} {
		assert.Equal(t, 1.0, v.Grad())
	}

	assert.Equal(t, 0.0, engine.Sum().Data())
}

func TestBackpropagationChain(t *testing.T) {
	a := engine.New(2)
	b := engine.New(-3)
	c := engine.New(10)
	d := a.Mul(b).Add(c)
	f := engine.New(-2)
	L := d.Mul(f)
	assert.Equal(t, -8.0, L.Data())

	L.Backward()
	assert.InDelta(t, 6.0, a.Grad(), tol)
	assert.InDelta(t, -4.0, b.Grad(), tol)
	assert.InDelta(t, -2.0, c.Grad(), tol)
	assert.InDelta(t, 4.0, f.Grad(), tol)
}

func TestChainedOperations(t *testing.T) {
	a := engine.New(2)
	b := engine.New(-3)
	c := engine.New(4)
	d := a.Mul(b).Add(c.MustPow(2))

	d.Backward()
	assert.Equal(t, 2.0*-3.0+4.0*4.0, d.Data())
	assert.InDelta(t, -3.0, a.Grad(), tol)
	assert.InDelta(t, 2.0, b.Grad(), tol)
	assert.InDelta(t, 2*c.Data(), c.Grad(), tol)
}

func TestFanOut_Accumulates(t *testing.T) {
	// y = a*b + a*c, so dy/da = b + c.
	a := engine.New(3)
	b := engine.New(4)
	c := engine.New(5)
	y := a.Mul(b).Add(a.Mul(c))

	y.Backward()
	assert.Equal(t, 9.0, a.Grad())
	assert.Equal(t, 3.0, b.Grad())
	assert.Equal(t, 3.0, c.Grad())
}

func TestFanOut_SameOperandTwice(t *testing.T) {
	// x*x and x+x reference one node from both operand slots.
	x := engine.New(3)
	sq := x.Mul(x)
	sq.Backward()
	assert.Equal(t, 6.0, x.Grad())

	x.ZeroGrad()
	dbl := x.Add(x)
	dbl.Backward()
	assert.Equal(t, 2.0, x.Grad())
}

func TestFanOut_Diamond(t *testing.T) {
	// b and c both depend on a; d joins them.
	a := engine.New(2)
	b := a.MulScalar(3)
	c := a.Exp()
	d := b.Mul(c)

	d.Backward()
	// d = 3a * e^a, dd/da = 3e^a + 3a e^a
	want := 3*math.Exp(2) + 3*2*math.Exp(2)
	assert.InDelta(t, want, a.Grad(), 1e-9)
}

func TestForwardIsStable(t *testing.T) {
	a := engine.New(2)
	b := engine.New(-3)
	c := a.Mul(b).Exp()
	before := []float64{a.Data(), b.Data(), c.Data()}

	assert.Equal(t, 0.0, a.Grad())
	assert.Equal(t, 0.0, c.Grad())

	c.Backward()
	c.Backward()
	assert.Equal(t, before, []float64{a.Data(), b.Data(), c.Data()})
}

func TestBackward_NoImplicitReset(t *testing.T) {
	a := engine.New(2)
	b := engine.New(3)
	c := a.Mul(b)

	c.Backward()
	c.Backward()
	// Operand gradients accumulate across passes; the root is re-seeded.
	assert.Equal(t, 6.0, a.Grad())
	assert.Equal(t, 4.0, b.Grad())
	assert.Equal(t, 1.0, c.Grad())
}

func TestGradientsReset(t *testing.T) {
	a := engine.New(2)
	b := engine.New(3)
	c := a.Mul(b)
	c.Backward()
	assert.Equal(t, 3.0, a.Grad())
	assert.Equal(t, 2.0, b.Grad())

	a.SetGrad(0)
	b.ZeroGrad()

	d := a.Add(b)
	d.Backward()
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, 1.0, b.Grad())
}

func TestBackward_UnreachableUntouched(t *testing.T) {
	a := engine.New(2)
	b := engine.New(3)
	other := engine.New(7)
	_ = a.Mul(other)

	c := a.Add(b)
	c.Backward()
	assert.Equal(t, 0.0, other.Grad())
}

func TestBackward_Leaf(t *testing.T) {
	a := engine.New(5)
	a.Backward()
	assert.Equal(t, 1.0, a.Grad())
}

func TestTopoOrder(t *testing.T) {
	a := engine.New(1)
	b := engine.New(2)
	ab := a.Mul(b)
	d := ab.Add(a)

	order := engine.TopoOrder(d)
	require.Len(t, order, 4, "each node appears once even under fan-out")
	assert.Same(t, d, order[0])

	pos := make(map[*engine.Value]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, v := range order {
		for _, operand := range v.Operands() {
			assert.Less(t, pos[v], pos[operand], "consumer must precede operand")
		}
	}

	// Deterministic across calls.
	assert.Equal(t, order, engine.TopoOrder(d))
}

func TestTopoOrder_Deep(t *testing.T) {
	// A long chain must not exhaust the goroutine stack.
	x := engine.New(1)
	y := x
	for i := 0; i < 100000; i++ {
		y = y.AddScalar(0)
	}
	y.Backward()
	assert.Equal(t, 1.0, x.Grad())
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		v    func() *engine.Value
		want string
	}{
		{"leaf", func() *engine.Value { return engine.New(2) }, "Value(data=2.0, grad=0)"},
		{"fraction", func() *engine.Value { return engine.New(0.5) }, "Value(data=0.5, grad=0)"},
		{"negative", func() *engine.Value { return engine.New(-3) }, "Value(data=-3.0, grad=0)"},
		{"small", func() *engine.Value { return engine.New(1e-5) }, "Value(data=1e-05, grad=0)"},
		{"after backward", func() *engine.Value {
			v := engine.New(2)
			v.Backward()
			return v
		}, "Value(data=2.0, grad=1.0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v().String())
		})
	}
}

func TestDomainError_Message(t *testing.T) {
	_, err := engine.New(1).Div(engine.New(0))
	assert.EqualError(t, err, "/: division by zero: operand 0")

	_, err = engine.New(0).Pow(-1)
	assert.EqualError(t, err, "**: power outside real domain: base 0, exponent -1")

	assert.False(t, errors.Is(err, engine.ErrDivisionByZero))
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "relu", engine.OpReLU.String())
	assert.Equal(t, "op(200)", engine.Op(200).String())
}
