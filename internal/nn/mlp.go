package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/grad/internal/engine"
	"github.com/born-ml/grad/internal/parallel"
)

// Neuron computes act(w·x + b) over scalar inputs.
//
// Weights are drawn uniformly from the Init range, the bias starts at 0.
// act is ReLU when the neuron is nonlinear, identity otherwise.
type Neuron struct {
	weights   []*Parameter
	bias      *Parameter
	nonlinear bool
}

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(nin int, nonlinear bool, init Init) *Neuron {
	return newNeuron("", nin, nonlinear, newInitializer(init))
}

func newNeuron(prefix string, nin int, nonlinear bool, in *initializer) *Neuron {
	weights := make([]*Parameter, nin)
	for i := range weights {
		weights[i] = NewParameter(fmt.Sprintf("%sw%d", prefix, i), in.uniform())
	}
	return &Neuron{
		weights:   weights,
		bias:      NewParameter(prefix+"b", 0),
		nonlinear: nonlinear,
	}
}

// Forward computes the neuron output for one sample.
func (n *Neuron) Forward(x []*engine.Value) *engine.Value {
	if len(x) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(x)))
	}

	act := n.bias.Value()
	for i, w := range n.weights {
		act = act.Add(w.Value().Mul(x[i]))
	}
	if n.nonlinear {
		return act.ReLU()
	}
	return act
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

func (n *Neuron) String() string {
	kind := "Linear"
	if n.nonlinear {
		kind = "ReLU"
	}
	return fmt.Sprintf("%sNeuron(%d)", kind, len(n.weights))
}

// Layer is a set of independent neurons sharing the same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(nin, nout int, nonlinear bool, init Init) *Layer {
	return newLayer("", nin, nout, nonlinear, newInitializer(init))
}

func newLayer(prefix string, nin, nout int, nonlinear bool, in *initializer) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = newNeuron(fmt.Sprintf("%sn%d.", prefix, i), nin, nonlinear, in)
	}
	return &Layer{neurons: neurons}
}

// Forward returns one output per neuron.
func (l *Layer) Forward(x []*engine.Value) []*engine.Value {
	out := make([]*engine.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(x)
	}
	return out
}

// Parameters returns the parameters of every neuron in order.
func (l *Layer) Parameters() []*Parameter {
	var params []*Parameter
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

func (l *Layer) String() string {
	parts := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		parts[i] = n.String()
	}
	return "Layer of [" + strings.Join(parts, ", ") + "]"
}

// MLP is a multi-layer perceptron. Hidden layers use ReLU, the output
// layer is linear.
//
// Example:
//
//	model := nn.NewMLP(2, []int{16, 16, 1}, nn.Init{Seed: 42})
//	score := model.Forward(nn.Inputs(0.5, -1.2))[0]
type MLP struct {
	nin    int
	layers []*Layer
}

// NewMLP creates an MLP with nin inputs and one layer per entry of
// sizes. Parameter names encode their position, e.g. "l1.n3.w0".
func NewMLP(nin int, sizes []int, init Init) *MLP {
	if len(sizes) == 0 {
		panic("NewMLP: at least one layer size is required")
	}

	in := newInitializer(init)
	layers := make([]*Layer, len(sizes))
	prev := nin
	for i, size := range sizes {
		layers[i] = newLayer(fmt.Sprintf("l%d.", i), prev, size, i != len(sizes)-1, in)
		prev = size
	}
	return &MLP{nin: nin, layers: layers}
}

// Forward runs x through every layer.
func (m *MLP) Forward(x []*engine.Value) []*engine.Value {
	for _, l := range m.layers {
		x = l.Forward(x)
	}
	return x
}

// ForwardBatch builds one graph per sample, fanning samples out over
// worker goroutines. All graphs share the current parameter leaves, so a
// loss summed over the batch backpropagates into every parameter once.
func (m *MLP) ForwardBatch(batch [][]float64, cfg parallel.Config) [][]*engine.Value {
	materialize(m)
	return parallel.Map(len(batch), func(i int) []*engine.Value {
		return m.Forward(Inputs(batch[i]...))
	}, cfg)
}

// Parameters returns the parameters of every layer in order.
func (m *MLP) Parameters() []*Parameter {
	var params []*Parameter
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

func (m *MLP) String() string {
	parts := make([]string, len(m.layers))
	for i, l := range m.layers {
		parts[i] = l.String()
	}
	return "MLP of [" + strings.Join(parts, ", ") + "]"
}

// Inputs wraps raw numbers as leaf values.
func Inputs(xs ...float64) []*engine.Value {
	out := make([]*engine.Value, len(xs))
	for i, x := range xs {
		out[i] = engine.New(x)
	}
	return out
}
