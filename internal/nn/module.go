// Package nn builds small neural networks out of scalar engine values.
//
// This package provides:
//   - Module interface: anything that owns trainable parameters
//   - Parameter: a named scalar with a per-step leaf Value
//   - Neuron, Layer, MLP: fully connected networks with ReLU activations
//   - Losses: MSE, hinge (max-margin), L2 regularization
//
// Networks here are meant for teaching-sized problems: every weight is a
// separate graph node.
package nn

// Module is the base interface for all neural network components.
type Module interface {
	// Parameters returns all trainable parameters of this module,
	// including those of nested modules.
	Parameters() []*Parameter
}

// ZeroGrad clears the gradient of every parameter in m.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// materialize creates the current leaf of every parameter so that
// concurrent forward passes only read them.
func materialize(m Module) {
	for _, p := range m.Parameters() {
		p.Value()
	}
}
