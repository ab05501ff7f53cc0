package nn

import "github.com/born-ml/grad/internal/engine"

// Parameter is a named trainable scalar.
//
// Engine values are immutable once built, so a Parameter keeps its current
// value as a plain float64 and hands out a leaf Value for the graph being
// built. SetData replaces the number and drops the leaf; the next call to
// Value starts a fresh leaf with zero gradient.
//
// Example:
//
//	w := nn.NewParameter("w", 0.5)
//	loss := w.Value().Mul(x)
//	loss.Backward()
//	w.SetData(w.Data() - lr*w.Grad())
type Parameter struct {
	name string
	data float64
	leaf *engine.Value // Leaf for the current step, nil until first use
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, data float64) *Parameter {
	return &Parameter{
		name: name,
		data: data,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Data returns the current parameter value.
func (p *Parameter) Data() float64 {
	return p.data
}

// Value returns the leaf representing this parameter in the graph under
// construction. Repeated calls return the same leaf until SetData.
//
// Not safe for concurrent first use; ForwardBatch materializes leaves
// before fanning out.
func (p *Parameter) Value() *engine.Value {
	if p.leaf == nil {
		p.leaf = engine.New(p.data).SetLabel(p.name)
	}
	return p.leaf
}

// Grad returns the gradient accumulated on the current leaf.
//
// Returns 0 if the parameter has not been used since the last update.
func (p *Parameter) Grad() float64 {
	if p.leaf == nil {
		return 0
	}
	return p.leaf.Grad()
}

// ZeroGrad clears the gradient of the current leaf.
func (p *Parameter) ZeroGrad() {
	if p.leaf != nil {
		p.leaf.ZeroGrad()
	}
}

// SetData replaces the parameter value. Graphs built before the call keep
// referencing the old leaf.
func (p *Parameter) SetData(x float64) {
	p.data = x
	p.leaf = nil
}
