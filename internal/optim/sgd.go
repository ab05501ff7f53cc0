package optim

import (
	"fmt"

	"github.com/born-ml/grad/internal/nn"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter]float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
//
// Panics if Momentum is outside [0, 1).
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Momentum < 0 || config.Momentum >= 1 {
		panic(fmt.Sprintf("NewSGD: momentum %v outside [0, 1)", config.Momentum))
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]float64),
	}
}

// Step performs a single optimization step.
//
// Every parameter gets a new value and therefore a fresh leaf with zero
// gradient on its next use.
func (s *SGD) Step() {
	for _, p := range s.params {
		g := p.Grad()
		if s.momentum != 0 {
			g = s.momentum*s.velocities[p] + g
			s.velocities[p] = g
		}
		p.SetData(p.Data() - s.lr*g)
	}
}

// ZeroGrad clears the gradient of every parameter.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR sets the learning rate used by later steps.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
