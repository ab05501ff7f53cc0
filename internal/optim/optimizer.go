// Package optim implements gradient-descent optimizers for nn parameters.
//
// This package provides:
//   - Optimizer interface: base interface for all optimizers
//   - SGD: stochastic gradient descent with optional momentum
//   - LinearDecay: a learning-rate schedule
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for step := range steps {
//	    loss := computeLoss(model, data)
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter using the gradient
	// accumulated on its current leaf.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// Backward accumulates, so this should be called before each backward
	// pass that reuses leaves from a previous one.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64

	// SetLR changes the learning rate, for schedules.
	SetLR(lr float64)
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// LinearDecay returns lr0 decayed linearly to 10% of its value over
// total steps: lr0 * (1 - 0.9 * step/total). Steps past total stay at
// the final rate.
func LinearDecay(lr0 float64, step, total int) float64 {
	if total <= 0 {
		return lr0
	}
	frac := min(float64(step)/float64(total), 1)
	return lr0 * (1 - 0.9*frac)
}
