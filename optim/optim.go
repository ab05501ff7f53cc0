// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-descent optimizers: SGD with momentum
// and Adam.
//
// # Training Loop Pattern
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for step := range steps {
//	    // 1. Forward pass
//	    loss := nn.HingeLoss(scores(model, batch), labels)
//
//	    // 2. Backward pass
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//
//	    // 3. Update parameters
//	    optimizer.Step()
//	}
package optim

import (
	"github.com/born-ml/grad/internal/optim"
	"github.com/born-ml/grad/nn"
)

// Optimizer is the interface implemented by all optimizers.
type Optimizer = optim.Optimizer

// SGD is stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds configuration for SGD.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam is the Adam optimizer with bias-corrected moments.
type Adam = optim.Adam

// AdamConfig holds configuration for Adam.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer.
//
// Example:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.01})
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}

// LinearDecay decays lr0 linearly to 10% over total steps.
func LinearDecay(lr0 float64, step, total int) float64 {
	return optim.LinearDecay(lr0, step, total)
}
