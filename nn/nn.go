// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides small neural networks built from scalar values.
package nn

import (
	"github.com/born-ml/grad/engine"
	"github.com/born-ml/grad/internal/nn"
	"github.com/born-ml/grad/internal/parallel"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Parameter represents a trainable scalar parameter.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and value.
func NewParameter(name string, data float64) *Parameter {
	return nn.NewParameter(name, data)
}

// Init configures weight initialization.
type Init = nn.Init

// Layers

// Neuron computes act(w·x + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(nin int, nonlinear bool, init Init) *Neuron {
	return nn.NewNeuron(nin, nonlinear, init)
}

// Layer is a set of neurons sharing the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(nin, nout int, nonlinear bool, init Init) *Layer {
	return nn.NewLayer(nin, nout, nonlinear, init)
}

// MLP is a multi-layer perceptron with ReLU hidden layers.
type MLP = nn.MLP

// NewMLP creates an MLP.
//
// Example:
//
//	model := nn.NewMLP(2, []int{16, 16, 1}, nn.Init{Seed: 42})
func NewMLP(nin int, sizes []int, init Init) *MLP {
	return nn.NewMLP(nin, sizes, init)
}

// ParallelConfig controls how MLP.ForwardBatch spreads samples over
// goroutines. The zero value builds graphs sequentially.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns a config sized to the available CPUs.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Inputs wraps raw numbers as leaf values.
func Inputs(xs ...float64) []*engine.Value {
	return nn.Inputs(xs...)
}

// ZeroGrad clears the gradient of every parameter in m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// Losses

// MSE computes mean squared error.
func MSE(predictions, targets []*engine.Value) *engine.Value {
	return nn.MSE(predictions, targets)
}

// HingeLoss computes mean(relu(1 - y·score)) for labels in {-1, +1}.
func HingeLoss(scores []*engine.Value, labels []float64) *engine.Value {
	return nn.HingeLoss(scores, labels)
}

// L2 returns alpha * Σ p².
func L2(params []*Parameter, alpha float64) *engine.Value {
	return nn.L2(params, alpha)
}

// Accuracy returns the fraction of scores whose sign matches the label.
func Accuracy(scores []*engine.Value, labels []float64) float64 {
	return nn.Accuracy(scores, labels)
}
