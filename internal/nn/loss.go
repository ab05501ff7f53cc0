package nn

import (
	"fmt"

	"github.com/born-ml/grad/internal/engine"
)

// MSE computes mean((predictions - targets)²).
func MSE(predictions, targets []*engine.Value) *engine.Value {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("MSE: %d predictions for %d targets", len(predictions), len(targets)))
	}
	if len(predictions) == 0 {
		panic("MSE: empty input")
	}

	terms := make([]*engine.Value, len(predictions))
	for i, p := range predictions {
		d := p.Sub(targets[i])
		terms[i] = d.Mul(d)
	}
	return engine.Sum(terms...).MulScalar(1 / float64(len(terms)))
}

// HingeLoss computes the max-margin loss mean(relu(1 - y·score)) for
// labels in {-1, +1}.
func HingeLoss(scores []*engine.Value, labels []float64) *engine.Value {
	if len(scores) != len(labels) {
		panic(fmt.Sprintf("HingeLoss: %d scores for %d labels", len(scores), len(labels)))
	}
	if len(scores) == 0 {
		panic("HingeLoss: empty input")
	}

	terms := make([]*engine.Value, len(scores))
	for i, s := range scores {
		terms[i] = s.MulScalar(-labels[i]).AddScalar(1).ReLU()
	}
	return engine.Sum(terms...).MulScalar(1 / float64(len(terms)))
}

// L2 returns alpha * Σ p² over params.
func L2(params []*Parameter, alpha float64) *engine.Value {
	terms := make([]*engine.Value, len(params))
	for i, p := range params {
		v := p.Value()
		terms[i] = v.Mul(v)
	}
	return engine.Sum(terms...).MulScalar(alpha)
}

// Accuracy returns the fraction of scores whose sign matches the label.
func Accuracy(scores []*engine.Value, labels []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	correct := 0
	for i, s := range scores {
		if (s.Data() > 0) == (labels[i] > 0) {
			correct++
		}
	}
	return float64(correct) / float64(len(scores))
}
