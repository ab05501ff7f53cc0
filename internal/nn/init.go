package nn

import "math/rand"

// Init configures weight initialization.
type Init struct {
	Seed  int64   // Seed for the random source (default: 1)
	Scale float64 // Weights are drawn from U(-Scale, Scale) (default: 1)
}

func (c Init) withDefaults() Init {
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.Scale == 0 {
		c.Scale = 1
	}
	return c
}

// initializer draws weights for one network.
type initializer struct {
	rng   *rand.Rand
	scale float64
}

func newInitializer(c Init) *initializer {
	c = c.withDefaults()
	return &initializer{
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		rng:   rand.New(rand.NewSource(c.Seed)),
		scale: c.Scale,
	}
}

// uniform returns a value in [-scale, scale).
func (in *initializer) uniform() float64 {
	return (in.rng.Float64()*2 - 1) * in.scale
}
