// Package dataset generates synthetic regression data in the
// features × samples layout used by the neuron package.
package dataset

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/goneuron/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// LinearConfig describes data drawn from y = w·x + b + noise.
type LinearConfig struct {
	Samples int       // number of columns of X
	Weights []float64 // true weights, one per feature
	Bias    float64   // true bias
	Noise   float64   // standard deviation of the Gaussian noise added to y
	Low     float64   // lower bound of the uniform feature range
	High    float64   // upper bound of the uniform feature range
	Seed    uint64    // seed of the PCG source
}

// DefaultLinearConfig returns 300 samples of y = -x + 7 with unit noise,
// x uniform in [-1, 1).
func DefaultLinearConfig() LinearConfig {
	return LinearConfig{
		Samples: 300,
		Weights: []float64{-1},
		Bias:    7,
		Noise:   1,
		Low:     -1,
		High:    1,
	}
}

// Linear draws X (F × Samples) uniformly from [Low, High) and
// Y (1 × Samples) as w·X + b plus Gaussian noise. The same config always
// produces the same data.
func Linear(cfg LinearConfig) (X, Y *mat.Dense, err error) {
	if cfg.Samples < 1 {
		return nil, nil, errors.NewValidationError("samples", "must be a positive integer", cfg.Samples)
	}
	if len(cfg.Weights) == 0 {
		return nil, nil, errors.NewValidationError("weights", "must not be empty", len(cfg.Weights))
	}
	if !(cfg.High > cfg.Low) {
		return nil, nil, errors.NewValidationError("high", "must be greater than low", cfg.High)
	}
	if cfg.Noise < 0 {
		return nil, nil, errors.NewValidationError("noise", "must be non-negative", cfg.Noise)
	}

	src := rand.NewPCG(cfg.Seed, cfg.Seed)
	uniform := distuv.Uniform{Min: cfg.Low, Max: cfg.High, Src: src}

	features := len(cfg.Weights)
	X = mat.NewDense(features, cfg.Samples, nil)
	for i := 0; i < features; i++ {
		row := X.RawRowView(i)
		for j := range row {
			row[j] = uniform.Rand()
		}
	}

	Y = mat.NewDense(1, cfg.Samples, nil)
	Y.Mul(mat.NewDense(1, features, cfg.Weights), X)

	y := Y.RawRowView(0)
	floats.AddConst(cfg.Bias, y)
	if cfg.Noise > 0 {
		normal := distuv.Normal{Mu: 0, Sigma: cfg.Noise, Src: src}
		for j := range y {
			y[j] += normal.Rand()
		}
	}

	return X, Y, nil
}
