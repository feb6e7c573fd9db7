package neuron

import (
	"github.com/YuminosukeSato/goneuron/pkg/log"
)

// Option is a function that configures a LinearNeuron
type Option func(*LinearNeuron)

// WithLearningRate sets the learning rate used by the gradient solvers.
// It must be positive; NewLinearNeuron rejects anything else.
func WithLearningRate(eta float64) Option {
	return func(n *LinearNeuron) {
		n.learningRate = eta
	}
}

// WithRandomState seeds the generator used for weight initialization and
// Reset, making them reproducible.
func WithRandomState(seed uint64) Option {
	return func(n *LinearNeuron) {
		n.seed = seed
		n.seeded = true
	}
}

// WithLogger sets the logger used for training progress
func WithLogger(logger log.Logger) Option {
	return func(n *LinearNeuron) {
		n.logger = logger
	}
}
