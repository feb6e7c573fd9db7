// Package goneuron is a single linear neuron for Go, trainable with
// stochastic, batch and mini-batch gradient descent or solved directly with
// the Moore-Penrose pseudo-inverse.
//
// It exists to show how different optimization strategies converge to the
// same linear model y = w·x + b.
//
// # Data Layout
//
// Matrices are features × samples: each column of X is one sample and the
// targets Y form a single 1 × n row. This is the transpose of the
// samples × features convention used by most Go ML code.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/goneuron/dataset"
//	    "github.com/YuminosukeSato/goneuron/neuron"
//	)
//
//	func main() {
//	    // 300 samples of y = -x + 7 + noise
//	    X, Y, err := dataset.Linear(dataset.DefaultLinearConfig())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    n, err := neuron.NewLinearNeuron(1, neuron.WithLearningRate(0.1))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    history, err := n.Fit(X, Y, neuron.MiniBatch{Epochs: 500, BatchSize: 20})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(n.Weights(), n.Bias(), history[len(history)-1])
//	}
//
// # Solvers
//
//   - neuron.Stochastic: one update per sample, in sample order
//   - neuron.Batch: one update per epoch over all samples (the default)
//   - neuron.MiniBatch: one update per chunk of consecutive samples
//   - neuron.Direct: closed-form least squares, no loss history
//
// # Packages
//
//   - neuron: the linear neuron, solvers and batch iterator
//   - dataset: synthetic linear regression data
//   - plot: fit line and loss curve rendering (gonum/plot)
//   - metrics: MSE, RMSE, MAE, R²
//   - core/model: Predictor / Regressor interfaces and weight snapshots
//   - core/parallel: range splitting across goroutines
//   - pkg/errors: structured errors on cockroachdb/errors
//   - pkg/log: structured logging on zerolog
//
// The neuron command (cmd/neuron) trains on generated data and writes plots:
//
//	go run ./cmd/neuron -solver sgd -epochs 100 -out plots/
package goneuron
