package neuron

import (
	"fmt"
	"strings"

	"github.com/YuminosukeSato/goneuron/pkg/errors"
)

// Solver selects the training algorithm used by Fit. The set of solvers is
// closed: Stochastic, Batch, MiniBatch and Direct are the only
// implementations, and each carries the parameters it needs.
type Solver interface {
	// Name returns the short tag of the algorithm ("SGD", "BGD", "mBGD", "PINV").
	Name() string

	isSolver()
}

// Stochastic updates the weights after every sample, in sample order.
type Stochastic struct {
	Epochs int
}

// Batch updates the weights once per epoch with the gradient over all samples.
type Batch struct {
	Epochs int
}

// MiniBatch updates the weights once per chunk of BatchSize consecutive
// samples. The last chunk of an epoch may be smaller.
type MiniBatch struct {
	Epochs    int
	BatchSize int
}

// Direct solves the least-squares problem in closed form with the
// Moore-Penrose pseudo-inverse. It records no loss history.
type Direct struct{}

func (Stochastic) Name() string { return "SGD" }
func (Batch) Name() string      { return "BGD" }
func (MiniBatch) Name() string  { return "mBGD" }
func (Direct) Name() string     { return "PINV" }

func (Stochastic) isSolver() {}
func (Batch) isSolver()      {}
func (MiniBatch) isSolver()  {}
func (Direct) isSolver()     {}

// DefaultSolver returns the solver Fit is usually called with: batch
// gradient descent for DefaultEpochs epochs.
func DefaultSolver() Solver {
	return Batch{Epochs: DefaultEpochs}
}

// ParseSolver maps a solver tag to its variant. Tags are case-insensitive:
// "sgd" or "stochastic", "bgd" or "batch", "mbgd", "minibatch" or
// "mini-batch", and "pinv" or "direct". batchSize is only used by the
// mini-batch solver and epochs is ignored by the direct one.
func ParseSolver(name string, epochs, batchSize int) (Solver, error) {
	var s Solver
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sgd", "stochastic":
		s = Stochastic{Epochs: epochs}
	case "bgd", "batch":
		s = Batch{Epochs: epochs}
	case "mbgd", "minibatch", "mini-batch":
		s = MiniBatch{Epochs: epochs, BatchSize: batchSize}
	case "pinv", "direct":
		s = Direct{}
	default:
		return nil, errors.NewUnsupportedSolverError(name)
	}

	if err := validateSolver(s); err != nil {
		return nil, err
	}
	return s, nil
}

// resolveSolver dereferences pointer variants and rejects anything that is
// not one of the known solvers.
func resolveSolver(s Solver) (Solver, error) {
	switch v := s.(type) {
	case Stochastic, Batch, MiniBatch, Direct:
		return v, nil
	case *Stochastic:
		if v != nil {
			return *v, nil
		}
	case *Batch:
		if v != nil {
			return *v, nil
		}
	case *MiniBatch:
		if v != nil {
			return *v, nil
		}
	case *Direct:
		if v != nil {
			return *v, nil
		}
	}
	return nil, errors.NewUnsupportedSolverError(solverName(s))
}

func solverName(s Solver) string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf("%T", s)
}

func validateSolver(s Solver) error {
	switch v := s.(type) {
	case Stochastic:
		return validateEpochs(v.Epochs)
	case Batch:
		return validateEpochs(v.Epochs)
	case MiniBatch:
		if err := validateEpochs(v.Epochs); err != nil {
			return err
		}
		return validateBatchSize(v.BatchSize)
	}
	return nil
}

func validateEpochs(epochs int) error {
	if epochs < 1 {
		return errors.NewValidationError("epochs", "must be a positive integer", epochs)
	}
	return nil
}

func validateBatchSize(batchSize int) error {
	if batchSize < 1 {
		return errors.NewValidationError("batch_size", "must be a positive integer", batchSize)
	}
	return nil
}

// epochsOf returns the configured epoch count, zero for Direct.
func epochsOf(s Solver) int {
	switch v := s.(type) {
	case Stochastic:
		return v.Epochs
	case Batch:
		return v.Epochs
	case MiniBatch:
		return v.Epochs
	}
	return 0
}
