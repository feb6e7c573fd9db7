// Package log defines standard attribute keys for training and inference.
//
// Keys follow a hierarchical naming convention ("model.name",
// "data.samples") so log output can be filtered by category.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model.
	// Examples: "LinearNeuron"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "neuron", "dataset", "plot", "cli"
	ComponentKey = "ml.component"
)

// Data Shape
const (
	// SamplesKey indicates the number of samples (columns of X).
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (rows of X).
	FeaturesKey = "data.features"

	// BatchSizeKey indicates the size of mini-batches.
	BatchSizeKey = "data.batch_size"

	// BatchesKey indicates the number of mini-batches per epoch.
	BatchesKey = "data.batches"
)

// Training and Metrics
const (
	// SolverKey names the training algorithm ("SGD", "BGD", "mBGD", "PINV").
	SolverKey = "training.solver"

	// EpochKey records the current epoch number during training.
	EpochKey = "training.epoch"

	// EpochsKey records the configured number of epochs.
	EpochsKey = "training.epochs"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LossKey records the half mean squared error.
	LossKey = "metrics.loss"

	// RMSEKey records the root mean squared error.
	RMSEKey = "metrics.rmse"

	// MAEKey records the mean absolute error.
	MAEKey = "metrics.mae"

	// R2ScoreKey records the coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// WeightsKey records the weight vector.
	WeightsKey = "model.weights"

	// BiasKey records the bias term.
	BiasKey = "model.bias"
)

// Hyperparameters and Configuration
const (
	// LearningRateKey records the learning rate for gradient-based solvers.
	LearningRateKey = "hyperparams.learning_rate"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"

	// OutputPathKey records a file written by the command line tool.
	OutputPathKey = "config.output_path"
)

// Error Context
const (
	// ErrorKey holds the error message.
	ErrorKey = "error"

	// StacktraceKey contains the stack trace recorded by cockroachdb/errors.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"
)
