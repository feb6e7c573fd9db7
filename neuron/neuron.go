// Package neuron は単一の線形ニューロン（線形回帰ユニット）を提供する。
//
// 行列はすべて「特徴量 × サンプル」のレイアウトで扱う。X の各列が1サンプルの
// 特徴ベクトル、Y は 1 × サンプル の目的変数である。
//
// 学習アルゴリズムは Solver で選択する:
//
//	n, err := neuron.NewLinearNeuron(1, neuron.WithLearningRate(0.1))
//	history, err := n.Fit(X, Y, neuron.MiniBatch{Epochs: 500, BatchSize: 20})
//
// Fit はニューロン自身の重みとバイアスを直接更新する。続けて Fit を呼ぶと
// 現在の重みから学習を再開する。最初からやり直す場合は Reset を呼ぶ。
package neuron

import (
	"math"
	"math/rand/v2"

	"github.com/YuminosukeSato/goneuron/core/model"
	"github.com/YuminosukeSato/goneuron/metrics"
	"github.com/YuminosukeSato/goneuron/pkg/errors"
	"github.com/YuminosukeSato/goneuron/pkg/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultLearningRate は学習率の既定値
	DefaultLearningRate = 0.1
	// DefaultEpochs は反復型ソルバーのエポック数の既定値
	DefaultEpochs = 500
	// DefaultBatchSize はミニバッチサイズの既定値
	DefaultBatchSize = 20

	modelName       = "LinearNeuron"
	snapshotVersion = "1.0"
)

// LinearNeuron は重みベクトルとバイアスを持つ線形ニューロン
type LinearNeuron struct {
	weights      *mat.VecDense // 重み（長さ = 特徴量の数）
	bias         float64       // バイアス
	learningRate float64       // 学習率（生成後は不変）

	seed   uint64
	seeded bool
	rng    *rand.Rand
	logger log.Logger
}

var _ model.Regressor = (*LinearNeuron)(nil)

// NewLinearNeuron は nFeatures 個の入力を持つニューロンを作成する。
// 重みとバイアスは [-1, 1) の一様乱数で初期化される。
func NewLinearNeuron(nFeatures int, opts ...Option) (*LinearNeuron, error) {
	if nFeatures < 1 {
		return nil, errors.NewValidationError("n_features", "must be a positive integer", nFeatures)
	}

	n := &LinearNeuron{
		learningRate: DefaultLearningRate,
	}

	for _, opt := range opts {
		opt(n)
	}

	if !(n.learningRate > 0) || math.IsInf(n.learningRate, 1) {
		return nil, errors.NewValidationError("learning_rate", "must be a positive number", n.learningRate)
	}

	if n.seeded {
		n.rng = rand.New(rand.NewPCG(n.seed, n.seed))
	} else {
		n.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	if n.logger == nil {
		n.logger = log.GetLogger()
	}
	n.logger = n.logger.With(log.ModelNameKey, modelName, log.ComponentKey, "neuron")

	n.weights = mat.NewVecDense(nFeatures, nil)
	n.initialize()

	return n, nil
}

// initialize は重みとバイアスを -1 + 2*U[0,1) で引き直す
func (n *LinearNeuron) initialize() {
	for i := 0; i < n.weights.Len(); i++ {
		n.weights.SetVec(i, -1+2*n.rng.Float64())
	}
	n.bias = -1 + 2*n.rng.Float64()
}

// Reset は重みとバイアスを乱数で再初期化する。
// 乱数列は続きから使われるため、直前の初期値とは異なる値になる。
func (n *LinearNeuron) Reset() {
	n.initialize()
}

// Predict は 1 × サンプル の予測 w·X + b を返す
func (n *LinearNeuron) Predict(X mat.Matrix) (*mat.Dense, error) {
	r, c := X.Dims()
	if r != n.weights.Len() {
		return nil, errors.NewDimensionError("LinearNeuron.Predict", n.weights.Len(), r, 0)
	}
	if c == 0 {
		return nil, errors.NewModelError("LinearNeuron.Predict", "empty data", errors.ErrEmptyData)
	}

	predictions := mat.NewDense(1, c, nil)
	predictions.Mul(n.weights.T(), X)
	floats.AddConst(n.bias, predictions.RawRowView(0))

	return predictions, nil
}

// Loss は平均二乗誤差の1/2、すなわち (1/(2n)) Σ(Y - Predict(X))² を返す
func (n *LinearNeuron) Loss(X, Y mat.Matrix) (float64, error) {
	if _, _, err := checkTargets("LinearNeuron.Loss", X, Y); err != nil {
		return 0, err
	}

	predictions, err := n.Predict(X)
	if err != nil {
		return 0, err
	}

	mse, err := metrics.MSEMatrix(Y, predictions)
	if err != nil {
		return 0, err
	}
	return mse / 2, nil
}

// Score は予測の決定係数（R²）を返す
func (n *LinearNeuron) Score(X, Y mat.Matrix) (float64, error) {
	if _, _, err := checkTargets("LinearNeuron.Score", X, Y); err != nil {
		return 0, err
	}

	predictions, err := n.Predict(X)
	if err != nil {
		return 0, err
	}

	yTrue, err := metrics.RowVector("LinearNeuron.Score", Y)
	if err != nil {
		return 0, err
	}
	yPred, err := metrics.RowVector("LinearNeuron.Score", predictions)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(yTrue, yPred)
}

// Batches は X と Y の列を batchSize ずつ区切るイテレータを返す
func (n *LinearNeuron) Batches(X, Y mat.Matrix, batchSize int) (*BatchIterator, error) {
	return NewBatchIterator(X, Y, batchSize)
}

// Weights は学習された重みのコピーを返す
func (n *LinearNeuron) Weights() []float64 {
	weights := make([]float64, n.weights.Len())
	for i := range weights {
		weights[i] = n.weights.AtVec(i)
	}
	return weights
}

// Bias は学習されたバイアスを返す
func (n *LinearNeuron) Bias() float64 {
	return n.bias
}

// LearningRate は学習率を返す
func (n *LinearNeuron) LearningRate() float64 {
	return n.learningRate
}

// NFeatures は入力特徴量の数を返す
func (n *LinearNeuron) NFeatures() int {
	return n.weights.Len()
}

// Snapshot は現在の重みとバイアスを ModelWeights として返す
func (n *LinearNeuron) Snapshot() *model.ModelWeights {
	return &model.ModelWeights{
		ModelType:    modelName,
		Version:      snapshotVersion,
		Coefficients: n.Weights(),
		Intercept:    n.bias,
		Hyperparameters: map[string]interface{}{
			"learning_rate": n.learningRate,
			"n_features":    n.weights.Len(),
		},
	}
}

// Restore は Snapshot で保存した重みとバイアスを書き戻す。
// 学習率は変更しない。
func (n *LinearNeuron) Restore(mw *model.ModelWeights) error {
	if err := mw.Validate(); err != nil {
		return err
	}
	if mw.ModelType != modelName {
		return errors.NewValidationError("model_type", "must be "+modelName, mw.ModelType)
	}
	if len(mw.Coefficients) != n.weights.Len() {
		return errors.NewDimensionError("LinearNeuron.Restore", n.weights.Len(), len(mw.Coefficients), 0)
	}

	for i, w := range mw.Coefficients {
		n.weights.SetVec(i, w)
	}
	n.bias = mw.Intercept
	return nil
}
