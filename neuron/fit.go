package neuron

import (
	"context"
	"math"
	"time"

	"github.com/YuminosukeSato/goneuron/core/parallel"
	"github.com/YuminosukeSato/goneuron/pkg/errors"
	"github.com/YuminosukeSato/goneuron/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// 拡張行列の列埋めを並列化するサンプル数の閾値
const augmentThreshold = 1000

// Fit はソルバー s でニューロンを学習し、エポックごとの損失の履歴を返す。
// 反復型ソルバーでは履歴の長さはエポック数に等しく、Direct では空になる。
//
// 重みとバイアスはその場で更新され、呼び出しをまたいで保持される。履歴は
// 呼び出しごとに新しく作られる。未知のソルバーや不正な入力ではエラーを返し、
// 重みとバイアスは変更しない。
func (n *LinearNeuron) Fit(X, Y mat.Matrix, s Solver) (history []float64, err error) {
	defer errors.Recover(&err, "LinearNeuron.Fit")

	solver, err := resolveSolver(s)
	if err != nil {
		return nil, err
	}
	if err := validateSolver(solver); err != nil {
		return nil, err
	}

	features, samples, err := checkTargets("LinearNeuron.Fit", X, Y)
	if err != nil {
		return nil, err
	}
	if features != n.weights.Len() {
		return nil, errors.NewDimensionError("LinearNeuron.Fit", n.weights.Len(), features, 0)
	}

	logger := n.logger.With(log.OperationKey, log.OperationFit, log.SolverKey, solver.Name())
	logger.Debug("Training started",
		log.SamplesKey, samples,
		log.FeaturesKey, features,
		log.EpochsKey, epochsOf(solver),
		log.LearningRateKey, n.learningRate,
	)
	start := time.Now()

	switch v := solver.(type) {
	case Stochastic:
		history, err = n.fitStochastic(X, Y, v.Epochs, logger)
	case Batch:
		history, err = n.fitBatch(X, Y, v.Epochs, logger)
	case MiniBatch:
		history, err = n.fitMiniBatch(X, Y, v.Epochs, v.BatchSize, logger)
	case Direct:
		history, err = n.fitDirect(X, Y)
	}
	if err != nil {
		logger.Error("Training failed", err)
		return nil, err
	}

	fields := []any{
		log.DurationMsKey, time.Since(start).Milliseconds(),
		log.WeightsKey, n.Weights(),
		log.BiasKey, n.bias,
	}
	if len(history) > 0 {
		fields = append(fields, log.LossKey, history[len(history)-1])
	}
	logger.Info("Training completed", fields...)

	return history, nil
}

// fitStochastic はサンプルごとに添字の昇順で重みを更新する
func (n *LinearNeuron) fitStochastic(X, Y mat.Matrix, epochs int, logger log.Logger) ([]float64, error) {
	features, samples := X.Dims()
	history := make([]float64, 0, epochs)
	tracker := &epochTracker{logger: logger}

	buf := make([]float64, features)
	x := mat.NewVecDense(features, buf)

	for epoch := 0; epoch < epochs; epoch++ {
		for i := 0; i < samples; i++ {
			mat.Col(buf, i, X)
			residual := Y.At(0, i) - (mat.Dot(n.weights, x) + n.bias)

			n.weights.AddScaledVec(n.weights, n.learningRate*residual, x)
			n.bias += n.learningRate * residual
		}

		loss, err := n.recordEpoch(X, Y, epoch, tracker)
		if err != nil {
			return nil, err
		}
		history = append(history, loss)
	}
	return history, nil
}

// fitBatch は全サンプルの勾配でエポックごとに1回更新する
func (n *LinearNeuron) fitBatch(X, Y mat.Matrix, epochs int, logger log.Logger) ([]float64, error) {
	history := make([]float64, 0, epochs)
	tracker := &epochTracker{logger: logger}

	for epoch := 0; epoch < epochs; epoch++ {
		if err := n.step(X, Y); err != nil {
			return nil, err
		}

		loss, err := n.recordEpoch(X, Y, epoch, tracker)
		if err != nil {
			return nil, err
		}
		history = append(history, loss)
	}
	return history, nil
}

// fitMiniBatch はエポックごとに新しいイテレータを作り、チャンクごとに更新する。
// 損失はチャンクではなく全データで記録する。
func (n *LinearNeuron) fitMiniBatch(X, Y mat.Matrix, epochs, batchSize int, logger log.Logger) ([]float64, error) {
	history := make([]float64, 0, epochs)
	tracker := &epochTracker{logger: logger}

	for epoch := 0; epoch < epochs; epoch++ {
		it, err := NewBatchIterator(X, Y, batchSize)
		if err != nil {
			return nil, err
		}
		if epoch == 0 {
			logger.Debug("Mini-batch layout", log.BatchSizeKey, batchSize, log.BatchesKey, it.Len())
		}

		for it.Next() {
			b := it.Batch()
			if err := n.step(b.X, b.Y); err != nil {
				return nil, err
			}
		}

		loss, err := n.recordEpoch(X, Y, epoch, tracker)
		if err != nil {
			return nil, err
		}
		history = append(history, loss)
	}
	return history, nil
}

// step は (η/p)·(Y - ŷ)·Xᵀ と (η/p)·Σ(Y - ŷ) で1回更新する。p は X の列数。
func (n *LinearNeuron) step(X, Y mat.Matrix) error {
	_, p := X.Dims()

	predictions, err := n.Predict(X)
	if err != nil {
		return err
	}

	var residual mat.Dense
	residual.Sub(Y, predictions)

	var grad mat.Dense
	grad.Mul(&residual, X.T())

	scale := n.learningRate / float64(p)
	n.weights.AddScaledVec(n.weights, scale, grad.RowView(0))
	n.bias += scale * mat.Sum(&residual)
	return nil
}

// fitDirect は先頭行を1にした拡張行列の擬似逆行列で最小二乗解を求める
func (n *LinearNeuron) fitDirect(X, Y mat.Matrix) ([]float64, error) {
	features, samples := X.Dims()

	augmented := mat.NewDense(features+1, samples, nil)
	parallel.ParallelizeWithThreshold(samples, augmentThreshold, func(start, end int) {
		for j := start; j < end; j++ {
			augmented.Set(0, j, 1)
			for i := 0; i < features; i++ {
				augmented.Set(i+1, j, X.At(i, j))
			}
		}
	})

	pinv, err := pseudoInverse(augmented)
	if err != nil {
		return nil, err
	}

	var coef mat.Dense
	coef.Mul(Y, pinv)

	n.bias = coef.At(0, 0)
	for i := 0; i < features; i++ {
		n.weights.SetVec(i, coef.At(0, i+1))
	}
	return []float64{}, nil
}

// pseudoInverse は薄いSVDからムーア・ペンローズ擬似逆行列 V·Σ⁺·Uᵀ を計算する。
// max(m,n)·σmax·eps 以下の特異値は0として扱う。
func pseudoInverse(a *mat.Dense) (*mat.Dense, error) {
	r, c := a.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, errors.NewModelError("LinearNeuron.Fit", "pseudo-inverse failed", errors.ErrSingularMatrix)
	}

	values := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	tol := float64(max(r, c)) * values[0] * 0x1p-52
	for k, sigma := range values {
		col := v.ColView(k).(*mat.VecDense)
		if sigma > tol {
			col.ScaleVec(1/sigma, col)
		} else {
			col.Zero()
		}
	}

	pinv := mat.NewDense(c, r, nil)
	pinv.Mul(&v, u.T())
	return pinv, nil
}

// epochTracker は1回の学習中の数値不安定の警告を1度だけに抑える
type epochTracker struct {
	logger log.Logger
	warned bool
}

// recordEpoch は全データに対する損失を計算し、デバッグログと不安定の警告を出す
func (n *LinearNeuron) recordEpoch(X, Y mat.Matrix, epoch int, t *epochTracker) (float64, error) {
	loss, err := n.Loss(X, Y)
	if err != nil {
		return 0, err
	}

	if t.logger.Enabled(context.Background(), log.LevelDebug) {
		t.logger.Debug("Epoch completed", log.EpochKey, epoch+1, log.LossKey, loss)
	}

	if !t.warned && (math.IsNaN(loss) || math.IsInf(loss, 0)) {
		t.warned = true
		errors.Warn(errors.CheckScalar("loss_calculation", loss, epoch+1))
	}
	return loss, nil
}
