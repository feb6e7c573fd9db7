package model

import "gonum.org/v1/gonum/mat"

// 行列はすべて「特徴量 × サンプル」のレイアウト（各列が1サンプル）で扱う

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データ X（特徴量 × サンプル）に対する 1 × サンプル の予測を返す
	Predict(X mat.Matrix) (*mat.Dense, error)
}

// Scorer は評価可能なモデルのインターフェース
type Scorer interface {
	// Loss は平均二乗誤差の1/2を返す
	Loss(X, Y mat.Matrix) (float64, error)
	// Score は決定係数（R²）を返す
	Score(X, Y mat.Matrix) (float64, error)
}

// LinearModel は線形モデルのインターフェース
type LinearModel interface {
	// Weights は重みのコピーを返す
	Weights() []float64
	// Bias はバイアス（切片）を返す
	Bias() float64
}

// Regressor は回帰モデルが満たすインターフェースをまとめたもの
type Regressor interface {
	Predictor
	Scorer
	LinearModel
}
