package plot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/YuminosukeSato/goneuron/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// affine は y = w*x + b を返す最小の Predictor
type affine struct{ w, b float64 }

func (a affine) Predict(X mat.Matrix) (*mat.Dense, error) {
	_, c := X.Dims()
	out := mat.NewDense(1, c, nil)
	for j := 0; j < c; j++ {
		out.Set(0, j, a.w*X.At(0, j)+a.b)
	}
	return out, nil
}

func requireFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestFitLine(t *testing.T) {
	X := mat.NewDense(1, 5, []float64{-1, -0.5, 0, 0.5, 1})
	Y := mat.NewDense(1, 5, []float64{8.1, 7.4, 7.0, 6.6, 5.9})

	for _, name := range []string{"fit.png", "fit.svg"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, FitLine(path, "BGD", X, Y, affine{w: -1, b: 7}))
			requireFile(t, path)
		})
	}
}

func TestFitLineErrors(t *testing.T) {
	dir := t.TempDir()
	X := mat.NewDense(1, 3, []float64{1, 2, 3})
	Y := mat.NewDense(1, 3, []float64{1, 2, 3})

	err := FitLine(filepath.Join(dir, "multi.png"), "", mat.NewDense(2, 3, nil), Y, affine{})
	var valErr *errors.ValueError
	assert.True(t, errors.As(err, &valErr))

	err = FitLine(filepath.Join(dir, "short.png"), "", X, mat.NewDense(1, 2, nil), affine{})
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))

	err = FitLine(filepath.Join(dir, "fit.bmp"), "", X, Y, affine{})
	assert.True(t, errors.As(err, &valErr))
	_, statErr := os.Stat(filepath.Join(dir, "fit.bmp"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLossCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loss.png")
	history := []float64{4, 2, 1, 0.5, 0.25}

	require.NoError(t, LossCurve(path, "loss", history))
	requireFile(t, path)
}

func TestLossCurveSkipsNonFinite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loss.svg")
	history := []float64{1, 10, 1e200, math.Inf(1), math.NaN()}

	require.NoError(t, LossCurve(path, "diverged", history))
	requireFile(t, path)
}

func TestLossCurveErrors(t *testing.T) {
	dir := t.TempDir()
	var valErr *errors.ValueError

	err := LossCurve(filepath.Join(dir, "empty.png"), "", nil)
	assert.True(t, errors.As(err, &valErr))

	err = LossCurve(filepath.Join(dir, "nan.png"), "", []float64{math.NaN()})
	assert.True(t, errors.As(err, &valErr))
}
