package neuron

import (
	"testing"

	"github.com/YuminosukeSato/goneuron/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func sequence(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i)
	}
	return s
}

func TestBatchIteratorChunks(t *testing.T) {
	X := mat.NewDense(1, 10, sequence(10))
	Y := mat.NewDense(1, 10, sequence(10))

	it, err := NewBatchIterator(X, Y, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, it.Len())

	var sizes []int
	var firsts []float64
	for it.Next() {
		b := it.Batch()
		sizes = append(sizes, b.Len())
		firsts = append(firsts, b.X.At(0, 0))
		assert.Equal(t, b.X.At(0, 0), b.Y.At(0, 0))
	}
	assert.Equal(t, []int{4, 4, 2}, sizes)
	assert.Equal(t, []float64{0, 4, 8}, firsts)

	// 終端に達した後は false を返し続ける
	assert.False(t, it.Next())
	assert.Nil(t, it.Batch().X)

	it.Reset()
	sizes = sizes[:0]
	for it.Next() {
		sizes = append(sizes, it.Batch().Len())
	}
	assert.Equal(t, []int{4, 4, 2}, sizes)
}

func TestBatchIteratorCoversAllSamples(t *testing.T) {
	tests := []struct {
		name      string
		samples   int
		batchSize int
		chunks    int
	}{
		{"exact multiple", 12, 3, 4},
		{"single chunk", 5, 20, 1},
		{"batch of one", 4, 1, 4},
		{"equal size", 7, 7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			X := mat.NewDense(2, tt.samples, append(sequence(tt.samples), sequence(tt.samples)...))
			Y := mat.NewDense(1, tt.samples, sequence(tt.samples))

			it, err := NewBatchIterator(X, Y, tt.batchSize)
			require.NoError(t, err)

			var seen []float64
			chunks := 0
			for it.Next() {
				chunks++
				b := it.Batch()
				r, c := b.X.Dims()
				assert.Equal(t, 2, r)
				for j := 0; j < c; j++ {
					seen = append(seen, b.Y.At(0, j))
				}
			}
			assert.Equal(t, tt.chunks, chunks)
			assert.Equal(t, tt.chunks, it.Len())
			assert.Equal(t, sequence(tt.samples), seen)
		})
	}
}

func TestBatchIteratorAcceptsNonDense(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	Y := mat.NewDense(3, 1, []float64{4, 5, 6})

	it, err := NewBatchIterator(X.T(), Y.T(), 2)
	require.NoError(t, err)

	require.True(t, it.Next())
	b := it.Batch()
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 5.0, b.Y.At(0, 1))
}

func TestBatchIteratorErrors(t *testing.T) {
	X := mat.NewDense(1, 5, sequence(5))

	_, err := NewBatchIterator(X, mat.NewDense(1, 5, nil), 0)
	var verr *errors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "batch_size", verr.ParamName)

	_, err = NewBatchIterator(X, mat.NewDense(1, 4, nil), 2)
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))
}

func TestNeuronBatches(t *testing.T) {
	n := newTestNeuron(t, 1)
	X := mat.NewDense(1, 9, sequence(9))
	Y := mat.NewDense(1, 9, sequence(9))

	it, err := n.Batches(X, Y, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, it.Len())
}
