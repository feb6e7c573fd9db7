package neuron

import (
	"github.com/YuminosukeSato/goneuron/core/model"
	"github.com/YuminosukeSato/goneuron/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// slicer is implemented by *mat.Dense and lets chunks be views instead of copies.
type slicer interface {
	mat.Matrix
	Slice(i, k, j, l int) mat.Matrix
}

// BatchIterator walks the sample axis of a dataset in chunks of consecutive
// columns, left to right, starting at column 0. The final chunk is shorter
// when the sample count is not a multiple of the batch size. Chunks are
// views into the original matrices.
//
//	it, err := neuron.NewBatchIterator(X, Y, 20)
//	for it.Next() {
//	    b := it.Batch()
//	    ...
//	}
//
// Reset rewinds the iterator to the first chunk.
type BatchIterator struct {
	x, y      slicer
	features  int
	samples   int
	batchSize int
	start     int
	current   model.Batch
}

// NewBatchIterator creates an iterator over the columns of X (features ×
// samples) and Y (1 × samples).
func NewBatchIterator(X, Y mat.Matrix, batchSize int) (*BatchIterator, error) {
	if err := validateBatchSize(batchSize); err != nil {
		return nil, err
	}

	features, samples, err := checkTargets("BatchIterator", X, Y)
	if err != nil {
		return nil, err
	}

	return &BatchIterator{
		x:         asSlicer(X),
		y:         asSlicer(Y),
		features:  features,
		samples:   samples,
		batchSize: batchSize,
	}, nil
}

func asSlicer(m mat.Matrix) slicer {
	if s, ok := m.(slicer); ok {
		return s
	}
	return mat.DenseCopyOf(m)
}

// Next advances to the next chunk. It returns false once the start index
// has reached the sample count.
func (it *BatchIterator) Next() bool {
	if it.start >= it.samples {
		it.current = model.Batch{}
		return false
	}

	end := min(it.start+it.batchSize, it.samples)
	it.current = model.Batch{
		X: it.x.Slice(0, it.features, it.start, end),
		Y: it.y.Slice(0, 1, it.start, end),
	}
	it.start = end
	return true
}

// Batch returns the chunk selected by the last call to Next.
func (it *BatchIterator) Batch() model.Batch {
	return it.current
}

// Reset rewinds the iterator so the next call to Next yields the first chunk.
func (it *BatchIterator) Reset() {
	it.start = 0
	it.current = model.Batch{}
}

// Len returns the number of chunks in a full pass.
func (it *BatchIterator) Len() int {
	return (it.samples + it.batchSize - 1) / it.batchSize
}

// checkTargets validates that Y is a single row with as many columns as X
// and returns the dimensions of X.
func checkTargets(op string, X, Y mat.Matrix) (features, samples int, err error) {
	features, samples = X.Dims()
	yr, yc := Y.Dims()

	if features == 0 || samples == 0 {
		return 0, 0, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if yr != 1 {
		return 0, 0, errors.NewValueError(op, "Y must be a 1×n row matrix")
	}
	if yc != samples {
		return 0, 0, errors.NewDimensionError(op, samples, yc, 1)
	}
	return features, samples, nil
}
