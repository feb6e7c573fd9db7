package model

import (
	"gonum.org/v1/gonum/mat"
)

// Batch is a contiguous chunk of samples.
// X holds the feature columns of the chunk and Y the matching target columns.
type Batch struct {
	X mat.Matrix // Feature matrix (features × n)
	Y mat.Matrix // Target matrix (1 × n)
}

// Len returns the number of samples in the batch.
func (b Batch) Len() int {
	if b.X == nil {
		return 0
	}
	_, c := b.X.Dims()
	return c
}
