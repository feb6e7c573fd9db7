package neuron_test

import (
	"fmt"

	"github.com/YuminosukeSato/goneuron/neuron"
	"gonum.org/v1/gonum/mat"
)

func ExampleLinearNeuron_Fit() {
	// y = 2x + 1, one sample per column
	X := mat.NewDense(1, 4, []float64{0, 1, 2, 3})
	Y := mat.NewDense(1, 4, []float64{1, 3, 5, 7})

	n, err := neuron.NewLinearNeuron(1, neuron.WithRandomState(42))
	if err != nil {
		panic(err)
	}

	history, err := n.Fit(X, Y, neuron.Direct{})
	if err != nil {
		panic(err)
	}

	pred, _ := n.Predict(mat.NewDense(1, 1, []float64{10}))
	fmt.Printf("w=%.2f b=%.2f history=%d\n", n.Weights()[0], n.Bias(), len(history))
	fmt.Printf("prediction at 10: %.2f\n", pred.At(0, 0))
	// Output:
	// w=2.00 b=1.00 history=0
	// prediction at 10: 21.00
}

func ExampleParseSolver() {
	s, err := neuron.ParseSolver("minibatch", neuron.DefaultEpochs, neuron.DefaultBatchSize)
	if err != nil {
		panic(err)
	}
	fmt.Println(s.Name())
	// Output: mBGD
}
