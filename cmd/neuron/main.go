// Command neuron trains a single linear neuron on synthetic data drawn from
// y = -x + 7 + noise and reports how close the chosen solver gets.
//
//	neuron -solver mbgd -epochs 200 -batch-size 32 -out plots/
//
// With -out it writes fit.png (data and learned line) and, for the
// iterative solvers, loss.png. With -save it writes the learned weights as
// JSON.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/YuminosukeSato/goneuron/dataset"
	"github.com/YuminosukeSato/goneuron/metrics"
	"github.com/YuminosukeSato/goneuron/neuron"
	"github.com/YuminosukeSato/goneuron/pkg/errors"
	"github.com/YuminosukeSato/goneuron/pkg/log"
	"github.com/YuminosukeSato/goneuron/plot"
	"gonum.org/v1/gonum/mat"
)

type config struct {
	solver    string
	epochs    int
	batchSize int
	lr        float64
	samples   int
	noise     float64
	seed      uint64
	out       string
	save      string
	logLevel  string
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.GetLogger().Error("neuron failed", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("neuron", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.solver, "solver", "bgd", "training algorithm: sgd, bgd, mbgd or pinv")
	fs.IntVar(&cfg.epochs, "epochs", neuron.DefaultEpochs, "number of epochs for the iterative solvers")
	fs.IntVar(&cfg.batchSize, "batch-size", neuron.DefaultBatchSize, "mini-batch size")
	fs.Float64Var(&cfg.lr, "lr", 0.005, "learning rate")
	fs.IntVar(&cfg.samples, "samples", 300, "number of generated samples")
	fs.Float64Var(&cfg.noise, "noise", 1, "standard deviation of the target noise")
	fs.Uint64Var(&cfg.seed, "seed", 0, "random seed (0 picks one)")
	fs.StringVar(&cfg.out, "out", "", "directory for plots (no plots when empty)")
	fs.StringVar(&cfg.save, "save", "", "write the learned weights as JSON to this file")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Newf("unexpected arguments: %v", fs.Args())
	}
	return cfg, nil
}

func run(args []string, output io.Writer) error {
	cfg, err := parseFlags(args, output)
	if err != nil {
		return err
	}

	if err := log.SetupLogger(cfg.logLevel); err != nil {
		return err
	}
	logger := log.GetLogger().With(log.ComponentKey, "cli")

	solver, err := neuron.ParseSolver(cfg.solver, cfg.epochs, cfg.batchSize)
	if err != nil {
		return err
	}

	if cfg.seed == 0 {
		cfg.seed = rand.Uint64()
	}

	data := dataset.DefaultLinearConfig()
	data.Samples = cfg.samples
	data.Noise = cfg.noise
	data.Seed = cfg.seed

	X, Y, err := dataset.Linear(data)
	if err != nil {
		return err
	}

	n, err := neuron.NewLinearNeuron(1,
		neuron.WithLearningRate(cfg.lr),
		neuron.WithRandomState(cfg.seed),
	)
	if err != nil {
		return err
	}

	logger.Info("Training",
		log.SolverKey, solver.Name(),
		log.SamplesKey, cfg.samples,
		log.LearningRateKey, cfg.lr,
		log.RandomSeedKey, cfg.seed,
	)

	history, err := n.Fit(X, Y, solver)
	if err != nil {
		return err
	}

	if err := report(logger, n, X, Y); err != nil {
		return err
	}

	if cfg.out != "" {
		if err := writePlots(logger, cfg.out, solver, n, X, Y, history); err != nil {
			return err
		}
	}

	if cfg.save != "" {
		mw := n.Snapshot()
		mw.Metadata = map[string]interface{}{
			"solver":  solver.Name(),
			"samples": cfg.samples,
			"seed":    cfg.seed,
		}
		if len(history) > 0 {
			mw.Metadata["final_loss"] = history[len(history)-1]
		}
		snapshot, err := mw.ToJSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.save, snapshot, 0o644); err != nil {
			return errors.Wrapf(err, "failed to write %s", cfg.save)
		}
		logger.Info("Weights saved", log.OutputPathKey, cfg.save)
	}

	return nil
}

func report(logger log.Logger, n *neuron.LinearNeuron, X, Y mat.Matrix) error {
	loss, err := n.Loss(X, Y)
	if err != nil {
		return err
	}
	r2, err := n.Score(X, Y)
	if err != nil {
		return err
	}

	pred, err := n.Predict(X)
	if err != nil {
		return err
	}
	yTrue, err := metrics.RowVector("report", Y)
	if err != nil {
		return err
	}
	yPred, err := metrics.RowVector("report", pred)
	if err != nil {
		return err
	}
	rmse, err := metrics.RMSE(yTrue, yPred)
	if err != nil {
		return err
	}
	mae, err := metrics.MAE(yTrue, yPred)
	if err != nil {
		return err
	}

	logger.Info("Result",
		log.WeightsKey, n.Weights(),
		log.BiasKey, n.Bias(),
		log.LossKey, loss,
		log.RMSEKey, rmse,
		log.MAEKey, mae,
		log.R2ScoreKey, r2,
	)
	return nil
}

func writePlots(logger log.Logger, dir string, solver neuron.Solver, n *neuron.LinearNeuron, X, Y mat.Matrix, history []float64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", dir)
	}

	w := n.Weights()
	title := fmt.Sprintf("%s: y = %.3fx + %.3f", solver.Name(), w[0], n.Bias())
	fitPath := filepath.Join(dir, "fit.png")
	if err := plot.FitLine(fitPath, title, X, Y, n); err != nil {
		return err
	}
	logger.Info("Plot written", log.OutputPathKey, fitPath)

	// Direct は履歴を持たない
	if len(history) == 0 {
		return nil
	}
	lossPath := filepath.Join(dir, "loss.png")
	if err := plot.LossCurve(lossPath, solver.Name()+" loss", history); err != nil {
		return err
	}
	logger.Info("Plot written", log.OutputPathKey, lossPath)
	return nil
}
