// Package trainer runs the generation loop of the two-class line demo: each
// generation draws a fresh dataset, trains the network once on it and
// evaluates the result.
package trainer

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/born-ml/perceptron/internal/dataset"
	"github.com/born-ml/perceptron/internal/metrics"
	"github.com/born-ml/perceptron/internal/nn"
)

// ErrNoBoundary is returned by Boundary when the output layer does not
// describe a line in the plane.
var ErrNoBoundary = errors.New("output layer has no decision boundary")

// RunConfig captures the knobs required by the training loop.
type RunConfig struct {
	Generations  int
	BatchSize    int
	LearningRate float32
	LogEvery     int
	Seed         int64

	// Line is the classifier to learn. When nil a random line is drawn.
	Line *dataset.Line

	// Logf receives progress lines. Defaults to log.Printf.
	Logf func(format string, args ...any)
}

// Result summarizes a finished run.
type Result struct {
	Generations int
	Accuracy    float64
	Error       float64
	Line        dataset.Line
	Boundary    dataset.Line
}

// Run trains net for cfg.Generations generations. The context is checked
// between generations.
func Run(ctx context.Context, net *nn.Network, cfg RunConfig) (Result, error) {
	if cfg.Generations <= 0 {
		return Result{}, errors.New("trainer: generations must be > 0")
	}
	if cfg.BatchSize <= 0 {
		return Result{}, errors.New("trainer: batch size must be > 0")
	}
	if in := net.Layers()[0].Inputs(); in != 2 {
		return Result{}, errors.Errorf("trainer: network must read 2 inputs (got %d)", in)
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = 50
	}
	if cfg.Logf == nil {
		cfg.Logf = log.Printf
	}

	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // Synthetic data, not security-critical
	line := dataset.RandomLine(rng)
	if cfg.Line != nil {
		line = *cfg.Line
	}

	set := dataset.Generate(0, line, rng)
	res := Result{Line: line}
	var window metrics.Window

	for gen := 1; gen <= cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		set.Reset()
		set.Extend(cfg.BatchSize)

		start := time.Now()
		if err := net.Train(set.Batch(), cfg.LearningRate); err != nil {
			return res, errors.WithMessagef(err, "generation %d", gen)
		}
		trainTime := time.Since(start)

		acc, mse, err := Evaluate(net, set)
		if err != nil {
			return res, errors.WithMessagef(err, "generation %d", gen)
		}
		window.Record(cfg.BatchSize, trainTime, acc, mse)
		res.Generations, res.Accuracy, res.Error = gen, acc, mse

		if gen%cfg.LogEvery == 0 || gen == cfg.Generations {
			snap := window.Snapshot()
			cfg.Logf("generation=%d accuracy=%.4f avg_accuracy=%.4f error=%.4f train_ms=%.3f samples_per_sec=%.0f",
				gen,
				snap.LastAccuracy,
				snap.AvgAccuracy,
				snap.LastError,
				snap.AvgTrainMS,
				snap.SamplesPerSec,
			)
		}
	}

	if boundary, err := Boundary(net); err == nil {
		res.Boundary = boundary
	}
	return res, nil
}

// Evaluate returns the fraction of points whose predicted class matches
// their label (output > 0 means A) and the mean squared error against the
// ±1 targets.
func Evaluate(net *nn.Network, set *dataset.Set) (accuracy, meanSqErr float64, err error) {
	if len(set.Points) == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, p := range set.Points {
		out, err := net.FeedForward([]float32{p.X, p.Y})
		if err != nil {
			return 0, 0, err
		}

		guess := dataset.LabelB
		if out[0] > 0 {
			guess = dataset.LabelA
		}
		if guess == p.Label {
			correct++
		}

		d := float64(p.Label.Target() - out[0])
		meanSqErr += d * d
	}

	n := float64(len(set.Points))
	return float64(correct) / n, meanSqErr / n, nil
}

// Boundary reads the decision line w0*x + w1*y + w2 = 0 of the first output
// node back from the output layer weights, as y = -(w0/w1)x - w2/w1.
func Boundary(net *nn.Network) (dataset.Line, error) {
	w := net.OutputLayer().Weights()
	if w.Rows() != 3 || w.Cols() < 1 {
		return dataset.Line{}, errors.Wrapf(ErrNoBoundary, "weights are %dx%d", w.Rows(), w.Cols())
	}

	var wv [3]float32
	for row := range wv {
		v, err := w.Get(0, row)
		if err != nil {
			return dataset.Line{}, err
		}
		wv[row] = v
	}
	if wv[1] == 0 {
		return dataset.Line{}, errors.Wrap(ErrNoBoundary, "vertical boundary")
	}

	return dataset.Line{M: -wv[0] / wv[1], C: -wv[2] / wv[1]}, nil
}
