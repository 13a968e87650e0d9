// Package main provides the perceptron CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/born-ml/perceptron/internal/activation"
	"github.com/born-ml/perceptron/internal/config"
	"github.com/born-ml/perceptron/internal/nn"
	"github.com/born-ml/perceptron/internal/trainer"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage(os.Stdout)
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("perceptron %s\n", version)
	case "train":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := train(ctx, os.Args[2:], os.Stdout); err != nil {
			stop()
			log.Fatalf("train: %v", err)
		}
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "perceptron %s - feed-forward network trainer\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  train      Train a perceptron on a random line-separated dataset")
	fmt.Fprintf(w, "\nActivations: %s\n", strings.Join(activation.Names(), ", "))
}

func train(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML run configuration")
	var o config.Overrides
	var lr float64
	fs.StringVar(&o.Activation, "activation", "", "activation function")
	fs.Float64Var(&lr, "lr", 0, "learning rate")
	fs.IntVar(&o.BatchSize, "batch", 0, "points per generation")
	fs.IntVar(&o.Generations, "generations", 0, "number of generations")
	fs.Int64Var(&o.Seed, "seed", 0, "random seed")
	fs.IntVar(&o.LogEvery, "log-every", 0, "log every n generations")
	if err := fs.Parse(args); err != nil {
		return err
	}
	o.LearningRate = float32(lr)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.ApplyOverrides(o)
	if err := cfg.Validate(); err != nil {
		return err
	}

	act, err := activation.Lookup(cfg.Activation)
	if err != nil {
		return err
	}
	net, err := nn.NewNetwork(cfg.Shape, cfg.Inputs, nn.Config{Activation: act, Seed: cfg.Seed})
	if err != nil {
		return err
	}

	res, err := trainer.Run(ctx, net, trainer.RunConfig{
		Generations:  cfg.Generations,
		BatchSize:    cfg.BatchSize,
		LearningRate: cfg.LearningRate,
		LogEvery:     cfg.LogEvery,
		Seed:         cfg.Seed,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "y = %.4fx + %.4f | y = %.4fx + %.4f | Error: %.4f | Accuracy: %.2f%% | Generation: %d\n",
		res.Line.M, res.Line.C,
		res.Boundary.M, res.Boundary.C,
		res.Error, res.Accuracy*100, res.Generations)
	fmt.Fprintf(out, "output layer weights:\n%s\n", net.OutputLayer().Weights())
	return nil
}
