// SPDX-License-Identifier: MIT

// Command esnsearch runs a random hyperparameter search of Echo State
// Networks on the NARMA-10 benchmark, refits the best configuration and
// reports the results.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/reservoir/dataset"
	"github.com/katalvlaran/reservoir/esn"
	"github.com/katalvlaran/reservoir/report"
	"github.com/katalvlaran/reservoir/search"
	"github.com/katalvlaran/reservoir/train"
)

var errNoSuccessfulTrial = errors.New("esnsearch: no trial produced a finite validation score")

type options struct {
	search search.Config
	narma  dataset.NARMAConfig

	refits      int
	showTrials  bool
	dump        bool
	predictions int
	plotPath    string
	logLevel    string
	logJSON     bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	o := options{
		search: search.DefaultConfig(),
		narma:  dataset.DefaultNARMAConfig(),
	}
	fs := flag.NewFlagSet("esnsearch", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.IntVar(&o.search.Runs, "runs", o.search.Runs, "number of random trials")
	fs.IntVar(&o.search.Workers, "workers", o.search.Workers, "concurrent trials (0 = number of CPUs)")
	fs.IntVar(&o.search.Nodes, "nodes", o.search.Nodes, "reservoir size")
	fs.Int64Var(&o.search.Seed, "seed", o.search.Seed, "base seed for the dataset and every trial")
	fs.IntVar(&o.search.MaxRandomizeAttempts, "attempts", 0, "W_res redraw budget (0 = library default)")
	fs.Var(floatsFlag{&o.search.Betas}, "betas", "comma separated ridge candidates")
	fs.Var(rangeFlag{&o.search.LeakRate}, "leak", "leak rate range min,max")
	fs.Var(rangeFlag{&o.search.InputScale}, "scale", "input scale range min,max")
	fs.Var(rangeFlag{&o.search.SpectralRadius}, "radius", "spectral radius range min,max")
	fs.Var(rangeFlag{&o.search.Density}, "density", "W_res density range min,max")

	fs.IntVar(&o.narma.TrainEntries, "train", o.narma.TrainEntries, "training entries")
	fs.IntVar(&o.narma.ValidateEntries, "validate", o.narma.ValidateEntries, "validation entries")
	fs.IntVar(&o.narma.TestEntries, "test", o.narma.TestEntries, "test entries")
	fs.IntVar(&o.narma.Warmups, "warmups", o.narma.Warmups, "warm-up steps per table")

	fs.IntVar(&o.refits, "refits", 10, "re-randomizations of the best configuration (0 = skip)")
	fs.BoolVar(&o.showTrials, "trials", false, "print every trial")
	fs.BoolVar(&o.dump, "dump", false, "print the weights of the best reservoir")
	fs.IntVar(&o.predictions, "predictions", 10, "test predictions to print (0 = none, -1 = all)")
	fs.StringVar(&o.plotPath, "plot", "", "save a target/output chart of the test table to this file")
	fs.StringVar(&o.logLevel, "log-level", "info", "logrus level")
	fs.BoolVar(&o.logJSON, "log-json", false, "log as JSON")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.refits < 0 {
		return o, fmt.Errorf("esnsearch: refits %d must be non-negative", o.refits)
	}

	return o, nil
}

func newLogger(o options, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	if o.logJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger, err := newLogger(o, stderr)
	if err != nil {
		return err
	}

	ds, err := dataset.NARMA10(esn.RNGFromSeed(o.search.Seed), o.narma)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"train":    o.narma.TrainEntries,
		"validate": o.narma.ValidateEntries,
		"test":     o.narma.TestEntries,
		"warmups":  o.narma.Warmups,
	}).Info("generated NARMA-10 dataset")

	summary, err := search.Run(ctx, ds, o.search, logger)
	if summary != nil {
		if o.showTrials {
			if werr := report.WriteTrials(stdout, summary.Trials); werr != nil {
				return werr
			}
		}
		if werr := report.WriteSummary(stdout, summary); werr != nil {
			return werr
		}
	}
	if err != nil {
		return err
	}
	if summary.Best == nil {
		return errNoSuccessfulTrial
	}
	best := *summary.Best

	if o.refits > 0 {
		refit, err := search.Refit(ctx, ds, best.Params, o.refits, o.search, logger)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, "refit of best configuration:")
		if err = report.WriteSummary(stdout, refit); err != nil {
			return err
		}
	}

	r, err := search.Reproduce(ds, o.search, best)
	if err != nil {
		return err
	}
	if o.dump {
		if err = report.WriteReservoir(stdout, r); err != nil {
			return err
		}
	}
	if o.predictions == 0 && o.plotPath == "" {
		return nil
	}
	preds, err := train.Predict(r, ds, dataset.Test)
	if err != nil {
		return err
	}
	if o.predictions != 0 {
		if err = report.WritePredictions(stdout, preds, o.predictions); err != nil {
			return err
		}
	}
	if o.plotPath != "" {
		if err = report.PlotPredictions(preds, o.plotPath); err != nil {
			return err
		}
		logger.WithField("path", o.plotPath).Info("saved prediction plot")
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
