// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/reservoir/dataset"
	"github.com/katalvlaran/reservoir/esn"
)

var nan = math.NaN()

// refitStream separates the refit RNG streams from the search streams.
const refitStream = ^uint64(0)

// Run executes cfg.Runs random trials on ds.
// MAIN DESCRIPTION:
//   - Stage 1: validate cfg; derive one RNG stream per trial from cfg.Seed in
//     index order and sample its Params from that stream.
//   - Stage 2: feed the jobs to cfg.Workers workers; each worker builds,
//     randomizes (with the trial's stream), ridge-trains and scores its own
//     reservoir.
//   - Stage 3: summarise the completed trials in index order.
//
// Behavior highlights:
//   - A failing trial is recorded with Trial.Err and counted in
//     Summary.Failed; it does not stop the search.
//   - On cancellation no new trials start; Run returns the summary of the
//     trials that finished together with ctx.Err().
//
// Errors:
//   - ErrInvalidConfig, ctx.Err().
func Run(ctx context.Context, ds *dataset.Dataset, cfg Config, logger *logrus.Logger) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ds == nil {
		return nil, fmt.Errorf("%w: nil dataset", ErrInvalidConfig)
	}
	if logger == nil {
		logger = logrus.New()
	}

	jobs := searchJobs(cfg, cfg.Runs)
	log := logger.WithFields(logrus.Fields{"phase": PhaseSearch, "seed": cfg.Seed})

	return execute(ctx, ds, cfg, log, jobs)
}

// Refit re-randomizes and retrains the configuration p `repeats` times,
// measuring how much of a trial's score came from its particular draw.
// Streams are derived from cfg.Seed independently of Run's.
func Refit(ctx context.Context, ds *dataset.Dataset, p Params, repeats int, cfg Config, logger *logrus.Logger) (*Summary, error) {
	if repeats <= 0 {
		return nil, fmt.Errorf("%w: repeats %d", ErrInvalidConfig, repeats)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ds == nil {
		return nil, fmt.Errorf("%w: nil dataset", ErrInvalidConfig)
	}
	if logger == nil {
		logger = logrus.New()
	}

	jobs := refitJobs(cfg, p, repeats)
	log := logger.WithFields(logrus.Fields{"phase": PhaseRefit, "seed": cfg.Seed})

	return execute(ctx, ds, cfg, log, jobs)
}

// Reproduce rebuilds the trained reservoir of t from cfg, which must be the
// configuration t was produced with. The reservoir is at rest and its
// scores equal t.Scores.
// Errors: ErrInvalidConfig for an unknown phase or index; t's own build or
// training error otherwise.
func Reproduce(ds *dataset.Dataset, cfg Config, t Trial) (*esn.Reservoir, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ds == nil {
		return nil, fmt.Errorf("%w: nil dataset", ErrInvalidConfig)
	}
	if t.Index < 0 {
		return nil, fmt.Errorf("%w: trial index %d", ErrInvalidConfig, t.Index)
	}

	var j job
	switch t.Phase {
	case PhaseSearch:
		j = searchJobs(cfg, t.Index+1)[t.Index]
	case PhaseRefit:
		j = refitJobs(cfg, t.Params, t.Index+1)[t.Index]
	default:
		return nil, fmt.Errorf("%w: trial phase %q", ErrInvalidConfig, t.Phase)
	}
	r, res := runTrial(ds, cfg, j)
	if res.Err != nil {
		return nil, res.Err
	}

	return r, nil
}

// execute runs jobs on a bounded pool and summarises the finished ones.
func execute(ctx context.Context, ds *dataset.Dataset, cfg Config, log *logrus.Entry, jobs []job) (*Summary, error) {
	workers := cfg.workers()
	if workers > len(jobs) {
		workers = len(jobs)
	}
	log.WithFields(logrus.Fields{
		"trials":  len(jobs),
		"workers": workers,
		"nodes":   cfg.Nodes,
	}).Info("starting trials")

	trials := make([]Trial, len(jobs))
	finished := make([]bool, len(jobs))
	jobCh := make(chan job)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				_, t := runTrial(ds, cfg, j)
				// Each index is written by exactly one worker.
				trials[j.index] = t
				finished[j.index] = true
				if t.Err != nil {
					log.WithFields(t.fields()).WithError(t.Err).Warn("trial failed")
					continue
				}
				log.WithFields(t.fields()).Debug("trial completed")
			}
		}()
	}

	var cancelled error
feed:
	for _, j := range jobs {
		if cancelled = ctx.Err(); cancelled != nil {
			break
		}
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		case jobCh <- j:
		}
	}
	close(jobCh)
	wg.Wait()

	done := make([]Trial, 0, len(trials))
	for i, ok := range finished {
		if ok {
			done = append(done, trials[i])
		}
	}
	s := summarize(done)

	entry := log.WithFields(logrus.Fields{
		"completed":     len(done),
		"failed":        s.Failed,
		"best_train":    s.Stats[dataset.Train].Best,
		"best_validate": s.Stats[dataset.Validate].Best,
		"best_test":     s.Stats[dataset.Test].Best,
	})
	if cancelled != nil {
		entry.WithError(cancelled).Warn("trials cancelled")
		return s, cancelled
	}
	entry.Info("trials finished")

	return s, nil
}
