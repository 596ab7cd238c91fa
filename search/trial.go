// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/reservoir/dataset"
	"github.com/katalvlaran/reservoir/esn"
	"github.com/katalvlaran/reservoir/train"
)

// Params are the sampled reservoir hyperparameters of one trial.
type Params struct {
	LeakRate       float64
	InputScale     float64
	SpectralRadius float64
	Density        float64
}

// Phase names the driver that produced a trial.
type Phase string

const (
	PhaseSearch Phase = "search"
	PhaseRefit  Phase = "refit"
)

// Trial is the outcome of one configuration.
type Trial struct {
	ID    uuid.UUID // stable for a given seed, phase and index
	Phase Phase
	Index int
	Params

	Beta   float64    // ridge parameter selected on the validation table
	Scores [3]float64 // NMSE indexed by dataset.Role
	Err    error      // non-nil when the trial could not be built or trained
}

// Score returns the NMSE of the trial on role (NaN for an unknown role).
func (t Trial) Score(role dataset.Role) float64 {
	if role < dataset.Train || role > dataset.Test {
		return nan
	}

	return t.Scores[role]
}

// job is one unit of work handed to the pool. rng is owned by the worker
// that receives the job.
type job struct {
	phase  Phase
	index  int
	id     uuid.UUID
	params Params
	rng    *rand.Rand
}

// trialID derives a deterministic name-based UUID for a trial.
func trialID(seed int64, phase Phase, index int) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("reservoir/%s/%d/%d", phase, seed, index)))
}

// searchJobs derives the first n search jobs. Each job's stream comes from
// the seed stream in index order and also supplies its Params.
func searchJobs(cfg Config, n int) []job {
	base := esn.RNGFromSeed(cfg.Seed)
	jobs := make([]job, n)
	for i := range jobs {
		rng := esn.DeriveRNG(base, uint64(i))
		jobs[i] = job{
			phase: PhaseSearch,
			index: i,
			id:    trialID(cfg.Seed, PhaseSearch, i),
			rng:   rng,
			params: Params{
				LeakRate:       cfg.LeakRate.sample(rng),
				InputScale:     cfg.InputScale.sample(rng),
				SpectralRadius: cfg.SpectralRadius.sample(rng),
				Density:        cfg.Density.sample(rng),
			},
		}
	}

	return jobs
}

// refitJobs derives n jobs for p from a stream family disjoint from
// searchJobs.
func refitJobs(cfg Config, p Params, n int) []job {
	base := esn.DeriveRNG(esn.RNGFromSeed(cfg.Seed), refitStream)
	jobs := make([]job, n)
	for i := range jobs {
		jobs[i] = job{
			phase:  PhaseRefit,
			index:  i,
			id:     trialID(cfg.Seed, PhaseRefit, i),
			rng:    esn.DeriveRNG(base, uint64(i)),
			params: p,
		}
	}

	return jobs
}

// runTrial builds, randomizes, fits and scores one reservoir. The trained
// reservoir is nil when t.Err is set.
func runTrial(ds *dataset.Dataset, cfg Config, j job) (*esn.Reservoir, Trial) {
	t := Trial{ID: j.id, Phase: j.phase, Index: j.index, Params: j.params}
	for i := range t.Scores {
		t.Scores[i] = nan
	}
	fail := func(err error) (*esn.Reservoir, Trial) {
		t.Err = err
		return nil, t
	}

	p := j.params
	r, err := esn.New(ds.Inputs(), 1, cfg.Nodes, p.LeakRate, p.InputScale, p.SpectralRadius, cfg.reservoirOptions()...)
	if err != nil {
		return fail(err)
	}
	if err = r.Randomize(j.rng, p.Density); err != nil {
		return fail(err)
	}
	res, err := train.RidgeRegression(r, ds, dataset.Train, dataset.Validate, cfg.Betas)
	if err != nil {
		return fail(err)
	}
	t.Beta = res.Beta
	for _, role := range dataset.Roles() {
		if t.Scores[role], err = train.NMSE(r, ds, role); err != nil {
			return fail(err)
		}
	}

	return r, t
}

// fields renders a trial for structured logging.
func (t Trial) fields() logrus.Fields {
	return logrus.Fields{
		"trial":           t.ID.String(),
		"index":           t.Index,
		"leak_rate":       t.LeakRate,
		"input_scale":     t.InputScale,
		"spectral_radius": t.SpectralRadius,
		"density":         t.Density,
		"beta":            t.Beta,
		"train":           t.Scores[dataset.Train],
		"validate":        t.Scores[dataset.Validate],
		"test":            t.Scores[dataset.Test],
	}
}
