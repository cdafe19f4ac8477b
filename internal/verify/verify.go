// Package verify checks the sort postcondition over many generated vectors.
package verify

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ajroetker/go-itersort/internal/config"
	"github.com/ajroetker/go-itersort/internal/lcg"
	"github.com/ajroetker/go-itersort/internal/workerpool"
	"github.com/ajroetker/go-itersort/itersort"
)

// sortFunc sorts data in place with strategy s.
type sortFunc func(data []int, s itersort.Strategy)

// Failure describes one vector that a strategy did not sort correctly.
type Failure struct {
	Run      int
	Strategy itersort.Strategy
	Input    []int
	Output   []int
	Reason   string
}

func (f Failure) String() string {
	return fmt.Sprintf("run %d (%s): %s\n  unsorted=%v\n  sorted  =%v", f.Run, f.Strategy, f.Reason, f.Input, f.Output)
}

// Report is the outcome of Run.
type Report struct {
	Runs       int
	Strategies []itersort.Strategy
	Failures   []Failure
}

// OK reports whether every vector was sorted correctly.
func (r Report) OK() bool {
	return len(r.Failures) == 0
}

// Check sorts a copy of input with strategy s. It returns the sorted copy and
// an empty reason, or a description of the first broken property.
func Check(input []int, s itersort.Strategy) ([]int, string) {
	return check(input, s, itersort.Sort[int])
}

func check(input []int, s itersort.Strategy, sortWith sortFunc) ([]int, string) {
	out := slices.Clone(input)
	sortWith(out, s)

	for n := 0; n+1 < len(out); n++ {
		if out[n] > out[n+1] {
			return out, fmt.Sprintf("index [%d]=%d > [%d]=%d", n, out[n], n+1, out[n+1])
		}
	}
	if len(out) != len(input) {
		return out, fmt.Sprintf("length changed from %d to %d", len(input), len(out))
	}
	counts := make(map[int]int, len(input))
	for _, v := range input {
		counts[v]++
	}
	for _, v := range out {
		counts[v]--
		if counts[v] < 0 {
			return out, fmt.Sprintf("value %d appears more often than in the input", v)
		}
	}
	return out, ""
}

// Run generates cfg.Verify vectors from cfg.Seed and checks every configured
// strategy against them. Vectors are split across the pool; each one is
// sorted by a single worker. A non-nil error means the run did not finish;
// sort failures are reported in Report.Failures.
func Run(ctx context.Context, cfg config.Config, pool *workerpool.Pool, log logrus.FieldLogger) (Report, error) {
	return run(ctx, cfg, pool, log, itersort.Sort[int])
}

func run(ctx context.Context, cfg config.Config, pool *workerpool.Pool, log logrus.FieldLogger, sortWith sortFunc) (Report, error) {
	strategies, err := cfg.ParsedStrategies()
	if err != nil {
		return Report{}, err
	}

	vectors := lcg.Vectors(cfg.Seed, cfg.Verify.Runs, cfg.Verify.Length, cfg.Verify.Values)
	report := Report{Runs: len(vectors), Strategies: strategies}

	for _, s := range strategies {
		log.WithFields(logrus.Fields{
			"strategy": s.String(),
			"runs":     len(vectors),
			"seed":     fmt.Sprintf("%#x", cfg.Seed),
		}).Info("verifying")

		var mu sync.Mutex
		var failures []Failure
		pool.ParallelFor(len(vectors), func(start, end int) {
			for i := start; i < end; i++ {
				if ctx.Err() != nil {
					return
				}
				out, reason := check(vectors[i], s, sortWith)
				if reason == "" {
					continue
				}
				mu.Lock()
				failures = append(failures, Failure{Run: i, Strategy: s, Input: vectors[i], Output: out, Reason: reason})
				mu.Unlock()
			}
		})
		if err := ctx.Err(); err != nil {
			return report, errors.Wrapf(err, "verify %s interrupted", s)
		}

		slices.SortFunc(failures, func(a, b Failure) int { return a.Run - b.Run })
		for _, f := range failures {
			log.WithFields(logrus.Fields{
				"strategy": s.String(),
				"run":      f.Run,
				"reason":   f.Reason,
			}).Errorf("unsorted output\n  unsorted=%v\n  sorted  =%v", f.Input, f.Output)
		}
		report.Failures = append(report.Failures, failures...)

		log.WithFields(logrus.Fields{
			"strategy": s.String(),
			"failures": len(failures),
		}).Info("verified")
	}
	return report, nil
}
