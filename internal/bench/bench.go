// Package bench times the partition strategies on generated vectors.
package bench

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/ajroetker/go-itersort/internal/config"
	"github.com/ajroetker/go-itersort/internal/lcg"
	"github.com/ajroetker/go-itersort/internal/platform"
	"github.com/ajroetker/go-itersort/itersort"
)

// Result holds the timings of one strategy over a suite.
type Result struct {
	Strategy itersort.Strategy
	Runs     int
	Elements int
	Total    time.Duration
	Mean     time.Duration
	Fastest  time.Duration
	Slowest  time.Duration
}

// Run sorts every cfg.Bench vector once per configured strategy and records
// the wall time of each sort. All strategies see the same vectors.
func Run(ctx context.Context, cfg config.Config, log logrus.FieldLogger) ([]Result, error) {
	strategies, err := cfg.ParsedStrategies()
	if err != nil {
		return nil, err
	}

	vectors := lcg.Vectors(cfg.Seed, cfg.Bench.Runs, cfg.Bench.Length, cfg.Bench.Values)
	elements := lo.SumBy(vectors, func(v []int) int { return len(v) })
	buf := make([]int, lo.Max(lo.Map(vectors, func(v []int, _ int) int { return len(v) })))

	results := make([]Result, 0, len(strategies))
	for _, s := range strategies {
		timings := make([]time.Duration, 0, len(vectors))
		for i, v := range vectors {
			if err := ctx.Err(); err != nil {
				return results, errors.Wrapf(err, "bench %s interrupted", s)
			}
			data := buf[:len(v)]
			copy(data, v)

			start := time.Now()
			itersort.Sort(data, s)
			timings = append(timings, time.Since(start))

			if !itersort.IsSorted(data) {
				return results, errors.Errorf("%s left run %d unsorted", s, i)
			}
		}

		r := summarize(s, timings)
		r.Elements = elements
		log.WithFields(logrus.Fields{
			"strategy": s.String(),
			"runs":     r.Runs,
			"total":    r.Total,
		}).Debug("bench finished")
		results = append(results, r)
	}
	return results, nil
}

func summarize(s itersort.Strategy, timings []time.Duration) Result {
	r := Result{Strategy: s, Runs: len(timings)}
	if len(timings) == 0 {
		return r
	}
	r.Total = lo.Sum(timings)
	r.Mean = r.Total / time.Duration(len(timings))
	r.Fastest = lo.Min(timings)
	r.Slowest = lo.Max(timings)
	return r
}

// Write prints the platform line followed by one row per result.
func Write(w io.Writer, info platform.Info, results []Result) error {
	if _, err := fmt.Fprintf(w, "platform: %s\n", info); err != nil {
		return errors.Wrap(err, "write report")
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tRUNS\tELEMENTS\tTOTAL\tMEAN\tFASTEST\tSLOWEST")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			r.Strategy, r.Runs, r.Elements, r.Total, r.Mean, r.Fastest, r.Slowest)
	}
	return errors.Wrap(tw.Flush(), "write report")
}
