// Copyright 2025 go-itersort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-itersort/internal/bench"
	"github.com/ajroetker/go-itersort/internal/config"
	"github.com/ajroetker/go-itersort/internal/platform"
	"github.com/ajroetker/go-itersort/internal/verify"
	"github.com/ajroetker/go-itersort/internal/workerpool"
)

// harnessFlags are the flags shared by verify and bench.
type harnessFlags struct {
	configPath string
	runs       int
	seed       uint32
	workers    int
	strategies []string
}

func (h *harnessFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&h.configPath, "config", "c", "", "YAML configuration file")
	fs.IntVarP(&h.runs, "runs", "n", 0, "number of generated vectors (overrides the config)")
	fs.Uint32Var(&h.seed, "seed", 0, "generator seed (overrides the config)")
	fs.IntVar(&h.workers, "workers", 0, "worker goroutines, 0 for GOMAXPROCS")
	fs.StringSliceVar(&h.strategies, "strategy", nil, "strategies to run (hoare, lomuto)")
}

// load resolves defaults, file, environment and flags, in that order. Only
// flags set on the command line override earlier layers; runs is applied
// to the suite returned by pick.
func (h *harnessFlags) load(fs *pflag.FlagSet, pick func(*config.Config) *config.Suite) (config.Config, error) {
	cfg := config.Default()
	if h.configPath != "" {
		var err error
		if cfg, err = config.Load(h.configPath); err != nil {
			return cfg, err
		}
	}
	if err := cfg.FromEnv(); err != nil {
		return cfg, err
	}

	if fs.Changed("runs") {
		pick(&cfg).Runs = h.runs
	}
	if fs.Changed("seed") {
		cfg.Seed = h.seed
	}
	if fs.Changed("workers") {
		cfg.Workers = h.workers
	}
	if fs.Changed("strategy") {
		cfg.Strategies = h.strategies
	}
	return cfg, errors.Wrap(cfg.Validate(), "invalid configuration")
}

func (a *app) verifyCmd() *cobra.Command {
	var h harnessFlags
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the sort postcondition on generated vectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := h.load(cmd.Flags(), func(c *config.Config) *config.Suite { return &c.Verify })
			if err != nil {
				return err
			}

			pool := workerpool.New(cfg.Workers)
			defer pool.Close()
			a.log.WithFields(logrus.Fields{"workers": pool.NumWorkers()}).Debug("worker pool started")

			report, err := verify.Run(cmd.Context(), cfg, pool, a.log)
			if err != nil {
				return err
			}
			if !report.OK() {
				return errors.Errorf("%d failures over %d runs", len(report.Failures), report.Runs)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d runs x %d strategies\n", report.Runs, len(report.Strategies))
			return errors.Wrap(err, "write output")
		},
	}
	h.register(cmd.Flags())
	return cmd
}

func (a *app) benchCmd() *cobra.Command {
	var h harnessFlags
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time each strategy on generated vectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := h.load(cmd.Flags(), func(c *config.Config) *config.Suite { return &c.Bench })
			if err != nil {
				return err
			}

			results, err := bench.Run(cmd.Context(), cfg, a.log)
			if err != nil {
				return err
			}
			return bench.Write(cmd.OutOrStdout(), platform.Detect(), results)
		},
	}
	h.register(cmd.Flags())
	return cmd
}
