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

// Command itersort sorts integers with the iterative quicksort and runs the
// verify and bench harnesses.
//
// Usage:
//
//	itersort sort --strategy lomuto 5 3 9 1
//	echo "5 3 9 1" | itersort sort --trace --log-level debug
//	itersort verify --runs 100000 --workers 8
//	itersort bench --config bench.yaml
//
// Settings for verify and bench come from built-in defaults, an optional
// YAML file (--config), ITERSORT_STRATEGY / ITERSORT_SEED, then flags.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type app struct {
	log       *logrus.Logger
	in        io.Reader
	out       io.Writer
	logLevel  string
	logFormat string
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	log := logrus.New()
	log.SetOutput(errOut)
	return &app{log: log, in: in, out: out}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "itersort",
		Short:         "Iterative quicksort with pluggable partition strategies",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogging()
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "text", "log format (text or json)")

	root.AddCommand(a.sortCmd(), a.verifyCmd(), a.benchCmd())
	return root
}

func (a *app) setupLogging() error {
	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid --log-level")
	}
	a.log.SetLevel(level)

	switch a.logFormat {
	case "text":
		a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		a.log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("invalid --log-format %q", a.logFormat)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := a.rootCmd().ExecuteContext(ctx); err != nil {
		a.log.WithError(err).Error("itersort failed")
		stop()
		os.Exit(1)
	}
}
