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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-itersort/internal/config"
	"github.com/ajroetker/go-itersort/itersort"
)

func (a *app) sortCmd() *cobra.Command {
	var (
		strategy string
		trace    bool
	)
	cmd := &cobra.Command{
		Use:   "sort [numbers...]",
		Short: "Sort integers from the arguments, or from stdin when none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strategy") {
				if v := os.Getenv(config.EnvStrategy); v != "" {
					strategy = v
				}
			}
			s, err := itersort.ParseStrategy(strategy)
			if err != nil {
				return err
			}

			fields := args
			if len(fields) == 0 {
				if fields, err = readFields(cmd); err != nil {
					return err
				}
			}
			data, err := parseInts(fields)
			if err != nil {
				return err
			}

			if trace {
				itersort.SortTrace(data, itersort.Partition[int](s), func(iv itersort.Interval, split int) {
					a.log.WithFields(logrus.Fields{
						"low":   iv.Low,
						"high":  iv.High,
						"split": split,
					}).Debug("partitioned")
				})
			} else {
				itersort.Sort(data, s)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lo.Map(data, func(v int, _ int) string {
				return strconv.Itoa(v)
			}), " "))
			return errors.Wrap(err, "write output")
		},
	}
	cmd.Flags().StringVarP(&strategy, "strategy", "s", itersort.Hoare.String(), "partition strategy (hoare or lomuto)")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every partitioned interval at debug level")
	return cmd
}

func readFields(cmd *cobra.Command) ([]string, error) {
	var fields []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		fields = append(fields, sc.Text())
	}
	return fields, errors.Wrap(sc.Err(), "read stdin")
}

func parseInts(fields []string) ([]int, error) {
	data := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		data[i] = v
	}
	return data, nil
}
