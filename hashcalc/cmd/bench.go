/*
 * Copyright 2026 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package cmd

import (
	"fmt"
	"math/rand"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fcm-sketch/hashcalc"
)

var benchOpt struct {
	size    string
	workers int
	rounds  int
	algos   []string
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure checksum throughput.",
	Long: `
Every worker checksums its own random buffer --rounds times with each algorithm.
Workers start together, so the first CRC-32C calls race on the table build.
`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	RootCmd.AddCommand(benchCmd)
	benchCmd.Flags().StringVar(&benchOpt.size, "size", "1MiB", "Buffer size per worker.")
	benchCmd.Flags().IntVarP(&benchOpt.workers, "workers", "w", 4, "Number of concurrent workers.")
	benchCmd.Flags().IntVarP(&benchOpt.rounds, "rounds", "r", 16, "Checksums per worker and algorithm.")
	benchCmd.Flags().StringSliceVarP(&benchOpt.algos, "algo", "a", nil,
		"Algorithms to benchmark. Defaults to all of them.")
}

func runBench(cmd *cobra.Command, args []string) error {
	size, err := humanize.ParseBytes(benchOpt.size)
	if err != nil {
		return errors.Wrapf(err, "--size %q", benchOpt.size)
	}
	if benchOpt.workers < 1 || benchOpt.rounds < 1 {
		return errors.New("--workers and --rounds should be at least 1")
	}
	algos, err := parseAlgorithms(benchOpt.algos)
	if err != nil {
		return err
	}

	bufs := make([][]byte, benchOpt.workers)
	for i := range bufs {
		bufs[i] = make([]byte, size)
		rand.New(rand.NewSource(int64(i))).Read(bufs[i])
	}

	out := cmd.OutOrStdout()
	for _, algo := range algos {
		start := time.Now()
		g, ctx := errgroup.WithContext(cmd.Context())
		for i := range bufs {
			buf := bufs[i]
			g.Go(func() error {
				for r := 0; r < benchOpt.rounds; r++ {
					if err := ctx.Err(); err != nil {
						return err
					}
					hashcalc.CalculateChecksum(buf, algo)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return errors.Wrapf(err, "benchmarking %s", algo)
		}
		elapsed := time.Since(start)
		if elapsed <= 0 {
			elapsed = time.Nanosecond
		}
		total := size * uint64(benchOpt.workers) * uint64(benchOpt.rounds)
		rate := uint64(float64(total) / elapsed.Seconds())
		logger.Debugf("%s took %s", algo, elapsed)
		fmt.Fprintf(out, "%-12s %s in %s, %s/s\n", algo,
			humanize.IBytes(total), elapsed.Round(time.Microsecond), humanize.IBytes(rate))
	}
	return nil
}
