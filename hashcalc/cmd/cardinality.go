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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fcm-sketch/hashcalc"
)

var cardOpt struct {
	width    uint32
	epsilon  float64
	occupied []uint
	ranges   bool
}

var cardinalityCmd = &cobra.Command{
	Use:   "cardinality",
	Short: "Estimate flow cardinality from occupied leaf registers.",
	Long: `
Builds the adaptive linear counting ranges the switch matches on and looks up
the estimate for the per-tree average of --occupied (one value per tree).
`,
	Args: cobra.NoArgs,
	RunE: runCardinality,
}

func init() {
	RootCmd.AddCommand(cardinalityCmd)
	cardinalityCmd.Flags().Uint32Var(&cardOpt.width, "width", hashcalc.LevelOneWidth,
		"Number of leaf registers per tree.")
	cardinalityCmd.Flags().Float64Var(&cardOpt.epsilon, "epsilon", hashcalc.DefaultCardinalityEpsilon,
		"Largest relative change of the estimate within one range.")
	cardinalityCmd.Flags().UintSliceVar(&cardOpt.occupied, "occupied", nil,
		"Occupied leaf registers of each tree.")
	cardinalityCmd.Flags().BoolVar(&cardOpt.ranges, "ranges", false, "Print every range.")
}

func runCardinality(cmd *cobra.Command, args []string) error {
	ranges, err := hashcalc.CardinalityRanges(cardOpt.width, cardOpt.epsilon)
	if err != nil {
		return err
	}
	logger.Debugf("%d cardinality ranges for %d registers", len(ranges), cardOpt.width)

	out := cmd.OutOrStdout()
	if cardOpt.ranges {
		for _, r := range ranges {
			fmt.Fprintf(out, "[%d, %d)\t%d\n", r.Low, r.High, r.Estimate)
		}
	}
	if len(cardOpt.occupied) == 0 {
		fmt.Fprintf(out, "ranges: %d\n", len(ranges))
		return nil
	}

	var total uint64
	for _, o := range cardOpt.occupied {
		total += uint64(o)
	}
	avg := hashcalc.AverageOccupied(total, len(cardOpt.occupied))
	est, ok := hashcalc.LookupCardinality(ranges, avg)
	if !ok {
		return errors.Errorf("%d occupied registers out of %d: sketch is full", avg, cardOpt.width)
	}
	fmt.Fprintf(out, "occupied: %d\tcardinality: %d\n", avg, est)
	return nil
}
