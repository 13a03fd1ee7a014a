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
	"github.com/fcm-sketch/hashcalc/y"
)

var indexOpt struct {
	ip     string
	depths []string
	widths []uint
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Print the FCM sketch register indexes of an IPv4 flow key.",
	Args:  cobra.NoArgs,
	RunE:  runIndex,
}

func init() {
	RootCmd.AddCommand(indexCmd)
	indexCmd.Flags().StringVar(&indexOpt.ip, "ip", "192.168.1.1", "IPv4 flow key")
	indexCmd.Flags().StringSliceVar(&indexOpt.depths, "depths", nil,
		"Hash algorithm of each tree. Defaults to crc32,crc32-mpeg2.")
	indexCmd.Flags().UintSliceVar(&indexOpt.widths, "widths", nil,
		"Register count of each level. Defaults to 524288,65536,8192.")
}

func runIndex(cmd *cobra.Command, args []string) error {
	opt := hashcalc.DefaultOptions().WithLogger(logger)
	if len(indexOpt.depths) > 0 {
		algos, err := parseAlgorithms(indexOpt.depths)
		if err != nil {
			return err
		}
		opt = opt.WithDepths(algos...)
	}
	if len(indexOpt.widths) > 0 {
		widths := make([]uint32, len(indexOpt.widths))
		for i, w := range indexOpt.widths {
			if uint64(w) > 1<<32-1 {
				return errors.Errorf("--widths: %d does not fit in 32 bits", w)
			}
			widths[i] = uint32(w)
		}
		opt = opt.WithLevelWidths(widths...)
	}

	l, err := hashcalc.NewLocator(opt)
	if err != nil {
		return err
	}
	key, err := hashcalc.ParseIPv4(indexOpt.ip)
	if err != nil {
		return y.Wrapf(err, "--ip")
	}

	out := cmd.OutOrStdout()
	hashes := l.Hashes(key)
	for d, row := range l.Indexes(key) {
		fmt.Fprintf(out, "depth %d (%s) hash %d:", d, opt.Depths[d], hashes[d])
		for lvl, idx := range row {
			fmt.Fprintf(out, " L%d=%d", lvl+1, idx)
		}
		fmt.Fprintln(out)
	}
	return nil
}
