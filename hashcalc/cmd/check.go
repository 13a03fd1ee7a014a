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

	"github.com/spf13/cobra"

	"github.com/fcm-sketch/hashcalc"
	"github.com/fcm-sketch/hashcalc/y"
)

// checkVectors are the catalogued check values over "123456789".
var checkVectors = []struct {
	algo hashcalc.Algorithm
	want uint64
}{
	{hashcalc.CRC32, 0xCBF43926},
	{hashcalc.CRC32MPEG2, 0x0376E6E7},
	{hashcalc.CRC32XFER, 0xBD0BE338},
	{hashcalc.CRC32AIXM, 0x3010BF7F},
	{hashcalc.CRC32C, 0xE3069283},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify every CRC against its standard check value.",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	data := []byte("123456789")
	out := cmd.OutOrStdout()

	var failed error
	for _, v := range checkVectors {
		err := hashcalc.VerifyChecksum(data, v.algo, v.want)
		if err != nil {
			logger.Errorf("%v", err)
			fmt.Fprintf(out, "%-12s FAIL\n", v.algo)
		} else {
			fmt.Fprintf(out, "%-12s ok   %#08x\n", v.algo, v.want)
		}
		failed = y.CombineErrors(failed, err)
	}
	return failed
}
