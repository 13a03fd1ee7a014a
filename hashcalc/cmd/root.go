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
	"os"

	"github.com/spf13/cobra"

	"github.com/fcm-sketch/hashcalc/crc"
	"github.com/fcm-sketch/hashcalc/y"
)

var verbose bool

// logger is replaced in PersistentPreRun once flags are parsed.
var logger = y.DefaultLogger()

// demoKey is the flow key 192.168.1.1.
var demoKey = []byte{192, 168, 1, 1}

// RootCmd represents the base command when called without any subcommands.
// Without a subcommand it prints the three sketch CRCs of the demo key.
var RootCmd = &cobra.Command{
	Use:   "hashcalc",
	Short: "Compute the CRC checksums used by the FCM sketch.",
	Args:  cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := y.INFO
		if verbose {
			level = y.DEBUG
		}
		logger = y.NewLogger(cmd.ErrOrStderr(), level)
	},
	Run: func(cmd *cobra.Command, args []string) {
		printDemo(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs.")
}

func printDemo(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "CRC32 value is : %d\n", crc.ChecksumIEEE(demoKey))
	fmt.Fprintf(out, "crc32b : %d\n", crc.ChecksumMPEG2(demoKey))

	var sum uint32
	for i := range demoKey {
		sum = crc.UpdateCastagnoli(sum, demoKey[i:i+1])
	}
	fmt.Fprintf(out, "CRC32c_sw value is: %d\n", sum)
}
