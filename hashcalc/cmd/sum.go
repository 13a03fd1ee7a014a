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
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fcm-sketch/hashcalc"
	"github.com/fcm-sketch/hashcalc/y"
)

var sumOpt struct {
	algos []string
	ip    string
	hex   bool
}

var sumCmd = &cobra.Command{
	Use:   "sum [STRING...]",
	Short: "Checksum an IPv4 flow key or literal strings.",
	Long: `
Computes the checksums of --ip (as 4 octets) or of every argument (as raw
bytes). By default every supported algorithm is printed.
`,
	RunE: runSum,
}

func init() {
	RootCmd.AddCommand(sumCmd)
	sumCmd.Flags().StringSliceVarP(&sumOpt.algos, "algo", "a", nil,
		"Algorithms to compute. Defaults to all of them.")
	sumCmd.Flags().StringVar(&sumOpt.ip, "ip", "", "IPv4 flow key, e.g. 192.168.1.1")
	sumCmd.Flags().BoolVar(&sumOpt.hex, "hex", false, "Print checksums in hex instead of decimal.")
}

func parseAlgorithms(names []string) ([]hashcalc.Algorithm, error) {
	if len(names) == 0 {
		return hashcalc.Algorithms(), nil
	}
	algos := make([]hashcalc.Algorithm, 0, len(names))
	for _, n := range names {
		a, err := hashcalc.ParseAlgorithm(n)
		if err != nil {
			return nil, err
		}
		algos = append(algos, a)
	}
	return algos, nil
}

func runSum(cmd *cobra.Command, args []string) error {
	algos, err := parseAlgorithms(sumOpt.algos)
	if err != nil {
		return err
	}

	var inputs [][]byte
	var labels []string
	switch {
	case sumOpt.ip != "" && len(args) > 0:
		return errors.New("--ip and string arguments are mutually exclusive")
	case sumOpt.ip != "":
		key, err := hashcalc.ParseIPv4(sumOpt.ip)
		if err != nil {
			return y.Wrapf(err, "--ip")
		}
		inputs, labels = [][]byte{key}, []string{sumOpt.ip}
	case len(args) > 0:
		for _, a := range args {
			inputs = append(inputs, []byte(a))
			labels = append(labels, fmt.Sprintf("%q", a))
		}
	default:
		return errors.New("nothing to checksum, pass --ip or at least one argument")
	}

	out := cmd.OutOrStdout()
	for i, in := range inputs {
		logger.Debugf("Checksumming %d bytes of %s", len(in), labels[i])
		var b strings.Builder
		for _, a := range algos {
			sum := hashcalc.CalculateChecksum(in, a)
			if sumOpt.hex {
				fmt.Fprintf(&b, "%s\t%s\t%#x\n", labels[i], a, sum)
			} else {
				fmt.Fprintf(&b, "%s\t%s\t%d\n", labels[i], a, sum)
			}
		}
		fmt.Fprint(out, b.String())
	}
	return nil
}
