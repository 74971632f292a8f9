// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-zkevm/pkg/circuit"
	"github.com/consensys/go-zkevm/pkg/circuit/table"
	"github.com/spf13/cobra"
)

// rowsCmd reports the row budget of a trace without assembling it.
var rowsCmd = &cobra.Command{
	Use:   "rows [flags] trace_file",
	Short: "Report the row budget and circuit size for a trace.",
	Long: `Compute how many rows a given block trace requires, and the
	minimal power-of-two circuit size which fits it together with
	the fixed lookup tables.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		block := readBlockFile(args[0])
		tags := table.Tags()
		//
		nrows := circuit.RowsForBlock(block)
		k := circuit.MinimumSizeExponent(tags, block)
		//
		fmt.Printf("%d steps across %d transactions\n", block.NumSteps(), len(block.Txs))
		fmt.Printf("%d trace rows (incl. guard row)\n", nrows)
		fmt.Printf("%d fixed table rows\n", circuit.FixedTableRows(tags))
		fmt.Printf("%d bytecode rows\n", block.BytecodeSize())
		fmt.Printf("circuit size 2^%d = %d rows\n", k, uint(1)<<k)
	},
}

func init() {
	rootCmd.AddCommand(rowsCmd)
}
