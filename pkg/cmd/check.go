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
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/consensys/go-zkevm/pkg/circuit"
	"github.com/consensys/go-zkevm/pkg/circuit/checker"
	"github.com/consensys/go-zkevm/pkg/circuit/table"
)

// checkCmd assembles a trace into a circuit instance and verifies it with
// the reference engine.
var checkCmd = &cobra.Command{
	Use:   "check [flags] trace_file",
	Short: "Assemble a trace and check it against the reference engine.",
	Long: `Assemble a given block trace into a sized circuit instance,
	load the fixed lookup tables, and check all gates and lookups
	on the active rows.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		block := readBlockFile(args[0])
		tags := table.Tags()
		//
		failures, err := circuit.Check(block, tags, checker.Checker{})
		if err != nil {
			// Sizing or consistency bug, not a verification failure.
			log.Error(err)
			os.Exit(2)
		}
		//
		if len(failures) > 0 {
			reportFailures(failures)
			os.Exit(1)
		}
		//
		fmt.Println("OK")
	},
}

// reportFailures prints one failure per line beneath a separator, with both
// sized to the enclosing terminal (if any).
func reportFailures(failures []circuit.Failure) {
	width := 80
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}
	//
	fmt.Println(strings.Repeat("-", width))
	//
	for _, failure := range failures {
		fmt.Println(clipLine(failure.Message(), width))
	}
}

// clipLine truncates a message to the given width, marking the cut with an
// ellipsis.
func clipLine(msg string, width int) string {
	if width > 3 && len(msg) > width {
		return msg[:width-3] + "..."
	}

	return msg
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
