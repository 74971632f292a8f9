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

// Package checker provides a reference verifying engine used to exercise
// circuit assembly in tests and from the command line.  It checks the
// structural gates and the recorded lookup queries of an assigned matrix,
// restricted to the active rows; it makes no soundness claims and stands in
// for the real polynomial prover.
package checker

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-zkevm/pkg/circuit"
	"github.com/consensys/go-zkevm/pkg/circuit/table"
)

// Checker is the reference engine.  The zero value is ready for use.
type Checker struct{}

var _ circuit.Engine = Checker{}

// Verify checks every gate row for step-selector booleanity, and every
// recorded lookup query issued on an active lookup row for membership in the
// loaded fixed or byte tables.  Table tuples and queries are compressed into
// single field elements with the challenge powers before comparison, just as
// the lookup argument of the real prover would.
func (p Checker) Verify(mat *circuit.Matrix, powers [][]fr.Element,
	gates *bitset.BitSet, lookups *bitset.BitSet) []circuit.Failure {
	//
	var failures []circuit.Failure
	// Gates: step selector must be boolean on every active row.
	for row, ok := gates.NextSet(0); ok; row, ok = gates.NextSet(row + 1) {
		qStep := mat.Witness(circuit.QStepCol, row)
		//
		if !qStep.IsZero() && !qStep.IsOne() {
			failures = append(failures, &GateFailure{"q_step boolean", row})
		}
	}
	// Lookups: every recorded query on an active row must hit its table.
	fixedRows := fixedMembership(mat, powers)
	//
	for _, query := range mat.FixedLookups() {
		if !lookups.Test(query.Row) {
			continue
		}
		//
		if compressed := circuit.Compress(query.Values, powers); !fixedRows[compressed] {
			name := table.Tag(query.Values[0].Uint64()).String()
			failures = append(failures, &LookupFailure{name, query.Row})
		}
	}
	//
	byteRows := byteMembership(mat)
	//
	for _, query := range mat.ByteLookups() {
		if !lookups.Test(query.Row) {
			continue
		}
		//
		if !byteRows[query.Value] {
			failures = append(failures, &LookupFailure{"byte", query.Row})
		}
	}
	// Done
	return failures
}

// fixedMembership compresses every row of the fixed columns into its RLC
// image, giving the membership set lookup queries are decided against.  The
// unused tail of the columns is all zeroes, which compresses to the same
// value as the sentinel row and hence adds nothing new.
func fixedMembership(mat *circuit.Matrix, powers [][]fr.Element) map[fr.Element]bool {
	rows := make(map[fr.Element]bool, mat.Height())
	//
	for i := uint(0); i < mat.Height(); i++ {
		var row table.Row
		for col := 0; col < table.Width; col++ {
			row[col] = mat.Fixed(uint(col), i)
		}
		//
		rows[circuit.Compress(row, powers)] = true
	}

	return rows
}

func byteMembership(mat *circuit.Matrix) map[fr.Element]bool {
	rows := make(map[fr.Element]bool, circuit.ByteTableHeight)
	//
	for i := uint(0); i < mat.Height(); i++ {
		rows[mat.Byte(i)] = true
	}

	return rows
}
