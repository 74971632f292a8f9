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
package circuit

import (
	"math/bits"

	"github.com/consensys/go-zkevm/pkg/circuit/table"
	"github.com/consensys/go-zkevm/pkg/trace"
)

// SafetyMargin is the fixed number of rows reserved on top of every row
// budget, absorbing the blinding and randomisation rows required by the
// proving engine.
const SafetyMargin = 64

// RowsForBlock returns the total number of rows required to hold the given
// block's execution trace: one reserved guard row, plus the height of every
// step in transaction order.  This is a pure fold over the trace; calling it
// twice on the same block yields the same answer.
//
// The guard row ensures the final step can reference its successor's row
// without running off the end of the assigned region.
func RowsForBlock(block *trace.Block) uint {
	nrows := uint(1)
	//
	for _, tx := range block.Txs {
		for _, step := range tx.Steps {
			nrows += step.State.Height()
		}
	}

	return nrows
}

// MinimumSizeExponent returns the smallest k such that a circuit of 2^k rows
// fits the requested fixed tables, the block's bytecodes and the block's
// execution trace, each with the safety margin on top.
//
// The three row budgets occupy logically overlapping regions of the instance
// rather than being concatenated, so each bound is computed independently and
// the largest exponent wins.  Summing them instead would over-allocate
// whenever one family dominates.
func MinimumSizeExponent(tags []table.Tag, block *trace.Block) uint {
	k := log2Ceil(SafetyMargin + FixedTableRows(tags))
	k = max(k, log2Ceil(SafetyMargin+block.BytecodeSize()))
	k = max(k, log2Ceil(SafetyMargin+RowsForBlock(block)))

	return k
}

// log2Ceil returns the smallest k such that 2^k >= n.
func log2Ceil(n uint) uint {
	if n <= 1 {
		return 0
	}

	return uint(bits.Len(n - 1))
}
