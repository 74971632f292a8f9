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
	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-zkevm/pkg/circuit/table"
	"github.com/consensys/go-zkevm/pkg/trace"
)

// Assemble sizes and fully populates a circuit instance for the given block
// and fixed tables: it determines the minimal power-of-two height, loads the
// fixed and byte tables, and assigns every step of the trace.  The returned
// matrix has every cell written exactly once and is ready for handoff to a
// verifying engine.
func Assemble(block *trace.Block, tags []table.Tag, exact bool) (*Matrix, error) {
	k := MinimumSizeExponent(tags, block)
	//
	log.Debugf("evm circuit uses k = %d", k)
	//
	mat := NewMatrix(uint(1)<<k, WitnessWidth)
	//
	if err := LoadFixedTables(mat, tags); err != nil {
		return nil, err
	}
	//
	if err := LoadByteTable(mat); err != nil {
		return nil, err
	}
	//
	if err := AssignBlock(mat, block, Encoder{}, exact); err != nil {
		return nil, err
	}
	// Done
	return mat, nil
}

// Check assembles a minimal instance for the block and hands it to the given
// engine, restricted to the active row sets.  It returns the engine's
// failure list (empty on success), or an error if assembly itself failed due
// to a sizing or consistency bug.
//
// The sizing performed here is the production sizing: both paths go through
// MinimumSizeExponent and RowsForBlock.
func Check(block *trace.Block, tags []table.Tag, engine Engine) ([]Failure, error) {
	mat, err := Assemble(block, tags, true)
	if err != nil {
		return nil, err
	}
	//
	k := MinimumSizeExponent(tags, block)
	powers := PowersOfRandomness(block.Randomness, k)
	gates, lookups := ActiveRows(block)
	//
	return engine.Verify(mat, powers, gates, lookups), nil
}
