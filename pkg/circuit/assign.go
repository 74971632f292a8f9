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
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-zkevm/pkg/trace"
)

// StepEncoder populates the witness rows of a single step.  One encoder
// exists per execution state; Encode writes into the matrix starting at the
// given offset and reports how many rows it consumed, which must equal the
// state's declared height.
type StepEncoder interface {
	Encode(mat *Matrix, offset uint, tx *trace.Transaction, step *trace.Step) (uint, error)
}

// AssignBlock walks every transaction and step of the block in order,
// delegating each step to the encoder and threading a running row offset so
// that step row ranges never overlap.  Assignment starts at row 0 and always
// leaves at least one trailing row unassigned, so any step may safely
// reference its successor's row.
//
// When exact is true, nothing is written beyond the last consumed row; this
// produces minimal-footprint instances for verification tests.  When false
// the remaining rows up to the matrix height stay at their zero default,
// which satisfies all gates and lookups trivially and leaves room for the
// padding state of the full instance.
func AssignBlock(mat *Matrix, block *trace.Block, encoder StepEncoder, exact bool) error {
	offset := uint(0)
	//
	for i := range block.Txs {
		tx := &block.Txs[i]
		//
		for j := range tx.Steps {
			step := &tx.Steps[j]
			height := step.State.Height()
			// Check step fits, with the lookahead row beyond it.
			if offset+height >= mat.Height() {
				return fmt.Errorf("step %s at row %d overflows matrix of height %d", step.State, offset, mat.Height())
			}
			//
			consumed, err := encoder.Encode(mat, offset, tx, step)
			//
			if err != nil {
				return err
			} else if consumed != height {
				// Height table and encoder disagree.  Continuing would
				// misalign every subsequent step.
				return fmt.Errorf("%s encoder consumed %d rows, declared height is %d", step.State, consumed, height)
			}
			//
			offset += consumed
		}
	}
	// Rows beyond the guard row stay at the zero (disabled) encoding, which
	// satisfies every gate and lookup trivially.  The full instance fills
	// them with the padding state instead.
	if !exact {
		log.Debugf("rows %d..%d left as padding", offset+1, mat.Height())
	}
	// Done
	return nil
}
