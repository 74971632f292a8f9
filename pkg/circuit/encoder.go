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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-zkevm/pkg/circuit/table"
	"github.com/consensys/go-zkevm/pkg/trace"
)

// Witness column layout used by the reference encoder.  The first row of
// every step carries its selector, state tag, opcode and operands; internal
// rows of multi-row steps stay zero.
const (
	// QStepCol holds the step selector: one on the first row of each step.
	QStepCol = iota
	// StateCol holds the numeric execution state tag.
	StateCol
	// OpcodeCol holds the opcode byte.
	OpcodeCol
	// OperandCol is the first of MaxOperands operand columns.
	OperandCol
)

// MaxOperands bounds the number of auxiliary operand values a single step may
// carry.
const MaxOperands = 8

// WitnessWidth is the number of witness columns the reference encoder
// requires.
const WitnessWidth = OperandCol + MaxOperands

// Encoder is the reference step encoder: a closed dispatch over the
// execution state set which writes each step's selector, tag, opcode and
// operands, and records the lookup queries the step relies upon.  It stands
// in for the per-instruction gadgets of the full circuit, which own the same
// row ranges but add their own correctness constraints.
type Encoder struct{}

// Encode writes the witness rows for one step and returns the number of rows
// consumed, which always equals the state's declared height.
func (p Encoder) Encode(mat *Matrix, offset uint, tx *trace.Transaction, step *trace.Step) (uint, error) {
	height := step.State.Height()
	// Zero-height states share their row with a neighbour and write nothing.
	if height == 0 {
		return 0, nil
	}
	//
	if len(step.Values) > MaxOperands {
		return 0, fmt.Errorf("step %s carries %d operands, at most %d supported", step.State, len(step.Values), MaxOperands)
	}
	// Selector, state and opcode on the first row.
	if err := mat.SetWitness(QStepCol, offset, fr.One()); err != nil {
		return 0, err
	}
	//
	if err := mat.SetWitness(StateCol, offset, fr.NewElement(uint64(step.State))); err != nil {
		return 0, err
	}
	//
	if err := mat.SetWitness(OpcodeCol, offset, fr.NewElement(uint64(step.Opcode))); err != nil {
		return 0, err
	}
	//
	for i, val := range step.Values {
		if err := mat.SetWitness(uint(OperandCol+i), offset, val); err != nil {
			return 0, err
		}
	}
	//
	p.recordLookups(mat, offset, step)
	//
	return height, nil
}

// recordLookups issues the lookup queries a step of the given state depends
// upon.  Opcode-handling states always justify their opcode via the
// responsible-opcode table; some states additionally query the byte or
// sign-byte tables for their operands.
func (p Encoder) recordLookups(mat *Matrix, offset uint, step *trace.Step) {
	if len(step.State.ResponsibleOpcodes()) > 0 {
		mat.LookupFixed(offset, tableRow(table.ResponsibleOpcode,
			uint64(step.State), uint64(step.Opcode), 0))
		mat.LookupByte(offset, fr.NewElement(uint64(step.Opcode)))
	}
	//
	switch step.State {
	case trace.StateSignExtend:
		if len(step.Values) > 0 {
			b := lowByte(step.Values[0])
			mat.LookupFixed(offset, tableRow(table.SignByte, b, (b>>7)*0xff, 0))
		}
	case trace.StateBitwise, trace.StateByte:
		for _, val := range step.Values {
			mat.LookupByte(offset, fr.NewElement(lowByte(val)))
		}
	case trace.StatePush:
		// Push size lies in 0..31
		mat.LookupFixed(offset, tableRow(table.Range32,
			uint64(step.Opcode-trace.PUSH1), 0, 0))
	}
}

func tableRow(tag table.Tag, vs ...uint64) table.Row {
	var row table.Row
	//
	row[0] = fr.NewElement(uint64(tag))
	for i, v := range vs {
		row[i+1] = fr.NewElement(v)
	}

	return row
}

// lowByte extracts the least significant byte of a field element.
func lowByte(val fr.Element) uint64 {
	bytes := val.Bytes()
	return uint64(bytes[len(bytes)-1])
}
