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
package trace

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Step records one occurrence of an execution state within a trace, along
// with whatever auxiliary data its state's encoder needs.  Steps are
// immutable once constructed; the circuit assembly layer reads them but
// never writes them.
type Step struct {
	// State of this step.
	State ExecutionState
	// Opcode being executed (meaningful only for opcode-handling states).
	Opcode Opcode
	// Auxiliary operand values, opaque to the assembly layer.  These are
	// handed verbatim to the step encoder.
	Values []fr.Element
}

// Transaction is an ordered sequence of steps.  Sequence order is execution
// order and is load bearing, since adjacent steps may reference each other's
// rows.
type Transaction struct {
	Steps []Step
}

// Block is an ordered sequence of transactions, together with the bytecodes
// executed within it and the per-instance randomness used for random linear
// combination encodings.  Blocks are read-only inputs to circuit assembly.
type Block struct {
	Txs []Transaction
	// Bytecodes executed within this block, keyed by an opaque identifier.
	// Only their total length matters to circuit sizing; their contents are
	// loaded by the (external) bytecode table.
	Bytecodes map[string][]byte
	// Challenge from which all RLC powers are derived.
	Randomness fr.Element
}

// NumSteps returns the total number of steps across all transactions in this
// block.
func (p *Block) NumSteps() uint {
	var n uint
	for _, tx := range p.Txs {
		n += uint(len(tx.Steps))
	}

	return n
}

// BytecodeSize returns the combined length of all bytecodes in this block.
func (p *Block) BytecodeSize() uint {
	var n uint
	for _, code := range p.Bytecodes {
		n += uint(len(code))
	}

	return n
}
