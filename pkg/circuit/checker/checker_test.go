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
package checker

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-zkevm/pkg/circuit"
	"github.com/consensys/go-zkevm/pkg/circuit/table"
	"github.com/consensys/go-zkevm/pkg/trace"
	"github.com/stretchr/testify/assert"
)

func TestCheckValidBlock(t *testing.T) {
	block := validBlock()
	//
	failures, err := circuit.Check(block, table.Tags(), Checker{})
	assert.NoError(t, err)
	assert.Empty(t, failures)
}

func TestCheckEmptyBlock(t *testing.T) {
	block := &trace.Block{Randomness: fr.NewElement(117)}
	//
	failures, err := circuit.Check(block, table.Tags(), Checker{})
	assert.NoError(t, err)
	assert.Empty(t, failures)
}

func TestCheckGateFailure(t *testing.T) {
	block := validBlock()
	mat, powers, gates, lookups := assemble(t, block)
	// Break selector booleanity on an active row.
	assert.NoError(t, mat.SetWitness(circuit.QStepCol, 0, fr.NewElement(2)))
	//
	failures := Checker{}.Verify(mat, powers, gates, lookups)
	assert.Len(t, failures, 1)
	assert.Equal(t, "gate \"q_step boolean\" does not hold (row 0)", failures[0].Message())
}

func TestCheckGateFailureOnInactiveRowIgnored(t *testing.T) {
	block := validBlock()
	mat, powers, gates, lookups := assemble(t, block)
	// Same corruption, but beyond the active region.
	row := circuit.RowsForBlock(block) + 5
	assert.NoError(t, mat.SetWitness(circuit.QStepCol, row, fr.NewElement(2)))
	//
	failures := Checker{}.Verify(mat, powers, gates, lookups)
	assert.Empty(t, failures)
}

func TestCheckLookupFailure(t *testing.T) {
	block := validBlock()
	mat, powers, gates, lookups := assemble(t, block)
	// Query a tuple no fixed table contains.
	var bogus table.Row
	bogus[0] = fr.NewElement(uint64(table.Range5))
	bogus[1] = fr.NewElement(500)
	mat.LookupFixed(2, bogus)
	//
	failures := Checker{}.Verify(mat, powers, gates, lookups)
	assert.Len(t, failures, 1)
	assert.Equal(t, "lookup into \"Range5\" failed (row 2)", failures[0].Message())
}

func TestCheckLookupFailureUnknownTag(t *testing.T) {
	block := validBlock()
	mat, powers, gates, lookups := assemble(t, block)
	// A query whose tag column holds no known tag still reports a
	// structured failure.
	var bogus table.Row
	bogus[0] = fr.NewElement(999)
	mat.LookupFixed(2, bogus)
	//
	failures := Checker{}.Verify(mat, powers, gates, lookups)
	assert.Len(t, failures, 1)
	assert.Equal(t, "lookup into \"Tag(999)\" failed (row 2)", failures[0].Message())
}

func TestCheckByteLookupFailure(t *testing.T) {
	block := validBlock()
	mat, powers, gates, lookups := assemble(t, block)
	//
	mat.LookupByte(1, fr.NewElement(300))
	//
	failures := Checker{}.Verify(mat, powers, gates, lookups)
	assert.Len(t, failures, 1)
	assert.Equal(t, "lookup into \"byte\" failed (row 1)", failures[0].Message())
}

func TestCheckDisabledLookupAlwaysPasses(t *testing.T) {
	block := validBlock()
	mat, powers, gates, lookups := assemble(t, block)
	// An all-zero query matches the sentinel row.
	mat.LookupFixed(0, table.Row{})
	//
	failures := Checker{}.Verify(mat, powers, gates, lookups)
	assert.Empty(t, failures)
}

// validBlock constructs a block exercising multi-row states, operand
// lookups and every fixed table family the encoder queries.
func validBlock() *trace.Block {
	steps := []trace.Step{
		{State: trace.BeginTx},
		{State: trace.StatePush, Opcode: trace.PUSH1, Values: values(42)},
		{State: trace.StatePush, Opcode: trace.PUSH32, Values: values(7)},
		{State: trace.StateAdd, Opcode: trace.ADD, Values: values(42, 7)},
		{State: trace.StateMul, Opcode: trace.MUL, Values: values(49, 2)},
		{State: trace.StateBitwise, Opcode: trace.XOR, Values: values(0xf0, 0x0f)},
		{State: trace.StateSignExtend, Opcode: trace.SIGNEXTEND, Values: values(0x80)},
		{State: trace.StatePop, Opcode: trace.POP},
		{State: trace.StateStop, Opcode: trace.STOP},
		{State: trace.EndTx},
		{State: trace.EndBlock},
	}
	//
	return &trace.Block{
		Txs:        []trace.Transaction{{Steps: steps}},
		Bytecodes:  map[string][]byte{"main": {0x60, 0x2a, 0x60, 0x07, 0x01, 0x50, 0x00}},
		Randomness: fr.NewElement(0xcafe),
	}
}

func assemble(t *testing.T, block *trace.Block) (*circuit.Matrix, [][]fr.Element, *bitset.BitSet, *bitset.BitSet) {
	t.Helper()
	//
	mat, err := circuit.Assemble(block, table.Tags(), true)
	assert.NoError(t, err)
	//
	k := circuit.MinimumSizeExponent(table.Tags(), block)
	powers := circuit.PowersOfRandomness(block.Randomness, k)
	gates, lookups := circuit.ActiveRows(block)
	//
	return mat, powers, gates, lookups
}

func values(vs ...uint64) []fr.Element {
	elements := make([]fr.Element, len(vs))
	for i, v := range vs {
		elements[i] = fr.NewElement(v)
	}

	return elements
}
