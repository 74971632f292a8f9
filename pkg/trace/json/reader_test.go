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
package json

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-zkevm/pkg/trace"
	"github.com/stretchr/testify/assert"
)

func TestReadBlock(t *testing.T) {
	data := `{
		"txs": [{"steps": [
			{"state": "PUSH", "opcode": 96, "values": ["42"]},
			{"state": "ADD", "opcode": 1, "values": ["42", "7"]}
		]}],
		"bytecodes": {"main": "602a07"},
		"randomness": "117"
	}`
	//
	block, err := FromBytes([]byte(data))
	assert.NoError(t, err)
	assert.Len(t, block.Txs, 1)
	assert.Len(t, block.Txs[0].Steps, 2)
	//
	step := block.Txs[0].Steps[0]
	assert.Equal(t, trace.StatePush, step.State)
	assert.Equal(t, trace.PUSH1, step.Opcode)
	assert.Equal(t, []fr.Element{fr.NewElement(42)}, step.Values)
	//
	assert.Equal(t, []byte{0x60, 0x2a, 0x07}, block.Bytecodes["main"])
	assert.Equal(t, fr.NewElement(117), block.Randomness)
}

func TestReadEmptyBlock(t *testing.T) {
	block, err := FromBytes([]byte(`{}`))
	assert.NoError(t, err)
	assert.Empty(t, block.Txs)
	assert.True(t, block.Randomness.IsZero())
}

func TestReadUnknownState(t *testing.T) {
	_, err := FromBytes([]byte(`{"txs": [{"steps": [{"state": "FLY"}]}]}`))
	assert.ErrorContains(t, err, "unknown execution state")
}

func TestReadMalformedValue(t *testing.T) {
	_, err := FromBytes([]byte(`{"txs": [{"steps": [{"state": "ADD", "values": ["xyz"]}]}]}`))
	assert.ErrorContains(t, err, "malformed field value")
}

func TestReadMalformedBytecode(t *testing.T) {
	_, err := FromBytes([]byte(`{"bytecodes": {"main": "zz"}}`))
	assert.Error(t, err)
}
