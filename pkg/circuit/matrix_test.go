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
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-zkevm/pkg/circuit/table"
	"github.com/stretchr/testify/assert"
)

func TestMatrixZeroed(t *testing.T) {
	mat := NewMatrix(8, 2)
	//
	assert.Equal(t, uint(8), mat.Height())
	assert.Equal(t, uint(2), mat.WitnessWidth())
	//
	for row := uint(0); row < 8; row++ {
		assert.True(t, isZero(mat.Fixed(0, row)))
		assert.True(t, isZero(mat.Byte(row)))
		assert.True(t, isZero(mat.Witness(1, row)))
	}
}

func TestMatrixBounds(t *testing.T) {
	mat := NewMatrix(8, 2)
	//
	assert.NoError(t, mat.SetWitness(0, 7, fr.One()))
	assert.Error(t, mat.SetWitness(0, 8, fr.One()))
	assert.Error(t, mat.SetFixed(0, 8, fr.One()))
	assert.Error(t, mat.SetByte(8, fr.One()))
}

func TestMatrixLookupRecording(t *testing.T) {
	mat := NewMatrix(8, 2)
	//
	var row table.Row
	row[0] = fr.NewElement(uint64(table.Range5))
	//
	mat.LookupFixed(3, row)
	mat.LookupByte(4, fr.NewElement(200))
	// Queries come back in issue order.
	fixed := mat.FixedLookups()
	assert.Len(t, fixed, 1)
	assert.Equal(t, uint(3), fixed[0].Row)
	assert.Equal(t, row, fixed[0].Values)
	//
	bytes := mat.ByteLookups()
	assert.Len(t, bytes, 1)
	assert.Equal(t, uint(4), bytes[0].Row)
}
