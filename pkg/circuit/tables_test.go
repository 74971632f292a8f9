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

func TestFixedTableRowCounts(t *testing.T) {
	// An empty tag list still has the sentinel row.
	assert.Equal(t, uint(1), FixedTableRows(nil))
	// Range5 and Range16 together occupy 1 + 5 + 16 rows.
	assert.Equal(t, uint(22), FixedTableRows([]table.Tag{table.Range5, table.Range16}))
	// Duplicates write their rows twice.
	assert.Equal(t, uint(11), FixedTableRows([]table.Tag{table.Range5, table.Range5}))
}

func TestLoadFixedTablesSentinel(t *testing.T) {
	mat := NewMatrix(64, 0)
	//
	assert.NoError(t, LoadFixedTables(mat, []table.Tag{table.Range5}))
	// Row 0 is the all-zero sentinel.
	for col := uint(0); col < table.Width; col++ {
		assert.True(t, isZero(mat.Fixed(col, 0)), "sentinel row must be zero (col %d)", col)
	}
	// Table rows follow from offset 1.
	assert.Equal(t, fr.NewElement(uint64(table.Range5)), mat.Fixed(0, 1))
	assert.Equal(t, fr.NewElement(4), mat.Fixed(1, 5))
}

func TestLoadFixedTablesOrder(t *testing.T) {
	mat := NewMatrix(64, 0)
	//
	assert.NoError(t, LoadFixedTables(mat, []table.Tag{table.Range5, table.Range16}))
	// Range5 occupies rows 1..5, Range16 rows 6..21.
	assert.Equal(t, fr.NewElement(uint64(table.Range5)), mat.Fixed(0, 5))
	assert.Equal(t, fr.NewElement(uint64(table.Range16)), mat.Fixed(0, 6))
	assert.Equal(t, fr.NewElement(15), mat.Fixed(1, 21))
	// Nothing written beyond the final table row.
	assert.True(t, isZero(mat.Fixed(0, 22)))
}

func TestLoadFixedTablesCapacity(t *testing.T) {
	mat := NewMatrix(16, 0)
	// Range256 cannot fit within 16 rows.
	err := LoadFixedTables(mat, []table.Tag{table.Range256})
	assert.Error(t, err)
	// Failure must precede any write: the matrix is untouched.
	for row := uint(0); row < mat.Height(); row++ {
		assert.True(t, isZero(mat.Fixed(1, row)), "row %d written despite capacity error", row)
	}
}

func TestLoadByteTable(t *testing.T) {
	mat := NewMatrix(512, 0)
	//
	assert.NoError(t, LoadByteTable(mat))
	//
	for i := uint(0); i < ByteTableHeight; i++ {
		assert.Equal(t, fr.NewElement(uint64(i)), mat.Byte(i), "byte row %d", i)
	}
	// Nothing beyond row 255.
	assert.True(t, isZero(mat.Byte(ByteTableHeight)))
}

func TestLoadByteTableCapacity(t *testing.T) {
	mat := NewMatrix(100, 0)
	//
	assert.Error(t, LoadByteTable(mat))
}
