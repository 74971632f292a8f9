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
)

// ByteTableHeight is the number of rows the byte table occupies.
const ByteTableHeight = 256

// LoadFixedTables populates the fixed lookup columns of the matrix with every
// row of every requested table, in list order.  Row 0 is always the all-zero
// sentinel, which doubles as the "disabled lookup" value; table rows follow
// from offset 1.  Duplicate tags are permitted and simply write their rows
// twice.
//
// Exceeding the column height is a configuration error on the caller's part:
// it is reported before any out-of-bounds row is written, with nothing
// silently truncated.
func LoadFixedTables(mat *Matrix, tags []table.Tag) error {
	// Determine total rows required, including the sentinel.
	nrows := FixedTableRows(tags)
	//
	if nrows > mat.Height() {
		return fmt.Errorf("fixed tables require %d rows, but only %d allocated", nrows, mat.Height())
	}
	// Sentinel row at offset 0.
	offset := uint(0)
	if err := assignFixedRow(mat, offset, table.Row{}); err != nil {
		return err
	}
	//
	offset++
	//
	for _, tag := range tags {
		for _, row := range tag.Build() {
			if err := assignFixedRow(mat, offset, row); err != nil {
				return err
			}
			//
			offset++
		}
	}
	// Done
	return nil
}

// LoadByteTable populates the byte column with the 256 byte values, row i
// holding the field element i.  As with the fixed tables, insufficient
// column height is a fatal configuration error.
func LoadByteTable(mat *Matrix) error {
	if ByteTableHeight > mat.Height() {
		return fmt.Errorf("byte table requires %d rows, but only %d allocated", ByteTableHeight, mat.Height())
	}
	//
	for i := uint(0); i < ByteTableHeight; i++ {
		if err := mat.SetByte(i, fr.NewElement(uint64(i))); err != nil {
			return err
		}
	}
	// Done
	return nil
}

// FixedTableRows returns the number of fixed-column rows required to hold the
// given tables, including the sentinel row at offset 0.
func FixedTableRows(tags []table.Tag) uint {
	nrows := uint(1)
	for _, tag := range tags {
		nrows += uint(len(tag.Build()))
	}

	return nrows
}

func assignFixedRow(mat *Matrix, offset uint, row table.Row) error {
	for col, val := range row {
		if err := mat.SetFixed(uint(col), offset, val); err != nil {
			return err
		}
	}

	return nil
}
