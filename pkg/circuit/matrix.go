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

// FixedLookup records one lookup query issued by a step encoder against the
// fixed table columns.  The query succeeds if its tuple matches some row of
// the loaded fixed tables.
type FixedLookup struct {
	// Row at which the query was issued.
	Row uint
	// Tuple being looked up.
	Values table.Row
}

// ByteLookup records one lookup query against the byte table column,
// asserting that Value is a byte (i.e. lies in 0..255).
type ByteLookup struct {
	Row   uint
	Value fr.Element
}

// Matrix is the circuit's cell grid for one instance: a fixed number of
// columns, each of the same height.  Columns are partitioned into the fixed
// lookup columns, the byte column, and the witness columns owned by the step
// encoders.  The matrix is allocated once per instance and every cell is
// assigned at most once before handoff to the proving engine.
type Matrix struct {
	height  uint
	fixed   [table.Width][]fr.Element
	bytes   []fr.Element
	witness [][]fr.Element
	// Lookup queries recorded during assignment, checked by the engine.
	fixedLookups []FixedLookup
	byteLookups  []ByteLookup
}

// NewMatrix allocates a zeroed matrix with the given height and number of
// witness columns.  All cells start at the field zero, which is also the
// padding value.
func NewMatrix(height uint, witnessWidth uint) *Matrix {
	var p Matrix
	//
	p.height = height
	for i := range p.fixed {
		p.fixed[i] = make([]fr.Element, height)
	}
	//
	p.bytes = make([]fr.Element, height)
	p.witness = make([][]fr.Element, witnessWidth)
	//
	for i := range p.witness {
		p.witness[i] = make([]fr.Element, height)
	}

	return &p
}

// Height returns the number of rows in this matrix.
func (p *Matrix) Height() uint {
	return p.height
}

// WitnessWidth returns the number of witness columns in this matrix.
func (p *Matrix) WitnessWidth() uint {
	return uint(len(p.witness))
}

// SetFixed assigns one cell of a fixed lookup column.  Writing at or beyond
// the matrix height is a capacity error: the caller has sized the instance
// too small.
func (p *Matrix) SetFixed(col uint, row uint, val fr.Element) error {
	if err := p.boundsCheck(row); err != nil {
		return err
	}
	//
	p.fixed[col][row] = val
	//
	return nil
}

// SetByte assigns one cell of the byte column.
func (p *Matrix) SetByte(row uint, val fr.Element) error {
	if err := p.boundsCheck(row); err != nil {
		return err
	}
	//
	p.bytes[row] = val
	//
	return nil
}

// SetWitness assigns one cell of a witness column.
func (p *Matrix) SetWitness(col uint, row uint, val fr.Element) error {
	if err := p.boundsCheck(row); err != nil {
		return err
	}
	//
	p.witness[col][row] = val
	//
	return nil
}

// Fixed reads one cell of a fixed lookup column.
func (p *Matrix) Fixed(col uint, row uint) fr.Element {
	return p.fixed[col][row]
}

// Byte reads one cell of the byte column.
func (p *Matrix) Byte(row uint) fr.Element {
	return p.bytes[row]
}

// Witness reads one cell of a witness column.
func (p *Matrix) Witness(col uint, row uint) fr.Element {
	return p.witness[col][row]
}

// LookupFixed records a lookup query against the fixed tables at the given
// row.  The query itself is checked later by the verifying engine, restricted
// to the active lookup rows.
func (p *Matrix) LookupFixed(row uint, values table.Row) {
	p.fixedLookups = append(p.fixedLookups, FixedLookup{row, values})
}

// LookupByte records a byte-range lookup query at the given row.
func (p *Matrix) LookupByte(row uint, value fr.Element) {
	p.byteLookups = append(p.byteLookups, ByteLookup{row, value})
}

// FixedLookups returns all fixed-table lookup queries recorded so far, in
// issue order.
func (p *Matrix) FixedLookups() []FixedLookup {
	return p.fixedLookups
}

// ByteLookups returns all byte lookup queries recorded so far, in issue
// order.
func (p *Matrix) ByteLookups() []ByteLookup {
	return p.byteLookups
}

func (p *Matrix) boundsCheck(row uint) error {
	if row >= p.height {
		return fmt.Errorf("row %d exceeds matrix height %d", row, p.height)
	}

	return nil
}
