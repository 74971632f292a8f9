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

// Package table defines the static lookup tables preloaded into the fixed
// columns of the circuit.  Each table variant is identified by a tag, and the
// rows of a given variant are a pure function of its tag alone: no randomness
// and no trace data is involved.
package table

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-zkevm/pkg/trace"
)

// Width is the number of fixed columns a table row spans.
const Width = 4

// Row is a single fixed-table row, laid out as [tag, value, value, value].
type Row [Width]fr.Element

// Tag identifies one static lookup table variant.
type Tag uint64

// The complete set of fixed table tags.  Their numeric values are written
// into the first fixed column and hence are part of the lookup encoding.
const (
	// Zero is a single all-zero-valued row distinct from the sentinel row.
	Zero Tag = iota
	Range5
	Range16
	Range32
	Range64
	Range256
	Range512
	Range1024
	// SignByte maps every byte onto its sign extension byte (0x00 or 0xff).
	SignByte
	// ResponsibleOpcode enumerates every (execution state, opcode) pair for
	// which the state is responsible.
	ResponsibleOpcode
	// Pow2 maps every byte-valued exponent n onto 2^n in the field.
	Pow2
	nTags
)

var tagNames = [nTags]string{
	Zero:              "Zero",
	Range5:            "Range5",
	Range16:           "Range16",
	Range32:           "Range32",
	Range64:           "Range64",
	Range256:          "Range256",
	Range512:          "Range512",
	Range1024:         "Range1024",
	SignByte:          "SignByte",
	ResponsibleOpcode: "ResponsibleOpcode",
	Pow2:              "Pow2",
}

func (p Tag) String() string {
	// Tags can arrive from untrusted lookup tuples, so unknown values must
	// still print rather than index out of range.
	if p >= nTags {
		return fmt.Sprintf("Tag(%d)", uint64(p))
	}

	return tagNames[p]
}

// Tags returns every fixed table tag in declaration order.
func Tags() []Tag {
	tags := make([]Tag, nTags)
	for i := range tags {
		tags[i] = Tag(i)
	}

	return tags
}

// Build constructs the complete, ordered sequence of rows for this table
// variant.  The result depends only on the tag and is stable across calls.
func (p Tag) Build() []Row {
	switch p {
	case Zero:
		return []Row{newRow(uint64(p), 0, 0, 0)}
	case Range5:
		return buildRange(p, 5)
	case Range16:
		return buildRange(p, 16)
	case Range32:
		return buildRange(p, 32)
	case Range64:
		return buildRange(p, 64)
	case Range256:
		return buildRange(p, 256)
	case Range512:
		return buildRange(p, 512)
	case Range1024:
		return buildRange(p, 1024)
	case SignByte:
		return buildSignByte(p)
	case ResponsibleOpcode:
		return buildResponsibleOpcode(p)
	case Pow2:
		return buildPow2(p)
	}
	// Unreachable for valid tags
	panic("unknown fixed table tag")
}

func buildRange(tag Tag, bound uint64) []Row {
	rows := make([]Row, bound)
	for i := uint64(0); i < bound; i++ {
		rows[i] = newRow(uint64(tag), i, 0, 0)
	}

	return rows
}

func buildSignByte(tag Tag) []Row {
	rows := make([]Row, 256)
	for i := uint64(0); i < 256; i++ {
		// Sign extension byte of i, viewed as a signed byte.
		sign := (i >> 7) * 0xff
		rows[i] = newRow(uint64(tag), i, sign, 0)
	}

	return rows
}

func buildResponsibleOpcode(tag Tag) []Row {
	var rows []Row
	//
	for _, state := range trace.States() {
		for _, op := range state.ResponsibleOpcodes() {
			rows = append(rows, newRow(uint64(tag), uint64(state), uint64(op), 0))
		}
	}

	return rows
}

func buildPow2(tag Tag) []Row {
	var (
		rows = make([]Row, 256)
		pow  = fr.One()
		two  = fr.NewElement(2)
	)
	//
	for i := uint64(0); i < 256; i++ {
		rows[i] = newRow(uint64(tag), i, 0, 0)
		rows[i][2].Set(&pow)
		pow.Mul(&pow, &two)
	}

	return rows
}

func newRow(vs ...uint64) Row {
	var row Row
	for i, v := range vs {
		row[i] = fr.NewElement(v)
	}

	return row
}
