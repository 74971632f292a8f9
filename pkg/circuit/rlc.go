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
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-zkevm/pkg/circuit/table"
)

// NumRandomnessPowers is the number of successive challenge powers made
// available to the lookup and permutation arguments.
const NumRandomnessPowers = 31

// PowersOfRandomness derives the challenge power vectors for an instance of
// size 2^k.  Sequence e (starting from one) holds randomness^e at every
// usable row, i.e. 2^k minus the safety margin entries.  The challenge is an
// explicit parameter so that instances stay independent and deterministic
// under test.
func PowersOfRandomness(randomness fr.Element, k uint) [][]fr.Element {
	var (
		numRows = (uint(1) << k) - SafetyMargin
		powers  = make([][]fr.Element, NumRandomnessPowers)
		acc     = fr.One()
	)
	//
	for e := 0; e < NumRandomnessPowers; e++ {
		acc.Mul(&acc, &randomness)
		//
		seq := make([]fr.Element, numRows)
		for i := range seq {
			seq[i] = acc
		}
		//
		powers[e] = seq
	}

	return powers
}

// Compress folds a fixed-table tuple into a single field element using the
// given challenge powers: row[0] + row[1]*r + row[2]*r^2 + row[3]*r^3.  Both
// table rows and lookup queries are compressed the same way, so membership
// can be decided by comparing single field elements.
func Compress(row table.Row, powers [][]fr.Element) fr.Element {
	var acc, tmp fr.Element
	//
	acc.Set(&row[0])
	//
	for i := 1; i < table.Width; i++ {
		tmp.Mul(&row[i], &powers[i-1][0])
		acc.Add(&acc, &tmp)
	}

	return acc
}
