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
	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-zkevm/pkg/trace"
)

// ActiveRows determines which rows of an instance actually participate in
// constraint checking.  Two sets are returned: rows on which the always-on
// gates apply, and rows on which lookup arguments apply.  Everything beyond
// them, up to the padded power-of-two height, is inert filler the verifier
// may skip.
//
// In the current encoding both sets are the same contiguous prefix
// [0, RowsForBlock(block)), since every in-use row carries both step-selector
// gates and potential lookups.  They are nevertheless kept separate so that
// gate and lookup checking can diverge without changing this interface.
func ActiveRows(block *trace.Block) (gates *bitset.BitSet, lookups *bitset.BitSet) {
	nrows := RowsForBlock(block)
	//
	gates = prefixSet(nrows)
	lookups = prefixSet(nrows)
	//
	return gates, lookups
}

func prefixSet(n uint) *bitset.BitSet {
	set := bitset.New(n)
	for i := uint(0); i < n; i++ {
		set.Set(i)
	}

	return set
}
