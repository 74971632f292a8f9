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
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Failure embodies structured information about one failing constraint or
// lookup, naming at least the offending row.  Failures are results for the
// caller to inspect, not errors: the assembly itself succeeded.
type Failure interface {
	// Message provides a suitable error message.
	Message() string
}

// Engine abstracts the proving/verifying backend.  It receives a fully
// assigned matrix, the challenge power vectors and the two active row sets,
// and reports every gate or lookup violation it finds on the active rows.
// An empty (or nil) result means the instance verified.
type Engine interface {
	Verify(mat *Matrix, powers [][]fr.Element, gates *bitset.BitSet, lookups *bitset.BitSet) []Failure
}
