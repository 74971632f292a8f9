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

import "fmt"

// GateFailure provides structural information about a failing gate.
type GateFailure struct {
	// Handle of the failing gate
	Handle string
	// Row on which the gate failed
	Row uint
}

// Message provides a suitable error message
func (p *GateFailure) Message() string {
	return fmt.Sprintf("gate \"%s\" does not hold (row %d)", p.Handle, p.Row)
}

func (p *GateFailure) String() string {
	return p.Message()
}

// LookupFailure provides structural information about a failing lookup
// query.
type LookupFailure struct {
	// Name of the table being looked up
	Table string
	// Row on which the query was issued
	Row uint
}

// Message provides a suitable error message
func (p *LookupFailure) Message() string {
	return fmt.Sprintf("lookup into \"%s\" failed (row %d)", p.Table, p.Row)
}

func (p *LookupFailure) String() string {
	return p.Message()
}
