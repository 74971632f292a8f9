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
package trace

// ExecutionState identifies the kind of a single step within an execution
// trace.  The set of states is closed and known at compile time, and every
// state occupies a fixed number of rows in the final circuit.  A height of
// zero is permitted for states which share rows with a neighbouring step.
type ExecutionState uint

// The complete set of execution states.  BeginTx / EndTx bracket every
// transaction, whilst EndBlock terminates the trace as a whole and shares its
// row with the final EndTx (hence height zero).
const (
	BeginTx ExecutionState = iota
	EndTx
	EndBlock
	StateStop
	StateAdd
	StateMul
	StateDiv
	StateSignExtend
	StateCmp
	StateIsZero
	StateBitwise
	StateNot
	StateByte
	StateCallDataLoad
	StatePop
	StateMemory
	StateJump
	StateJumpi
	StatePc
	StateJumpDest
	StatePush
	StateDup
	StateSwap
	ErrorInvalidJump
	// Total number of execution states.  Must come last.
	nStates
)

// stateHeights maps every execution state to the fixed number of circuit rows
// one step of that state occupies.  Multi-row states bundle internal
// sub-computations (e.g. memory expansion) below their first row.
var stateHeights = [nStates]uint{
	BeginTx:           2,
	EndTx:             2,
	EndBlock:          0,
	StateStop:         1,
	StateAdd:          1,
	StateMul:          2,
	StateDiv:          2,
	StateSignExtend:   2,
	StateCmp:          1,
	StateIsZero:       1,
	StateBitwise:      1,
	StateNot:          1,
	StateByte:         2,
	StateCallDataLoad: 2,
	StatePop:          1,
	StateMemory:       2,
	StateJump:         1,
	StateJumpi:        1,
	StatePc:           1,
	StateJumpDest:     1,
	StatePush:         1,
	StateDup:          1,
	StateSwap:         1,
	ErrorInvalidJump:  1,
}

var stateNames = [nStates]string{
	BeginTx:           "BeginTx",
	EndTx:             "EndTx",
	EndBlock:          "EndBlock",
	StateStop:         "STOP",
	StateAdd:          "ADD",
	StateMul:          "MUL",
	StateDiv:          "DIV",
	StateSignExtend:   "SIGNEXTEND",
	StateCmp:          "CMP",
	StateIsZero:       "ISZERO",
	StateBitwise:      "BITWISE",
	StateNot:          "NOT",
	StateByte:         "BYTE",
	StateCallDataLoad: "CALLDATALOAD",
	StatePop:          "POP",
	StateMemory:       "MEMORY",
	StateJump:         "JUMP",
	StateJumpi:        "JUMPI",
	StatePc:           "PC",
	StateJumpDest:     "JUMPDEST",
	StatePush:         "PUSH",
	StateDup:          "DUP",
	StateSwap:         "SWAP",
	ErrorInvalidJump:  "ErrorInvalidJump",
}

// Height returns the fixed number of rows a step of this state occupies in
// the circuit.  This is a pure function of the state alone.
func (p ExecutionState) Height() uint {
	return stateHeights[p]
}

func (p ExecutionState) String() string {
	return stateNames[p]
}

// ResponsibleOpcodes returns the set of opcodes this execution state is
// responsible for handling.  Internal states (BeginTx, etc.) and error states
// handle no opcode and return an empty slice.
func (p ExecutionState) ResponsibleOpcodes() []Opcode {
	switch p {
	case StateStop:
		return []Opcode{STOP}
	case StateAdd:
		return []Opcode{ADD, SUB}
	case StateMul:
		return []Opcode{MUL}
	case StateDiv:
		return []Opcode{DIV, MOD}
	case StateSignExtend:
		return []Opcode{SIGNEXTEND}
	case StateCmp:
		return []Opcode{LT, GT, EQ}
	case StateIsZero:
		return []Opcode{ISZERO}
	case StateBitwise:
		return []Opcode{AND, OR, XOR}
	case StateNot:
		return []Opcode{NOT}
	case StateByte:
		return []Opcode{BYTE}
	case StateCallDataLoad:
		return []Opcode{CALLDATALOAD}
	case StatePop:
		return []Opcode{POP}
	case StateMemory:
		return []Opcode{MLOAD, MSTORE, MSTORE8}
	case StateJump:
		return []Opcode{JUMP}
	case StateJumpi:
		return []Opcode{JUMPI}
	case StatePc:
		return []Opcode{PC}
	case StateJumpDest:
		return []Opcode{JUMPDEST}
	case StatePush:
		return opcodeRange(PUSH1, PUSH32)
	case StateDup:
		return opcodeRange(DUP1, DUP16)
	case StateSwap:
		return opcodeRange(SWAP1, SWAP16)
	}
	// Internal and error states
	return nil
}

// States returns the complete (closed) set of execution states, in their
// declaration order.
func States() []ExecutionState {
	states := make([]ExecutionState, nStates)
	for i := range states {
		states[i] = ExecutionState(i)
	}

	return states
}

// StateOf looks up an execution state by its name, returning false if no such
// state exists.
func StateOf(name string) (ExecutionState, bool) {
	for i, n := range stateNames {
		if n == name {
			return ExecutionState(i), true
		}
	}
	//
	return 0, false
}

func opcodeRange(first Opcode, last Opcode) []Opcode {
	ops := make([]Opcode, 0, last-first+1)
	for op := first; ; op++ {
		ops = append(ops, op)
		if op == last {
			break
		}
	}

	return ops
}
