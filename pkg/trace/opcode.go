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

import "fmt"

// Opcode identifies a single EVM instruction by its byte value, as it appears
// in deployed bytecode.  Opcodes are used when building the responsible-opcode
// fixed table, which ties every execution state to the instructions it is
// allowed to handle.
type Opcode uint8

// Arithmetic and control-flow opcodes covered by the execution states known to
// this package.  The PUSHn / DUPn / SWAPn families are contiguous byte ranges
// and are enumerated programmatically (see ResponsibleOpcodes).
const (
	STOP         Opcode = 0x00
	ADD          Opcode = 0x01
	MUL          Opcode = 0x02
	SUB          Opcode = 0x03
	DIV          Opcode = 0x04
	MOD          Opcode = 0x06
	SIGNEXTEND   Opcode = 0x0b
	LT           Opcode = 0x10
	GT           Opcode = 0x11
	EQ           Opcode = 0x14
	ISZERO       Opcode = 0x15
	AND          Opcode = 0x16
	OR           Opcode = 0x17
	XOR          Opcode = 0x18
	NOT          Opcode = 0x19
	BYTE         Opcode = 0x1a
	CALLDATALOAD Opcode = 0x35
	POP          Opcode = 0x50
	MLOAD        Opcode = 0x51
	MSTORE       Opcode = 0x52
	MSTORE8      Opcode = 0x53
	JUMP         Opcode = 0x56
	JUMPI        Opcode = 0x57
	PC           Opcode = 0x58
	JUMPDEST     Opcode = 0x5b
	PUSH1        Opcode = 0x60
	PUSH32       Opcode = 0x7f
	DUP1         Opcode = 0x80
	DUP16        Opcode = 0x8f
	SWAP1        Opcode = 0x90
	SWAP16       Opcode = 0x9f
)

var opcodeNames = map[Opcode]string{
	STOP:         "STOP",
	ADD:          "ADD",
	MUL:          "MUL",
	SUB:          "SUB",
	DIV:          "DIV",
	MOD:          "MOD",
	SIGNEXTEND:   "SIGNEXTEND",
	LT:           "LT",
	GT:           "GT",
	EQ:           "EQ",
	ISZERO:       "ISZERO",
	AND:          "AND",
	OR:           "OR",
	XOR:          "XOR",
	NOT:          "NOT",
	BYTE:         "BYTE",
	CALLDATALOAD: "CALLDATALOAD",
	POP:          "POP",
	MLOAD:        "MLOAD",
	MSTORE:       "MSTORE",
	MSTORE8:      "MSTORE8",
	JUMP:         "JUMP",
	JUMPI:        "JUMPI",
	PC:           "PC",
	JUMPDEST:     "JUMPDEST",
}

func (p Opcode) String() string {
	if name, ok := opcodeNames[p]; ok {
		return name
	}
	// Handle contiguous families
	switch {
	case p >= PUSH1 && p <= PUSH32:
		return fmt.Sprintf("PUSH%d", p-PUSH1+1)
	case p >= DUP1 && p <= DUP16:
		return fmt.Sprintf("DUP%d", p-DUP1+1)
	case p >= SWAP1 && p <= SWAP16:
		return fmt.Sprintf("SWAP%d", p-SWAP1+1)
	}
	//
	return fmt.Sprintf("0x%02x", uint8(p))
}
