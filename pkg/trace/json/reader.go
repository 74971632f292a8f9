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
package json

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-zkevm/pkg/trace"
)

type jsonStep struct {
	State  string   `json:"state"`
	Opcode uint8    `json:"opcode"`
	Values []string `json:"values"`
}

type jsonTransaction struct {
	Steps []jsonStep `json:"steps"`
}

type jsonBlock struct {
	Txs        []jsonTransaction `json:"txs"`
	Bytecodes  map[string]string `json:"bytecodes"`
	Randomness string            `json:"randomness"`
}

// FromBytes parses a block expressed in JSON notation.  Execution states are
// given by name, bytecodes in hex, and field values as (arbitrary precision)
// decimal strings.  For example:
//
//	{"txs": [{"steps": [{"state": "ADD", "opcode": 1, "values": ["1", "2"]}]}],
//	 "randomness": "117"}
func FromBytes(data []byte) (*trace.Block, error) {
	var rawBlock jsonBlock
	// Attempt to unmarshall
	if err := json.Unmarshal(data, &rawBlock); err != nil {
		return nil, err
	}
	//
	block := &trace.Block{}
	//
	for i, rawTx := range rawBlock.Txs {
		tx := trace.Transaction{}
		//
		for j, rawStep := range rawTx.Steps {
			step, err := parseStep(rawStep)
			if err != nil {
				return nil, fmt.Errorf("tx %d, step %d: %w", i, j, err)
			}
			//
			tx.Steps = append(tx.Steps, step)
		}
		//
		block.Txs = append(block.Txs, tx)
	}
	//
	if len(rawBlock.Bytecodes) > 0 {
		block.Bytecodes = make(map[string][]byte, len(rawBlock.Bytecodes))
		//
		for name, code := range rawBlock.Bytecodes {
			bytes, err := hex.DecodeString(code)
			if err != nil {
				return nil, fmt.Errorf("bytecode %q: %w", name, err)
			}
			//
			block.Bytecodes[name] = bytes
		}
	}
	//
	if rawBlock.Randomness != "" {
		val, err := parseElement(rawBlock.Randomness)
		if err != nil {
			return nil, fmt.Errorf("randomness: %w", err)
		}
		//
		block.Randomness = val
	}
	// Done
	return block, nil
}

func parseStep(rawStep jsonStep) (trace.Step, error) {
	state, ok := trace.StateOf(rawStep.State)
	if !ok {
		return trace.Step{}, fmt.Errorf("unknown execution state %q", rawStep.State)
	}
	//
	step := trace.Step{State: state, Opcode: trace.Opcode(rawStep.Opcode)}
	//
	for _, rawVal := range rawStep.Values {
		val, err := parseElement(rawVal)
		if err != nil {
			return trace.Step{}, err
		}
		//
		step.Values = append(step.Values, val)
	}

	return step, nil
}

func parseElement(str string) (fr.Element, error) {
	var (
		val fr.Element
		num big.Int
	)
	//
	if _, ok := num.SetString(str, 10); !ok {
		return val, fmt.Errorf("malformed field value %q", str)
	}
	//
	val.SetBigInt(&num)
	//
	return val, nil
}
