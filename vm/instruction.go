// This file is part of am0 - https://github.com/Deric-W/am0
//
// Copyright 2024 The am0 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import "strconv"

// Cell is the numeric type of stack values and memory cells.
type Cell int64

// Op identifies an AM0 instruction.
type Op int

// AM0 instruction set. Ops from OpLoad onwards carry an operand.
const (
	OpAdd Op = iota + 1
	OpMul
	OpSub
	OpDiv
	OpMod
	OpEq
	OpNe
	OpLt
	OpGt
	OpLe
	OpGe
	OpAnd
	OpOr
	OpNot
	OpLoad
	OpStore
	OpLit
	OpJmp
	OpJmc
	OpWrite
	OpRead
)

var opNames = [...]string{
	"",
	"ADD",
	"MUL",
	"SUB",
	"DIV",
	"MOD",
	"EQ",
	"NE",
	"LT",
	"GT",
	"LE",
	"GE",
	"AND",
	"OR",
	"NOT",
	"LOAD",
	"STORE",
	"LIT",
	"JMP",
	"JMC",
	"WRITE",
	"READ",
}

var opIndex = make(map[string]Op)

func init() {
	for i, n := range opNames[1:] {
		opIndex[n] = Op(i + 1)
	}
}

// LookupOp resolves a mnemonic to its opcode.
func LookupOp(mnemonic string) (op Op, ok bool) {
	op, ok = opIndex[mnemonic]
	return op, ok
}

func (o Op) String() string {
	if o < 1 || int(o) >= len(opNames) {
		return "Op(" + strconv.Itoa(int(o)) + ")"
	}
	return opNames[o]
}

// HasOperand reports whether instructions with this opcode carry an operand
// (an address, a jump target or a literal).
func (o Op) HasOperand() bool {
	return o >= OpLoad
}

// IsJump reports whether the opcode modifies the program counter.
func (o Op) IsJump() bool {
	return o == OpJmp || o == OpJmc
}

// Instruction is a single decoded AM0 instruction. Instructions are immutable
// values; Operand is meaningful only if Op.HasOperand() and must be zero
// otherwise.
type Instruction struct {
	Op      Op
	Operand Cell
}

func (i Instruction) String() string {
	if i.Op.HasOperand() {
		return i.Op.String() + " " + strconv.FormatInt(int64(i.Operand), 10)
	}
	return i.Op.String()
}
