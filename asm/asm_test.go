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

package asm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Deric-W/am0/asm"
	"github.com/Deric-W/am0/vm"
)

func TestAssemble(t *testing.T) {
	src := "READ 0\n\nLOAD 0\n  LIT -3\t\nADD\n\nSTORE 0\nWRITE 0\n"
	want := []vm.Instruction{
		{Op: vm.OpRead, Operand: 0},
		{Op: vm.OpLoad, Operand: 0},
		{Op: vm.OpLit, Operand: -3},
		{Op: vm.OpAdd},
		{Op: vm.OpStore, Operand: 0},
		{Op: vm.OpWrite, Operand: 0},
	}
	prog, err := asm.Assemble("prog", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(prog) != len(want) {
		t.Fatalf("expected %d instructions, got %d", len(want), len(prog))
	}
	for i := range want {
		if prog[i] != want[i] {
			t.Errorf("instruction %d: expected %v, got %v", i, want[i], prog[i])
		}
	}
}

func TestAssembleErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		src  string
		want string
	}{
		{"unknown", "ADD\nFOO 1\n", `prog:2: unknown mnemonic "FOO"`},
		{"missing operand", "LOAD\n", "prog:1: LOAD: missing operand"},
		{"unexpected operand", "ADD 1\n", `prog:1: ADD: unexpected operand "1"`},
		{"bad operand", "ADD\n\nLOAD x\n", `prog:3: LOAD: invalid operand "x"`},
		{"trailing", "LOAD 1 2\n", `prog:1: LOAD: trailing "2" after operand`},
	} {
		_, err := asm.Assemble("prog", strings.NewReader(test.src))
		if err == nil {
			t.Errorf("%s: expected error, got none", test.name)
			continue
		}
		perr, ok := err.(*asm.ParseError)
		if !ok {
			t.Errorf("%s: expected *ParseError, got %T", test.name, err)
			continue
		}
		if perr.Error() != test.want {
			t.Errorf("%s: expected %q, got %q", test.name, test.want, perr.Error())
		}
	}
}

func TestParseInstruction(t *testing.T) {
	ins, err := asm.ParseInstruction("JMC 9")
	if err != nil {
		t.Fatal(err)
	}
	if ins != (vm.Instruction{Op: vm.OpJmc, Operand: 9}) {
		t.Errorf("expected JMC 9, got %v", ins)
	}
	if _, err = asm.ParseInstruction(""); err == nil {
		t.Error("empty instruction accepted")
	}
	if _, err = asm.ParseInstruction("load 1"); err == nil {
		t.Error("lowercase mnemonic accepted")
	}
}

func TestDisassemble(t *testing.T) {
	prog := []vm.Instruction{
		{Op: vm.OpLit, Operand: 3},
		{Op: vm.OpAdd},
	}
	var b bytes.Buffer
	if err := asm.Disassemble(prog, &b); err != nil {
		t.Fatal(err)
	}
	want := "   0\tLIT 3\n   1\tADD\n"
	if b.String() != want {
		t.Errorf("expected %q, got %q", want, b.String())
	}
}
