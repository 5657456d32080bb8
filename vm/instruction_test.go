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

package vm_test

import (
	"testing"

	"github.com/Deric-W/am0/vm"
)

func TestOps(t *testing.T) {
	for _, test := range []struct {
		op         vm.Op
		name       string
		hasOperand bool
		isJump     bool
	}{
		{vm.OpAdd, "ADD", false, false},
		{vm.OpNot, "NOT", false, false},
		{vm.OpLoad, "LOAD", true, false},
		{vm.OpLit, "LIT", true, false},
		{vm.OpJmp, "JMP", true, true},
		{vm.OpJmc, "JMC", true, true},
		{vm.OpRead, "READ", true, false},
	} {
		if s := test.op.String(); s != test.name {
			t.Errorf("%v: expected name %q, got %q", test.op, test.name, s)
		}
		if test.op.HasOperand() != test.hasOperand {
			t.Errorf("%s: HasOperand: expected %v", test.name, test.hasOperand)
		}
		if test.op.IsJump() != test.isJump {
			t.Errorf("%s: IsJump: expected %v", test.name, test.isJump)
		}
		op, ok := vm.LookupOp(test.name)
		if !ok || op != test.op {
			t.Errorf("LookupOp(%q): expected %v, got %v (%v)", test.name, test.op, op, ok)
		}
	}
	if _, ok := vm.LookupOp("HALT"); ok {
		t.Error("LookupOp accepted an unknown mnemonic")
	}
	if _, ok := vm.LookupOp("add"); ok {
		t.Error("mnemonics are case sensitive")
	}
}

func TestInstructionString(t *testing.T) {
	for _, test := range []struct {
		ins  vm.Instruction
		want string
	}{
		{vm.Instruction{Op: vm.OpAdd}, "ADD"},
		{vm.Instruction{Op: vm.OpLoad, Operand: 3}, "LOAD 3"},
		{vm.Instruction{Op: vm.OpLit, Operand: -7}, "LIT -7"},
	} {
		if s := test.ins.String(); s != test.want {
			t.Errorf("expected %q, got %q", test.want, s)
		}
	}
}
