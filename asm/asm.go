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

package asm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Deric-W/am0/internal/ami"
	"github.com/Deric-W/am0/vm"
)

// ParseError describes a malformed program line. The name passed to Assemble
// and the 1-based line number locate the offending line.
type ParseError struct {
	Name string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Name, e.Line, e.Err)
}

// Cause returns the reason the line was rejected.
func (e *ParseError) Cause() error { return e.Err }

// ParseInstruction parses a single instruction like "LOAD 3" or "ADD".
// Operand presence must match the mnemonic.
func ParseInstruction(s string) (vm.Instruction, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return vm.Instruction{}, errors.New("empty instruction")
	}
	op, ok := vm.LookupOp(fields[0])
	if !ok {
		return vm.Instruction{}, errors.Errorf("unknown mnemonic %q", fields[0])
	}
	if !op.HasOperand() {
		if len(fields) > 1 {
			return vm.Instruction{}, errors.Errorf("%s: unexpected operand %q", op, fields[1])
		}
		return vm.Instruction{Op: op}, nil
	}
	if len(fields) < 2 {
		return vm.Instruction{}, errors.Errorf("%s: missing operand", op)
	}
	if len(fields) > 2 {
		return vm.Instruction{}, errors.Errorf("%s: trailing %q after operand", op, fields[2])
	}
	n, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return vm.Instruction{}, errors.Errorf("%s: invalid operand %q", op, fields[1])
	}
	return vm.Instruction{Op: op, Operand: vm.Cell(n)}, nil
}

// Assemble reads a textual program from the supplied io.Reader and returns
// the instruction sequence.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name. A rejected
// line is reported as a *ParseError; no instructions are returned in that
// case.
func Assemble(name string, r io.Reader) ([]vm.Instruction, error) {
	var prog []vm.Instruction
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := s.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		ins, err := ParseInstruction(text)
		if err != nil {
			return nil, &ParseError{Name: name, Line: line, Err: err}
		}
		prog = append(prog, ins)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	return prog, nil
}

// Disassemble writes a listing of the program to the specified io.Writer,
// one instruction per line prefixed with its index, and returns any write
// error.
func Disassemble(prog []vm.Instruction, w io.Writer) error {
	ew := ami.NewErrWriter(w)
	for pc, ins := range prog {
		fmt.Fprintf(ew, "% 4d\t%s\n", pc, ins)
	}
	return ew.Err
}
