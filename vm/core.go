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

import "github.com/pkg/errors"

// pop2 removes the top two stack values. a is the value pushed first, b the
// one pushed last.
func (m *Machine) pop2() (a, b Cell, err error) {
	n := len(m.stack)
	if n < 2 {
		return 0, 0, ErrUnderflow
	}
	a, b = m.stack[n-2], m.stack[n-1]
	m.stack = m.stack[:n-2]
	return a, b, nil
}

func boolCell(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// floorDiv returns a/b rounded towards negative infinity.
func floorDiv(a, b Cell) Cell {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns the remainder matching floorDiv, taking the sign of b.
func floorMod(a, b Cell) Cell {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// checkTarget validates a jump target. The upper bound applies only while a
// program is attached by Run; ad-hoc execution runs against a free-running
// counter and accepts any non-negative target.
func (m *Machine) checkTarget(t Cell) error {
	if t < 0 || (m.bound >= 0 && int(t) >= m.bound) {
		return errors.Wrapf(ErrJump, "target %d", t)
	}
	return nil
}

// Step executes a single instruction, updating the program counter, stack and
// memory and performing I/O for READ and WRITE. It is the shared entry point
// of batch and interactive execution and never executes more than one
// instruction. A failed step returns an error wrapping the sentinel for the
// illegal state and leaves the machine untouched.
func (m *Machine) Step(ins Instruction) error {
	switch ins.Op {
	case OpAdd:
		a, b, err := m.pop2()
		if err != nil {
			return errors.Wrap(err, ins.String())
		}
		m.Push(a + b)
		m.counter++
	case OpMul:
		a, b, err := m.pop2()
		if err != nil {
			return errors.Wrap(err, ins.String())
		}
		m.Push(a * b)
		m.counter++
	case OpSub:
		a, b, err := m.pop2()
		if err != nil {
			return errors.Wrap(err, ins.String())
		}
		m.Push(a - b)
		m.counter++
	case OpDiv, OpMod:
		n := len(m.stack)
		if n < 2 {
			return errors.Wrap(ErrUnderflow, ins.String())
		}
		if m.stack[n-1] == 0 {
			return errors.Wrap(ErrDivision, ins.String())
		}
		a, b, _ := m.pop2()
		if ins.Op == OpDiv {
			m.Push(floorDiv(a, b))
		} else {
			m.Push(floorMod(a, b))
		}
		m.counter++
	case OpEq:
		a, b, err := m.pop2()
		if err != nil {
			return errors.Wrap(err, ins.String())
		}
		m.Push(boolCell(a == b))
		m.counter++
	case OpNe:
		a, b, err := m.pop2()
		if err != nil {
			return errors.Wrap(err, ins.String())
		}
		m.Push(boolCell(a != b))
		m.counter++
	case OpLt:
		a, b, err := m.pop2()
		if err != nil {
			return errors.Wrap(err, ins.String())
		}
		m.Push(boolCell(a < b))
		m.counter++
	case OpGt:
		a, b, err := m.pop2()
		if err != nil {
			return errors.Wrap(err, ins.String())
		}
		m.Push(boolCell(a > b))
		m.counter++
	case OpLe:
		a, b, err := m.pop2()
		if err != nil {
			return errors.Wrap(err, ins.String())
		}
		m.Push(boolCell(a <= b))
		m.counter++
	case OpGe:
		a, b, err := m.pop2()
		if err != nil {
			return errors.Wrap(err, ins.String())
		}
		m.Push(boolCell(a >= b))
		m.counter++
	case OpAnd:
		a, b, err := m.pop2()
		if err != nil {
			return errors.Wrap(err, ins.String())
		}
		m.Push(boolCell(a != 0 && b != 0))
		m.counter++
	case OpOr:
		a, b, err := m.pop2()
		if err != nil {
			return errors.Wrap(err, ins.String())
		}
		m.Push(boolCell(a != 0 || b != 0))
		m.counter++
	case OpNot:
		v, err := m.Pop()
		if err != nil {
			return errors.Wrap(err, ins.String())
		}
		m.Push(boolCell(v == 0))
		m.counter++
	case OpLoad:
		v, err := m.Load(ins.Operand)
		if err != nil {
			return errors.Wrap(err, ins.String())
		}
		m.Push(v)
		m.counter++
	case OpStore:
		if len(m.stack) == 0 {
			return errors.Wrap(ErrUnderflow, ins.String())
		}
		if ins.Operand < 0 {
			return errors.Wrap(ErrAddress, ins.String())
		}
		v, _ := m.Pop()
		m.memory[ins.Operand] = v
		m.counter++
	case OpLit:
		m.Push(ins.Operand)
		m.counter++
	case OpJmp:
		if err := m.checkTarget(ins.Operand); err != nil {
			return errors.Wrap(err, ins.String())
		}
		m.counter = int(ins.Operand)
	case OpJmc:
		if len(m.stack) == 0 {
			return errors.Wrap(ErrUnderflow, ins.String())
		}
		if err := m.checkTarget(ins.Operand); err != nil {
			return errors.Wrap(err, ins.String())
		}
		v, _ := m.Pop()
		if v == 0 {
			m.counter = int(ins.Operand)
		} else {
			m.counter++
		}
	case OpWrite:
		v, err := m.Load(ins.Operand)
		if err != nil {
			return errors.Wrap(err, ins.String())
		}
		if err := m.emit(v); err != nil {
			return errors.Wrap(err, ins.String())
		}
		m.counter++
	case OpRead:
		if ins.Operand < 0 {
			return errors.Wrap(ErrAddress, ins.String())
		}
		v, err := m.readCell()
		if err != nil {
			return errors.Wrap(err, ins.String())
		}
		m.memory[ins.Operand] = v
		m.counter++
	default:
		return errors.Errorf("invalid instruction: %s", ins)
	}
	if m.trace != nil {
		m.DumpStatus(m.trace)
	}
	return nil
}

// Run executes a program from its first instruction until the program counter
// leaves the program. It does not return on its own for programs that loop
// forever. On error the counter points at the instruction that failed.
func (m *Machine) Run(prog []Instruction) error {
	m.counter = 0
	m.bound = len(prog)
	defer func() { m.bound = -1 }()
	for m.counter < len(prog) {
		if err := m.Step(prog[m.counter]); err != nil {
			return errors.Wrapf(err, "pc=%d", m.counter)
		}
	}
	return nil
}
