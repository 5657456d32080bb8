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

import (
	"bufio"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
)

// Machine is a single AM0 machine instance: a program counter, an evaluation
// stack and a sparse memory. A Machine owns its stack and memory exclusively
// and must not be shared between goroutines.
type Machine struct {
	counter int
	stack   []Cell
	memory  map[Cell]Cell
	bound   int // length of the program attached by Run, -1 if free-running
	in      *bufio.Reader
	out     io.Writer
	trace   io.Writer
}

// Option interface
type Option func(*Machine) error

// Input sets the reader READ consumes integers from.
func Input(r io.Reader) Option {
	return func(m *Machine) error {
		m.in = bufio.NewReader(r)
		return nil
	}
}

// Output sets the writer receiving WRITE emissions and READ prompts.
func Output(w io.Writer) Option {
	return func(m *Machine) error {
		m.out = w
		return nil
	}
}

// Trace sets a writer receiving a status dump after every executed
// instruction, or nil to disable tracing. Dump failures do not stop
// execution.
func Trace(w io.Writer) Option {
	return func(m *Machine) error {
		m.trace = w
		return nil
	}
}

// SetOptions sets the provided options.
func (m *Machine) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return err
		}
	}
	return nil
}

// New creates a machine in its initial state: program counter 0, empty stack,
// empty memory. Input defaults to os.Stdin and output to os.Stdout.
func New(opts ...Option) (*Machine, error) {
	m := &Machine{
		memory: make(map[Cell]Cell),
		bound:  -1,
	}
	if err := m.SetOptions(opts...); err != nil {
		return nil, err
	}
	if m.in == nil {
		m.in = bufio.NewReader(os.Stdin)
	}
	if m.out == nil {
		m.out = os.Stdout
	}
	return m, nil
}

// Reset restores the initial state. Input and output are left as configured.
func (m *Machine) Reset() {
	m.counter = 0
	m.stack = m.stack[:0]
	for k := range m.memory {
		delete(m.memory, k)
	}
}

// Counter returns the program counter.
func (m *Machine) Counter() int {
	return m.counter
}

// Push pushes the argument on top of the stack.
func (m *Machine) Push(v Cell) {
	m.stack = append(m.stack, v)
}

// Pop removes and returns the value on top of the stack.
func (m *Machine) Pop() (Cell, error) {
	n := len(m.stack)
	if n == 0 {
		return 0, ErrUnderflow
	}
	v := m.stack[n-1]
	m.stack = m.stack[:n-1]
	return v, nil
}

// Top returns the value on top of the stack without removing it.
func (m *Machine) Top() (Cell, error) {
	if len(m.stack) == 0 {
		return 0, ErrUnderflow
	}
	return m.stack[len(m.stack)-1], nil
}

// Load returns the value of the memory cell at the given address. Cells never
// written read as zero.
func (m *Machine) Load(address Cell) (Cell, error) {
	if address < 0 {
		return 0, errors.Wrapf(ErrAddress, "load from %d", address)
	}
	return m.memory[address], nil
}

// Store sets the value of the memory cell at the given address.
func (m *Machine) Store(address, v Cell) error {
	if address < 0 {
		return errors.Wrapf(ErrAddress, "store to %d", address)
	}
	m.memory[address] = v
	return nil
}

// Data returns a copy of the stack, bottom first.
func (m *Machine) Data() []Cell {
	return append([]Cell(nil), m.stack...)
}

// MemCell is a memory cell with its address, as reported by MemoryCells.
type MemCell struct {
	Address Cell
	Value   Cell
}

// MemoryCells returns all cells that have been written to, in ascending
// address order.
func (m *Machine) MemoryCells() []MemCell {
	cells := make([]MemCell, 0, len(m.memory))
	for a, v := range m.memory {
		cells = append(cells, MemCell{a, v})
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Address < cells[j].Address })
	return cells
}
