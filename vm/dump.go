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
	"fmt"
	"io"

	"github.com/Deric-W/am0/internal/ami"
)

// DumpStatus writes the machine state to the specified io.Writer: program
// counter, stack from bottom to top and all written memory cells in ascending
// address order.
func (m *Machine) DumpStatus(w io.Writer) error {
	ew := ami.NewErrWriter(w)
	fmt.Fprintf(ew, "Counter: %d\n", m.counter)
	fmt.Fprintf(ew, "Stack: %v\n", m.stack)
	io.WriteString(ew, "Memory:\n")
	for _, c := range m.MemoryCells() {
		fmt.Fprintf(ew, "\t%d := %d\n", c.Address, c.Value)
	}
	return ew.Err
}
