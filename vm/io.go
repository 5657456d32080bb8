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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// READ and WRITE frame their I/O the way the classic course tooling does, so
// batch runs and the interactive console produce identical transcripts.
const (
	readPrompt  = "Input: "
	writePrefix = "Output: "
)

type flusher interface {
	Flush() error
}

func flush(w io.Writer) {
	if f, ok := w.(flusher); ok {
		f.Flush()
	}
}

// readCell prompts on the machine's output and consumes one line from its
// input, parsed as a signed integer.
func (m *Machine) readCell() (Cell, error) {
	if _, err := io.WriteString(m.out, readPrompt); err != nil {
		return 0, errors.Wrap(err, "prompt failed")
	}
	flush(m.out)
	line, err := m.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		if err == io.EOF {
			return 0, errors.Wrap(ErrInput, "end of input")
		}
		return 0, errors.Wrap(err, "read failed")
	}
	s := strings.TrimSpace(line)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInput, "%q", s)
	}
	return Cell(n), nil
}

// emit writes a single value to the machine's output. Emissions appear in
// exactly program order, one line per WRITE.
func (m *Machine) emit(v Cell) error {
	if _, err := fmt.Fprintf(m.out, "%s%d\n", writePrefix, v); err != nil {
		return errors.Wrap(err, "write failed")
	}
	flush(m.out)
	return nil
}
