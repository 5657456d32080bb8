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

// Package vm implements the AM0 abstract machine.
//
// AM0 is the small stack machine used in compiler construction courses to
// give imperative toy languages an execution model: an evaluation stack, a
// memory of numbered cells and a program counter, driven by a fixed set of
// arithmetic, comparison, memory and jump instructions.
//
// A Machine executes one Instruction at a time through Step, which is also
// the building block of the batch Run loop, so running a program file and
// feeding instructions interactively cannot diverge in semantics. Illegal
// machine states (popping an empty stack, dividing by zero, negative
// addresses, jumps outside the program) abort the offending step with an
// error wrapping one of the exported sentinel values and leave the machine
// exactly as it was before the step.
//
// Jump targets are 0-based instruction indices and division is floored.
package vm
