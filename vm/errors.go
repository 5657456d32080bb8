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

// Illegal machine states. Errors returned by Machine operations wrap one of
// these sentinels with context; test against them with errors.Cause.
var (
	// ErrUnderflow is reported when popping or peeking an empty stack.
	ErrUnderflow = errors.New("stack underflow")

	// ErrAddress is reported for memory access at a negative address.
	ErrAddress = errors.New("invalid memory address")

	// ErrDivision is reported for DIV or MOD with a zero right operand.
	ErrDivision = errors.New("division by zero")

	// ErrJump is reported for jump targets outside the running program.
	ErrJump = errors.New("invalid jump target")

	// ErrInput is reported when READ receives something that is not an
	// integer, including end of input.
	ErrInput = errors.New("invalid input")
)
