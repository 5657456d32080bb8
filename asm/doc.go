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

// Package asm turns textual AM0 programs into instruction sequences.
//
// The source format is one instruction per line, a mnemonic optionally
// followed by a single integer operand, separated by whitespace:
//
//	READ 0
//	READ 1
//	LOAD 0
//	LOAD 1
//	GT
//	JMC 9
//
// Blank lines are skipped. There are no labels or directives; jump targets
// are absolute instruction indices.
package asm
