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

// The am0 command line tool runs programs for the AM0 abstract machine
// implemented by package github.com/Deric-W/am0/vm.
//
// Given a program file it assembles and runs it to completion; without one it
// starts an interactive console executing instructions one at a time (see the
// console's help command). The exit status is 0 on success, 1 for errors
// raised by the running program and 2 for usage and program parse errors.
//
// Usage:
//
//	am0 [options] [file]
//
//	-config filename
//		  read settings from filename instead of ~/.am0.toml
//	-debug
//		  report errors with stack traces and machine state
//	-input value
//		  preset input for READ (can be specified multiple times)
//	-list
//		  print the assembled program instead of running it
//	-trace
//		  write machine state to stderr after every step
//	-version
//		  print version and exit
package main
