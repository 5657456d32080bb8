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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/Deric-W/am0/asm"
	"github.com/Deric-W/am0/vm"
)

const replBanner = "Welcome to the AM0 REPL, type 'help' for help"

const replHelp = `Commands:
	exec <MNEMONIC> [operand]	execute a single instruction
	status				print counter, stack and memory
	reset				reset the machine
	help				show this help
	exit				exit the REPL
`

// runREPL drives a single machine interactively. Machine errors are reported
// and leave the session alive; the machine keeps its state across failed
// commands.
func runREPL(cfg *Config) int {
	fmt.Println(replBanner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.History); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.History); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	m, err := vm.New()
	if err != nil {
		report(err)
		return 1
	}
	if trace {
		m.SetOptions(vm.Trace(os.Stderr))
	}

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil { // Ctrl-D or a dead terminal
			fmt.Println()
			fmt.Println("Exiting REPL...")
			return 0
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		cmd, arg := line, ""
		if i := strings.IndexAny(line, " \t"); i >= 0 {
			cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
		}
		switch cmd {
		case "exec":
			execInstruction(m, arg)
		case "status":
			m.DumpStatus(os.Stdout)
		case "reset":
			m.Reset()
		case "help":
			fmt.Print(replHelp)
		case "exit":
			fmt.Println("Exiting REPL...")
			return 0
		default:
			fmt.Printf("*** Unknown command: %s\n", line)
		}
	}
}

func execInstruction(m *vm.Machine, arg string) {
	ins, err := asm.ParseInstruction(arg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := m.Step(ins); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}
