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
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/Deric-W/am0/asm"
	"github.com/Deric-W/am0/vm"
)

const version = "1.0.0"

// inputList collects -input values, each one line of preset READ input.
type inputList []string

func (l *inputList) String() string { return strings.Join(*l, " ") }
func (l *inputList) Set(s string) error {
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return fmt.Errorf("not an integer: %q", s)
	}
	*l = append(*l, s)
	return nil
}
func (l *inputList) Get() interface{} { return *l }

var (
	configPath  string
	debug       bool
	trace       bool
	list        bool
	showVersion bool
	inputs      inputList
)

func report(err error) {
	if debug {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
}

func runBatch(name string) int {
	f, err := os.Open(name)
	if err != nil {
		report(err)
		return 2
	}
	prog, err := asm.Assemble(name, bufio.NewReader(f))
	f.Close()
	if err != nil {
		report(err)
		return 2
	}
	if list {
		if err := asm.Disassemble(prog, os.Stdout); err != nil {
			report(err)
			return 1
		}
		return 0
	}

	stdout := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { stdout.Flush() })

	opts := []vm.Option{vm.Output(stdout)}
	if len(inputs) > 0 {
		opts = append(opts, vm.Input(strings.NewReader(strings.Join(inputs, "\n")+"\n")))
	}
	if trace {
		opts = append(opts, vm.Trace(os.Stderr))
	}
	m, err := vm.New(opts...)
	if err != nil {
		report(err)
		return 1
	}
	if err := m.Run(prog); err != nil {
		stdout.Flush()
		report(err)
		if debug {
			m.DumpStatus(os.Stderr)
		}
		return 1
	}
	return 0
}

func main() {
	flag.StringVar(&configPath, "config", "", "read settings from `filename` instead of ~/"+configName)
	flag.BoolVar(&debug, "debug", false, "report errors with stack traces and machine state")
	flag.BoolVar(&trace, "trace", false, "write machine state to stderr after every step")
	flag.BoolVar(&list, "list", false, "print the assembled program instead of running it")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Var(&inputs, "input", "preset input `value` for READ (can be specified multiple times)")
	flag.Parse()

	if showVersion {
		fmt.Println("am0 " + version)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		report(err)
		atexit.Exit(2)
	}
	debug = debug || cfg.Debug
	trace = trace || cfg.Trace

	switch flag.NArg() {
	case 0:
		atexit.Exit(runREPL(cfg))
	case 1:
		atexit.Exit(runBatch(flag.Arg(0)))
	default:
		fmt.Fprintln(os.Stderr, "too many arguments")
		flag.Usage()
		atexit.Exit(2)
	}
}
