// This file is part of avc8 - https://github.com/db47h/avc8
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

// Command avc8 assembles and/or runs avc8 programs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/db47h/avc8/asm"
	"github.com/db47h/avc8/internal/avcio"
	"github.com/db47h/avc8/vm"
)

// debugLevel is a custom flag.Value restricting -d to the four documented
// debug levels.
type debugLevel int

func (d *debugLevel) String() string { return strconv.Itoa(int(*d)) }

func (d *debugLevel) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.Wrap(err, "integer conversion failed")
	}
	if n < 0 || n > 3 {
		return errors.Errorf("debug level %d out of range [0,3]", n)
	}
	*d = debugLevel(n)
	return nil
}

func (d *debugLevel) Get() interface{} { return *d }

func main() {
	os.Exit(run())
}

func run() int {
	var assembleMode, runMode, assembleRunMode, printLabels bool
	var outPath string
	var delayMs int64
	dbg := debugLevel(0)

	flag.BoolVar(&assembleMode, "a", false, "assemble only")
	flag.BoolVar(&runMode, "r", false, "run only")
	flag.BoolVar(&assembleRunMode, "R", false, "assemble and run")
	flag.StringVar(&outPath, "o", "a.out", "output path for assemble")
	flag.Var(&dbg, "d", "debug level (0-3)")
	flag.Int64Var(&delayMs, "p", 0, "inter-instruction delay in milliseconds")
	flag.BoolVar(&printLabels, "L", false, "print resolved label table to stderr after assembling")
	flag.Parse()

	modes := 0
	for _, m := range []bool{assembleMode, runMode, assembleRunMode} {
		if m {
			modes++
		}
	}
	if modes != 1 || flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: avc8 (-a|-r|-R) [-o path] [-d N] [-p ms] [-L] file")
		return 2
	}
	path := flag.Arg(0)

	switch {
	case assembleMode:
		return doAssemble(path, outPath, printLabels)
	case runMode:
		return doRun(path, dbg, delayMs)
	default:
		return doAssembleAndRun(path, outPath, dbg, delayMs, printLabels)
	}
}

func doAssemble(srcPath, outPath string, printLabels bool) int {
	img, symbols, err := assembleFile(srcPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := os.WriteFile(outPath, img, 0644); err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "writing image"))
		return 1
	}
	if printLabels {
		printSymbols(os.Stderr, symbols)
	}
	return 0
}

func doRun(path string, dbg debugLevel, delayMs int64) int {
	img, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "reading image"))
		return 1
	}
	execute(img, dbg, delayMs)
	return 0
}

func doAssembleAndRun(srcPath, outPath string, dbg debugLevel, delayMs int64, printLabels bool) int {
	img, symbols, err := assembleFile(srcPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if printLabels {
		printSymbols(os.Stderr, symbols)
	}
	execute(img, dbg, delayMs)
	return 0
}

func assembleFile(path string) (asm.Image, asm.Symbols, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading source")
	}
	return asm.Assemble(string(src))
}

func printSymbols(w *os.File, symbols asm.Symbols) {
	names := make([]string, 0, len(symbols))
	for name := range symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s = 0x%04x\n", name, symbols[name])
	}
}

// execute runs an image to halt, applying the requested debug verbosity
// and inter-instruction delay.
func execute(img []byte, dbg debugLevel, delayMs int64) {
	restore, err := avcio.SetRawMode(os.Stdin)
	if err == nil {
		defer restore()
	}
	input := avcio.NewNonBlockingReader(os.Stdin)
	output := bufio.NewWriter(os.Stdout)
	defer output.Flush()

	c := vm.New(img, vm.WithInput(input), vm.WithOutput(output))
	delay := time.Duration(delayMs) * time.Millisecond

	for !c.Halted {
		var opcode byte
		if dbg == 2 {
			opcode = c.Memory[uint16(c.PC)]
		}
		brk := c.Step()
		switch {
		case dbg >= 3:
			fmt.Fprintln(os.Stderr, c.Readout())
		case dbg == 2:
			fmt.Fprintf(os.Stderr, "%02x\n", opcode)
		}
		if brk && dbg >= 1 && dbg < 3 {
			fmt.Fprintln(os.Stderr, c.Readout())
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}
}
