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

package asm

import (
	"fmt"
	"strings"

	"github.com/db47h/avc8/vm"
)

// maxMacroDepth bounds recursive macro expansion (a macro invoking itself,
// directly or through another macro).
const maxMacroDepth = 64

// parseState is the parser's working set: the assembly counter, the
// symbol table being built, and the accumulated diagnostics. It is owned
// entirely by Assemble and discarded at the end of the pass.
type parseState struct {
	consts     Constants
	macros     Macros
	counter    int
	symbols    Symbols
	lines      []Line
	errs       AsmErrors
	macroDepth int
}

func newParseState(consts Constants, macros Macros) *parseState {
	return &parseState{
		consts:  consts,
		macros:  macros,
		symbols: make(Symbols),
	}
}

func (ps *parseState) abort() bool { return len(ps.errs) >= maxErrors }

func (ps *parseState) errf(line int, format string, args ...interface{}) {
	ps.errs = append(ps.errs, AsmError{Line: line, Msg: fmt.Sprintf(format, args...)})
}

func (ps *parseState) appendLine(l Line) { ps.lines = append(ps.lines, l) }

// processLine strips comments and labels, then either expands a macro
// invocation or emits an instruction. It recurses for macro bodies.
func (ps *parseState) processLine(sl SourceLine) {
	if ps.abort() {
		return
	}
	text := sl.Text
	if idx := strings.IndexByte(text, ';'); idx >= 0 {
		text = text[:idx]
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if idx := strings.IndexByte(text, ':'); idx >= 0 {
		label := strings.TrimSpace(text[:idx])
		if label != "" {
			if _, exists := ps.symbols[label]; exists {
				ps.errf(sl.Num, "duplicate label %q", label)
			} else {
				ps.symbols[label] = uint16(ps.counter)
			}
		}
		text = strings.TrimSpace(text[idx+1:])
	}
	if text == "" {
		return
	}
	if strings.HasPrefix(text, "!") {
		ps.expandMacro(text[1:], sl.Num)
		return
	}
	mnemonic, operand := splitMnemonic(text)
	ps.emit(mnemonic, operand, sl.Num)
}

func splitMnemonic(text string) (mnemonic, operand string) {
	idx := strings.IndexAny(text, " \t")
	if idx < 0 {
		return text, ""
	}
	return text[:idx], strings.TrimSpace(text[idx+1:])
}

func (ps *parseState) expandMacro(rest string, lineNum int) {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		ps.errf(lineNum, "macro invocation missing name")
		return
	}
	name, args := fields[0], fields[1:]
	body, ok := ps.macros[name]
	if !ok {
		ps.errf(lineNum, "unknown macro %q", name)
		return
	}
	if ps.macroDepth >= maxMacroDepth {
		ps.errf(lineNum, "macro %q nested too deep", name)
		return
	}
	ps.macroDepth++
	for _, raw := range body {
		ps.processLine(SourceLine{Num: lineNum, Text: substituteArgs(raw, args)})
	}
	ps.macroDepth--
}

func substituteArgs(line string, args []string) string {
	for i, a := range args {
		line = strings.ReplaceAll(line, fmt.Sprintf("$%d", i+1), a)
	}
	return line
}

// emit classifies mnemonic/operand into a Line, advancing the assembly
// counter by the width the encoding will occupy.
func (ps *parseState) emit(mnemonic, operand string, lineNum int) {
	switch mnemonic {
	case "":
		ps.errf(lineNum, "missing mnemonic")

	case "org":
		v, err := ParseLiteral(operand, 16)
		if err != nil {
			ps.errf(lineNum, "org: %v", err)
			return
		}
		ps.counter = int(v)
		ps.appendLine(Line{Mnemonic: "org", Operand: Operand{Kind: kindAddrLiteral, Value: uint16(v)}, Src: lineNum})

	case "dat":
		op, width, err := parseDatOperand(operand)
		if err != nil {
			ps.errf(lineNum, "dat: %v", err)
			return
		}
		ps.appendLine(Line{Mnemonic: "dat", Operand: op, Src: lineNum})
		ps.counter += width

	case "lda":
		if strings.HasPrefix(operand, "#") {
			op, err := parseImmediateOperand(operand)
			if err != nil {
				ps.errf(lineNum, "lda: %v", err)
				return
			}
			ps.appendLine(Line{Mnemonic: "lda", Operand: op, Src: lineNum})
			ps.counter += 2
			return
		}
		op, err := parseAddrOperand(operand)
		if err != nil {
			ps.errf(lineNum, "lda: %v", err)
			return
		}
		ps.appendLine(Line{Mnemonic: "lda", Operand: op, Src: lineNum})
		ps.counter += 3

	case "sta", "jmp", "jsr", "jez", "jgt":
		if strings.HasPrefix(operand, "#") {
			ps.errf(lineNum, "%s does not take immediate syntax", mnemonic)
			return
		}
		op, err := parseAddrOperand(operand)
		if err != nil {
			ps.errf(lineNum, "%s: %v", mnemonic, err)
			return
		}
		ps.appendLine(Line{Mnemonic: mnemonic, Operand: op, Src: lineNum})
		ps.counter += 3

	default:
		if _, ok := vm.NarrowOpcode(mnemonic); ok {
			if operand != "" {
				ps.errf(lineNum, "%s takes no operand", mnemonic)
				return
			}
			ps.appendLine(Line{Mnemonic: mnemonic, Src: lineNum})
			ps.counter++
			return
		}
		ps.errf(lineNum, "unknown mnemonic %q", mnemonic)
	}
}
