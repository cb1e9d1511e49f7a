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

package vm

// narrowMnemonics gives the textual mnemonic for every narrow opcode slot,
// in opcode order. An empty string marks an opcode that has no dedicated
// mnemonic of its own (none currently; kept for symmetry with wide tables).
var narrowMnemonics = [32]string{
	OpNop:      "nop",
	OpHlt:      "hlt",
	OpSwp:      "swp",
	OpTab:      "tab",
	OpTax:      "tax",
	OpTxa:      "txa",
	OpInc:      "inc",
	OpDec:      "dec",
	OpAdd:      "add",
	9:          "adc",
	10:         "sub",
	11:         "sbc",
	OpLsr:      "lsr",
	OpLsl:      "lsl",
	OpClc:      "clc",
	OpSec:      "sec",
	OpPut:      "put",
	OpPsa:      "psa",
	OpPpa:      "ppa",
	OpPss:      "pss",
	OpPps:      "pps",
	OpSsp:      "ssp",
	OpGsp:      "gsp",
	OpBrk:      "brk",
	OpRts:      "rts",
	OpLdaConst: "lda",
	OpGet:      "get",
	OpNot:      "not",
	OpAnd:      "and",
	OpIor:      "ior",
	OpXor:      "xor",
	OpGbf:      "gbf",
}

// NarrowMnemonic returns the assembler mnemonic for a narrow opcode byte, or
// "" if none is assigned.
func NarrowMnemonic(op byte) string {
	if op >= 32 {
		return ""
	}
	return narrowMnemonics[op]
}

// narrowOpcodes maps every narrow mnemonic to its opcode byte; this includes
// "lda", whose narrow form is the immediate load that takes a one-byte
// operand. Reserved
// slots (adc, sub, sbc) are included: they assemble normally but execute as
// Nop (see Cpu.Step).
var narrowOpcodes = func() map[string]byte {
	m := make(map[string]byte, len(narrowMnemonics))
	for op, name := range narrowMnemonics {
		if name != "" {
			m[name] = byte(op)
		}
	}
	return m
}()

// NarrowOpcode looks up the opcode byte for a no-operand mnemonic.
func NarrowOpcode(mnemonic string) (byte, bool) {
	b, ok := narrowOpcodes[mnemonic]
	return b, ok
}

// wideSelectors maps a wide mnemonic to its 3-bit operation selector.
var wideSelectors = map[string]byte{
	"lda": SelLDA,
	"sta": SelSTA,
	"jmp": SelJMP,
	"jsr": SelJSR,
	"jez": SelJEZ,
	"jgt": SelJGT,
}

// WideSelector looks up the operation selector for a wide mnemonic (one of
// lda, sta, jmp, jsr, jez, jgt -- not org/dat, which never reach the image
// as opcodes).
func WideSelector(mnemonic string) (byte, bool) {
	b, ok := wideSelectors[mnemonic]
	return b, ok
}

// wideMnemonicBySelector is the inverse of wideSelectors, used for
// disassembly/debug output.
var wideMnemonicBySelector = [6]string{"lda", "sta", "jmp", "jsr", "jez", "jgt"}

// WideMnemonic returns the mnemonic for a wide operation selector (0..5).
func WideMnemonic(sel byte) string {
	if int(sel) >= len(wideMnemonicBySelector) {
		return "???"
	}
	return wideMnemonicBySelector[sel]
}
