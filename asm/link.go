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
	"github.com/pkg/errors"

	"github.com/db47h/avc8/vm"
)

// Link resolves every label/constant reference in lines and encodes them
// into a byte image, replaying org directives to reposition the write
// cursor exactly as the parse pass computed it.
func Link(lines []Line, symbols Symbols, consts Constants) (Image, error) {
	var img Image
	var errs AsmErrors
	counter := 0

	for _, ln := range lines {
		switch ln.Mnemonic {
		case "org":
			counter = int(ln.Operand.Value)

		case "dat":
			data, err := resolveBytes(ln.Operand, symbols, consts)
			if err != nil {
				errs = append(errs, AsmError{Line: ln.Src, Msg: err.Error()})
				continue
			}
			img.WriteAt(uint16(counter), data...)
			counter += len(data)

		case "lda":
			if ln.Operand.Kind == kindByteLiteral || ln.Operand.Immediate {
				b, err := resolveByte(ln.Operand, symbols, consts)
				if err != nil {
					errs = append(errs, AsmError{Line: ln.Src, Msg: err.Error()})
					continue
				}
				opcode, _ := vm.NarrowOpcode("lda")
				img.WriteAt(uint16(counter), opcode, b)
				counter += 2
				continue
			}
			addr, err := resolveAddr(ln.Operand, symbols)
			if err != nil {
				errs = append(errs, AsmError{Line: ln.Src, Msg: err.Error()})
				continue
			}
			opcode := vm.WideOpcode(vm.SelLDA, ln.Operand.Indirect, ln.Operand.Indexed)
			img.WriteAt(uint16(counter), opcode, byte(addr>>8), byte(addr))
			counter += 3

		case "sta", "jmp", "jsr", "jez", "jgt":
			sel, _ := vm.WideSelector(ln.Mnemonic)
			addr, err := resolveAddr(ln.Operand, symbols)
			if err != nil {
				errs = append(errs, AsmError{Line: ln.Src, Msg: err.Error()})
				continue
			}
			opcode := vm.WideOpcode(sel, ln.Operand.Indirect, ln.Operand.Indexed)
			img.WriteAt(uint16(counter), opcode, byte(addr>>8), byte(addr))
			counter += 3

		default:
			opcode, ok := vm.NarrowOpcode(ln.Mnemonic)
			if !ok {
				errs = append(errs, AsmError{Line: ln.Src, Msg: "internal: unencodable mnemonic " + ln.Mnemonic})
				continue
			}
			img.WriteAt(uint16(counter), opcode)
			counter++
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return img, nil
}

func resolveAddr(op Operand, symbols Symbols) (uint16, error) {
	switch op.Kind {
	case kindAddrLiteral:
		return op.Value, nil
	case kindDeferred:
		base, ok := symbols[op.Name]
		if !ok {
			return 0, errors.Errorf("unknown label %q", op.Name)
		}
		v := (int64(base) + op.Offset) % 65536
		if v < 0 {
			v += 65536
		}
		return uint16(v), nil
	default:
		return 0, errors.New("operand does not resolve to an address")
	}
}

func resolveByte(op Operand, symbols Symbols, consts Constants) (byte, error) {
	switch op.Kind {
	case kindByteLiteral:
		return byte(op.Value), nil
	case kindDeferred:
		if addr, ok := symbols[op.Name]; ok {
			return byte((int64(addr) + op.Offset) & 0xFF), nil
		}
		if c, ok := consts[op.Name]; ok {
			return byte((int64(c) + op.Offset) & 0xFF), nil
		}
		return 0, errors.Errorf("unknown label or constant %q", op.Name)
	default:
		return 0, errors.New("operand does not resolve to a byte value")
	}
}

func resolveBytes(op Operand, symbols Symbols, consts Constants) ([]byte, error) {
	switch op.Kind {
	case kindBytes:
		return op.Data, nil
	case kindByteLiteral:
		return []byte{byte(op.Value)}, nil
	case kindDeferred:
		b, err := resolveByte(op, symbols, consts)
		if err != nil {
			return nil, err
		}
		return []byte{b}, nil
	default:
		return nil, errors.New("invalid dat operand")
	}
}
