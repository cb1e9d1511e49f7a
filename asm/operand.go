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
	"strings"

	"github.com/pkg/errors"
)

// operandKind discriminates the Operand union.
type operandKind int

const (
	kindNone operandKind = iota
	kindByteLiteral
	kindAddrLiteral
	kindDeferred
	kindBytes
)

// Operand is the parsed right-hand side of an instruction. Exactly one of
// its value fields is meaningful, selected by Kind; label references that
// cannot be resolved until every label is known are carried as Kind ==
// kindDeferred and resolved during Link.
type Operand struct {
	Kind      operandKind
	Value     uint16 // kindByteLiteral (low byte) / kindAddrLiteral
	Name      string // kindDeferred
	Offset    int64  // kindDeferred
	Immediate bool   // kindDeferred: resolve to a byte (lda # / dat), not an address
	Indirect  bool
	Indexed   bool
	Data      []byte // kindBytes
}

// Line is one fully parsed instruction, ready for Link. Mnemonic "org"
// carries its resolved target address in Operand and emits no bytes; "dat"
// emits its data bytes verbatim; every other mnemonic maps directly to an
// opcode.
type Line struct {
	Mnemonic string
	Operand  Operand
	Src      int
}

// Symbols maps a label name to the assembly counter value it was defined
// at. Populated during the parse pass, consumed during Link.
type Symbols map[string]uint16

// parseLabelRef splits "name", "name+expr" or "name-expr" into a bare name
// and a signed offset. The split point is the rightmost '+' or '-' not in
// the first position, since label names never contain either.
func parseLabelRef(text string) (name string, offset int64, err error) {
	idx := -1
	sign := int64(1)
	for i := len(text) - 1; i > 0; i-- {
		switch text[i] {
		case '+':
			idx, sign = i, 1
		case '-':
			idx, sign = i, -1
		}
		if idx >= 0 {
			break
		}
	}
	if idx < 0 {
		return text, 0, nil
	}
	name = text[:idx]
	numStr := text[idx+1:]
	if numStr == "" {
		return "", 0, errors.Errorf("missing offset after %q", text[:idx+1])
	}
	v, err := ParseLiteral(numStr, 16)
	if err != nil {
		return "", 0, err
	}
	return name, sign * v, nil
}

// parseAddrBase resolves a bare token (no ",x" suffix, no parens) to either
// a literal address or a deferred label reference.
func parseAddrBase(s string) (Operand, error) {
	if v, err := ParseLiteral(s, 16); err == nil {
		return Operand{Kind: kindAddrLiteral, Value: uint16(v)}, nil
	}
	name, offset, err := parseLabelRef(s)
	if err != nil {
		return Operand{}, err
	}
	return Operand{Kind: kindDeferred, Name: name, Offset: offset}, nil
}

// parseAddrOperand parses the address-operand syntax shared by lda (direct
// form), sta, jmp, jsr, jez and jgt: "hhll", "hhll,x", "(hhll)",
// "(hhll),x", "%name[±n]" or bare "name[±n]".
func parseAddrOperand(operand string) (Operand, error) {
	operand = strings.TrimPrefix(operand, "%")
	if strings.HasPrefix(operand, "(") {
		close := strings.IndexByte(operand, ')')
		if close < 0 {
			return Operand{}, errors.New("unclosed parenthesis")
		}
		inner := operand[1:close]
		suffix := operand[close+1:]
		indexed := false
		switch suffix {
		case "":
		case ",x":
			indexed = true
		default:
			return Operand{}, errors.Errorf("unexpected suffix %q after )", suffix)
		}
		base, err := parseAddrBase(inner)
		if err != nil {
			return Operand{}, err
		}
		base.Indirect = true
		base.Indexed = indexed
		return base, nil
	}
	indexed := false
	base := operand
	if strings.HasSuffix(operand, ",x") {
		indexed = true
		base = strings.TrimSuffix(operand, ",x")
	}
	op, err := parseAddrBase(base)
	if err != nil {
		return Operand{}, err
	}
	op.Indexed = indexed
	return op, nil
}

// parseImmediateOperand parses "lda"'s immediate syntax, "#value" where
// value is a numeric literal or a named constant (or label, resolved to its
// low byte at link time).
func parseImmediateOperand(operand string) (Operand, error) {
	body := strings.TrimPrefix(operand, "#")
	if v, err := ParseLiteral(body, 8); err == nil {
		return Operand{Kind: kindByteLiteral, Value: uint16(v)}, nil
	}
	name, offset, err := parseLabelRef(body)
	if err != nil {
		return Operand{}, err
	}
	return Operand{Kind: kindDeferred, Name: name, Offset: offset, Immediate: true}, nil
}

// parseDatOperand parses dat's operand: a quoted string, a single numeric
// byte, a comma-separated byte list, or (as an extension) a label/constant
// resolving to one byte. It returns the operand and the byte width it will
// occupy in the image.
func parseDatOperand(operand string) (Operand, int, error) {
	if strings.HasPrefix(operand, `"`) {
		if len(operand) < 2 || operand[len(operand)-1] != '"' {
			return Operand{}, 0, errors.New("unclosed quote")
		}
		data := []byte(operand[1 : len(operand)-1])
		return Operand{Kind: kindBytes, Data: data}, len(data), nil
	}
	if v, err := ParseLiteral(operand, 8); err == nil {
		return Operand{Kind: kindByteLiteral, Value: uint16(v)}, 1, nil
	}
	if strings.Contains(operand, ",") {
		parts := strings.Split(operand, ",")
		data := make([]byte, 0, len(parts))
		for _, p := range parts {
			v, err := ParseLiteral(strings.TrimSpace(p), 8)
			if err != nil {
				return Operand{}, 0, err
			}
			data = append(data, byte(v))
		}
		return Operand{Kind: kindBytes, Data: data}, len(data), nil
	}
	name, offset, err := parseLabelRef(operand)
	if err != nil {
		return Operand{}, 0, err
	}
	return Operand{Kind: kindDeferred, Name: name, Offset: offset, Immediate: true}, 1, nil
}
