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
)

// SourceLine is one line of source text tagged with its 1-based position,
// so diagnostics survive macro expansion and declaration-block stripping.
type SourceLine struct {
	Num  int
	Text string
}

// SplitSource splits raw source text into numbered lines. A trailing
// newline ends the last line; it does not start an extra empty one.
func SplitSource(src string) []SourceLine {
	raw := strings.Split(strings.TrimSuffix(src, "\n"), "\n")
	out := make([]SourceLine, len(raw))
	for i, t := range raw {
		out[i] = SourceLine{Num: i + 1, Text: t}
	}
	return out
}

// Constants is the name -> value table populated by #BYTE declarations.
type Constants map[string]byte

// Macros is the name -> body table populated by #MACR/#ENDM declarations.
// Bodies are kept verbatim, one raw line per entry.
type Macros map[string][]string

// Preprocess consumes the leading declaration block, if any, and returns
// the constant and macro tables plus the remaining program lines. If the
// first non-empty line does not start with '#', there is no declaration
// block and lines is returned unchanged.
func Preprocess(lines []SourceLine) (Constants, Macros, []SourceLine, error) {
	consts := make(Constants)
	macros := make(Macros)

	start := -1
	for i, l := range lines {
		if strings.TrimSpace(l.Text) != "" {
			start = i
			break
		}
	}
	if start == -1 || !strings.HasPrefix(strings.TrimSpace(lines[start].Text), "#") {
		return consts, macros, lines, nil
	}

	i := start
	for {
		if i >= len(lines) {
			return nil, nil, nil, AsmErrors{{Line: lines[len(lines)-1].Num, Msg: "missing #ENDD"}}
		}
		text := strings.TrimSpace(lines[i].Text)
		switch {
		case text == "" || strings.HasPrefix(text, ";"):
			i++
		case text == "#ENDD":
			return consts, macros, lines[i+1:], nil
		case strings.HasPrefix(text, "#BYTE"):
			if err := parseByteDecl(text, lines[i].Num, consts); err != nil {
				return nil, nil, nil, err
			}
			i++
		case strings.HasPrefix(text, "#MACR"):
			name, body, next, err := parseMacroDecl(lines, i)
			if err != nil {
				return nil, nil, nil, err
			}
			macros[name] = body
			i = next
		default:
			tag := text
			if len(tag) > 5 {
				tag = tag[:5]
			}
			return nil, nil, nil, AsmErrors{{Line: lines[i].Num, Msg: fmt.Sprintf("unrecognised declaration %q", tag)}}
		}
	}
}

func parseByteDecl(text string, lineNum int, consts Constants) error {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return AsmErrors{{Line: lineNum, Msg: "#BYTE requires a name and a value"}}
	}
	name, valStr := fields[1], fields[2]
	v, err := ParseLiteral(valStr, 8)
	if err != nil {
		return AsmErrors{{Line: lineNum, Msg: err.Error()}}
	}
	consts[name] = byte(v)
	return nil
}

func parseMacroDecl(lines []SourceLine, i int) (name string, body []string, next int, err error) {
	header := strings.TrimSpace(lines[i].Text)
	rest := strings.TrimSpace(strings.TrimPrefix(header, "#MACR"))
	name = rest
	if idx := strings.IndexAny(rest, " \t;"); idx >= 0 {
		name = rest[:idx]
	}
	if name == "" {
		return "", nil, 0, AsmErrors{{Line: lines[i].Num, Msg: "#MACR requires a name"}}
	}
	j := i + 1
	for {
		if j >= len(lines) {
			return "", nil, 0, AsmErrors{{Line: lines[i].Num, Msg: fmt.Sprintf("macro %q missing #ENDM", name)}}
		}
		if strings.TrimSpace(lines[j].Text) == "#ENDM" {
			return name, body, j + 1, nil
		}
		body = append(body, lines[j].Text)
		j++
	}
}
