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

// Assemble runs the full pipeline (preprocess, parse, link) over source
// text and returns the resulting byte image and resolved symbol table.
// On any diagnostic, no partial image is returned.
func Assemble(source string) (Image, Symbols, error) {
	lines := SplitSource(source)

	consts, macros, body, err := Preprocess(lines)
	if err != nil {
		return nil, nil, err
	}

	ps := newParseState(consts, macros)
	for _, l := range body {
		ps.processLine(l)
		if ps.abort() {
			break
		}
	}
	if len(ps.errs) > 0 {
		return nil, nil, ps.errs
	}

	img, err := Link(ps.lines, ps.symbols, consts)
	if err != nil {
		return nil, nil, err
	}
	return img, ps.symbols, nil
}
