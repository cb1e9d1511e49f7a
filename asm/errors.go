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

// maxErrors bounds how many diagnostics a single assembly accumulates
// before giving up on finding more.
const maxErrors = 20

// AsmError is one diagnostic tied to a source line.
type AsmError struct {
	Line int
	Msg  string
}

func (e AsmError) String() string { return fmt.Sprintf("%d: %s", e.Line, e.Msg) }

// AsmErrors collects every diagnostic produced by an assembly run. It
// implements error, joining one line per entry.
type AsmErrors []AsmError

func (e AsmErrors) Error() string {
	lines := make([]string, len(e))
	for i, er := range e {
		lines[i] = er.String()
	}
	return strings.Join(lines, "\n")
}
