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

// writeByte implements put: write b to the output device and flush
// synchronously. Write errors are swallowed here (the Cpu has no error
// return path mid-instruction); callers that care should wrap the writer
// passed to WithOutput in something that records the last error.
func (c *Cpu) writeByte(b byte) {
	if c.output == nil {
		return
	}
	_, _ = c.output.Write([]byte{b})
	if f, ok := c.output.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}

// readByte implements get: consume one buffered input byte, or 0 if none is
// available.
func (c *Cpu) readByte() byte {
	if c.input == nil {
		return 0
	}
	b, ok := c.input.Read()
	if !ok {
		return 0
	}
	return b
}

// pollInput implements the polling half of gbf: refresh the input device's
// buffer and report how many bytes are pending.
func (c *Cpu) pollInput() int {
	if c.input == nil {
		return 0
	}
	return c.input.Poll()
}
