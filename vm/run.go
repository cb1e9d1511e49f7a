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

import "fmt"

// Run executes instructions until Halted is set or a brk instruction is
// hit. It returns true if execution stopped on a brk (as opposed to hlt).
func (c *Cpu) Run() (brk bool) {
	for !c.Halted {
		if c.Step() {
			return true
		}
	}
	return false
}

// RunN executes at most n instructions, stopping early on Halted or brk.
// It reports how many instructions actually ran and whether the stop was a
// brk.
func (c *Cpu) RunN(n int) (ran int, brk bool) {
	for ran = 0; ran < n && !c.Halted; ran++ {
		if c.Step() {
			return ran + 1, true
		}
	}
	return ran, false
}

// statusBits is the template the readout renders the status byte against,
// most significant bit first: a set bit shows its letter, a clear bit or a
// '-' position shows '-'.
const statusBits = "-----nzc"

// Readout renders a one-line register/flag dump in the vein of the original
// interpreter's debug trace: registers in hex, then the status byte spelled
// out bit by bit against statusBits. No header line is printed.
func (c *Cpu) Readout() string {
	bits := make([]byte, len(statusBits))
	for i := range bits {
		bit := byte(1) << uint(len(statusBits)-1-i)
		if statusBits[i] == '-' || c.Status&bit == 0 {
			bits[i] = '-'
		} else {
			bits[i] = statusBits[i]
		}
	}
	return fmt.Sprintf("a:%02x b:%02x x:%02x pc:%04x sp:%04x %s",
		c.A, c.B, c.X, c.PC, c.SP, string(bits))
}
