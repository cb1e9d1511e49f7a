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

// Step executes exactly one instruction and reports whether it was a brk
// (breakpoint), which yields control to the host between instructions.
func (c *Cpu) Step() (brk bool) {
	if c.PC > 65535 {
		// documented quirk: reduced modulo 65535, not 65536.
		c.PC %= 65535
	}
	pc := uint16(c.PC)
	opcode := c.Memory[pc]

	if opcode == byte(OpBrk) {
		c.PC = uint32(pc) + 1
		c.insCount++
		return true
	}

	if sel, indirect, indexed, ok := DecodeWide(opcode); ok {
		op1, op2 := c.Memory[pc+1], c.Memory[pc+2]
		c.PC = uint32(pc) + 3
		c.execWide(sel, indirect, indexed, op1, op2)
	} else {
		c.PC = uint32(pc) + 1
		c.execNarrow(Op(opcode))
	}

	c.insCount++
	if c.A == 0 {
		c.Status |= FlagZero
	} else {
		c.Status &^= FlagZero
	}
	return false
}

func (c *Cpu) execNarrow(op Op) {
	switch op {
	case OpNop:
	case OpHlt:
		c.Halted = true
	case OpSwp:
		c.A, c.B = c.B, c.A
	case OpTab:
		c.B = c.A
	case OpTax:
		c.X = c.A
	case OpTxa:
		c.A = c.X
	case OpInc:
		c.X++
	case OpDec:
		c.X--
	case OpAdd:
		var carryIn uint16
		if c.Status&FlagCarry != 0 {
			carryIn = 1
		}
		sum := uint16(c.A) + uint16(c.B) + carryIn
		c.A = byte(sum)
		c.setCarry(sum > 0xFF)
	case OpLsr:
		// named "lsr" but rotates left through carry, per the opcode
		// effects table -- a preserved historical naming quirk.
		oldCarry := c.Status & FlagCarry
		newCarry := c.A >> 7
		c.A = (c.A << 1) | oldCarry
		c.setCarry(newCarry != 0)
	case OpLsl:
		// named "lsl" but rotates right through carry; see OpLsr.
		oldCarry := c.Status & FlagCarry
		newCarry := c.A & 1
		c.A = (c.A >> 1) | (oldCarry << 7)
		c.setCarry(newCarry != 0)
	case OpClc:
		c.setCarry(false)
	case OpSec:
		c.setCarry(true)
	case OpPut:
		c.writeByte(c.A)
	case OpPsa:
		c.push(c.A)
	case OpPpa:
		c.A = c.pop()
	case OpPss:
		c.A = c.Status
	case OpPps:
		c.Status = c.A
	case OpSsp:
		c.SP = be16(c.A, c.B)
	case OpGsp:
		c.A, c.B = split16(c.SP)
	case OpRts:
		lo := c.pop()
		hi := c.pop()
		c.PC = uint32(be16(hi, lo))
	case OpLdaConst:
		pc := uint16(c.PC)
		c.A = c.Memory[pc]
		c.PC = uint32(pc) + 1
	case OpGet:
		c.A = c.readByte()
	case OpNot:
		c.A = ^c.A
	case OpAnd:
		c.A &= c.B
	case OpIor:
		c.A |= c.B
	case OpXor:
		c.A ^= c.B
	case OpGbf:
		n := c.pollInput()
		if n > 255 {
			c.A = 255
			c.setCarry(true)
		} else {
			c.A = byte(n)
			c.setCarry(false)
		}
	default:
		// undefined opcodes (including the 9-11 reserved slots) execute as
		// nop.
	}
}

func (c *Cpu) execWide(sel byte, indirect, indexed bool, op1, op2 byte) {
	base := be16(op1, op2)
	addr := base
	if indirect {
		addr = be16(c.Memory[base], c.Memory[base+1])
	}
	if indexed {
		addr += uint16(c.X)
	}

	switch sel {
	case SelLDA:
		c.A = c.Memory[addr]
	case SelSTA:
		c.Memory[addr] = c.A
	case SelJMP:
		c.PC = uint32(addr)
	case SelJSR:
		hi, lo := split16(uint16(c.PC))
		c.push(hi)
		c.push(lo)
		c.PC = uint32(addr)
	case SelJEZ:
		if c.Status&FlagZero != 0 {
			c.PC = uint32(addr)
		}
	case SelJGT:
		if c.A > c.B {
			c.PC = uint32(addr)
		}
	}
}

func (c *Cpu) setCarry(set bool) {
	if set {
		c.Status |= FlagCarry
	} else {
		c.Status &^= FlagCarry
	}
}
