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

import "testing"

// setup builds a Cpu with image as the initial memory contents.
func setup(image ...byte) *Cpu {
	return New(image)
}

func wide(sel byte, indirect, indexed bool, addr uint16) []byte {
	return []byte{WideOpcode(sel, indirect, indexed), byte(addr >> 8), byte(addr)}
}

func TestImmediateLoadAndHalt(t *testing.T) {
	c := setup(byte(OpLdaConst), 0x42, byte(OpHlt))
	c.Run()
	if c.A != 0x42 {
		t.Fatalf("A = %#02x, want 0x42", c.A)
	}
	if !c.Halted {
		t.Fatalf("expected Halted after hlt")
	}
	if c.Status&FlagZero != 0 {
		t.Fatalf("zero flag set with A = 0x42")
	}
}

func TestZeroFlagTracksA(t *testing.T) {
	c := setup(byte(OpLdaConst), 0, byte(OpHlt))
	c.Run()
	if c.Status&FlagZero == 0 {
		t.Fatalf("zero flag clear with A = 0")
	}
}

func TestAddCarryInAndOut(t *testing.T) {
	img := append([]byte{byte(OpLdaConst), 0xFF}, byte(OpTab), byte(OpLdaConst), 0x02)
	img = append(img, byte(OpSec), byte(OpAdd), byte(OpHlt))
	c := setup(img...)
	c.Run()
	// A=0x02, B=0xFF, carry in=1 => sum = 0x02+0xFF+1 = 0x102 -> A=0x02, carry out=1
	if c.A != 0x02 {
		t.Fatalf("A = %#02x, want 0x02", c.A)
	}
	if c.Status&FlagCarry == 0 {
		t.Fatalf("expected carry out set")
	}
}

func TestJsrRtsRoundTrip(t *testing.T) {
	const subAddr = 20
	img := make([]byte, 32)
	pc := 0
	put := func(bs ...byte) {
		copy(img[pc:], bs)
		pc += len(bs)
	}
	put(byte(OpLdaConst), 0x30) // A = hi(SP); B defaults to 0 = lo(SP)
	put(byte(OpSsp))            // SP = (A<<8)|B = 0x3000
	put(wide(SelJSR, false, false, subAddr)...)
	afterJsr := pc
	put(byte(OpHlt))
	for pc < subAddr {
		put(byte(OpNop))
	}
	put(byte(OpRts))

	c := setup(img...)
	c.Run()
	if int(c.PC) != afterJsr+1 {
		t.Fatalf("after jsr/rts round trip PC = %d, want %d", c.PC, afterJsr+1)
	}
}

func TestJmpIndexed(t *testing.T) {
	img := make([]byte, 32)
	img[0] = byte(OpInc) // X = 1
	w := wide(SelJMP, false, true, 10)
	copy(img[1:], w)
	img[11] = byte(OpHlt) // target = 10 + X(1) = 11
	c := setup(img...)
	c.Run()
	if !c.Halted {
		t.Fatalf("expected halt at indexed jmp target")
	}
}

func TestLdaIndirect(t *testing.T) {
	img := make([]byte, 32)
	img[20] = 0x00 // pointer hi byte, at address 20:21
	img[21] = 0x07 // pointer lo byte -> points at address 7
	img[7] = 0x99  // value at the pointed-to address
	w := wide(SelLDA, true, false, 20)
	copy(img[0:], w)
	img[3] = byte(OpHlt)
	c := setup(img...)
	c.Run()
	if c.A != 0x99 {
		t.Fatalf("A = %#02x, want 0x99 (indirect load)", c.A)
	}
}

func TestReservedOpcodesAreNop(t *testing.T) {
	c := setup(9, 10, 11, byte(OpHlt))
	a, b, x := c.A, c.B, c.X
	c.Run()
	if c.A != a || c.B != b || c.X != x {
		t.Fatalf("reserved opcodes mutated registers: A=%v B=%v X=%v", c.A, c.B, c.X)
	}
}

func TestPcWrapQuirk(t *testing.T) {
	c := setup(byte(OpNop))
	c.PC = 65536
	c.Step()
	if c.PC != 2 {
		t.Fatalf("PC after wrap+step = %d, want 2 (65536 mod 65535 = 1, +1 for nop)", c.PC)
	}
}
