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

// Package vm implements the avc8 8-bit virtual machine: a flat 64 KiB
// memory, three 8-bit registers, a status byte, and a fetch-decode-execute
// loop with two instruction widths.
package vm

import (
	"io"
	"io/ioutil"
)

const memSize = 1 << 16

// Status flag bits.
const (
	FlagCarry byte = 1 << 0
	FlagZero  byte = 1 << 1
)

// ByteSource is a non-blocking byte source: Poll drains whatever bytes are
// currently available (without blocking) into an internal buffer and
// returns how many are pending. Read consumes one buffered byte, returning
// ok=false if the buffer is empty.
type ByteSource interface {
	Poll() (pending int)
	Read() (b byte, ok bool)
}

// Cpu is an avc8 virtual machine instance.
type Cpu struct {
	Memory [memSize]byte

	A, B, X byte
	// PC is wider than 16 bits so that the documented "PC > 65535" wrap
	// quirk (spec'd behavior, not a bug to silently fix) can actually be
	// observed: wide-instruction auto-increment can carry PC past 65535
	// before the next fetch brings it back down with a mod-65535 reduction.
	PC     uint32
	SP     uint16
	Status byte
	Halted bool

	input  ByteSource
	output io.Writer

	insCount int64
}

// Option configures a Cpu at construction time.
type Option func(*Cpu)

// WithInput sets the Cpu's non-blocking input device. If not set, Get and
// Gbf always report no data available.
func WithInput(src ByteSource) Option {
	return func(c *Cpu) { c.input = src }
}

// WithOutput sets the writer the Put instruction writes bytes to. If not
// set, output is discarded.
func WithOutput(w io.Writer) Option {
	return func(c *Cpu) { c.output = w }
}

// New creates a Cpu with the given image loaded at address 0. The image is
// copied; it may be shorter than 64 KiB, in which case the remainder of
// memory stays zeroed.
func New(image []byte, opts ...Option) *Cpu {
	c := &Cpu{output: ioutil.Discard}
	copy(c.Memory[:], image)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// InstructionCount returns the number of instructions executed so far,
// brk instructions included.
func (c *Cpu) InstructionCount() int64 { return c.insCount }

// push writes b at the current stack pointer and advances SP. The stack
// grows upward through memory; SP always points at the next free slot.
func (c *Cpu) push(b byte) {
	c.Memory[c.SP] = b
	c.SP++
}

// pop retracts the stack pointer and returns the byte it used to point
// past.
func (c *Cpu) pop() byte {
	c.SP--
	return c.Memory[c.SP]
}

func be16(hi, lo byte) uint16 { return uint16(hi)<<8 | uint16(lo) }

func split16(v uint16) (hi, lo byte) { return byte(v >> 8), byte(v) }
