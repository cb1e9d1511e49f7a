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

// Package avcio provides the non-blocking byte source the VM's get/gbf
// opcodes poll, and the raw-terminal-mode glue that keeps keystrokes from
// being line-buffered or echoed while a program owns the input.
package avcio

import "io"

// NonBlockingReader drains an io.Reader on a background goroutine into an
// internal buffer, so Read never blocks the VM's fetch-execute loop. It
// implements vm.ByteSource.
type NonBlockingReader struct {
	ch  chan byte
	buf []byte
}

// NewNonBlockingReader starts pumping r in the background. r is typically
// os.Stdin in raw mode.
func NewNonBlockingReader(r io.Reader) *NonBlockingReader {
	nr := &NonBlockingReader{ch: make(chan byte, 4096)}
	go nr.pump(r)
	return nr
}

func (nr *NonBlockingReader) pump(r io.Reader) {
	b := make([]byte, 1)
	for {
		n, err := r.Read(b)
		if n > 0 {
			nr.ch <- b[0]
		}
		if err != nil {
			close(nr.ch)
			return
		}
	}
}

// Poll drains whatever is currently queued on the background goroutine's
// channel into buf and returns the number of bytes now pending.
func (nr *NonBlockingReader) Poll() int {
	for {
		select {
		case b, ok := <-nr.ch:
			if !ok {
				return len(nr.buf)
			}
			nr.buf = append(nr.buf, b)
		default:
			return len(nr.buf)
		}
	}
}

// Read consumes one buffered byte, polling first if the buffer is empty.
func (nr *NonBlockingReader) Read() (byte, bool) {
	if len(nr.buf) == 0 {
		nr.Poll()
	}
	if len(nr.buf) == 0 {
		return 0, false
	}
	b := nr.buf[0]
	nr.buf = nr.buf[1:]
	return b, true
}
