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

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewCopiesImageAndZeroFillsRest(t *testing.T) {
	c := New([]byte{1, 2, 3})
	if c.Memory[0] != 1 || c.Memory[1] != 2 || c.Memory[2] != 3 {
		t.Fatalf("image not copied: %v", c.Memory[:3])
	}
	if c.Memory[3] != 0 {
		t.Fatalf("memory past image should be zero-filled")
	}
}

func TestWithOutputReceivesPutBytes(t *testing.T) {
	var buf bytes.Buffer
	c := New([]byte{byte(OpLdaConst), 'h', byte(OpPut), byte(OpHlt)}, WithOutput(&buf))
	c.Run()
	if buf.String() != "h" {
		t.Fatalf("output = %q, want %q", buf.String(), "h")
	}
}

type fakeSource struct {
	buf []byte
}

func (f *fakeSource) Poll() int { return len(f.buf) }

func (f *fakeSource) Read() (byte, bool) {
	if len(f.buf) == 0 {
		return 0, false
	}
	b := f.buf[0]
	f.buf = f.buf[1:]
	return b, true
}

func TestWithInputFeedsGet(t *testing.T) {
	src := &fakeSource{buf: []byte{0x42}}
	c := New([]byte{byte(OpGet), byte(OpHlt)}, WithInput(src))
	c.Run()
	if c.A != 0x42 {
		t.Fatalf("A = %#02x, want 0x42", c.A)
	}
}

func TestGbfReportsPendingCount(t *testing.T) {
	src := &fakeSource{buf: []byte{1, 2, 3}}
	c := New([]byte{byte(OpGbf), byte(OpHlt)}, WithInput(src))
	c.Run()
	if c.A != 3 {
		t.Fatalf("A = %d, want 3 pending bytes", c.A)
	}
	if c.Status&FlagCarry != 0 {
		t.Fatalf("carry should be clear when pending count fits in a byte")
	}
}

func TestPushPopBalance(t *testing.T) {
	c := New(nil)
	c.SP = 100
	c.push(0x11)
	c.push(0x22)
	if b := c.pop(); b != 0x22 {
		t.Fatalf("pop = %#02x, want 0x22", b)
	}
	if b := c.pop(); b != 0x11 {
		t.Fatalf("pop = %#02x, want 0x11", b)
	}
	if c.SP != 100 {
		t.Fatalf("SP = %d after balanced push/pop, want 100", c.SP)
	}
}

func TestReadoutFormat(t *testing.T) {
	c := New(nil)
	c.A, c.B, c.X = 1, 2, 3
	c.Status = FlagZero | FlagCarry
	out := c.Readout()
	if !strings.Contains(out, "a:01") || !strings.Contains(out, "b:02") || !strings.Contains(out, "x:03") {
		t.Fatalf("readout missing register fields: %s", out)
	}
	if !strings.HasSuffix(out, "zc") {
		t.Fatalf("readout = %q, want flags suffix ending in zc", out)
	}
}
