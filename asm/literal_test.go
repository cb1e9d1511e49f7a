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

import "testing"

func TestParseLiteralBases(t *testing.T) {
	cases := []struct {
		in   string
		bits int
		want int64
	}{
		{"42", 8, 42},
		{"0d42", 8, 42},
		{"0x2A", 8, 42},
		{"0b101010", 8, 42},
		{"0x0010", 16, 16},
	}
	for _, c := range cases {
		got, err := ParseLiteral(c.in, c.bits)
		if err != nil {
			t.Fatalf("ParseLiteral(%q,%d): unexpected error: %v", c.in, c.bits, err)
		}
		if got != c.want {
			t.Fatalf("ParseLiteral(%q,%d) = %d, want %d", c.in, c.bits, got, c.want)
		}
	}
}

func TestParseLiteralTooShort(t *testing.T) {
	if _, err := ParseLiteral("0x", 8); err == nil {
		t.Fatalf("expected error for too-short literal")
	}
}

func TestParseLiteralUnsupportedRadix(t *testing.T) {
	if _, err := ParseLiteral("0zzz", 8); err == nil {
		t.Fatalf("expected error for unsupported radix")
	}
}

func TestParseLiteralOverflowsWidth(t *testing.T) {
	if _, err := ParseLiteral("256", 8); err == nil {
		t.Fatalf("expected error for 256 not fitting in 8 bits")
	}
	if _, err := ParseLiteral("65536", 16); err == nil {
		t.Fatalf("expected error for 65536 not fitting in 16 bits")
	}
}
