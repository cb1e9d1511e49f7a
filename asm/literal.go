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

// Package asm assembles avc8 source text into a raw byte image for the vm
// package to load and execute.
package asm

import (
	"strconv"

	"github.com/pkg/errors"
)

// LiteralError reports a malformed numeric literal, carrying the offending
// token for diagnostics.
type LiteralError struct {
	Token string
	Err   error
}

func (e *LiteralError) Error() string {
	return "invalid literal " + strconv.Quote(e.Token) + ": " + e.Err.Error()
}

func (e *LiteralError) Unwrap() error { return e.Err }

// ParseLiteral parses a numeric literal token into a value that fits in
// bits (8 or 16). Unprefixed tokens are decimal; "0b", "0d" and "0x" select
// base 2, 10 and 16 for the remainder of the token.
func ParseLiteral(s string, bits int) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return fitWidth(s, v, bits)
	}
	if len(s) >= 2 {
		var base int
		switch s[:2] {
		case "0b":
			base = 2
		case "0d":
			base = 10
		case "0x":
			base = 16
		}
		if base != 0 {
			v, err := strconv.ParseInt(s[2:], base, 64)
			if err != nil {
				return 0, &LiteralError{Token: s, Err: err}
			}
			return fitWidth(s, v, bits)
		}
	}
	if len(s) < 3 {
		return 0, &LiteralError{Token: s, Err: errors.New("literal too short")}
	}
	return 0, &LiteralError{Token: s, Err: errors.New("unsupported radix")}
}

func fitWidth(token string, v int64, bits int) (int64, error) {
	if v < 0 {
		return 0, &LiteralError{Token: token, Err: errors.New("negative value not allowed")}
	}
	max := int64(1)<<uint(bits) - 1
	if v > max {
		return 0, &LiteralError{Token: token, Err: errors.Errorf("value exceeds %d bits", bits)}
	}
	return v, nil
}
