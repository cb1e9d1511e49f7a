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

// Image is the assembler's output: a byte sequence meant to be loaded
// verbatim at address 0 of the VM's memory. Its length is the highest
// written index plus one; gaps left by org are zero-filled.
type Image []byte

// WriteAt places bs starting at addr, extending the image with zero bytes
// if addr+len(bs) is past the current end.
func (img *Image) WriteAt(addr uint16, bs ...byte) {
	end := int(addr) + len(bs)
	if end > len(*img) {
		grown := make([]byte, end)
		copy(grown, *img)
		*img = grown
	}
	copy((*img)[addr:], bs)
}
