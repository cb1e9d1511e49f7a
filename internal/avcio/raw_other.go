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

//go:build !unix

package avcio

import (
	"os"

	"github.com/pkg/errors"
)

// SetRawMode is unsupported outside unix-like platforms; callers fall back
// to NonBlockingReader's plain buffered polling without raw mode.
func SetRawMode(f *os.File) (restore func(), err error) {
	return nil, errors.New("raw terminal mode not supported on this platform")
}
