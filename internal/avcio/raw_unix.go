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

//go:build unix

package avcio

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
	"github.com/pkg/term/termios"
)

// SetRawMode switches f (normally os.Stdin) to raw, unbuffered,
// non-echoing input and returns a function that restores the previous
// settings.
func SetRawMode(f *os.File) (restore func(), err error) {
	var tios syscall.Termios
	if err := termios.Tcgetattr(f.Fd(), &tios); err != nil {
		return nil, errors.Wrap(err, "Tcgetattr failed")
	}
	a := tios
	a.Iflag &^= syscall.IGNBRK | syscall.ISTRIP | syscall.IXON | syscall.IXOFF
	a.Iflag |= syscall.BRKINT | syscall.IGNPAR
	a.Lflag &^= syscall.ICANON | syscall.IEXTEN | syscall.ECHO
	a.Cc[syscall.VMIN] = 0
	a.Cc[syscall.VTIME] = 0
	if err := termios.Tcsetattr(f.Fd(), termios.TCSANOW, &a); err != nil {
		termios.Tcsetattr(f.Fd(), termios.TCSANOW, &tios)
		return nil, errors.Wrap(err, "Tcsetattr failed")
	}
	return func() {
		termios.Tcsetattr(f.Fd(), termios.TCSANOW, &tios)
	}, nil
}
