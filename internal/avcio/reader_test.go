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

package avcio

import (
	"bytes"
	"runtime"
	"testing"
	"time"
)

func TestNonBlockingReaderDrainsBytes(t *testing.T) {
	nr := NewNonBlockingReader(bytes.NewReader([]byte{1, 2, 3}))
	var got []byte
	deadline := time.Now().Add(time.Second)
	for len(got) < 3 && time.Now().Before(deadline) {
		if b, ok := nr.Read(); ok {
			got = append(got, b)
		} else {
			runtime.Gosched()
		}
	}
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
}

func TestNonBlockingReaderReadFalseWhenEmpty(t *testing.T) {
	nr := NewNonBlockingReader(bytes.NewReader(nil))
	time.Sleep(10 * time.Millisecond)
	if _, ok := nr.Read(); ok {
		t.Fatalf("expected no data available from an empty source")
	}
}

func TestNonBlockingReaderPollReportsPendingCount(t *testing.T) {
	nr := NewNonBlockingReader(bytes.NewReader([]byte{1, 2, 3, 4, 5}))
	deadline := time.Now().Add(time.Second)
	for nr.Poll() < 5 && time.Now().Before(deadline) {
		runtime.Gosched()
	}
	if n := nr.Poll(); n != 5 {
		t.Fatalf("Poll() = %d, want 5", n)
	}
}
