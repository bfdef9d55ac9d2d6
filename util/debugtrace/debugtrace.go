/*
 * ladderc - Trace lowering decisions to a file
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package debugtrace is an opt-in trace log of lowering internals. The
// lowering pass writes its period arithmetic to it; minted symbol names and
// EEPROM address assignment are not logged. It has no effect on what gets
// emitted; it only explains why.
package debugtrace

import (
	"fmt"
	"os"
)

// Trace writes one line per Logf call to an open file.
type Trace struct {
	file *os.File
}

// Open creates (truncating) the trace file at path.
func Open(path string) (*Trace, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("unable to create trace file: %s", path)
	}
	return &Trace{file: file}, nil
}

// Close releases the underlying file. A nil Trace is a valid no-op.
func (t *Trace) Close() error {
	if t == nil || t.file == nil {
		return nil
	}
	return t.file.Close()
}

// Logf writes a formatted trace line. A nil Trace silently discards it, so
// callers never need a "is tracing enabled" branch of their own.
func (t *Trace) Logf(format string, a ...interface{}) {
	if t == nil {
		return
	}
	fmt.Fprintf(t.file, format+"\n", a...)
}
