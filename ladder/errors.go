/*
 * ladderc - Diagnostic reporting for the lowering pass
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

package ladder

import (
	"fmt"
	"log/slog"
)

// ErrorKind is the fatal-diagnostic taxonomy. Every lowering failure falls
// into exactly one of these; there is no non-fatal condition in this pass.
type ErrorKind int

const (
	// Range: a constant literal outside [-32768, 32767].
	Range ErrorKind = iota
	// Timing: a timer period below 1 scan or of 2^15 scans or more.
	Timing
	// Structural: placeholder element, empty rung, malformed piecewise table.
	Structural
	// TargetValidity: a move/arithmetic destination is a literal.
	TargetValidity
	// FormatString: a malformed formatted-string escape or placeholder.
	FormatString
)

func (k ErrorKind) String() string {
	switch k {
	case Range:
		return "range"
	case Timing:
		return "timing"
	case Structural:
		return "structural"
	case TargetValidity:
		return "target-validity"
	case FormatString:
		return "format-string"
	default:
		return "unknown"
	}
}

// CompileError is the value returned from Lower on any fatal diagnostic.
// Lowering in this pass never recovers from one: the error return from the
// routine that raised it propagates straight back to Lower, which is the
// Go-native replacement for the C source's longjmp escape (see SPEC_FULL.md
// §4.7).
type CompileError struct {
	Kind ErrorKind
	Msg  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Reporter formats and records a fatal diagnostic. It always returns a
// non-nil error; Report never recovers locally, matching spec.md's "all
// diagnostics are fatal to the pass" policy.
type Reporter interface {
	Report(kind ErrorKind, format string, args ...any) error
}

// SlogReporter logs each diagnostic through log/slog before returning it,
// so a CLI driving Lower gets one consistent rendering of every failure
// whether it came from the loader or the lowering pass itself.
type SlogReporter struct {
	Logger *slog.Logger
}

// NewSlogReporter builds a Reporter backed by logger, or slog.Default() if
// logger is nil.
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogReporter{Logger: logger}
}

func (r *SlogReporter) Report(kind ErrorKind, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	r.Logger.Error(msg, "kind", kind.String())
	return &CompileError{Kind: kind, Msg: msg}
}
