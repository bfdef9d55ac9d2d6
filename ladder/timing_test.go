/*
 * ladderc - Timer period computation tests
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

import "testing"

func lowererWithCycle(cycleUS int) *Lowerer {
	return &Lowerer{
		program:  &Program{CycleTimeUS: cycleUS},
		reporter: NewSlogReporter(nil),
	}
}

func TestPeriodMinimumAccepted(t *testing.T) {
	l := lowererWithCycle(1000)
	got, err := l.period(2000) // 2000/1000 - 1 = 1
	if err != nil {
		t.Fatalf("period: %v", err)
	}
	if got != 1 {
		t.Errorf("period = %d, want 1", got)
	}
}

func TestPeriodZeroIsFatal(t *testing.T) {
	l := lowererWithCycle(1000)
	if _, err := l.period(1000); err == nil { // 1000/1000 - 1 = 0
		t.Fatal("expected an error for a period of zero")
	}
}

func TestPeriodTooLongIsFatal(t *testing.T) {
	l := lowererWithCycle(1)
	// raw = 32767/1 - 1 = 32766 accepted, 32769/1 - 1 = 32768 rejected.
	if _, err := l.period(32767); err != nil {
		t.Errorf("period(32767) with 1us cycle: unexpected error: %v", err)
	}
	if _, err := l.period(32769); err == nil {
		t.Fatal("expected an error for a period needing 16+ bits")
	}
}

func TestPeriodErrorsAreTiming(t *testing.T) {
	l := lowererWithCycle(1000)
	_, err := l.period(1000)
	if err == nil {
		t.Fatal("expected an error")
	}
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("error is not a *CompileError: %v", err)
	}
	if ce.Kind != Timing {
		t.Errorf("error kind = %v, want Timing", ce.Kind)
	}
}
