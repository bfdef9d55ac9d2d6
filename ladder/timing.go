/*
 * ladderc - Timer period computation
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

// maxPeriodBits is the exclusive upper bound on a period: the largest
// accepted period is 2^15-1, and a period of 2^15 or more is fatal.
const maxPeriodBits = 1 << 15

// period converts a delay in microseconds to a scan-count period against
// the program's cycle time. The -1 offset makes equality with the period
// mean "one cycle after the delay elapses."
func (l *Lowerer) period(delayUS int) (int16, error) {
	cycle := l.program.CycleTimeUS
	raw := delayUS/cycle - 1
	if raw < 1 {
		return 0, l.err(Timing, "cycle time too coarse for a %dus delay", delayUS)
	}
	if raw >= maxPeriodBits {
		return 0, l.err(Timing, "cycle time too long for a %dus delay", delayUS)
	}
	l.trace.Logf("period: delay=%dus cycle=%dus -> %d", delayUS, cycle, raw)
	return int16(raw), nil
}
