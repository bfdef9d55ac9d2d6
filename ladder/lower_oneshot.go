/*
 * ladderc - Edge-detection elements: OneShotRising, OneShotFalling
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

// lowerOneShotRising passes the rung for exactly one scan per 0->1
// transition: the caller-owned latch t.Name holds last scan's state, so
// clearing the rung whenever the latch was already set collapses a held
// HIGH input down to a single pulse at the rising edge.
func (l *Lowerer) lowerOneShotRising(t OneShotRising, stateVar string) error {
	l.buf.emitCopyBit(scratch, stateVar)
	closeIf := l.buf.ifBit(true, t.Name)
	l.buf.emitBit(ClearBit, stateVar)
	closeIf()
	l.buf.emitCopyBit(t.Name, scratch)

	l.simulate(t.PoweredAfter, stateVar)
	return nil
}

// lowerOneShotFalling is the mirror: the rung passes for one scan on each
// 1->0 transition. The rung must be clear this scan and the latch must
// have been set last scan (the prior HIGH that's now falling).
func (l *Lowerer) lowerOneShotFalling(t OneShotFalling, stateVar string) error {
	l.buf.emitCopyBit(scratch, stateVar)

	closeOuter := l.buf.ifBit(false, stateVar)
	closeInner := l.buf.ifBit(true, t.Name)
	l.buf.emitBit(SetBit, stateVar)
	closeInner()
	l.buf.emitElse()
	l.buf.emitBit(ClearBit, stateVar)
	closeOuter()

	l.buf.emitCopyBit(t.Name, scratch)

	l.simulate(t.PoweredAfter, stateVar)
	return nil
}
