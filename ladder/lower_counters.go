/*
 * ladderc - Counter elements: CTU, CTD, CTC
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

// lowerCTU counts rising edges of the rung up to t.Max. A freshly minted
// one-shot latch gates the increment to the edge; the accumulator is then
// compared against Max to decide whether the rung passes.
func (l *Lowerer) lowerCTU(t CTU, stateVar string) error {
	max, err := l.literalFromInt(t.Max)
	if err != nil {
		return err
	}

	oneShot := l.mint.oneShotName()
	closeOuter := l.buf.ifBit(true, stateVar)
	closeInner := l.buf.ifBit(false, oneShot)
	l.buf.emitIncrement(t.Name)
	closeInner()
	closeOuter()
	l.buf.emitCopyBit(oneShot, stateVar)

	closeLess := l.buf.ifVarLess(t.Name, max)
	l.buf.emitBit(ClearBit, stateVar)
	l.buf.emitElse()
	l.buf.emitBit(SetBit, stateVar)
	closeLess()

	l.simulate(t.PoweredAfter, stateVar)
	return nil
}

// lowerCTD decrements t.Name on each rising edge of the rung, via a
// synthesized subtract-of-one through $scratch (there is no dedicated
// decrement opcode); the rung passes while the accumulator is at least
// t.Max.
func (l *Lowerer) lowerCTD(t CTD, stateVar string) error {
	max, err := l.literalFromInt(t.Max)
	if err != nil {
		return err
	}

	oneShot := l.mint.oneShotName()
	closeOuter := l.buf.ifBit(true, stateVar)
	closeInner := l.buf.ifBit(false, oneShot)
	l.buf.emitSetVarLiteral(scratch, 1)
	l.buf.emitVarBinOp(SetVarSub, t.Name, t.Name, scratch)
	closeInner()
	closeOuter()
	l.buf.emitCopyBit(oneShot, stateVar)

	closeLess := l.buf.ifVarLess(t.Name, max)
	l.buf.emitBit(ClearBit, stateVar)
	l.buf.emitElse()
	l.buf.emitBit(SetBit, stateVar)
	closeLess()

	l.simulate(t.PoweredAfter, stateVar)
	return nil
}

// lowerCTC counts rising edges of the rung, wrapping the accumulator to
// zero the scan it would otherwise reach Max+1. Unlike CTU/CTD, its rung
// output is simply the edge latch itself -- a circular counter never
// gates the rung on the accumulator's value.
func (l *Lowerer) lowerCTC(t CTC, stateVar string) error {
	wrap, err := l.literalFromInt(t.Max + 1)
	if err != nil {
		return err
	}

	oneShot := l.mint.oneShotName()
	closeOuter := l.buf.ifBit(true, stateVar)
	closeInner := l.buf.ifBit(false, oneShot)
	l.buf.emitIncrement(t.Name)
	closeLess := l.buf.ifVarLess(t.Name, wrap)
	l.buf.emitElse()
	l.buf.emitSetVarLiteral(t.Name, 0)
	closeLess()
	closeInner()
	closeOuter()
	l.buf.emitCopyBit(oneShot, stateVar)

	l.simulate(t.PoweredAfter, stateVar)
	return nil
}
