/*
 * ladderc - Shift register, lookup table, and piecewise-linear elements
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

import "fmt"

// lowerShiftRegister shifts every stage up by one, highest index first, on
// each rising edge of the rung. The edge is latched the same way the
// counters gate theirs: a fresh one-shot, cleared the scan the shift runs.
func (l *Lowerer) lowerShiftRegister(s ShiftRegister, stateVar string) error {
	oneShot := l.mint.oneShotName()

	closeOuter := l.buf.ifBit(true, stateVar)
	closeInner := l.buf.ifBit(false, oneShot)
	for i := s.Count - 2; i >= 0; i-- {
		src := fmt.Sprintf("%s%d", s.Name, i)
		dest := fmt.Sprintf("%s%d", s.Name, i+1)
		l.buf.emitSetVarVar(dest, src)
	}
	closeInner()
	closeOuter()
	l.buf.emitCopyBit(oneShot, stateVar)

	l.simulate(s.PoweredAfter, stateVar)
	return nil
}

// lowerLookUpTable linear-scans the table: for each index the caller's
// Index variable might equal, it tests that equality explicitly and, on
// match, writes the matching literal into Dest. This is deliberately
// simple-minded -- back-ends see a flat run of equality tests, not an
// indirect jump.
func (l *Lowerer) lowerLookUpTable(t LookUpTable, stateVar string) error {
	closeIf := l.buf.ifBit(true, stateVar)
	for i, v := range t.Values {
		idx, err := l.literalFromInt(i)
		if err != nil {
			return err
		}
		l.buf.emitSetVarLiteral(scratch, idx)
		closeEq := l.buf.ifVarEq(t.Index, scratch)
		l.buf.emitSetVarLiteral(t.Dest, v)
		closeEq()
	}
	closeIf()

	l.simulate(t.PoweredAfter, stateVar)
	return nil
}

// lowerPiecewiseLinear interpolates Dest from Name against the breakpoints
// (X[i], Y[i]), scanning segments from the highest x down to the lowest.
// Each segment is selected through a scratch bit rather than one large
// conditional body, because a single oversized block risks exceeding the
// back-end's native short-branch range.
func (l *Lowerer) lowerPiecewiseLinear(t PiecewiseLinear, stateVar string) error {
	count := len(t.X)
	if count == 0 {
		return l.err(Structural, "piecewise linear lookup table with zero elements")
	}
	for i := 1; i < count; i++ {
		if t.X[i] <= t.X[i-1] {
			return l.err(Structural, "x values in piecewise linear table must be strictly increasing")
		}
	}

	closeIf := l.buf.ifBit(true, stateVar)
	for i := count - 1; i >= 1; i-- {
		dx := int32(t.X[i]) - int32(t.X[i-1])
		dy := int32(t.Y[i]) - int32(t.Y[i-1])
		if dx*dy >= 32767 || dx*dy <= -32768 {
			return l.err(Structural, "numerical problem with piecewise linear lookup table")
		}

		xBreak, err := l.literalFromInt(int(t.X[i]) + 1)
		if err != nil {
			return err
		}

		l.buf.emitBit(ClearBit, scratch)
		closeLess := l.buf.ifVarLess(t.Name, xBreak)
		l.buf.emitBit(SetBit, scratch)
		closeLess()

		closeSeg := l.buf.ifBit(true, scratch)
		l.buf.emitSetVarLiteral(scratch, t.X[i-1])
		l.buf.emitVarBinOp(SetVarSub, scratch, t.Name, scratch)
		l.buf.emitSetVarLiteral(scratch2, int16(dx))
		l.buf.emitSetVarLiteral(scratch3, int16(dy))
		l.buf.emitVarBinOp(SetVarMul, t.Dest, scratch, scratch3)
		l.buf.emitVarBinOp(SetVarDiv, t.Dest, t.Dest, scratch2)
		l.buf.emitSetVarLiteral(scratch, t.Y[i-1])
		l.buf.emitVarBinOp(SetVarAdd, t.Dest, t.Dest, scratch)
		closeSeg()
	}
	closeIf()

	l.simulate(t.PoweredAfter, stateVar)
	return nil
}
