/*
 * ladderc - Timer elements: RTO, RES, TON, TOF
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

// lowerRTO: a retentive on-delay timer. While the accumulator is below
// period, it increments on every powered scan and the rung stays clear;
// once it reaches period the rung sets and stays set until an RES clears
// the accumulator back to zero.
func (l *Lowerer) lowerRTO(t RTO, stateVar string) error {
	period, err := l.period(t.DelayUS)
	if err != nil {
		return err
	}

	closeLess := l.buf.ifVarLess(t.Name, period)
	closeIf := l.buf.ifBit(true, stateVar)
	l.buf.emitIncrement(t.Name)
	closeIf()
	l.buf.emitBit(ClearBit, stateVar)
	l.buf.emitElse()
	l.buf.emitBit(SetBit, stateVar)
	closeLess()

	l.simulate(t.PoweredAfter, stateVar)
	return nil
}

// lowerRES zeroes t.Target while the rung is powered.
func (l *Lowerer) lowerRES(t RES, stateVar string) error {
	closeIf := l.buf.ifBit(true, stateVar)
	l.buf.emitSetVarLiteral(t.Target, 0)
	closeIf()
	l.simulate(t.PoweredAfter, stateVar)
	return nil
}

// lowerTON: a non-retentive on-delay timer. The accumulator only advances
// while the rung is powered and below period, and the rung stays clear
// while it does; on any scan the rung is unpowered, the accumulator is
// loaded with period.
func (l *Lowerer) lowerTON(t TON, stateVar string) error {
	period, err := l.period(t.DelayUS)
	if err != nil {
		return err
	}

	closeOuter := l.buf.ifBit(true, stateVar)
	closeLess := l.buf.ifVarLess(t.Name, period)
	l.buf.emitIncrement(t.Name)
	l.buf.emitBit(ClearBit, stateVar)
	closeLess()
	l.buf.emitElse()
	l.buf.emitSetVarLiteral(t.Name, period)
	closeOuter()

	l.simulate(t.PoweredAfter, stateVar)
	return nil
}

// lowerTOF: a non-retentive off-delay timer. All variables cold-start at
// zero, which would otherwise make the timer's output read HIGH until the
// first count completes; the per-timer antiglitch bit primes the
// accumulator to period on the very first scan so the output starts LOW,
// as callers expect.
func (l *Lowerer) lowerTOF(t TOF, stateVar string) error {
	period, err := l.period(t.DelayUS)
	if err != nil {
		return err
	}

	antiglitch := antiglitchName(t.Name)
	closePrime := l.buf.ifBit(false, antiglitch)
	l.buf.emitSetVarLiteral(t.Name, period)
	closePrime()
	l.buf.emitBit(SetBit, antiglitch)

	closeOuter := l.buf.ifBit(false, stateVar)
	closeLess := l.buf.ifVarLess(t.Name, period)
	l.buf.emitIncrement(t.Name)
	l.buf.emitBit(SetBit, stateVar)
	closeLess()
	l.buf.emitElse()
	l.buf.emitSetVarLiteral(t.Name, period)
	closeOuter()

	l.simulate(t.PoweredAfter, stateVar)
	return nil
}
