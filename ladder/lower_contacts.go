/*
 * ladderc - Contacts, coils, and the master control relay
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

// lowerContacts: a contact conducts when its bit matches its polarity,
// otherwise it cuts the rung. A plain contact cuts when its bit is clear;
// a negated contact cuts when its bit is set.
func (l *Lowerer) lowerContacts(c Contacts, stateVar string) error {
	closeIf := l.buf.ifBit(c.Negated, c.Name)
	l.buf.emitBit(ClearBit, stateVar)
	closeIf()
	l.simulate(c.PoweredAfter, stateVar)
	return nil
}

// lowerCoil assigns c.Name from stateVar, subject to its mode: negated
// (invert), set-only, reset-only, or an unconditional copy.
func (l *Lowerer) lowerCoil(c Coil, stateVar string) error {
	switch {
	case c.Negated:
		closeIf := l.buf.ifBit(true, stateVar)
		l.buf.emitBit(ClearBit, c.Name)
		l.buf.emitElse()
		l.buf.emitBit(SetBit, c.Name)
		closeIf()
	case c.SetOnly:
		closeIf := l.buf.ifBit(true, stateVar)
		l.buf.emitBit(SetBit, c.Name)
		closeIf()
	case c.ResetOnly:
		closeIf := l.buf.ifBit(true, stateVar)
		l.buf.emitBit(ClearBit, c.Name)
		closeIf()
	default:
		l.buf.emitCopyBit(c.Name, stateVar)
	}
	l.simulate(c.PoweredAfter, stateVar)
	return nil
}

// lowerMasterRelay maintains the process-wide $mcr bit. If $mcr is
// currently clear, this element re-arms it (so a downstream de-energized
// MCR element can be recovered from); otherwise it propagates the current
// rung state into $mcr, gating every subsequent rung.
func (l *Lowerer) lowerMasterRelay(m MasterRelay, stateVar string) error {
	closeIf := l.buf.ifBit(false, mcrBit)
	l.buf.emitBit(SetBit, mcrBit)
	l.buf.emitElse()
	l.buf.emitCopyBit(mcrBit, stateVar)
	closeIf()
	l.simulate(m.PoweredAfter, stateVar)
	return nil
}
