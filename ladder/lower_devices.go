/*
 * ladderc - Device elements: ADC, PWM, UART, EEPROM-backed persistence
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

import "strconv"

// lowerReadAdc samples an analog input while the rung is powered.
func (l *Lowerer) lowerReadAdc(r ReadAdc, stateVar string) error {
	closeIf := l.buf.ifBit(true, stateVar)
	l.buf.emitReadAdc(r.Name)
	closeIf()

	l.simulate(r.PoweredAfter, stateVar)
	return nil
}

// lowerSetPwm drives a PWM pin at FreqHz while the rung is powered. The
// target frequency may exceed 16 bits, so it travels as a decimal-text
// operand rather than a Literal field.
func (l *Lowerer) lowerSetPwm(p SetPwm, stateVar string) error {
	closeIf := l.buf.ifBit(true, stateVar)
	l.buf.emitSetPwm(p.Name, strconv.FormatInt(p.FreqHz, 10))
	closeIf()

	l.simulate(p.PoweredAfter, stateVar)
	return nil
}

// lowerUartSend transmits unconditionally; the rung state doubles as the
// "done?" output the element reports back to the caller.
func (l *Lowerer) lowerUartSend(u UartSend, stateVar string) error {
	l.buf.emitUartSend(u.Name, stateVar)

	l.simulate(u.PoweredAfter, stateVar)
	return nil
}

// lowerUartRecv polls for a received value while the rung is powered.
func (l *Lowerer) lowerUartRecv(u UartRecv, stateVar string) error {
	closeIf := l.buf.ifBit(true, stateVar)
	l.buf.emitUartRecv(u.Name, stateVar)
	closeIf()

	l.simulate(u.PoweredAfter, stateVar)
	return nil
}

// lowerPersist keeps a RAM variable synchronized with two bytes of EEPROM.
// The address is assigned now, at lowering time, from a monotonically
// growing free pointer, and that pointer always advances by two -- even
// though the EEPROM traffic itself only happens while the rung is powered.
func (l *Lowerer) lowerPersist(p Persist, stateVar string) error {
	addr := l.eepromPtr
	l.eepromPtr += 2

	closeIf := l.buf.ifBit(true, stateVar)

	isInit := l.mint.oneShotName()
	closeInit := l.buf.ifBit(false, isInit)
	l.buf.emitBit(ClearBit, scratch)
	l.buf.emitEepromBusyCheck(scratch)
	closeBusy := l.buf.ifBit(false, scratch)
	l.buf.emitBit(SetBit, isInit)
	l.buf.emitEepromRead(addr, p.Name)
	closeBusy()
	closeInit()

	l.buf.emitBit(ClearBit, scratch)
	l.buf.emitEepromBusyCheck(scratch)
	closeBusy2 := l.buf.ifBit(false, scratch)
	l.buf.emitEepromRead(addr, scratch)
	closeEq := l.buf.ifVarEq(scratch, p.Name)
	l.buf.emitElse()
	l.buf.emitEepromWrite(addr, p.Name)
	closeEq()
	closeBusy2()

	closeIf()

	l.simulate(p.PoweredAfter, stateVar)
	return nil
}
