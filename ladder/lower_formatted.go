/*
 * ladderc - FormattedString: per-scan UART text sequencer
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

// stepKind tags one output-byte slot of a parsed format string.
type stepKind int

const (
	stepLiteral stepKind = iota
	stepDigit
	stepMinus
)

type formatStep struct {
	kind    stepKind
	literal byte
}

// parseFormatString turns format into a flat sequence of output-byte
// descriptors: literal bytes, the usual backslash escapes, and at most one
// \N or \-N placeholder run (N digit slots, optionally preceded by a
// minus-sign slot).
func (l *Lowerer) parseFormatString(format string) ([]formatStep, int, error) {
	var steps []formatStep
	digits := -1

	i := 0
	for i < len(format) {
		c := format[i]
		switch {
		case c == '\\' && i+1 < len(format) && (isDecDigit(format[i+1]) || format[i+1] == '-'):
			if digits >= 0 {
				return nil, 0, l.err(FormatString, "multiple escapes (\\0-9) present in format string, not allowed")
			}
			i++
			mustMinus := false
			if format[i] == '-' {
				mustMinus = true
				steps = append(steps, formatStep{kind: stepMinus})
				i++
			}
			if i >= len(format) || !isDecDigit(format[i]) || format[i] == '0' || format[i]-'0' > 5 {
				return nil, 0, l.err(FormatString, "bad escape sequence following \\; for a literal backslash, use \\\\")
			}
			digits = int(format[i] - '0')
			for k := 0; k < digits; k++ {
				steps = append(steps, formatStep{kind: stepDigit})
			}
			_ = mustMinus
			i++
		case c == '\\':
			i++
			if i >= len(format) {
				return nil, 0, l.err(FormatString, "bad escape '\\'")
			}
			switch format[i] {
			case 'r':
				steps = append(steps, formatStep{kind: stepLiteral, literal: '\r'})
			case 'n':
				steps = append(steps, formatStep{kind: stepLiteral, literal: '\n'})
			case 'b':
				steps = append(steps, formatStep{kind: stepLiteral, literal: '\b'})
			case 'f':
				steps = append(steps, formatStep{kind: stepLiteral, literal: '\f'})
			case '\\':
				steps = append(steps, formatStep{kind: stepLiteral, literal: '\\'})
			case 'x':
				if i+2 >= len(format) {
					return nil, 0, l.err(FormatString, "bad escape: correct form is \\xAB")
				}
				h, ok1 := hexDigit(format[i+1])
				lo, ok2 := hexDigit(format[i+2])
				if !ok1 || !ok2 {
					return nil, 0, l.err(FormatString, "bad escape: correct form is \\xAB")
				}
				steps = append(steps, formatStep{kind: stepLiteral, literal: byte(h<<4 | lo)})
				i += 2
			default:
				return nil, 0, l.err(FormatString, "bad escape '\\%c'", format[i])
			}
			i++
		default:
			steps = append(steps, formatStep{kind: stepLiteral, literal: c})
			i++
		}
	}

	return steps, digits, nil
}

func isDecDigit(c byte) bool { return c >= '0' && c <= '9' }

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

func tenToThe(e int) int16 {
	p := int16(1)
	for i := 0; i < e; i++ {
		p *= 10
	}
	return p
}

// lowerFormattedString renders Format one byte per scan: a rising-edge
// sequencer (seq) walks the parsed steps, skipping straight to "done"
// whenever the UART reports busy or the transmission has already run its
// course, so the ladder program keeps cycling instead of blocking.
func (l *Lowerer) lowerFormattedString(f FormattedString, stateVar string) error {
	steps, digits, err := l.parseFormatString(f.Format)
	if err != nil {
		return err
	}

	varName := ""
	if len(f.Vars) > 0 {
		varName = f.Vars[0]
	}
	if digits >= 0 && varName == "" {
		return l.err(FormatString, "variable is interpolated into formatted string, but none is specified")
	}
	if digits < 0 && varName != "" {
		return l.err(FormatString, "no variable is interpolated into formatted string, but a variable name is specified")
	}

	seq := l.mint.formattedStringName()
	convertState := l.mint.formattedStringName()
	isLeadingZero := l.mint.formattedStringName()
	oneShot := l.mint.oneShotName()
	seqScratch := scratch3

	stepsLit, err := l.literalFromInt(len(steps))
	if err != nil {
		return err
	}

	closeOuter := l.buf.ifBit(true, stateVar)
	closeInner := l.buf.ifBit(false, oneShot)
	l.buf.emitSetVarLiteral(seq, 0)
	closeInner()
	closeOuter()
	l.buf.emitCopyBit(oneShot, stateVar)

	l.buf.emitSetVarVar(seqScratch, seq)

	closeLess := l.buf.ifVarLess(seq, stepsLit)
	l.buf.emitElse()
	l.buf.emitSetVarLiteral(seqScratch, -1)
	closeLess()

	l.buf.emitBit(ClearBit, scratch)
	l.buf.emitUartSend(scratch, scratch)
	closeBusy := l.buf.ifBit(true, scratch)
	l.buf.emitSetVarLiteral(seqScratch, -1)
	closeBusy()

	digit := 0
	for i, st := range steps {
		idx, err := l.literalFromInt(i)
		if err != nil {
			return err
		}

		switch st.kind {
		case stepDigit:
			l.buf.emitSetVarLiteral(scratch, idx)
			l.buf.emitBit(ClearBit, scratch)
			closeEq := l.buf.ifVarEq(scratch, seqScratch)
			l.buf.emitBit(SetBit, scratch)
			closeEq()

			closeGate := l.buf.ifBit(true, scratch)
			if digit == 0 && !hasMinusSlot(steps) {
				l.buf.emitSetVarVar(convertState, varName)
			}
			if digit == 0 {
				l.buf.emitBit(SetBit, isLeadingZero)
			}
			power, err := l.literalFromInt(int(tenToThe(digits - digit - 1)))
			if err != nil {
				return err
			}
			l.buf.emitSetVarLiteral(scratch, power)
			l.buf.emitVarBinOp(SetVarDiv, scratch2, convertState, scratch)
			l.buf.emitVarBinOp(SetVarMul, scratch, scratch, scratch2)
			l.buf.emitVarBinOp(SetVarSub, convertState, convertState, scratch)
			l.buf.emitSetVarLiteral(scratch, int16('0'))
			l.buf.emitVarBinOp(SetVarAdd, scratch2, scratch2, scratch)
			if digit != digits-1 {
				closeDigitEq := l.buf.ifVarEq(scratch, scratch2)
				closeLZ := l.buf.ifBit(true, isLeadingZero)
				l.buf.emitSetVarLiteral(scratch2, int16(' '))
				closeLZ()
				l.buf.emitElse()
				l.buf.emitBit(ClearBit, isLeadingZero)
				closeDigitEq()
			}
			closeGate()
			digit++

		case stepMinus:
			l.buf.emitSetVarLiteral(scratch, idx)
			l.buf.emitBit(ClearBit, scratch)
			closeEq := l.buf.ifVarEq(scratch, seqScratch)
			l.buf.emitBit(SetBit, scratch)
			closeEq()

			closeGate := l.buf.ifBit(true, scratch)
			l.buf.emitSetVarVar(convertState, varName)
			l.buf.emitSetVarLiteral(scratch2, int16(' '))
			closeNeg := l.buf.ifVarLess(varName, 0)
			l.buf.emitSetVarLiteral(scratch2, int16('-'))
			l.buf.emitSetVarLiteral(scratch, 0)
			l.buf.emitVarBinOp(SetVarSub, convertState, scratch, varName)
			closeNeg()
			closeGate()

		default:
			l.buf.emitSetVarLiteral(scratch, idx)
			closeEq := l.buf.ifVarEq(scratch, seqScratch)
			l.buf.emitSetVarLiteral(scratch2, int16(st.literal))
			closeEq()
		}
	}

	closeDone := l.buf.ifVarLess(seqScratch, 0)
	l.buf.emitElse()
	l.buf.emitBit(SetBit, scratch)
	l.buf.emitUartSend(scratch2, scratch)
	l.buf.emitIncrement(seq)
	closeDone()

	l.buf.emitBit(ClearBit, stateVar)
	closeRunning := l.buf.ifVarLess(seq, stepsLit)
	l.buf.emitBit(SetBit, stateVar)
	closeRunning()

	l.simulate(f.PoweredAfter, stateVar)
	return nil
}

func hasMinusSlot(steps []formatStep) bool {
	for _, s := range steps {
		if s.kind == stepMinus {
			return true
		}
	}
	return false
}
