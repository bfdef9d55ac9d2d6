/*
 * ladderc - Move and arithmetic elements
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

// lowerMove copies Src into Dest while the rung is powered. Dest must be a
// variable name; a literal destination makes no sense and is a target-
// validity error.
func (l *Lowerer) lowerMove(m Move, stateVar string) error {
	if IsLiteral(m.Dest) {
		return l.err(TargetValidity, "move destination %q is not a valid target", m.Dest)
	}

	closeIf := l.buf.ifBit(true, stateVar)
	if IsLiteral(m.Src) {
		lit, err := l.parseLiteral(m.Src)
		if err != nil {
			return err
		}
		l.buf.emitSetVarLiteral(m.Dest, lit)
	} else {
		l.buf.emitSetVarVar(m.Dest, m.Src)
	}
	closeIf()

	l.simulate(m.PoweredAfter, stateVar)
	return nil
}

// lowerArith loads both operands (materializing literals through scratch
// registers) and emits the corresponding integer instruction while the
// rung is powered. Dest must be a variable name.
func (l *Lowerer) lowerArith(a Arith, stateVar string) error {
	if IsLiteral(a.Dest) {
		return l.err(TargetValidity, "arithmetic destination %q is not a valid target", a.Dest)
	}

	closeIf := l.buf.ifBit(true, stateVar)

	op1, err := l.varFromExpr(a.Left, scratch)
	if err != nil {
		return err
	}
	op2, err := l.varFromExpr(a.Right, scratch2)
	if err != nil {
		return err
	}

	var op Opcode
	switch a.Op {
	case OpAdd:
		op = SetVarAdd
	case OpSub:
		op = SetVarSub
	case OpMul:
		op = SetVarMul
	case OpDiv:
		op = SetVarDiv
	default:
		return l.err(Structural, "unknown arithmetic operator %d", a.Op)
	}
	l.buf.emitVarBinOp(op, a.Dest, op1, op2)

	closeIf()

	l.simulate(a.PoweredAfter, stateVar)
	return nil
}
