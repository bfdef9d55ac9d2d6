/*
 * ladderc - Comparison element: GRT, GEQ, LES, LEQ, EQU, NEQ
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

// lowerCompare expresses all six comparison operators using only the
// machine's greater-than and equals-variable primitives: GRT/LES borrow
// the greater-than test (LES with operands swapped) and clear the rung in
// an else branch; GEQ/LEQ negate it by swapping operands and clearing
// inside, with no else; EQU clears in an else branch, NEQ clears inside.
func (l *Lowerer) lowerCompare(c Compare, stateVar string) error {
	op1, err := l.varFromExpr(c.Left, scratch)
	if err != nil {
		return err
	}
	op2, err := l.varFromExpr(c.Right, scratch2)
	if err != nil {
		return err
	}

	switch c.Op {
	case GRT:
		closeIf := l.buf.ifVarGreater(op1, op2)
		l.buf.emitElse()
		l.buf.emitBit(ClearBit, stateVar)
		closeIf()
	case LES:
		closeIf := l.buf.ifVarGreater(op2, op1)
		l.buf.emitElse()
		l.buf.emitBit(ClearBit, stateVar)
		closeIf()
	case GEQ:
		closeIf := l.buf.ifVarGreater(op2, op1)
		l.buf.emitBit(ClearBit, stateVar)
		closeIf()
	case LEQ:
		closeIf := l.buf.ifVarGreater(op1, op2)
		l.buf.emitBit(ClearBit, stateVar)
		closeIf()
	case EQU:
		closeIf := l.buf.ifVarEq(op1, op2)
		l.buf.emitElse()
		l.buf.emitBit(ClearBit, stateVar)
		closeIf()
	case NEQ:
		closeIf := l.buf.ifVarEq(op1, op2)
		l.buf.emitBit(ClearBit, stateVar)
		closeIf()
	default:
		return l.err(Structural, "unknown comparison operator %d", c.Op)
	}

	l.simulate(c.PoweredAfter, stateVar)
	return nil
}
