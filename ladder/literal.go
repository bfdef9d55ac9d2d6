/*
 * ladderc - Literal and name-or-literal token recognition
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

// IsLiteral reports whether tok is a literal token rather than a variable
// name: it begins with '-', an ASCII digit, or a single quote.
func IsLiteral(tok string) bool {
	if tok == "" {
		return false
	}
	c := tok[0]
	return c == '-' || (c >= '0' && c <= '9') || c == '\''
}

// parseLiteral converts a literal token to its 16-bit value. A quoted form
// is a single ASCII character whose code is the value; otherwise the token
// is a signed decimal integer. Range-checked to [-32768, 32767].
func (l *Lowerer) parseLiteral(tok string) (int16, error) {
	if len(tok) >= 2 && tok[0] == '\'' {
		ch := tok[1]
		return int16(ch), nil
	}

	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, l.err(Range, "malformed literal %q", tok)
	}
	if v < -32768 || v > 32767 {
		return 0, l.err(Range, "literal %q out of range [-32768, 32767]", tok)
	}
	return int16(v), nil
}

// literalFromInt range-checks a compile-time int (as opposed to a token
// parsed from source text) and narrows it to int16. Used by counters and
// other elements whose constant operands already arrive as Go ints.
func (l *Lowerer) literalFromInt(v int) (int16, error) {
	if v < -32768 || v > 32767 {
		return 0, l.err(Range, "constant %d out of range [-32768, 32767]", v)
	}
	return int16(v), nil
}

// varFromExpr loads expr into a register the two-operand emitters can use
// directly: if expr is a literal, it is materialized into temp via
// SetVarToLiteral and temp is returned; otherwise expr (a variable name) is
// returned unchanged. Binary comparisons and arithmetic pass scratch and
// scratch2 here, in that canonical order, so the two operands never alias.
func (l *Lowerer) varFromExpr(expr, temp string) (string, error) {
	if !IsLiteral(expr) {
		return expr, nil
	}
	lit, err := l.parseLiteral(expr)
	if err != nil {
		return "", err
	}
	l.buf.emitSetVarLiteral(temp, lit)
	return temp, nil
}
