/*
 * ladderc - Literal recognition and range-checking tests
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

import "testing"

func newTestLowerer() *Lowerer {
	return &Lowerer{reporter: NewSlogReporter(nil)}
}

func TestIsLiteral(t *testing.T) {
	tests := []struct {
		tok  string
		want bool
	}{
		{"", false},
		{"X", false},
		{"Xin1", false},
		{"5", true},
		{"-5", true},
		{"0", true},
		{"'A'", true},
	}
	for _, tt := range tests {
		if got := IsLiteral(tt.tok); got != tt.want {
			t.Errorf("IsLiteral(%q) = %v, want %v", tt.tok, got, tt.want)
		}
	}
}

func TestParseLiteralDecimal(t *testing.T) {
	l := newTestLowerer()
	got, err := l.parseLiteral("123")
	if err != nil {
		t.Fatalf("parseLiteral: %v", err)
	}
	if got != 123 {
		t.Errorf("got %d, want 123", got)
	}
}

func TestParseLiteralQuotedChar(t *testing.T) {
	l := newTestLowerer()
	got, err := l.parseLiteral("'A'")
	if err != nil {
		t.Fatalf("parseLiteral: %v", err)
	}
	if got != int16('A') {
		t.Errorf("got %d, want %d", got, int16('A'))
	}
}

func TestParseLiteralBoundaries(t *testing.T) {
	l := newTestLowerer()
	tests := []struct {
		tok     string
		wantErr bool
	}{
		{"32767", false},
		{"-32768", false},
		{"32768", true},
		{"-32769", true},
		{"not-a-number", true},
	}
	for _, tt := range tests {
		_, err := l.parseLiteral(tt.tok)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLiteral(%q): err=%v, wantErr=%v", tt.tok, err, tt.wantErr)
		}
	}
}

func TestLiteralFromIntBoundaries(t *testing.T) {
	l := newTestLowerer()
	tests := []struct {
		v       int
		wantErr bool
	}{
		{32767, false},
		{-32768, false},
		{32768, true},
		{-32769, true},
	}
	for _, tt := range tests {
		_, err := l.literalFromInt(tt.v)
		if (err != nil) != tt.wantErr {
			t.Errorf("literalFromInt(%d): err=%v, wantErr=%v", tt.v, err, tt.wantErr)
		}
	}
}

func TestVarFromExprPassesThroughNames(t *testing.T) {
	l := newTestLowerer()
	got, err := l.varFromExpr("X", scratch)
	if err != nil {
		t.Fatalf("varFromExpr: %v", err)
	}
	if got != "X" {
		t.Errorf("got %q, want X", got)
	}
	if l.buf.Len() != 0 {
		t.Errorf("varFromExpr on a bare name should not emit, got %d instructions", l.buf.Len())
	}
}

func TestVarFromExprMaterializesLiterals(t *testing.T) {
	l := newTestLowerer()
	got, err := l.varFromExpr("42", scratch)
	if err != nil {
		t.Fatalf("varFromExpr: %v", err)
	}
	if got != scratch {
		t.Errorf("got %q, want %q", got, scratch)
	}
	if l.buf.Len() != 1 {
		t.Fatalf("got %d instructions, want 1", l.buf.Len())
	}
	want := Instruction{Op: SetVarToLiteral, Name1: scratch, Literal: 42}
	if got := l.buf.At(0); got != want {
		t.Errorf("instruction 0 = %+v, want %+v", got, want)
	}
}
