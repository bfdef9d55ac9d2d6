/*
 * ladderc - Textual .rung program loader tests
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

package loader

import (
	"strings"
	"testing"

	"github.com/openplc-tools/ladderc/ladder"
)

func TestParseCycleDirective(t *testing.T) {
	program, err := Parse(strings.NewReader("cycle 5ms\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if program.CycleTimeUS != 5000 {
		t.Errorf("CycleTimeUS = %d, want 5000", program.CycleTimeUS)
	}
}

func TestParseDurationUnits(t *testing.T) {
	tests := []struct {
		tok  string
		want int
	}{
		{"100us", 100},
		{"5ms", 5000},
		{"2s", 2000000},
	}
	for _, tt := range tests {
		got, err := parseDuration(tt.tok)
		if err != nil {
			t.Errorf("parseDuration(%q): %v", tt.tok, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDuration(%q) = %d, want %d", tt.tok, got, tt.want)
		}
	}
}

func TestParseDurationRejectsMissingSuffix(t *testing.T) {
	if _, err := parseDuration("100"); err == nil {
		t.Error("expected an error for a duration with no unit suffix")
	}
}

func TestParseRungAndContactCoil(t *testing.T) {
	src := `
cycle 1ms
rung
contact Xin
coil Yout
`
	program, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(program.Rungs) != 1 {
		t.Fatalf("got %d rungs, want 1", len(program.Rungs))
	}
	children := program.Rungs[0].Children
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
	contact, ok := children[0].(ladder.Contacts)
	if !ok || contact.Name != "Xin" || contact.Negated {
		t.Errorf("children[0] = %+v, want Contacts{Name: Xin}", children[0])
	}
	coil, ok := children[1].(ladder.Coil)
	if !ok || coil.Name != "Yout" {
		t.Errorf("children[1] = %+v, want Coil{Name: Yout}", children[1])
	}
}

func TestParseMultipleRungs(t *testing.T) {
	src := `
cycle 1ms
rung
contact A
rung
contact B
`
	program, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(program.Rungs) != 2 {
		t.Fatalf("got %d rungs, want 2", len(program.Rungs))
	}
	if len(program.Rungs[0].Children) != 1 || len(program.Rungs[1].Children) != 1 {
		t.Errorf("expected one child per rung, got %+v", program.Rungs)
	}
}

func TestParseCommentsAndBlankLinesIgnored(t *testing.T) {
	src := `
# a header comment
cycle 1ms # inline too

rung
contact A # trailing
`
	program, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if program.CycleTimeUS != 1000 {
		t.Errorf("CycleTimeUS = %d, want 1000", program.CycleTimeUS)
	}
	if len(program.Rungs) != 1 || len(program.Rungs[0].Children) != 1 {
		t.Fatalf("unexpected program shape: %+v", program)
	}
}

func TestParseTimerDirectives(t *testing.T) {
	src := `
cycle 1ms
rung
ton T 10ms
tof F 10ms
rto R 10ms
`
	program, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	children := program.Rungs[0].Children
	if ton, ok := children[0].(ladder.TON); !ok || ton.Name != "T" || ton.DelayUS != 10000 {
		t.Errorf("children[0] = %+v, want TON{T, 10000}", children[0])
	}
	if tof, ok := children[1].(ladder.TOF); !ok || tof.Name != "F" || tof.DelayUS != 10000 {
		t.Errorf("children[1] = %+v, want TOF{F, 10000}", children[1])
	}
	if rto, ok := children[2].(ladder.RTO); !ok || rto.Name != "R" || rto.DelayUS != 10000 {
		t.Errorf("children[2] = %+v, want RTO{R, 10000}", children[2])
	}
}

func TestParseCounterDirectives(t *testing.T) {
	program, err := Parse(strings.NewReader("cycle 1ms\nrung\nctu C 3\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ctu, ok := program.Rungs[0].Children[0].(ladder.CTU)
	if !ok || ctu.Name != "C" || ctu.Max != 3 {
		t.Errorf("children[0] = %+v, want CTU{C, 3}", program.Rungs[0].Children[0])
	}
}

func TestParseCompareDirective(t *testing.T) {
	program, err := Parse(strings.NewReader("cycle 1ms\nrung\ncmp EQU X 5\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cmp, ok := program.Rungs[0].Children[0].(ladder.Compare)
	if !ok || cmp.Op != ladder.EQU || cmp.Left != "X" || cmp.Right != "5" {
		t.Errorf("children[0] = %+v, want Compare{EQU, X, 5}", program.Rungs[0].Children[0])
	}
}

func TestParseRejectsElementOutsideRung(t *testing.T) {
	_, err := Parse(strings.NewReader("cycle 1ms\ncontact A\n"))
	if err == nil {
		t.Fatal("expected an error for an element line outside any rung block")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the offending line", err.Error())
	}
}

func TestParseRejectsUnknownTag(t *testing.T) {
	_, err := Parse(strings.NewReader("cycle 1ms\nrung\nbogus A\n"))
	if err == nil {
		t.Fatal("expected an error for an unknown element tag")
	}
}

func TestParseRejectsMalformedCounterMax(t *testing.T) {
	_, err := Parse(strings.NewReader("cycle 1ms\nrung\nctu C notanumber\n"))
	if err == nil {
		t.Fatal("expected an error for a malformed counter max")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/to/a.rung"); err == nil {
		t.Fatal("expected an error loading a nonexistent file")
	}
}
