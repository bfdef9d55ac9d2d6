/*
 * ladderc - Listing browser and pretty-printer tests
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

import (
	"strings"
	"testing"
)

func threeRungProgram() *Program {
	return &Program{
		CycleTimeUS: 1000,
		Rungs: []Rung{
			{Children: []Node{Contacts{Name: "A"}, Coil{Name: "Y1"}}},
			{Children: []Node{Contacts{Name: "B"}, Coil{Name: "Y2"}}},
			{Children: []Node{Contacts{Name: "C"}, Coil{Name: "Y3"}}},
		},
	}
}

func TestBufferLineCountMatchesAllocatedLines(t *testing.T) {
	buf, err := Lower(threeRungProgram())
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	if buf.LineCount() != len(buf.Lines(0, buf.LineCount())) {
		t.Errorf("LineCount() disagrees with len(Lines(0, LineCount()))")
	}
	// No SimulateNodeState instructions were requested, so every emitted
	// instruction gets a printed line.
	if buf.LineCount() != buf.Len() {
		t.Errorf("LineCount() = %d, want %d (buf.Len(), no SimulateNodeState to skip)", buf.LineCount(), buf.Len())
	}
}

func TestBufferLinesWindowing(t *testing.T) {
	buf, err := Lower(threeRungProgram())
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	all := buf.Lines(0, buf.LineCount())
	window := buf.Lines(2, 3)
	if len(window) != 3 {
		t.Fatalf("got %d lines, want 3", len(window))
	}
	for i, line := range window {
		if line != all[2+i] {
			t.Errorf("window[%d] = %q, want %q", i, line, all[2+i])
		}
	}
}

func TestBufferLinesClampsOutOfRange(t *testing.T) {
	buf, err := Lower(threeRungProgram())
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	if got := buf.Lines(-5, 3); len(got) == 0 {
		t.Error("Lines with a negative from should clamp rather than panic or return nothing useful")
	}
	if got := buf.Lines(buf.LineCount()+100, 10); len(got) != 0 {
		t.Errorf("Lines past the end should return no lines, got %d", len(got))
	}
}

func TestBufferFind(t *testing.T) {
	buf, err := Lower(threeRungProgram())
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	matches := buf.Find("'B'")
	if len(matches) == 0 {
		t.Fatal("expected at least one match for contact B")
	}
	for _, m := range matches {
		if !strings.Contains(m, "'B'") {
			t.Errorf("match %q does not contain the search text", m)
		}
	}
}

func TestBufferFindNoMatches(t *testing.T) {
	buf, err := Lower(threeRungProgram())
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	if matches := buf.Find("nonexistent-token-xyz"); len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
}

func TestBufferRungStart(t *testing.T) {
	buf, err := Lower(threeRungProgram())
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	start2 := buf.RungStart(2)
	if start2 < 0 {
		t.Fatal("expected rung 2 to be found")
	}
	lines := buf.Lines(start2, 1)
	if len(lines) != 1 || !strings.Contains(lines[0], "start rung 2") {
		t.Errorf("line at rung 2's start = %q, want it to mention 'start rung 2'", lines[0])
	}
}

func TestBufferRungStartUnknown(t *testing.T) {
	buf, err := Lower(threeRungProgram())
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	if got := buf.RungStart(99); got != -1 {
		t.Errorf("RungStart(99) = %d, want -1", got)
	}
}

func TestBufferSymbols(t *testing.T) {
	buf, err := Lower(threeRungProgram())
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	symbols := buf.Symbols()
	want := map[string]bool{"A": true, "B": true, "C": true, "Y1": true, "Y2": true, "Y3": true, mcrBit: true, rungTop: true}
	got := map[string]bool{}
	for _, s := range symbols {
		got[s] = true
	}
	for name := range want {
		if !got[name] {
			t.Errorf("Symbols() missing %q", name)
		}
	}
}

func TestPrintIsDeterministic(t *testing.T) {
	program := threeRungProgram()

	buf1, err := Lower(program)
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	buf2, err := Lower(program)
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}

	var out1, out2 strings.Builder
	if err := buf1.Print(&out1); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if err := buf2.Print(&out2); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if out1.String() != out2.String() {
		t.Error("two lowerings of the same program produced different listings")
	}
}

func TestPrintIndentsNestedBlocks(t *testing.T) {
	buf, err := Lower(threeRungProgram())
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	var out strings.Builder
	if err := buf.Print(&out); err != nil {
		t.Fatalf("Print: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	foundIndented := false
	for _, line := range lines {
		if strings.Contains(line, "clear bit") && strings.Contains(line, "    ") {
			foundIndented = true
			break
		}
	}
	if !foundIndented {
		t.Error("expected at least one 'clear bit' line indented inside an if-block")
	}
}
