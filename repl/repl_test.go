/*
 * ladderc - Listing browser command dispatch tests
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

package repl

import (
	"strings"
	"testing"

	"github.com/openplc-tools/ladderc/ladder"
)

func testBrowser(t *testing.T) (*Browser, *strings.Builder) {
	t.Helper()
	program := &ladder.Program{
		CycleTimeUS: 1000,
		Rungs: []ladder.Rung{
			{Children: []ladder.Node{ladder.Contacts{Name: "Xin"}, ladder.Coil{Name: "Yout"}}},
			{Children: []ladder.Node{ladder.CTU{Name: "C", Max: 3}}},
		},
	}
	buf, err := ladder.Lower(program)
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	var out strings.Builder
	return NewBrowser(buf, &out), &out
}

func TestProcessCommandList(t *testing.T) {
	b, out := testBrowser(t)
	quit, err := ProcessCommand("list 0 3", b)
	if err != nil {
		t.Fatalf("ProcessCommand: %v", err)
	}
	if quit {
		t.Error("list should not quit the browser")
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
}

func TestProcessCommandFind(t *testing.T) {
	b, out := testBrowser(t)
	if _, err := ProcessCommand("find Xin", b); err != nil {
		t.Fatalf("ProcessCommand: %v", err)
	}
	if !strings.Contains(out.String(), "Xin") {
		t.Errorf("find output %q does not mention Xin", out.String())
	}
}

func TestProcessCommandFindRequiresText(t *testing.T) {
	b, _ := testBrowser(t)
	if _, err := ProcessCommand("find", b); err == nil {
		t.Error("expected an error for find with no TEXT")
	}
}

func TestProcessCommandFindNoMatches(t *testing.T) {
	b, out := testBrowser(t)
	if _, err := ProcessCommand("find nonexistent-xyz", b); err != nil {
		t.Fatalf("ProcessCommand: %v", err)
	}
	if !strings.Contains(out.String(), "no matches") {
		t.Errorf("output %q, want it to report no matches", out.String())
	}
}

func TestProcessCommandRung(t *testing.T) {
	b, out := testBrowser(t)
	if _, err := ProcessCommand("rung 2", b); err != nil {
		t.Fatalf("ProcessCommand: %v", err)
	}
	if !strings.Contains(out.String(), "start rung 2") {
		t.Errorf("output %q does not show rung 2's start", out.String())
	}
}

func TestProcessCommandRungUnknown(t *testing.T) {
	b, _ := testBrowser(t)
	if _, err := ProcessCommand("rung 99", b); err == nil {
		t.Error("expected an error for an unknown rung number")
	}
}

func TestProcessCommandSymbolsGroupsByPrefix(t *testing.T) {
	b, out := testBrowser(t)
	if _, err := ProcessCommand("symbols", b); err != nil {
		t.Fatalf("ProcessCommand: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "$oneShot: $oneShot_0000") {
		t.Errorf("output %q does not group the one-shot mint under its prefix", got)
	}
	if !strings.Contains(got, "Xin") || !strings.Contains(got, "Yout") {
		t.Errorf("output %q is missing plain variable names", got)
	}
}

func TestProcessCommandQuit(t *testing.T) {
	b, _ := testBrowser(t)
	quit, err := ProcessCommand("quit", b)
	if err != nil {
		t.Fatalf("ProcessCommand: %v", err)
	}
	if !quit {
		t.Error("quit should report true")
	}
}

func TestProcessCommandUnknown(t *testing.T) {
	b, _ := testBrowser(t)
	if _, err := ProcessCommand("bogus", b); err == nil {
		t.Error("expected an error for an unrecognized command")
	}
}

func TestProcessCommandEmptyLine(t *testing.T) {
	b, _ := testBrowser(t)
	// "f" alone is not ambiguous (only "find" starts with f among the
	// command set), but an empty line has no command at all.
	if _, err := ProcessCommand("", b); err == nil {
		t.Error("expected an error for an empty command line")
	}
}

func TestCompleteCmdPrefixMatch(t *testing.T) {
	got := CompleteCmd("f")
	want := []string{"find"}
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("CompleteCmd(\"f\") = %v, want %v", got, want)
	}
}

func TestCompleteCmdMultipleMatchesSorted(t *testing.T) {
	got := CompleteCmd("")
	want := []string{"find", "list", "quit", "rung", "symbols"}
	if len(got) != len(want) {
		t.Fatalf("CompleteCmd(\"\") = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CompleteCmd(\"\")[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCompleteCmdNoArgsOffered(t *testing.T) {
	if got := CompleteCmd("list 0 3"); got != nil {
		t.Errorf("CompleteCmd(\"list 0 3\") = %v, want nil (no completable args)", got)
	}
}

func TestMintPrefixGroupsMintedNames(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"$oneShot_0000", "$oneShot"},
		{"$oneShot_00a9", "$oneShot"},
		{"$mcr", "$mcr"},
		{"$rung_top", "$rung_top"},
		{"T_antiglitch", "T_antiglitch"},
		{"Xin", "Xin"},
	}
	for _, tt := range tests {
		if got := mintPrefix(tt.name); got != tt.want {
			t.Errorf("mintPrefix(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
