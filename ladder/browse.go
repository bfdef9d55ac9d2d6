/*
 * ladderc - Read-only listing views for the REPL browser
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
	"fmt"
	"sort"
	"strings"
)

// allLines renders every instruction the same way Print does, one entry
// per printed line, so the REPL browser and the file printer never drift
// apart.
func (b *Buffer) allLines() []string {
	lines := make([]string, 0, len(b.instrs))
	depth := 0
	for i, instr := range b.instrs {
		if instr.Op == SimulateNodeState {
			continue
		}
		if closesBlock(instr.Op) {
			depth--
		}
		lines = append(lines, fmt.Sprintf("%3d:%s%s", i, indent(depth), render(instr)))
		if opensBlock(instr.Op) {
			depth++
		}
	}
	return lines
}

// Lines returns up to count pretty-printed lines starting at the printed
// line index from. count <= 0 means "through the end". Used by the REPL
// browser's "list" command.
func (b *Buffer) Lines(from, count int) []string {
	full := b.allLines()
	if from < 0 {
		from = 0
	}
	if from >= len(full) {
		return nil
	}
	end := len(full)
	if count > 0 && from+count < end {
		end = from + count
	}
	return full[from:end]
}

// LineCount reports how many printed lines Lines can address.
func (b *Buffer) LineCount() int {
	return len(b.allLines())
}

// Find returns every pretty-printed line containing text, for the REPL
// browser's "find" command.
func (b *Buffer) Find(text string) []string {
	var matches []string
	for _, line := range b.allLines() {
		if strings.Contains(line, text) {
			matches = append(matches, line)
		}
	}
	return matches
}

// RungStart returns the printed-line index where rung n's "start rung N"
// marker appears, or -1 if the buffer has no such rung.
func (b *Buffer) RungStart(n int) int {
	want := fmt.Sprintf("# start rung %d", n)
	for i, line := range b.allLines() {
		if strings.HasSuffix(line, want) {
			return i
		}
	}
	return -1
}

// Symbols returns every distinct bit or variable name the buffer
// references, sorted, for the REPL browser's "symbols" command. Comment
// text and the PWM frequency operand (decimal text, not a symbol) are not
// names and are excluded.
func (b *Buffer) Symbols() []string {
	seen := map[string]bool{}
	for _, instr := range b.instrs {
		if instr.Op == CommentOp {
			continue
		}
		names := []string{instr.Name1, instr.Name2, instr.Name3}
		if instr.Op == SetPwmOp {
			names = names[:1]
		}
		for _, name := range names {
			if name != "" {
				seen[name] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
