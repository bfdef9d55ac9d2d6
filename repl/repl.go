/*
 * ladderc - Command dispatch table for the interactive listing browser
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

// Package repl implements the interactive listing browser: a small command
// loop over a lowered ladder.Buffer, in the dispatch-table-plus-completer
// shape the teacher's command/parser package uses for its console.
package repl

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/openplc-tools/ladderc/ladder"
)

const defaultListCount = 20

// Browser holds the state one REPL session threads between commands: the
// listing being browsed and where "list" last left off.
type Browser struct {
	buf *ladder.Buffer
	out io.Writer
	pos int
}

// NewBrowser wraps buf for browsing, writing command output to out.
func NewBrowser(buf *ladder.Buffer, out io.Writer) *Browser {
	return &Browser{buf: buf, out: out}
}

// cmdLine is a position-tracked command line, the same shape the teacher's
// parser package scans option syntax with, pared down to what this
// browser's five commands need: bare whitespace-separated words, no
// quoting or '=' options.
type cmdLine struct {
	line string
	pos  int
}

func (l *cmdLine) skipSpace() {
	for l.pos < len(l.line) && l.line[l.pos] == ' ' {
		l.pos++
	}
}

func (l *cmdLine) isEOL() bool {
	return l.pos >= len(l.line)
}

// getWord returns the next whitespace-delimited word, or "" at end of line.
func (l *cmdLine) getWord() string {
	l.skipSpace()
	if l.isEOL() {
		return ""
	}
	start := l.pos
	for l.pos < len(l.line) && l.line[l.pos] != ' ' {
		l.pos++
	}
	return l.line[start:l.pos]
}

// rest returns everything remaining on the line, leading space trimmed.
func (l *cmdLine) rest() string {
	l.skipSpace()
	return l.line[l.pos:]
}

type cmd struct {
	name    string
	min     int // minimum unambiguous prefix length
	process func(*cmdLine, *Browser) (bool, error)
}

var cmdList = []cmd{
	{name: "list", min: 1, process: listCmd},
	{name: "find", min: 1, process: findCmd},
	{name: "rung", min: 1, process: rungCmd},
	{name: "symbols", min: 1, process: symbolsCmd},
	{name: "quit", min: 1, process: quitCmd},
}

// matchCommand reports whether command is a prefix of match.name at least
// match.min characters long.
func matchCommand(match cmd, command string) bool {
	if len(command) < match.min || len(command) > len(match.name) {
		return false
	}
	return match.name[:len(command)] == command
}

func matchList(command string) []cmd {
	if command == "" {
		return nil
	}
	var matches []cmd
	for _, m := range cmdList {
		if matchCommand(m, command) {
			matches = append(matches, m)
		}
	}
	return matches
}

// ProcessCommand executes one line of browser input against b. The bool
// result reports whether the browser should quit.
func ProcessCommand(commandLine string, b *Browser) (bool, error) {
	line := &cmdLine{line: commandLine}
	name := line.getWord()

	match := matchList(name)
	switch len(match) {
	case 0:
		return false, errors.New("command not found: " + name)
	case 1:
		return match[0].process(line, b)
	default:
		return false, errors.New("ambiguous command: " + name)
	}
}

// CompleteCmd lists command names matching the line's current word, the
// same prefix-match-and-sort shape as the teacher's parser.CompleteCmd.
func CompleteCmd(commandLine string) []string {
	line := &cmdLine{line: commandLine}
	word := line.getWord()
	if !line.isEOL() {
		// A complete word followed by more text: this browser's commands
		// take no completable arguments, so there is nothing to offer.
		return nil
	}

	var matches []string
	for _, m := range cmdList {
		if strings.HasPrefix(m.name, word) {
			matches = append(matches, m.name)
		}
	}
	sort.Strings(matches)
	return matches
}

func listCmd(line *cmdLine, b *Browser) (bool, error) {
	from := b.pos
	count := defaultListCount

	if w := line.getWord(); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil {
			return false, fmt.Errorf("list: bad FROM %q", w)
		}
		from = n
		if w := line.getWord(); w != "" {
			n, err := strconv.Atoi(w)
			if err != nil {
				return false, fmt.Errorf("list: bad COUNT %q", w)
			}
			count = n
		}
	}

	for _, l := range b.buf.Lines(from, count) {
		fmt.Fprintln(b.out, l)
	}
	b.pos = from + count
	return false, nil
}

func findCmd(line *cmdLine, b *Browser) (bool, error) {
	text := line.rest()
	if text == "" {
		return false, errors.New("find: expected TEXT")
	}
	matches := b.buf.Find(text)
	if len(matches) == 0 {
		fmt.Fprintln(b.out, "no matches")
		return false, nil
	}
	for _, l := range matches {
		fmt.Fprintln(b.out, l)
	}
	return false, nil
}

func rungCmd(line *cmdLine, b *Browser) (bool, error) {
	w := line.getWord()
	n, err := strconv.Atoi(w)
	if err != nil {
		return false, fmt.Errorf("rung: bad N %q", w)
	}
	start := b.buf.RungStart(n)
	if start < 0 {
		return false, fmt.Errorf("rung: no rung %d", n)
	}
	b.pos = start
	for _, l := range b.buf.Lines(start, defaultListCount) {
		fmt.Fprintln(b.out, l)
	}
	b.pos = start + defaultListCount
	return false, nil
}

func symbolsCmd(_ *cmdLine, b *Browser) (bool, error) {
	groups := map[string][]string{}
	for _, name := range b.buf.Symbols() {
		prefix := mintPrefix(name)
		groups[prefix] = append(groups[prefix], name)
	}

	prefixes := make([]string, 0, len(groups))
	for prefix := range groups {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	for _, prefix := range prefixes {
		fmt.Fprintf(b.out, "%s: %s\n", prefix, strings.Join(groups[prefix], " "))
	}
	return false, nil
}

func quitCmd(_ *cmdLine, _ *Browser) (bool, error) {
	return true, nil
}

// mintPrefix strips a minted name's trailing "_XXXX" hex counter, grouping
// e.g. "$oneShot_0000" and "$oneShot_0001" under "$oneShot". Names without
// that suffix -- user variables, the fixed $scratch/$mcr/$rung_top names,
// and per-timer $NAME_antiglitch names -- group under themselves.
func mintPrefix(name string) string {
	i := strings.LastIndexByte(name, '_')
	if i < 0 || len(name)-i-1 != 4 {
		return name
	}
	for _, c := range name[i+1:] {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return name
		}
	}
	return name[:i]
}
