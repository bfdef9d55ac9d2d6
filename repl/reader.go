/*
 * ladderc - Line-editing front end for the listing browser
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
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/peterh/liner"

	"github.com/openplc-tools/ladderc/ladder"
)

// Run opens a liner prompt over buf and dispatches each line to
// ProcessCommand until the user quits or aborts the prompt (Ctrl-D or
// Ctrl-C), mirroring the teacher's ConsoleReader loop.
func Run(out io.Writer, buf *ladder.Buffer) error {
	b := NewBrowser(buf, out)

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		return CompleteCmd(partial)
	})

	for {
		command, err := line.Prompt("ladderc> ")
		if err == nil {
			line.AppendHistory(command)
			quit, procErr := ProcessCommand(command, b)
			if procErr != nil {
				fmt.Fprintln(out, "error: "+procErr.Error())
			}
			if quit {
				return nil
			}
			continue
		}

		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		}
		slog.Error("error reading line: " + err.Error())
		return err
	}
}
