/*
 * ladderc - Pretty-printer for the lowered instruction stream
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
	"bufio"
	"fmt"
	"io"
	"os"
)

// render produces the canonical one-line text for instr, without
// indentation or the leading index field.
func render(instr Instruction) string {
	switch instr.Op {
	case SetBit:
		return fmt.Sprintf("set bit '%s'", instr.Name1)
	case ClearBit:
		return fmt.Sprintf("clear bit '%s'", instr.Name1)
	case CopyBitToBit:
		return fmt.Sprintf("let bit '%s' := '%s'", instr.Name1, instr.Name2)
	case SetVarToLiteral:
		return fmt.Sprintf("let var '%s' := %d", instr.Name1, instr.Literal)
	case SetVarToVar:
		return fmt.Sprintf("let var '%s' := '%s'", instr.Name1, instr.Name2)
	case SetVarAdd:
		return fmt.Sprintf("let var '%s' := '%s' + '%s'", instr.Name1, instr.Name2, instr.Name3)
	case SetVarSub:
		return fmt.Sprintf("let var '%s' := '%s' - '%s'", instr.Name1, instr.Name2, instr.Name3)
	case SetVarMul:
		return fmt.Sprintf("let var '%s' := '%s' * '%s'", instr.Name1, instr.Name2, instr.Name3)
	case SetVarDiv:
		return fmt.Sprintf("let var '%s' := '%s' / '%s'", instr.Name1, instr.Name2, instr.Name3)
	case IncrementVar:
		return fmt.Sprintf("increment '%s'", instr.Name1)
	case ReadAdcOp:
		return fmt.Sprintf("read adc '%s'", instr.Name1)
	case SetPwmOp:
		return fmt.Sprintf("set pwm '%s' %s Hz", instr.Name1, instr.Name2)
	case EepromBusyCheck:
		return fmt.Sprintf("set bit '%s' if EEPROM busy", instr.Name1)
	case EepromRead:
		return fmt.Sprintf("read EEPROM[%d,%d+1] into '%s'", instr.Literal, instr.Literal, instr.Name1)
	case EepromWrite:
		return fmt.Sprintf("write '%s' into EEPROM[%d,%d+1]", instr.Name1, instr.Literal, instr.Literal)
	case UartSendOp:
		return fmt.Sprintf("uart send from '%s', done? into '%s'", instr.Name1, instr.Name2)
	case UartRecvOp:
		return fmt.Sprintf("uart recv int '%s', have? into '%s'", instr.Name1, instr.Name2)
	case IfBitSet:
		return fmt.Sprintf("if '%s' {", instr.Name1)
	case IfBitClear:
		return fmt.Sprintf("if not '%s' {", instr.Name1)
	case IfVarLessLiteral:
		return fmt.Sprintf("if '%s' < %d {", instr.Name1, instr.Literal)
	case IfVarEqVar:
		return fmt.Sprintf("if '%s' == '%s' {", instr.Name1, instr.Name2)
	case IfVarGreaterVar:
		return fmt.Sprintf("if '%s' > '%s' {", instr.Name1, instr.Name2)
	case EndIf:
		return "}"
	case Else:
		return "} else {"
	case CommentOp:
		return "# " + instr.Name1
	default:
		return ""
	}
}

// opensBlock reports whether instr increases indentation for what follows.
func opensBlock(op Opcode) bool {
	switch op {
	case IfBitSet, IfBitClear, IfVarLessLiteral, IfVarEqVar, IfVarGreaterVar, Else:
		return true
	default:
		return false
	}
}

// closesBlock reports whether instr decreases indentation before it prints.
func closesBlock(op Opcode) bool {
	switch op {
	case EndIf, Else:
		return true
	default:
		return false
	}
}

// Print writes the buffer's listing to w: `"%3d:"` followed by 4 spaces of
// indentation per nesting level and the instruction's canonical rendering.
// SimulateNodeState instructions are meta-only and produce no output line;
// the index field is the instruction's position in the buffer, so the
// printed indices skip the slots those instructions occupy.
func (b *Buffer) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, line := range b.allLines() {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// PrintFile opens path and writes the listing to it.
func (b *Buffer) PrintFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return b.Print(f)
}

func indent(depth int) string {
	s := make([]byte, depth*4)
	for i := range s {
		s[i] = ' '
	}
	return string(s)
}
