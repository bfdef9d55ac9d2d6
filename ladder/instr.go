/*
 * ladderc - Abstract-machine instruction stream
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

// Opcode is the abstract machine's exhaustive instruction set. Back-ends
// (outside this module's scope) consume these in strict emission order.
type Opcode int

const (
	// Bit opcodes.
	SetBit Opcode = iota
	ClearBit
	CopyBitToBit
	IfBitSet
	IfBitClear

	// Integer opcodes.
	SetVarToLiteral
	SetVarToVar
	SetVarAdd
	SetVarSub
	SetVarMul
	SetVarDiv
	IncrementVar
	IfVarLessLiteral
	IfVarEqVar
	IfVarGreaterVar

	// Control opcodes.
	Else
	EndIf

	// Device opcodes.
	ReadAdcOp
	SetPwmOp
	EepromBusyCheck
	EepromRead
	EepromWrite
	UartSendOp
	UartRecvOp

	// Meta opcodes.
	CommentOp
	SimulateNodeState
)

// Instruction is a tagged record: Op plus the operand subset that opcode
// uses. Up to three symbolic names, one 16-bit literal, and (for
// SimulateNodeState only) a back-reference to the leaf's simulator cell.
type Instruction struct {
	Op      Opcode
	Name1   string
	Name2   string
	Name3   string
	Literal int16
	Flag    *bool // valid only for SimulateNodeState
}

// Buffer is the append-only instruction vector a single lowering invocation
// builds. It is never mutated once Lower returns success.
type Buffer struct {
	instrs []Instruction
}

// Len reports how many instructions have been emitted.
func (b *Buffer) Len() int { return len(b.instrs) }

// At returns the instruction at index i.
func (b *Buffer) At(i int) Instruction { return b.instrs[i] }

// Instructions exposes a read-only view of the emitted stream.
func (b *Buffer) Instructions() []Instruction {
	return b.instrs
}

func (b *Buffer) emit(i Instruction) {
	b.instrs = append(b.instrs, i)
}

func (b *Buffer) emitBit(op Opcode, name string) {
	b.emit(Instruction{Op: op, Name1: name})
}

func (b *Buffer) emitCopyBit(dest, src string) {
	b.emit(Instruction{Op: CopyBitToBit, Name1: dest, Name2: src})
}

func (b *Buffer) emitSetVarLiteral(name string, lit int16) {
	b.emit(Instruction{Op: SetVarToLiteral, Name1: name, Literal: lit})
}

func (b *Buffer) emitSetVarVar(dest, src string) {
	b.emit(Instruction{Op: SetVarToVar, Name1: dest, Name2: src})
}

func (b *Buffer) emitVarBinOp(op Opcode, dest, left, right string) {
	b.emit(Instruction{Op: op, Name1: dest, Name2: left, Name3: right})
}

func (b *Buffer) emitIncrement(name string) {
	b.emit(Instruction{Op: IncrementVar, Name1: name})
}

func (b *Buffer) emitIfVarLessLiteral(name string, lit int16) {
	b.emit(Instruction{Op: IfVarLessLiteral, Name1: name, Literal: lit})
}

func (b *Buffer) emitIfVarEqVar(a, c string) {
	b.emit(Instruction{Op: IfVarEqVar, Name1: a, Name2: c})
}

func (b *Buffer) emitIfVarGreaterVar(a, c string) {
	b.emit(Instruction{Op: IfVarGreaterVar, Name1: a, Name2: c})
}

func (b *Buffer) emitElse() {
	b.emit(Instruction{Op: Else})
}

func (b *Buffer) emitEndIf() {
	b.emit(Instruction{Op: EndIf})
}

func (b *Buffer) emitComment(text string) {
	b.emit(Instruction{Op: CommentOp, Name1: text})
}

func (b *Buffer) emitSimulateNodeState(stateVar string, flag *bool) {
	b.emit(Instruction{Op: SimulateNodeState, Name1: stateVar, Flag: flag})
}

func (b *Buffer) emitReadAdc(name string) {
	b.emit(Instruction{Op: ReadAdcOp, Name1: name})
}

func (b *Buffer) emitSetPwm(name, freqText string) {
	b.emit(Instruction{Op: SetPwmOp, Name1: name, Name2: freqText})
}

func (b *Buffer) emitEepromBusyCheck(name string) {
	b.emit(Instruction{Op: EepromBusyCheck, Name1: name})
}

func (b *Buffer) emitEepromRead(addr int16, dest string) {
	b.emit(Instruction{Op: EepromRead, Name1: dest, Literal: addr})
}

func (b *Buffer) emitEepromWrite(addr int16, src string) {
	b.emit(Instruction{Op: EepromWrite, Name1: src, Literal: addr})
}

func (b *Buffer) emitUartSend(name, doneFlag string) {
	b.emit(Instruction{Op: UartSendOp, Name1: name, Name2: doneFlag})
}

func (b *Buffer) emitUartRecv(name, haveFlag string) {
	b.emit(Instruction{Op: UartRecvOp, Name1: name, Name2: haveFlag})
}

// ifBit opens an IfBitSet/IfBitClear block and returns a closer that the
// caller must invoke exactly once, on every exit path. This is the scoped
// emission helper of DESIGN NOTES: it removes the whole class of
// nesting-imbalance bugs a hand-paired Emit(IfBitSet)/Emit(EndIf) invites.
func (b *Buffer) ifBit(set bool, name string) func() {
	if set {
		b.emitBit(IfBitSet, name)
	} else {
		b.emitBit(IfBitClear, name)
	}
	return b.emitEndIf
}

// ifVarLess opens an IfVarLessLiteral block.
func (b *Buffer) ifVarLess(name string, lit int16) func() {
	b.emitIfVarLessLiteral(name, lit)
	return b.emitEndIf
}

// ifVarEq opens an IfVarEqVar block.
func (b *Buffer) ifVarEq(a, c string) func() {
	b.emitIfVarEqVar(a, c)
	return b.emitEndIf
}

// ifVarGreater opens an IfVarGreaterVar block.
func (b *Buffer) ifVarGreater(a, c string) func() {
	b.emitIfVarGreaterVar(a, c)
	return b.emitEndIf
}
