/*
 * ladderc - Program driver: the single-pass recursive lowering entry point
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

	"github.com/openplc-tools/ladderc/util/debugtrace"
)

// Lowerer owns every piece of state a single lowering invocation touches:
// the instruction buffer, the symbol minter, and the EEPROM free-address
// pointer. Re-architected from the C source's process-wide globals (see
// SPEC_FULL.md §9) so two invocations can never share state and nothing needs to
// be reset by hand between runs -- a fresh Lowerer is the reset.
type Lowerer struct {
	program   *Program
	buf       Buffer
	mint      minter
	eepromPtr int16
	reporter  Reporter
	trace     *debugtrace.Trace
}

// Option configures a Lowerer before Lower runs.
type Option func(*Lowerer)

// WithReporter overrides the default slog-backed Reporter.
func WithReporter(r Reporter) Option {
	return func(l *Lowerer) { l.reporter = r }
}

// WithTrace attaches a debug trace of lowering internals. A nil trace (the
// default) disables tracing at zero cost to callers.
func WithTrace(t *debugtrace.Trace) Option {
	return func(l *Lowerer) { l.trace = t }
}

func (l *Lowerer) err(kind ErrorKind, format string, args ...any) error {
	return l.reporter.Report(kind, format, args...)
}

// Lower runs the program driver over program and returns its instruction
// buffer. On any fatal diagnostic it returns the first error encountered
// and a nil buffer -- partial buffer state is never observable by callers,
// matching spec.md §5.
func Lower(program *Program, opts ...Option) (*Buffer, error) {
	l := &Lowerer{
		program:  program,
		reporter: NewSlogReporter(nil),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.buf.emitBit(SetBit, mcrBit)

	rungNum := 0
	for _, rung := range program.Rungs {
		rungNum++
		if isSoleComment(rung) {
			continue
		}

		l.buf.emitComment(fmt.Sprintf("start rung %d", rungNum))
		l.buf.emitCopyBit(rungTop, mcrBit)
		l.simulate(rung.PoweredAfter, rungTop)

		series := Series{Children: rung.Children}
		if err := l.lowerSeries(series, rungTop); err != nil {
			return nil, err
		}
	}

	return &l.buf, nil
}

// isSoleComment reports whether rung's only child is a structural comment,
// which the driver skips entirely (it never reaches the series lowering,
// so no $rung_top gating is emitted for it).
func isSoleComment(rung Rung) bool {
	if len(rung.Children) != 1 {
		return false
	}
	_, ok := rung.Children[0].(Comment)
	return ok
}

// lowerNode dispatches on the dynamic type of n, which is the Go-idiomatic
// replacement for the C source's `which` tag switch (see SPEC_FULL.md §9).
func (l *Lowerer) lowerNode(n Node, stateVar string) error {
	switch v := n.(type) {
	case Series:
		return l.lowerSeries(v, stateVar)
	case Parallel:
		return l.lowerParallel(v, stateVar)
	default:
		return l.lowerLeaf(n, stateVar)
	}
}

// lowerSeries threads stateVar through every child in order: all must
// conduct for power to pass.
func (l *Lowerer) lowerSeries(s Series, stateVar string) error {
	l.buf.emitComment("start series [")
	for _, child := range s.Children {
		if err := l.lowerNode(child, stateVar); err != nil {
			return err
		}
	}
	l.buf.emitComment("] finish series")
	return nil
}

// lowerParallel mints a per-branch carry and an accumulator, runs every
// branch against the carry, and ORs each branch's outcome into the
// accumulator before copying it back into stateVar.
func (l *Lowerer) lowerParallel(p Parallel, stateVar string) error {
	parThis := l.mint.parThisName()
	parOut := l.mint.parOutName()

	l.buf.emitBit(ClearBit, parOut)
	for _, child := range p.Children {
		l.buf.emitCopyBit(parThis, stateVar)
		if err := l.lowerNode(child, parThis); err != nil {
			return err
		}
		closeIf := l.buf.ifBit(true, parThis)
		l.buf.emitBit(SetBit, parOut)
		closeIf()
	}
	l.buf.emitCopyBit(stateVar, parOut)
	return nil
}

// lowerLeaf dispatches a single element to its lowering rule and, for any
// element that isn't handled by its own contract, records the leaf's
// simulator flag against the state name that now holds its post-state.
func (l *Lowerer) lowerLeaf(n Node, stateVar string) error {
	switch v := n.(type) {
	case Contacts:
		return l.lowerContacts(v, stateVar)
	case Coil:
		return l.lowerCoil(v, stateVar)
	case RTO:
		return l.lowerRTO(v, stateVar)
	case RES:
		return l.lowerRES(v, stateVar)
	case TON:
		return l.lowerTON(v, stateVar)
	case TOF:
		return l.lowerTOF(v, stateVar)
	case CTU:
		return l.lowerCTU(v, stateVar)
	case CTD:
		return l.lowerCTD(v, stateVar)
	case CTC:
		return l.lowerCTC(v, stateVar)
	case Compare:
		return l.lowerCompare(v, stateVar)
	case OneShotRising:
		return l.lowerOneShotRising(v, stateVar)
	case OneShotFalling:
		return l.lowerOneShotFalling(v, stateVar)
	case Move:
		return l.lowerMove(v, stateVar)
	case Arith:
		return l.lowerArith(v, stateVar)
	case ReadAdc:
		return l.lowerReadAdc(v, stateVar)
	case SetPwm:
		return l.lowerSetPwm(v, stateVar)
	case Persist:
		return l.lowerPersist(v, stateVar)
	case UartSend:
		return l.lowerUartSend(v, stateVar)
	case UartRecv:
		return l.lowerUartRecv(v, stateVar)
	case MasterRelay:
		return l.lowerMasterRelay(v, stateVar)
	case ShiftRegister:
		return l.lowerShiftRegister(v, stateVar)
	case LookUpTable:
		return l.lowerLookUpTable(v, stateVar)
	case PiecewiseLinear:
		return l.lowerPiecewiseLinear(v, stateVar)
	case FormattedString:
		return l.lowerFormattedString(v, stateVar)
	case Open:
		l.buf.emitBit(ClearBit, stateVar)
		l.simulate(v.PoweredAfter, stateVar)
		return nil
	case Short:
		l.simulate(v.PoweredAfter, stateVar)
		return nil
	case Placeholder:
		return l.err(Structural, "empty row")
	case Comment:
		l.simulate(v.PoweredAfter, stateVar)
		return nil
	default:
		return l.err(Structural, "unknown element %T", n)
	}
}

// simulate registers leaf's simulator flag against stateVar, the rung-state
// identifier that now holds its post-scan conduction state. A nil flag
// (a leaf the caller chose not to track) is a legitimate no-op.
func (l *Lowerer) simulate(flag *bool, stateVar string) {
	if flag == nil {
		return
	}
	l.buf.emitSimulateNodeState(stateVar, flag)
}
