/*
 * ladderc - Ladder-diagram AST consumed by the lowering pass
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

// Package ladder lowers a structured ladder-diagram program into a linear
// stream of instructions for a tiny abstract machine. The AST below is
// owned by the caller (graphical editor / loader); the lowering pass never
// mutates it. It only records each leaf's PoweredAfter cell in a
// SimulateNodeState instruction, for the simulator to update.
package ladder

// MaxNameLen bounds user-supplied identifiers (7-bit ASCII).
const MaxNameLen = 28

// Program is an ordered sequence of rungs sharing one scan cycle time.
type Program struct {
	CycleTimeUS int
	Rungs       []Rung
}

// Rung is the top-level series sub-circuit of one horizontal ladder line.
type Rung struct {
	Children []Node

	// PoweredAfter mirrors each leaf's own field of the same name: the
	// simulator flag recording whether this rung, as a whole, was
	// energized on the last scan. Nil if the caller doesn't track it.
	PoweredAfter *bool
}

// Node is either a sub-circuit (Series, Parallel) or a leaf element. It is
// the Go sum type replacing the C source's `which` tag plus union payload:
// each concrete type below carries exactly the fields its element needs,
// and dispatch is a type switch in lowerNode, not a shared struct of
// optional fields.
type Node interface {
	isNode()
}

// Series requires every child to conduct for power to pass.
type Series struct {
	Children []Node
}

// Parallel passes power if any child conducts.
type Parallel struct {
	Children []Node
}

func (Series) isNode()   {}
func (Parallel) isNode() {}

// CompareOp enumerates the six ladder comparison elements.
type CompareOp int

const (
	GRT CompareOp = iota
	GEQ
	LES
	LEQ
	EQU
	NEQ
)

// ArithOp enumerates the four ladder arithmetic elements.
type ArithOp int

const (
	OpAdd ArithOp = iota
	OpSub
	OpMul
	OpDiv
)

// Contacts tests Name against its polarity.
type Contacts struct {
	Name         string
	Negated      bool
	PoweredAfter *bool
}

// Coil assigns Name from the rung state, subject to its mode.
type Coil struct {
	Name         string
	Negated      bool
	SetOnly      bool
	ResetOnly    bool
	PoweredAfter *bool
}

// RTO is a retentive on-delay timer: Name is both the accumulator variable
// and (via RES) the only thing that resets it.
type RTO struct {
	Name         string
	DelayUS      int
	PoweredAfter *bool
}

// RES resets Target to zero while the rung is powered.
type RES struct {
	Target       string
	PoweredAfter *bool
}

// TON is a non-retentive on-delay timer.
type TON struct {
	Name         string
	DelayUS      int
	PoweredAfter *bool
}

// TOF is a non-retentive off-delay timer, primed so its output starts low.
type TOF struct {
	Name         string
	DelayUS      int
	PoweredAfter *bool
}

// CTU counts rising edges of the rung up to Max.
type CTU struct {
	Name         string
	Max          int
	PoweredAfter *bool
}

// CTD decrements Name on each rising edge of the rung; the rung passes
// while Name is at least Max.
type CTD struct {
	Name         string
	Max          int
	PoweredAfter *bool
}

// CTC is a circular counter that wraps to zero past Max.
type CTC struct {
	Name         string
	Max          int
	PoweredAfter *bool
}

// Compare implements GRT/GEQ/LES/LEQ/EQU/NEQ; Left and Right are
// name-or-literal tokens (see varFromExpr).
type Compare struct {
	Op           CompareOp
	Left         string
	Right        string
	PoweredAfter *bool
}

// OneShotRising passes power for exactly one scan per 0->1 transition.
// Name is the caller-owned latch bit that survives across scans.
type OneShotRising struct {
	Name         string
	PoweredAfter *bool
}

// OneShotFalling passes power for exactly one scan per 1->0 transition.
type OneShotFalling struct {
	Name         string
	PoweredAfter *bool
}

// Move copies Src (name or literal) into Dest, which must not be a literal.
type Move struct {
	Dest         string
	Src          string
	PoweredAfter *bool
}

// Arith implements Add/Sub/Mul/Div; Dest must not be a literal.
type Arith struct {
	Op           ArithOp
	Dest         string
	Left         string
	Right        string
	PoweredAfter *bool
}

// ReadAdc samples an analog input into Name.
type ReadAdc struct {
	Name         string
	PoweredAfter *bool
}

// SetPwm drives pin Name at FreqHz. Declared separately from ReadAdc's pin
// field on purpose -- see DESIGN.md on the source's accidental field
// aliasing between the ADC and PWM element payloads.
type SetPwm struct {
	Name         string
	FreqHz       int64
	PoweredAfter *bool
}

// Persist is an EEPROM-backed variable: Name is synchronized bidirectionally
// with two bytes of non-volatile storage assigned at lowering time.
type Persist struct {
	Name         string
	PoweredAfter *bool
}

// UartSend transmits Name; the rung state bit doubles as the done flag.
type UartSend struct {
	Name         string
	PoweredAfter *bool
}

// UartRecv receives into Name when the rung is powered.
type UartRecv struct {
	Name         string
	PoweredAfter *bool
}

// MasterRelay gates every rung after it through the process-wide $mcr bit.
type MasterRelay struct {
	PoweredAfter *bool
}

// ShiftRegister is a contiguous family of variables Name+"0" .. Name+(Count-1)
// that shifts up by one stage on each rising edge of the rung.
type ShiftRegister struct {
	Name         string
	Count        int
	PoweredAfter *bool
}

// LookUpTable writes Values[i] into Dest when Index equals i.
type LookUpTable struct {
	Index        string
	Dest         string
	Values       []int16
	PoweredAfter *bool
}

// PiecewiseLinear interpolates Dest from Name against the breakpoints
// (X[i], Y[i]); X must be strictly increasing.
type PiecewiseLinear struct {
	Name         string
	Dest         string
	X            []int16
	Y            []int16
	PoweredAfter *bool
}

// FormattedString renders Format, substituting at most one decimal
// placeholder from Vars[0], and transmits the result one byte per scan.
type FormattedString struct {
	Format       string
	Vars         []string
	PoweredAfter *bool
}

// Open is a permanently open (dead) branch.
type Open struct {
	PoweredAfter *bool
}

// Short is a permanently closed (no-op) branch.
type Short struct {
	PoweredAfter *bool
}

// Placeholder marks an empty row left behind by the editor; always fatal.
type Placeholder struct {
	PoweredAfter *bool
}

// Comment carries structural trace text and lowers to nothing.
type Comment struct {
	Text         string
	PoweredAfter *bool
}

func (Contacts) isNode()        {}
func (Coil) isNode()            {}
func (RTO) isNode()             {}
func (RES) isNode()             {}
func (TON) isNode()             {}
func (TOF) isNode()             {}
func (CTU) isNode()             {}
func (CTD) isNode()             {}
func (CTC) isNode()             {}
func (Compare) isNode()         {}
func (OneShotRising) isNode()   {}
func (OneShotFalling) isNode()  {}
func (Move) isNode()            {}
func (Arith) isNode()           {}
func (ReadAdc) isNode()         {}
func (SetPwm) isNode()          {}
func (Persist) isNode()         {}
func (UartSend) isNode()        {}
func (UartRecv) isNode()        {}
func (MasterRelay) isNode()     {}
func (ShiftRegister) isNode()   {}
func (LookUpTable) isNode()     {}
func (PiecewiseLinear) isNode() {}
func (FormattedString) isNode() {}
func (Open) isNode()            {}
func (Short) isNode()           {}
func (Placeholder) isNode()     {}
func (Comment) isNode()         {}
