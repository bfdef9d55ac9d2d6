/*
 * ladderc - Reserved-name minting
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

import "fmt"

// Reserved scratch and control names. User variable names never begin with
// $; every internally minted name does, so the two namespaces can never
// collide.
const (
	scratch  = "$scratch"
	scratch2 = "$scratch2"
	scratch3 = "$scratch3"
	mcrBit   = "$mcr"
	rungTop  = "$rung_top"
)

// antiglitchName derives a TOF's priming bit name from its timer name.
func antiglitchName(name string) string {
	return "$" + name + "_antiglitch"
}

// minter mints monotonically-numbered reserved identifiers across one
// lowering invocation. Four independent counters, one per mint prefix;
// none of them reset until a new Lowerer is created.
type minter struct {
	parThis         uint32
	parOut          uint32
	oneShot         uint32
	formattedString uint32
}

func (m *minter) parThisName() string {
	name := fmt.Sprintf("$parThis_%04x", m.parThis)
	m.parThis++
	return name
}

func (m *minter) parOutName() string {
	name := fmt.Sprintf("$parOut_%04x", m.parOut)
	m.parOut++
	return name
}

func (m *minter) oneShotName() string {
	name := fmt.Sprintf("$oneShot_%04x", m.oneShot)
	m.oneShot++
	return name
}

func (m *minter) formattedStringName() string {
	name := fmt.Sprintf("$formattedString_%04x", m.formattedString)
	m.formattedString++
	return name
}
