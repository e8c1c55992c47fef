// Copyright © 2024 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tristate

import (
	"fmt"

	"github.com/getamis/tristate-qbf/internal/logger"
	"github.com/getamis/tristate-qbf/internal/netlist"
)

// workspace owns the fresh-wire counter and the emitted gate sequence. It is
// local to one Transform call, replacing the global variable counter the
// reference C++ implementation used with an explicit, construction-owned one
// (spec.md §9).
type workspace struct {
	nextWireID int
	gates      []*netlist.Gate
}

func (w *workspace) alloc() int {
	id := w.nextWireID
	w.nextWireID++
	return id
}

func (w *workspace) emit(kind netlist.Kind, inputs []int, output int) {
	w.gates = append(w.gates, &netlist.Gate{
		Inputs:  inputs,
		Outputs: []int{output},
		Kind:    kind,
	})
}

func (w *workspace) one(o int)          { w.emit(netlist.ConstOne, nil, o) }
func (w *workspace) zero(o int)         { w.emit(netlist.ConstZero, nil, o) }
func (w *workspace) xor(a, b, o int)    { w.emit(netlist.XOR, []int{a, b}, o) }
func (w *workspace) join(a, b, o int)   { w.emit(netlist.Join, []int{a, b}, o) }
func (w *workspace) buf(data, ctrl, o int) {
	w.emit(netlist.Buffer, []int{data, ctrl}, o)
}

// Transform rewrites a Boolean netlist into a tri-state netlist, per the
// gadgets of spec.md §4.2. It returns a hard error, aborting the whole
// transformation, on the first gate whose shape doesn't match its kind or
// whose kind is unsupported.
func Transform(n *netlist.Netlist) (*netlist.Netlist, error) {
	w := &workspace{nextWireID: n.NumWires}

	for i, g := range n.Gates {
		if err := transformGate(w, g); err != nil {
			return nil, fmt.Errorf("tristate: gate %d (%s): %w", i, g.Kind, err)
		}
	}

	logger.Logger().Debug("transformed netlist", "gates", len(w.gates), "wires", w.nextWireID)

	return &netlist.Netlist{
		NumWires:    w.nextWireID,
		InputSizes:  n.InputSizes,
		OutputSizes: n.OutputSizes,
		Gates:       w.gates,
	}, nil
}

func transformGate(w *workspace, g *netlist.Gate) error {
	switch g.Kind {
	case netlist.XOR:
		if len(g.Inputs) != 2 || len(g.Outputs) != 1 {
			return ErrArityMismatch
		}
		w.xor(g.Inputs[0], g.Inputs[1], g.Outputs[0])

	case netlist.INV:
		if len(g.Inputs) != 1 || len(g.Outputs) != 1 {
			return ErrArityMismatch
		}
		c := w.alloc()
		w.one(c)
		w.xor(g.Inputs[0], c, g.Outputs[0])

	case netlist.EQ, netlist.EQW:
		if len(g.Inputs) != 1 || len(g.Outputs) != 1 {
			return ErrArityMismatch
		}
		c := w.alloc()
		w.one(c)
		w.buf(g.Inputs[0], c, g.Outputs[0])

	case netlist.AND:
		if len(g.Inputs) != 2 || len(g.Outputs) != 1 {
			return ErrArityMismatch
		}
		emitAndGadget(w, g.Inputs[0], g.Inputs[1], g.Outputs[0])

	case netlist.MAND:
		n := len(g.Outputs)
		if n < 1 || len(g.Inputs) != 2*n {
			return ErrArityMismatch
		}
		for i := 0; i < n; i++ {
			emitAndGadget(w, g.Inputs[i], g.Inputs[i+n], g.Outputs[i])
		}

	default:
		return ErrUnsupportedKind
	}
	return nil
}

// emitAndGadget implements AND(x,y) = BUF(data=x, ctrl=y) JOIN BUF(data=0, ctrl=¬y).
// When y=1 the gadget's output follows x; when y=0 it is forced to 0 — matching
// Boolean AND for {0,1}-valued inputs (spec.md §4.2).
func emitAndGadget(w *workspace, x, y, o int) {
	ny := w.alloc()
	c1 := w.alloc()
	c0 := w.alloc()
	b1 := w.alloc()
	b0 := w.alloc()

	w.one(c1)
	w.xor(y, c1, ny)
	w.zero(c0)
	w.buf(x, y, b1)
	w.buf(c0, ny, b0)
	w.join(b1, b0, o)
}
