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

// Package netlist parses and serialises the textual netlist format shared by
// the Boolean circuit (input to the transformer) and the tri-state circuit
// (output of the transformer, input to the partitioner/encoder).
package netlist

// Kind identifies a gate's function. The same textual grammar carries both
// Boolean and tri-state netlists; which Kind values are legal in a given
// netlist is enforced by the caller (see IsBooleanKind/IsTriStateKind).
type Kind string

// Boolean gate kinds (spec.md §3).
const (
	XOR  Kind = "XOR"
	AND  Kind = "AND"
	INV  Kind = "INV"
	EQ   Kind = "EQ"
	EQW  Kind = "EQW"
	MAND Kind = "MAND"
)

// Tri-state gate kinds (spec.md §3).
const (
	Buffer    Kind = "BUFFER"
	Join      Kind = "JOIN"
	ConstZero Kind = "CONST_ZERO"
	ConstOne  Kind = "CONST_ONE"
)

// Gate is one line of a netlist: an ordered list of input wires, an ordered
// list of output wires, and a symbolic kind.
type Gate struct {
	Inputs  []int
	Outputs []int
	Kind    Kind
}

// NumInputs returns len(g.Inputs), mirroring the explicit "numInputs" token
// the text format carries per gate line.
func (g *Gate) NumInputs() int { return len(g.Inputs) }

// NumOutputs returns len(g.Outputs).
func (g *Gate) NumOutputs() int { return len(g.Outputs) }

// Netlist is the parsed, in-memory form of the textual format of spec.md §4.1
// and §6: a gate list plus the primary input/output wire-width declarations.
type Netlist struct {
	NumWires    int
	InputSizes  []int // niv widths, in wires, summing to the primary input count
	OutputSizes []int // nov widths, in wires, summing to the primary output count
	Gates       []*Gate
}

// NumPrimaryInputs sums InputSizes.
func (n *Netlist) NumPrimaryInputs() int {
	total := 0
	for _, w := range n.InputSizes {
		total += w
	}
	return total
}

// NumPrimaryOutputs sums OutputSizes.
func (n *Netlist) NumPrimaryOutputs() int {
	total := 0
	for _, w := range n.OutputSizes {
		total += w
	}
	return total
}

// PrimaryOutputWires returns the set of wire ids designated as primary
// outputs: the last NumPrimaryOutputs() ids of the netlist's wire space.
func (n *Netlist) PrimaryOutputWires() map[int]bool {
	count := n.NumPrimaryOutputs()
	out := make(map[int]bool, count)
	for w := n.NumWires - count; w < n.NumWires; w++ {
		out[w] = true
	}
	return out
}

var booleanKinds = map[Kind]bool{
	XOR: true, AND: true, INV: true, EQ: true, EQW: true, MAND: true,
}

var triStateKinds = map[Kind]bool{
	XOR: true, Buffer: true, Join: true, ConstZero: true, ConstOne: true,
}

// IsBooleanKind reports whether k is a valid Boolean netlist gate kind.
func IsBooleanKind(k Kind) bool { return booleanKinds[k] }

// IsTriStateKind reports whether k is a valid tri-state netlist gate kind.
func IsTriStateKind(k Kind) bool { return triStateKinds[k] }
