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

package partition

import (
	"sort"

	"github.com/getamis/tristate-qbf/internal/logger"
	"github.com/getamis/tristate-qbf/internal/netlist"
)

// Window is a contiguous slice of the topologically-ordered gate list,
// together with its external input and output wires (spec.md §3).
type Window struct {
	Gates           []*netlist.Gate
	ExternalInputs  []int
	ExternalOutputs []int
}

// Partition slices n into contiguous windows of at most windowSize gates
// each, in topological order, per spec.md §4.3.
func Partition(n *netlist.Netlist, windowSize int) ([]*Window, error) {
	if windowSize < 1 {
		return nil, ErrInvalidWindowSize
	}

	order, err := topologicalOrder(n)
	if err != nil {
		return nil, err
	}

	consumers := consumersByWire(n)
	primaryOutputs := n.PrimaryOutputWires()

	var windows []*Window
	acc := newAccumulator()

	for _, idx := range order {
		acc.add(idx, n.Gates[idx])
		if acc.len() == windowSize {
			windows = append(windows, acc.close(consumers, primaryOutputs))
			acc = newAccumulator()
		}
	}
	if acc.len() > 0 {
		windows = append(windows, acc.close(consumers, primaryOutputs))
	}

	logger.Logger().Debug("partitioned netlist", "gates", len(n.Gates), "windows", len(windows), "windowSize", windowSize)
	return windows, nil
}

// consumersByWire maps each wire to the original indices of every gate that
// consumes it as an input.
func consumersByWire(n *netlist.Netlist) map[int][]int {
	consumers := make(map[int][]int)
	for idx, g := range n.Gates {
		for _, in := range g.Inputs {
			consumers[in] = append(consumers[in], idx)
		}
	}
	return consumers
}

type accumulator struct {
	gateIdx  []int
	gates    []*netlist.Gate
	produced map[int]bool
	external map[int]bool
}

func newAccumulator() *accumulator {
	return &accumulator{produced: map[int]bool{}, external: map[int]bool{}}
}

func (a *accumulator) len() int { return len(a.gates) }

func (a *accumulator) add(idx int, g *netlist.Gate) {
	for _, in := range g.Inputs {
		if !a.produced[in] {
			a.external[in] = true
		}
	}
	a.gateIdx = append(a.gateIdx, idx)
	a.gates = append(a.gates, g)
	for _, o := range g.Outputs {
		a.produced[o] = true
	}
}

// close computes the accumulator's external-output set (spec.md §4.3 step 4
// and the dangling-wire edge case) and returns the finished Window.
func (a *accumulator) close(consumers map[int][]int, primaryOutputs map[int]bool) *Window {
	inside := make(map[int]bool, len(a.gateIdx))
	for _, idx := range a.gateIdx {
		inside[idx] = true
	}

	extOut := map[int]bool{}
	for w := range a.produced {
		cons := consumers[w]
		consumedOutside := false
		for _, ci := range cons {
			if !inside[ci] {
				consumedOutside = true
				break
			}
		}
		if consumedOutside || primaryOutputs[w] {
			extOut[w] = true
		}
	}

	return &Window{
		Gates:           a.gates,
		ExternalInputs:  sortedKeys(a.external),
		ExternalOutputs: sortedKeys(extOut),
	}
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
