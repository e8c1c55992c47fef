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
	"container/heap"

	"github.com/getamis/tristate-qbf/internal/netlist"
)

// indexHeap is a min-heap of gate indices, used to break topological-sort
// ties by original index (spec.md §4.3 step 1).
type indexHeap []int

func (h indexHeap) Len() int            { return len(h) }
func (h indexHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h indexHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *indexHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *indexHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// topologicalOrder returns a topological ordering of n.Gates, by original
// index, breaking ties by preferring the lowest original index among the
// currently-ready gates. Wires with no producing gate (primary inputs,
// constants) have in-degree zero and impose no ordering constraint.
func topologicalOrder(n *netlist.Netlist) ([]int, error) {
	numGates := len(n.Gates)

	producerOf := make(map[int]int, n.NumWires)
	for idx, g := range n.Gates {
		for _, o := range g.Outputs {
			producerOf[o] = idx
		}
	}

	deps := make([][]int, numGates)
	adj := make([][]int, numGates)
	inDegree := make([]int, numGates)

	for idx, g := range n.Gates {
		seen := make(map[int]bool)
		for _, in := range g.Inputs {
			p, ok := producerOf[in]
			if !ok || p == idx || seen[p] {
				continue
			}
			seen[p] = true
			deps[idx] = append(deps[idx], p)
		}
		inDegree[idx] = len(deps[idx])
	}
	for idx, ds := range deps {
		for _, p := range ds {
			adj[p] = append(adj[p], idx)
		}
	}

	ready := &indexHeap{}
	for idx := 0; idx < numGates; idx++ {
		if inDegree[idx] == 0 {
			heap.Push(ready, idx)
		}
	}

	order := make([]int, 0, numGates)
	for ready.Len() > 0 {
		idx := heap.Pop(ready).(int)
		order = append(order, idx)
		for _, dep := range adj[idx] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				heap.Push(ready, dep)
			}
		}
	}

	if len(order) != numGates {
		return nil, ErrCycle
	}
	return order, nil
}
