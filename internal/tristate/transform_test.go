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
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/getamis/tristate-qbf/internal/netlist"
)

func singleGateNetlist(numWires int, inputs, outputs []int, kind netlist.Kind) *netlist.Netlist {
	return &netlist.Netlist{
		NumWires:    numWires,
		InputSizes:  []int{len(inputs)},
		OutputSizes: []int{len(outputs)},
		Gates: []*netlist.Gate{
			{Inputs: inputs, Outputs: outputs, Kind: kind},
		},
	}
}

var _ = Describe("Transform", func() {
	DescribeTable("AND gadget over Boolean inputs (P1, scenario 1)",
		func(x, y state, want state) {
			n := singleGateNetlist(3, []int{0, 1}, []int{2}, netlist.AND)
			got, err := Transform(n)
			Expect(err).To(BeNil())
			Expect(got.Gates).To(HaveLen(6))
			Expect(got.NumWires).To(Equal(8)) // wires 3..7 fresh, 0..2 original

			out := simulate(got, map[int]state{0: x, 1: y})
			Expect(out[2]).To(Equal(want))
		},
		Entry("0 AND 0", state0, state0, state0),
		Entry("0 AND 1", state0, state1, state0),
		Entry("1 AND 0", state1, state0, state0),
		Entry("1 AND 1", state1, state1, state1),
	)

	DescribeTable("INV gadget over Boolean inputs (P1, scenario 2)",
		func(a state, want state) {
			n := singleGateNetlist(2, []int{0}, []int{1}, netlist.INV)
			got, err := Transform(n)
			Expect(err).To(BeNil())
			Expect(got.Gates).To(HaveLen(2))
			Expect(got.NumWires).To(Equal(3))

			out := simulate(got, map[int]state{0: a})
			Expect(out[1]).To(Equal(want))
		},
		Entry("INV 0", state0, state1),
		Entry("INV 1", state1, state0),
	)

	DescribeTable("EQ/EQW gadget is a controlled passthrough",
		func(kind netlist.Kind) {
			n := singleGateNetlist(2, []int{0}, []int{1}, kind)
			got, err := Transform(n)
			Expect(err).To(BeNil())
			Expect(got.Gates).To(HaveLen(2))

			for _, a := range []state{state0, state1} {
				out := simulate(got, map[int]state{0: a})
				Expect(out[1]).To(Equal(a))
			}
		},
		Entry("EQ", netlist.EQ),
		Entry("EQW", netlist.EQW),
	)

	DescribeTable("XOR gadget is pass-through tri-state XOR",
		func(a, b state, want state) {
			n := singleGateNetlist(3, []int{0, 1}, []int{2}, netlist.XOR)
			got, err := Transform(n)
			Expect(err).To(BeNil())
			Expect(got.Gates).To(HaveLen(1))
			Expect(got.Gates[0].Kind).To(Equal(netlist.XOR))

			out := simulate(got, map[int]state{0: a, 1: b})
			Expect(out[2]).To(Equal(want))
		},
		Entry("0 XOR 0", state0, state0, state0),
		Entry("0 XOR 1", state0, state1, state1),
		Entry("1 XOR 0", state1, state0, state1),
		Entry("1 XOR 1", state1, state1, state0),
	)

	It("rewrites MAND as n independent AND gadgets with fresh wires per instance", func() {
		// 2-wide MAND: inputs [x0,x1,y0,y1] -> outputs [o0,o1], o_i = x_i AND y_i.
		n := singleGateNetlist(6, []int{0, 1, 2, 3}, []int{4, 5}, netlist.MAND)
		got, err := Transform(n)
		Expect(err).To(BeNil())
		Expect(got.Gates).To(HaveLen(12)) // 6 gates per AND instance * 2
		Expect(got.NumWires).To(Equal(16))

		out := simulate(got, map[int]state{0: state1, 1: state0, 2: state1, 3: state1})
		Expect(out[4]).To(Equal(state1)) // x0=1 AND y0=1
		Expect(out[5]).To(Equal(state0)) // x1=0 AND y1=1
	})

	It("rejects a gate whose arity doesn't match its kind", func() {
		n := singleGateNetlist(3, []int{0, 1, 2}, []int{2}, netlist.AND)
		_, err := Transform(n)
		Expect(err).To(MatchError(ErrArityMismatch))
	})

	It("rejects an unsupported gate kind", func() {
		n := singleGateNetlist(3, []int{0, 1}, []int{2}, netlist.Kind("NAND"))
		_, err := Transform(n)
		Expect(err).To(MatchError(ErrUnsupportedKind))
	})

	It("allocates fresh wire ids strictly above the source count, each used exactly once as an output (P2)", func() {
		n := &netlist.Netlist{
			NumWires:    5,
			InputSizes:  []int{4},
			OutputSizes: []int{2},
			Gates: []*netlist.Gate{
				{Inputs: []int{0, 1}, Outputs: []int{4}, Kind: netlist.AND},
				{Inputs: []int{2}, Outputs: []int{0}, Kind: netlist.INV},
			},
		}
		got, err := Transform(n)
		Expect(err).To(BeNil())

		seen := map[int]int{}
		for _, g := range got.Gates {
			for _, o := range g.Outputs {
				seen[o]++
			}
		}
		for w, count := range seen {
			Expect(count).To(Equal(1), "wire %d produced by more than one gate", w)
		}
		for w := n.NumWires; w < got.NumWires; w++ {
			Expect(seen[w]).To(Equal(1), "fresh wire %d never produced", w)
		}
	})
})
