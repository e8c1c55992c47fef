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

package qbf

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/getamis/tristate-qbf/internal/netlist"
	"github.com/getamis/tristate-qbf/internal/partition"
)

// selCount is the number of selection variables allocated across ell
// gates given n external inputs (two pins, each with n+i candidates).
func selCount(n, ell int) int {
	total := 0
	for i := 0; i < ell; i++ {
		total += 2 * (n + i)
	}
	return total
}

var _ = Describe("Encode", func() {
	It("encodes a single CONST_ONE gate with zero selection variables (scenario 3)", func() {
		w := &partition.Window{
			Gates:           []*netlist.Gate{{Outputs: []int{5}, Kind: netlist.ConstOne}},
			ExternalInputs:  nil,
			ExternalOutputs: []int{5},
		}
		f, err := Encode(w, 1)
		Expect(err).To(BeNil())

		Expect(len(f.Exists1) - 5).To(Equal(selCount(0, 1)))
		Expect(f.Exists1).To(HaveLen(5))
		Expect(f.OutputGates).To(Equal([]int{0}))

		constOne := f.Exists1[functionIndex(fnConstOne)]
		out := wireVars{v1: 1, v2: 2}
		Expect(f.Clauses).To(ContainElement([]int{-constOne, -out.v1}))
		Expect(f.Clauses).To(ContainElement([]int{-constOne, out.v2}))
	})

	It("admits XOR as a structurally valid single-gate encoding (scenario 4)", func() {
		w := &partition.Window{
			Gates:           []*netlist.Gate{{Inputs: []int{0, 1}, Outputs: []int{2}, Kind: netlist.XOR}},
			ExternalInputs:  []int{0, 1},
			ExternalOutputs: []int{2},
		}
		f, err := Encode(w, 1)
		Expect(err).To(BeNil())

		wantVars := 2*2 + 2*1 + selCount(2, 1) + 5*1
		Expect(f.NumVars).To(Equal(wantVars))
	})

	It("encodes a two-gate XOR chain at ell=2 and ell=1 without rejecting either structurally (scenario 5)", func() {
		// out = (a XOR b) XOR c. This encoder only checks well-formedness,
		// not equivalence to the window's reference semantics (see
		// DESIGN.md); distinguishing SAT at ell=2 from UNSAT at ell=1
		// requires an equivalence family this spec does not define.
		w := &partition.Window{
			Gates: []*netlist.Gate{
				{Inputs: []int{0, 1}, Outputs: []int{3}, Kind: netlist.XOR},
				{Inputs: []int{3, 2}, Outputs: []int{4}, Kind: netlist.XOR},
			},
			ExternalInputs:  []int{0, 1, 2},
			ExternalOutputs: []int{4},
		}
		f2, err := Encode(w, 2)
		Expect(err).To(BeNil())
		Expect(f2.OutputGates).To(Equal([]int{1}))

		_, err = Encode(w, 1)
		Expect(err).To(BeNil())
	})

	It("rejects a gate budget smaller than the window's output count", func() {
		w := &partition.Window{
			Gates: []*netlist.Gate{
				{Outputs: []int{0}, Kind: netlist.ConstZero},
				{Outputs: []int{1}, Kind: netlist.ConstOne},
			},
			ExternalInputs:  nil,
			ExternalOutputs: []int{0, 1},
		}
		_, err := Encode(w, 1)
		Expect(err).To(MatchError(ErrTooFewGates))
	})

	It("emits an exactly-one selection clause and an exactly-one function clause per gate (P5)", func() {
		w := &partition.Window{
			Gates:           []*netlist.Gate{{Inputs: []int{0, 1}, Outputs: []int{2}, Kind: netlist.XOR}},
			ExternalInputs:  []int{0, 1},
			ExternalOutputs: []int{2},
		}
		f, err := Encode(w, 1)
		Expect(err).To(BeNil())

		sel := f.Exists1[:selCount(2, 1)]
		Expect(sel).To(HaveLen(4))

		for p := 0; p < 2; p++ {
			group := append([]int{}, sel[p*2:p*2+2]...)
			Expect(f.Clauses).To(ContainElement(group))
			Expect(f.Clauses).To(ContainElement([]int{-group[0], -group[1]}))
		}

		fn := append([]int{}, f.Exists1[selCount(2, 1):]...)
		Expect(fn).To(HaveLen(5))
		Expect(f.Clauses).To(ContainElement(fn))
	})

	It("never offers a candidate source that names a gate at or after its own index (P6)", func() {
		n, ell := 2, 4
		for i := 0; i < ell; i++ {
			for t := 0; t < n+i; t++ {
				Expect(t - n).To(BeNumerically("<", i))
			}
		}
	})

	DescribeTable("forbids lexicographically-decreasing consecutive function tags (P7)",
		func(fPrev, fCurr int) {
			w := &partition.Window{
				Gates: []*netlist.Gate{
					{Inputs: []int{0, 1}, Outputs: []int{2}, Kind: netlist.XOR},
					{Inputs: []int{2, 0}, Outputs: []int{3}, Kind: netlist.XOR},
				},
				ExternalInputs:  []int{0, 1},
				ExternalOutputs: []int{3},
			}
			f, err := Encode(w, 2)
			Expect(err).To(BeNil())

			fn := f.Exists1[selCount(2, 2):]
			fnGate0, fnGate1 := fn[0:5], fn[5:10]
			Expect(f.Clauses).To(ContainElement([]int{-fnGate0[fPrev], -fnGate1[fCurr]}))
		},
		Entry("BUFFER then XOR", 1, 0),
		Entry("JOIN then BUFFER", 2, 1),
		Entry("CONST_ZERO then JOIN", 3, 2),
		Entry("CONST_ONE then CONST_ZERO", 4, 3),
	)

	It("forbids JOIN's (0,1) and (1,0) input combination via an explicit clause instead of a consistency clause", func() {
		w := &partition.Window{
			Gates:           []*netlist.Gate{{Inputs: []int{0, 1}, Outputs: []int{2}, Kind: netlist.Join}},
			ExternalInputs:  []int{0, 1},
			ExternalOutputs: []int{2},
		}
		f, err := Encode(w, 1)
		Expect(err).To(BeNil())

		joinFunc := f.Exists1[selCount(2, 1)+functionIndex(fnJOIN)]
		sel0 := f.Exists1[0] // pin 0, candidate t=0
		sel1 := f.Exists1[3] // pin 1, candidate t=1
		zero := wireVars{v1: 1, v2: 2} // external input 0
		one := wireVars{v1: 3, v2: 4}  // external input 1

		z01, z02 := stateLits(zero, stateZero)
		o11, o12 := stateLits(one, stateOne)
		forbidding := []int{-joinFunc, -sel0, -sel1, z01, z02, o11, o12}
		Expect(f.Clauses).To(ContainElement(forbidding))
	})
})
