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
	"github.com/getamis/tristate-qbf/internal/logger"
	"github.com/getamis/tristate-qbf/internal/partition"
)

// Formula is a prenex quantified Boolean formula in CNF: a fixed
// quantifier prefix ∃S ∃F ∀I ∃G followed by a clause set.
type Formula struct {
	NumVars int
	Exists1 []int // S ∪ F, in allocation order
	ForAll  []int // I
	Exists2 []int // G
	Clauses [][]int

	// OutputGates holds, for each of the window's external outputs in
	// order, the synthesised gate index designated to produce it.
	OutputGates []int
}

// encoder owns the variable counter and lookup tables for one Encode call.
type encoder struct {
	counter int

	candidates []wireVars // external inputs, then each synthesised gate's output, in order
	selVar     [][2][]int // selVar[i][pin][t]
	funcVar    [][]int    // funcVar[i][functionOrder index]

	clauses [][]int
}

func (e *encoder) fresh() int {
	e.counter++
	return e.counter
}

func (e *encoder) freshPair() wireVars {
	return wireVars{v1: e.fresh(), v2: e.fresh()}
}

func (e *encoder) addClause(lits []int) {
	e.clauses = append(e.clauses, lits)
}

// lit returns the positive variable if bit is 1, its negation otherwise,
// per spec §4.4.3's literal convention.
func lit(v, bit int) int {
	if bit == 1 {
		return v
	}
	return -v
}

// outLit is lit with the sign inverted, used for the consequent of a
// function-consistency clause (spec §4.4.3: "for lit_out the sign is
// inverted").
func outLit(v, bit int) int {
	return -lit(v, bit)
}

func stateLits(w wireVars, s state) (int, int) {
	b1, b2 := s.bits()
	return lit(w.v1, b1), lit(w.v2, b2)
}

// Encode builds the QBF encoding for w with gate budget ell, per spec
// §4.4.1–§4.4.4.
func Encode(w *partition.Window, ell int) (*Formula, error) {
	m := len(w.ExternalOutputs)
	if ell < m {
		return nil, ErrTooFewGates
	}

	e := &encoder{}
	n := len(w.ExternalInputs)

	// 1. external-input variables (I).
	var inputVars []int
	for range w.ExternalInputs {
		wv := e.freshPair()
		e.candidates = append(e.candidates, wv)
		inputVars = append(inputVars, wv.v1, wv.v2)
	}

	// 2. synthesised gate-value variables (G).
	var gateVars []int
	for i := 0; i < ell; i++ {
		wv := e.freshPair()
		e.candidates = append(e.candidates, wv)
		gateVars = append(gateVars, wv.v1, wv.v2)
	}

	// 3. selection variables (S).
	e.selVar = make([][2][]int, ell)
	var selVars []int
	for i := 0; i < ell; i++ {
		numCandidates := n + i
		for p := 0; p < 2; p++ {
			e.selVar[i][p] = make([]int, numCandidates)
			for t := 0; t < numCandidates; t++ {
				v := e.fresh()
				e.selVar[i][p][t] = v
				selVars = append(selVars, v)
			}
		}
	}

	// 4. function variables (F).
	e.funcVar = make([][]int, ell)
	var funcVars []int
	for i := 0; i < ell; i++ {
		e.funcVar[i] = make([]int, len(functionOrder))
		for fi := range functionOrder {
			v := e.fresh()
			e.funcVar[i][fi] = v
			funcVars = append(funcVars, v)
		}
	}

	e.emitF1(n, ell)
	e.emitF2(ell)
	e.emitF3(ell)
	if err := e.emitF4(n, ell); err != nil {
		return nil, err
	}
	e.emitF5(n, ell)
	e.emitF6(ell)

	outputGates := make([]int, m)
	for j := 0; j < m; j++ {
		outputGates[j] = ell - m + j
	}

	f := &Formula{
		NumVars:     e.counter,
		Exists1:     append(append([]int{}, selVars...), funcVars...),
		ForAll:      inputVars,
		Exists2:     gateVars,
		Clauses:     e.clauses,
		OutputGates: outputGates,
	}

	logger.Logger().Debug("encoded window",
		"externalInputs", n, "ell", ell, "outputs", m,
		"vars", f.NumVars, "clauses", len(f.Clauses))
	return f, nil
}

// emitF1 forbids the illegal state on every wire variable, input and
// gate-value alike (spec §4.4.3, the "applies to every wire" resolution).
func (e *encoder) emitF1(n, ell int) {
	for _, wv := range e.candidates[:n+ell] {
		e.addClause([]int{-wv.v1, -wv.v2})
	}
}

// emitF2 enforces exactly one selected candidate source per (gate, pin).
func (e *encoder) emitF2(ell int) {
	for i := 0; i < ell; i++ {
		for p := 0; p < 2; p++ {
			e.addExactlyOne(e.selVar[i][p])
		}
	}
}

// emitF3 enforces exactly one function per gate.
func (e *encoder) emitF3(ell int) {
	for i := 0; i < ell; i++ {
		e.addExactlyOne(e.funcVar[i])
	}
}

func (e *encoder) addExactlyOne(vars []int) {
	atLeastOne := make([]int, len(vars))
	copy(atLeastOne, vars)
	e.addClause(atLeastOne)
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			e.addClause([]int{-vars[i], -vars[j]})
		}
	}
}

func functionIndex(f functionKind) int {
	for i, g := range functionOrder {
		if g == f {
			return i
		}
	}
	panic("qbf: unknown function kind")
}

// emitF4 ties each gate's output value to its selected function and
// (for two-input functions) its selected sources, per spec §4.4.3's
// truth tables.
func (e *encoder) emitF4(n, ell int) error {
	for i := 0; i < ell; i++ {
		out := e.candidates[n+i]

		constZero := e.funcVar[i][functionIndex(fnConstZero)]
		e.addClause([]int{-constZero, -out.v1})
		e.addClause([]int{-constZero, -out.v2})

		constOne := e.funcVar[i][functionIndex(fnConstOne)]
		e.addClause([]int{-constOne, -out.v1})
		e.addClause([]int{-constOne, out.v2})

		numCandidates := n + i
		for t1 := 0; t1 < numCandidates; t1++ {
			sel1 := e.selVar[i][0][t1]
			src1 := e.candidates[t1]
			for t2 := 0; t2 < numCandidates; t2++ {
				sel2 := e.selVar[i][1][t2]
				src2 := e.candidates[t2]

				e.addTwoInputConsistency(e.funcVar[i][functionIndex(fnXOR)], sel1, sel2, src1, src2, out, xorTruth)
				e.addTwoInputConsistency(e.funcVar[i][functionIndex(fnBUFFER)], sel1, sel2, src1, src2, out, bufferTruth)
				e.addTwoInputConsistency(e.funcVar[i][functionIndex(fnJOIN)], sel1, sel2, src1, src2, out, joinTruth)
			}
		}
	}
	return nil
}

// addTwoInputConsistency emits, for every legal (a, b) pin-state pair, the
// clause forcing out to the truth-table result when funcVar, sel1 and
// sel2 all hold. Combinations the truth function marks illegal (JOIN's
// (0,1)/(1,0)) get a forbidding clause with no consequent instead.
func (e *encoder) addTwoInputConsistency(funcVar, sel1, sel2 int, src1, src2, out wireVars, truth func(a, b state) (state, bool)) {
	for _, a := range legalStates {
		for _, b := range legalStates {
			a1, a2 := stateLits(src1, a)
			b1, b2 := stateLits(src2, b)
			antecedent := []int{-funcVar, -sel1, -sel2, a1, a2, b1, b2}

			result, ok := truth(a, b)
			if !ok {
				e.addClause(append([]int{}, antecedent...))
				continue
			}

			o1, o2 := result.bits()
			e.addClause(append(append([]int{}, antecedent...), outLit(out.v1, o1)))
			e.addClause(append(append([]int{}, antecedent...), outLit(out.v2, o2)))
		}
	}
}

// emitF5 forbids any selection that would reference the output of gate j
// with j >= i — acyclicity. Because candidates for gate i are, by
// construction, drawn only from external inputs and gates 0..i-1
// (§4.4.1 step 3), no candidate index ever satisfies j >= i; the family
// is emitted for completeness and correctness under future relaxations
// of the candidate set, and is a no-op today.
func (e *encoder) emitF5(n, ell int) {
	for i := 0; i < ell; i++ {
		for p := 0; p < 2; p++ {
			for t, v := range e.selVar[i][p] {
				sourceGate := t - n
				if sourceGate >= i {
					e.addClause([]int{-v})
				}
			}
		}
	}
}

// emitF6 forbids gate i from holding a lexicographically smaller
// function tag than gate i-1, collapsing permutations of equivalent
// gate sequences.
func (e *encoder) emitF6(ell int) {
	for i := 1; i < ell; i++ {
		for fPrev := range functionOrder {
			for fCurr := range functionOrder {
				if fCurr < fPrev {
					e.addClause([]int{-e.funcVar[i-1][fPrev], -e.funcVar[i][fCurr]})
				}
			}
		}
	}
}
