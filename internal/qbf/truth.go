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

// xorTruth implements spec §4.4.3's XOR table: Z on either input yields Z,
// otherwise standard Boolean XOR of the non-Z operands.
func xorTruth(a, b state) (state, bool) {
	if a == stateZ || b == stateZ {
		return stateZ, true
	}
	if a == b {
		return stateZero, true
	}
	return stateOne, true
}

// bufferTruth implements BUFFER(data, control): control=1 passes data
// through, control∈{0,Z} forces Z.
func bufferTruth(data, control state) (state, bool) {
	if control == stateOne {
		return data, true
	}
	return stateZ, true
}

// joinTruth implements JOIN's table. The (0,1) and (1,0) combinations are
// forbidden rather than truth-tabled (spec §4.4.3): the second return
// value is false and the caller must emit a forbidding clause instead of
// a consistency clause.
func joinTruth(a, b state) (state, bool) {
	switch {
	case a == stateZ && b == stateZ:
		return stateZ, true
	case a == stateZ:
		return b, true
	case b == stateZ:
		return a, true
	case a == stateZero && b == stateZero:
		return stateZero, true
	case a == stateOne && b == stateOne:
		return stateOne, true
	default:
		return 0, false
	}
}
