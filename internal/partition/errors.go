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

// Package partition slices a topologically-ordered tri-state netlist into
// contiguous windows, each annotated with its external input and output
// wires (spec.md §4.3). Only the topological variant is implemented; the
// reference's earlier connected-component/DFS prototype is out of scope
// per spec.md §9.
package partition

import "errors"

var (
	// ErrInvalidWindowSize is returned for windowSize < 1.
	ErrInvalidWindowSize = errors.New("partition: window size must be at least 1")
	// ErrCycle is returned if the gate dependency graph is not a DAG. This
	// should never happen for a netlist produced by internal/tristate; it
	// signals an invariant violation in the input.
	ErrCycle = errors.New("partition: gate dependency graph has a cycle")
)
