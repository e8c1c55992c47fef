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

package netlist

import (
	"bufio"
	"fmt"
	"os"
)

// WriteTriState serialises a tri-state netlist to path using the grammar of
// spec.md §6: two-input gates as "2 1 a b o KIND", zero-input gates as
// "0 1 o KIND".
func WriteTriState(path string, n *Netlist) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d %d\n", len(n.Gates), n.NumWires)
	writeWidths(w, n.InputSizes)
	writeWidths(w, n.OutputSizes)
	for _, g := range n.Gates {
		switch len(g.Inputs) {
		case 2:
			fmt.Fprintf(w, "2 1 %d %d %d %s\n", g.Inputs[0], g.Inputs[1], g.Outputs[0], g.Kind)
		case 0:
			fmt.Fprintf(w, "0 1 %d %s\n", g.Outputs[0], g.Kind)
		default:
			return fmt.Errorf("netlist: tri-state gate %s has %d inputs, want 0 or 2", g.Kind, len(g.Inputs))
		}
	}
	return w.Flush()
}

func writeWidths(w *bufio.Writer, widths []int) {
	fmt.Fprintf(w, "%d", len(widths))
	for _, n := range widths {
		fmt.Fprintf(w, " %d", n)
	}
	w.WriteString("\n")
}
