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
	"bufio"
	"fmt"
	"os"
	"strconv"
)

// WriteQDIMACS emits f to path in QDIMACS form: a header line, the
// quantifier block in ∃S∃F ∀I ∃G order, then one line per clause
// (spec §4.4.4).
func WriteQDIMACS(path string, f *Formula) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("qbf: create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("qbf: close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(file)

	fmt.Fprintf(w, "p cnf %d %d\n", f.NumVars, len(f.Clauses))
	if err := writeQuantifierLine(w, 'e', f.Exists1); err != nil {
		return err
	}
	if err := writeQuantifierLine(w, 'a', f.ForAll); err != nil {
		return err
	}
	if err := writeQuantifierLine(w, 'e', f.Exists2); err != nil {
		return err
	}
	for _, clause := range f.Clauses {
		if err := writeClause(w, clause); err != nil {
			return err
		}
	}

	return w.Flush()
}

func writeQuantifierLine(w *bufio.Writer, tag byte, vars []int) error {
	if _, err := w.WriteString(string(tag) + " "); err != nil {
		return err
	}
	for _, v := range vars {
		if _, err := w.WriteString(strconv.Itoa(v)); err != nil {
			return err
		}
		if _, err := w.WriteString(" "); err != nil {
			return err
		}
	}
	_, err := w.WriteString("0\n")
	return err
}

func writeClause(w *bufio.Writer, clause []int) error {
	for _, lit := range clause {
		if _, err := w.WriteString(strconv.Itoa(lit)); err != nil {
			return err
		}
		if _, err := w.WriteString(" "); err != nil {
			return err
		}
	}
	_, err := w.WriteString("0\n")
	return err
}
