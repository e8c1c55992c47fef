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

// Package solver abstracts invoking an external QBF solver binary against
// a QDIMACS file and reading its verdict off the first line of stdout.
package solver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/getamis/tristate-qbf/internal/logger"
)

// Verdict is the solver's answer for one QDIMACS file.
type Verdict string

const (
	SAT     Verdict = "SAT"
	UNSAT   Verdict = "UNSAT"
	Unknown Verdict = "UNKNOWN"
)

// ErrSolverFailed is returned when the solver exits non-zero or its first
// output line is not one of SAT/UNSAT/UNKNOWN.
var ErrSolverFailed = errors.New("solver: run failed")

// Runner executes a QBF solver against a QDIMACS file and reports its
// verdict. Implementations must honor ctx cancellation.
type Runner interface {
	Run(ctx context.Context, qdimacsPath string) (Verdict, error)
}

// ProcessRunner invokes a solver binary as a subprocess, per spec.md §6's
// "execute the external solver capturing its first output line" contract.
type ProcessRunner struct {
	Path string
	Args []string
}

// NewProcessRunner constructs a ProcessRunner for the binary at path,
// invoked with the given extra arguments before the QDIMACS file path.
func NewProcessRunner(path string, args []string) *ProcessRunner {
	return &ProcessRunner{Path: path, Args: args}
}

// Run executes the solver against qdimacsPath and classifies its first
// stdout line as a Verdict. A non-zero exit, or a first line that is
// none of SAT/UNSAT/UNKNOWN, is reported as ErrSolverFailed.
func (r *ProcessRunner) Run(ctx context.Context, qdimacsPath string) (Verdict, error) {
	args := append(append([]string{}, r.Args...), qdimacsPath)
	cmd := exec.CommandContext(ctx, r.Path, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Unknown, fmt.Errorf("solver: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return Unknown, fmt.Errorf("%w: start %s: %v", ErrSolverFailed, r.Path, err)
	}

	scanner := bufio.NewScanner(stdout)
	var firstLine string
	if scanner.Scan() {
		firstLine = scanner.Text()
	}

	waitErr := cmd.Wait()

	logger.Logger().Debug("solver run complete", "path", r.Path, "input", qdimacsPath, "firstLine", firstLine)

	if waitErr != nil {
		return Unknown, fmt.Errorf("%w: %s: %v", ErrSolverFailed, r.Path, waitErr)
	}

	switch Verdict(firstLine) {
	case SAT:
		return SAT, nil
	case UNSAT:
		return UNSAT, nil
	case Unknown:
		return Unknown, nil
	default:
		return Unknown, fmt.Errorf("%w: unparseable output line %q from %s", ErrSolverFailed, firstLine, r.Path)
	}
}
