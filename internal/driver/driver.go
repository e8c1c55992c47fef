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

// Package driver runs the thin outer loop of spec.md §4.5: for each
// window and each ℓ in a configured range, emit a QDIMACS file and ask a
// solver.Runner for a verdict, stopping a window at its first SAT.
package driver

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/getamis/tristate-qbf/internal/logger"
	"github.com/getamis/tristate-qbf/internal/partition"
	"github.com/getamis/tristate-qbf/internal/qbf"
	"github.com/getamis/tristate-qbf/internal/solver"
)

// Outcome reports the result of searching one window's ℓ range.
type Outcome struct {
	WindowIndex int
	Satisfied   bool
	Ell         int // the ℓ that succeeded; meaningless if !Satisfied
}

// Run drives windows through the encoder and solver, writing each
// candidate QDIMACS file under outDir as subcircuit_<i>_<ell>.qdimacs,
// per spec.md §4.5.
func Run(ctx context.Context, windows []*partition.Window, ellMin, ellMax int, outDir string, runner solver.Runner) ([]Outcome, error) {
	outcomes := make([]Outcome, len(windows))

	for i, w := range windows {
		outcomes[i] = Outcome{WindowIndex: i}

		for ell := ellMin; ell <= ellMax; ell++ {
			formula, err := qbf.Encode(w, ell)
			if errors.Is(err, qbf.ErrTooFewGates) {
				// m exceeds this ell; a larger ell in range may reach m,
				// so only this ell is skipped, not the window or the run.
				logger.Logger().Warn("window output count exceeds ell, skipping this ell", "window", i, "ell", ell)
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("driver: encode window %d at ell=%d: %w", i, ell, err)
			}

			path := filepath.Join(outDir, fmt.Sprintf("subcircuit_%d_%d.qdimacs", i, ell))
			if err := qbf.WriteQDIMACS(path, formula); err != nil {
				return nil, fmt.Errorf("driver: write window %d at ell=%d: %w", i, ell, err)
			}

			verdict, err := runner.Run(ctx, path)
			if err != nil {
				return nil, fmt.Errorf("driver: solve window %d at ell=%d: %w", i, ell, err)
			}

			digest, digestErr := qbf.FileDigest(path)
			if digestErr != nil {
				logger.Logger().Warn("could not digest qdimacs file", "window", i, "ell", ell, "err", digestErr)
			}
			logger.Logger().Info("window search step", "window", i, "ell", ell, "verdict", verdict, "digest", digest)
			if verdict == solver.SAT {
				outcomes[i].Satisfied = true
				outcomes[i].Ell = ell
				break
			}
		}

		if !outcomes[i].Satisfied {
			logger.Logger().Warn("window exhausted ell range without SAT", "window", i, "ellMin", ellMin, "ellMax", ellMax)
		}
	}

	return outcomes, nil
}
