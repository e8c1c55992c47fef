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

// Package emitonly implements "encoder emit-only": emit every window's
// QDIMACS encodings across the configured ℓ range without invoking a
// solver (spec.md §4.4 only).
package emitonly

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/getamis/tristate-qbf/internal/config"
	"github.com/getamis/tristate-qbf/internal/logger"
	"github.com/getamis/tristate-qbf/internal/netlist"
	"github.com/getamis/tristate-qbf/internal/partition"
	"github.com/getamis/tristate-qbf/internal/qbf"
)

var Cmd = &cobra.Command{
	Use:   "emit-only <tri_state_in>",
	Short: "Emit each window's QDIMACS encodings without invoking a solver",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runE(args[0])
	},
}

func runE(path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	n, err := netlist.Read(path, netlist.IsTriStateKind)
	if err != nil {
		return err
	}

	windows, err := partition.Partition(n, cfg.WindowSize)
	if err != nil {
		return err
	}

	outDir := viper.GetString("out")
	for i, w := range windows {
		for ell := cfg.EllMin; ell <= cfg.EllMax; ell++ {
			formula, err := qbf.Encode(w, ell)
			if errors.Is(err, qbf.ErrTooFewGates) {
				// no encoding exists for an ell below the window's output count
				logger.Logger().Debug("skipped ell below window output count", "window", i, "ell", ell)
				continue
			}
			if err != nil {
				return fmt.Errorf("emit-only: window %d at ell=%d: %w", i, ell, err)
			}
			out := filepath.Join(outDir, fmt.Sprintf("subcircuit_%d_%d.qdimacs", i, ell))
			if err := qbf.WriteQDIMACS(out, formula); err != nil {
				return fmt.Errorf("emit-only: window %d at ell=%d: %w", i, ell, err)
			}
			logger.Logger().Debug("emitted window encoding", "window", i, "ell", ell, "path", out)
		}
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	path := viper.GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
