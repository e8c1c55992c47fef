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

// Package run implements "encoder run": the full per-window ℓ search of
// spec.md §4.5, driving a real solver.Runner.
package run

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/getamis/tristate-qbf/internal/config"
	"github.com/getamis/tristate-qbf/internal/driver"
	"github.com/getamis/tristate-qbf/internal/logger"
	"github.com/getamis/tristate-qbf/internal/netlist"
	"github.com/getamis/tristate-qbf/internal/partition"
	"github.com/getamis/tristate-qbf/internal/solver"
)

var Cmd = &cobra.Command{
	Use:   "run <tri_state_in>",
	Short: "Search every window's ℓ range and report the first SAT gate budget",
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
	if cfg.SolverPath == "" {
		return fmt.Errorf("run: solverPath must be set in the config file")
	}

	n, err := netlist.Read(path, netlist.IsTriStateKind)
	if err != nil {
		return err
	}

	windows, err := partition.Partition(n, cfg.WindowSize)
	if err != nil {
		return err
	}

	runner := solver.NewProcessRunner(cfg.SolverPath, cfg.SolverArgs)
	outcomes, err := driver.Run(context.Background(), windows, cfg.EllMin, cfg.EllMax, viper.GetString("out"), runner)
	if err != nil {
		return err
	}

	for _, o := range outcomes {
		if o.Satisfied {
			logger.Logger().Info("window solved", "window", o.WindowIndex, "ell", o.Ell)
		} else {
			logger.Logger().Warn("window unsolved", "window", o.WindowIndex)
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
