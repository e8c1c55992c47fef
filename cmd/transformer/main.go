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

// Command transformer rewrites a Boolean netlist into an equivalent
// tri-state netlist (spec.md §4.2): transformer <in> <out>.
package main

import (
	"os"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/getamis/tristate-qbf/internal/logger"
	"github.com/getamis/tristate-qbf/internal/netlist"
	"github.com/getamis/tristate-qbf/internal/tristate"
)

var cmd = &cobra.Command{
	Use:   "transformer <in> <out>",
	Short: "Rewrite a Boolean netlist into an equivalent tri-state netlist",
	Args:  cobra.ExactArgs(2),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0], args[1])
	},
}

func init() {
	cmd.Flags().Bool("verify", false, "log a digest of the output netlist for idempotency comparison")
}

func run(in, out string) error {
	boolNetlist, err := netlist.Read(in, netlist.IsBooleanKind)
	if err != nil {
		return err
	}

	triNetlist, err := tristate.Transform(boolNetlist)
	if err != nil {
		return err
	}

	if err := netlist.WriteTriState(out, triNetlist); err != nil {
		return err
	}

	if viper.GetBool("verify") {
		logger.Logger().Info("transform complete", "in", in, "out", out, "digest", netlist.Digest(triNetlist))
	}
	return nil
}

func main() {
	if err := cmd.Execute(); err != nil {
		log.Crit("transformer failed", "err", err)
		os.Exit(1)
	}
}
