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

// Command encoder partitions a tri-state netlist into windows and, per
// subcommand, either emits their QBF encodings or drives the full
// search-and-solve loop of spec.md §4.5: encoder <run|emit-only> <tri_state_in>.
package main

import (
	"os"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/getamis/tristate-qbf/cmd/encoder/emitonly"
	"github.com/getamis/tristate-qbf/cmd/encoder/run"
)

var cmd = &cobra.Command{
	Use:   "encoder",
	Short: "Partition a tri-state netlist and encode its windows as QBF",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
}

func init() {
	cmd.PersistentFlags().String("config", "", "config file path (defaults apply if empty)")
	cmd.PersistentFlags().String("out", ".", "directory to write subcircuit_<i>_<ell>.qdimacs files into")

	cmd.AddCommand(run.Cmd)
	cmd.AddCommand(emitonly.Cmd)
}

func main() {
	if err := cmd.Execute(); err != nil {
		log.Crit("encoder failed", "err", err)
		os.Exit(1)
	}
}
