// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/katalvlaran/lvcplx/scenario"
	"github.com/spf13/cobra"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the operation keys a scenario step may use",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range scenario.OpNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(opsCmd)
}
