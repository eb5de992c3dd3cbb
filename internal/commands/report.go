// internal/commands/report.go
package ioreport

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/ioreport/internal/runner"
)

// reportCmd re-renders the document for a completed run from its
// persisted manifest, without re-running any workload.
var reportCmd = &cobra.Command{
	Use:   "report <runDir>",
	Short: "Recompile the report for an existing run directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runner.New(*GetConfig()).Recompile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
