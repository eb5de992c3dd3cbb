// internal/commands/probe.go
package ioreport

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/ioreport/internal/render"
	"github.com/mwiater/ioreport/internal/runner"
)

// probeCmd checks for the external tools without touching the target.
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check for the required external tools",
	Long: `Probe looks up the workload generator, the document renderer, and the
candidate PDF engines on PATH and reports what a run would have available.
It exits non-zero when a required tool is missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		caps := render.Probe(cfg.FioPath(), cfg.PandocPath())
		runner.PrintCapabilities(caps)
		return caps.Check()
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
