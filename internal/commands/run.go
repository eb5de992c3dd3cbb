// internal/commands/run.go
package ioreport

import (
	"errors"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/mwiater/ioreport/internal/runner"
)

// runCmd executes the full benchmark pipeline: warm-up, the five
// standardized tests, and report compilation.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark suite and compile a report",
	Long: `Run probes the required external tools, primes the target with a warm-up
pass, drives the five standardized fio workloads, and compiles the
aggregated results into a rendered report under the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil || strings.TrimSpace(cfg.Target) == "" {
			return errors.New("no benchmark target configured; set \"target\" in the config file or pass --target")
		}
		if cfg.Debug {
			pp.Println(cfg)
		}
		return runner.New(*cfg).Run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
