// internal/appconfig/show.go
package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		cfg = &fallback
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Target:           %s\n", cfg.Target)
	fmt.Fprintf(out, "  Working set:      %s\n", cfg.WorkingSetSize())
	fmt.Fprintf(out, "  Runtime per test: %s\n", cfg.RuntimeDuration())
	fmt.Fprintf(out, "  Warm-up:          %s\n", cfg.WarmupDuration())
	fmt.Fprintf(out, "  Workers:          %d\n", cfg.WorkerCount())
	fmt.Fprintf(out, "  Queue depth:      %d\n", cfg.Depth())
	fmt.Fprintf(out, "  Direct I/O:       %v\n", cfg.Direct)
	fmt.Fprintf(out, "  Output directory: %s\n", cfg.OutputRoot())
	fmt.Fprintf(out, "  Report title:     %s\n", cfg.Title())
	fmt.Fprintf(out, "  Fio binary:       %s\n", cfg.FioPath())
	fmt.Fprintf(out, "  Pandoc binary:    %s\n", cfg.PandocPath())
	fmt.Fprintf(out, "  Log file:         %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Debug:            %v\n", cfg.Debug)
}
