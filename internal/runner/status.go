// internal/runner/status.go
package runner

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/mwiater/ioreport/internal/logging"
	"github.com/mwiater/ioreport/internal/render"
)

var (
	okMark   = color.New(color.FgGreen, color.Bold).Sprint("✓")
	failMark = color.New(color.FgRed, color.Bold).Sprint("✗")
	dimText  = color.New(color.Faint).SprintFunc()
)

func stageDone(stage, detail string) {
	fmt.Printf("%s %-12s %s\n", okMark, stage, dimText(detail))
	logging.LogEvent("[STAGE] %s: %s", stage, detail)
}

func stageFail(stage string, err error) {
	fmt.Printf("%s %-12s %v\n", failMark, stage, err)
	logging.LogEvent("[STAGE] %s failed: %v", stage, err)
}

// PrintCapabilities lists each external collaborator with its probe result.
func PrintCapabilities(caps render.Capabilities) {
	for _, c := range caps.List() {
		mark := okMark
		if !c.Available {
			mark = failMark
		}
		fmt.Printf("%s %s\n", mark, c.Name)
	}
}
