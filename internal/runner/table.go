// internal/runner/table.go
package runner

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/ioreport/internal/report"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	tableBorderStyle = lipgloss.NewStyle().Faint(true)
)

// SummaryTable renders the per-test summaries as a terminal table.
func SummaryTable(entries []report.TestEntry) string {
	header := fmt.Sprintf("%-12s %12s %12s %10s %10s %12s %12s",
		"Test", "Read IOPS", "Write IOPS", "Read MB/s", "Write MB/s", "R avg (ms)", "W avg (ms)")

	rows := []string{
		tableHeaderStyle.Render(header),
		tableBorderStyle.Render(strings.Repeat("─", len(header))),
	}
	for _, e := range entries {
		s := e.Summary
		rows = append(rows, fmt.Sprintf("%-12s %12.0f %12.0f %10.2f %10.2f %12.3f %12.3f",
			e.Name, s.ReadIOPS, s.WriteIOPS, s.ReadMBps, s.WriteMBps,
			s.ReadAvgLatencyMs, s.WriteAvgLatencyMs))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
