// internal/report/document.go
// Package report assembles the composed benchmark document. It performs no
// numeric computation: summaries and series arrive fully reduced, and the
// compiler only arranges them into ordered sections.
package report

import (
	"fmt"
	"strings"

	"github.com/mwiater/ioreport/internal/metrics"
)

// KV is one ordered label/value pair in a document table.
type KV struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Chart references one rendered chart image by its path relative to the
// document source.
type Chart struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

// TestEntry is one test's contribution to the document: its summary plus
// whichever charts were rendered for it. Tests with missing chart kinds are
// rendered with those charts omitted.
type TestEntry struct {
	Name    string              `json:"name"`
	Summary metrics.TestSummary `json:"summary"`
	Charts  []Chart             `json:"charts,omitempty"`
}

// Section is one block of the composed document.
type Section struct {
	Heading string
	Lines   []string
}

// Document is the ordered section sequence handed to the external renderer.
type Document struct {
	Title    string
	Sections []Section
}

// Markdown renders the document body.
func (d *Document) Markdown() string {
	var sb strings.Builder
	sb.WriteString("# " + d.Title + "\n")
	for _, section := range d.Sections {
		sb.WriteString("\n## " + section.Heading + "\n\n")
		for _, line := range section.Lines {
			sb.WriteString(line + "\n")
		}
	}
	return sb.String()
}

// TestSections counts the per-test subsections, used to verify the
// document covers every supplied test.
func (d *Document) TestSections() int {
	count := 0
	for _, section := range d.Sections {
		for _, line := range section.Lines {
			if strings.HasPrefix(line, "### ") {
				count++
			}
		}
	}
	return count
}

func kvTable(rows []KV) []string {
	lines := []string{"| | |", "|---|---|"}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("| %s | %s |", row.Key, row.Value))
	}
	return lines
}

func summaryTable(s metrics.TestSummary) []string {
	return []string{
		"| Metric | Read | Write |",
		"|---|---|---|",
		fmt.Sprintf("| IOPS | %.0f | %.0f |", s.ReadIOPS, s.WriteIOPS),
		fmt.Sprintf("| Throughput (MB/s) | %.2f | %.2f |", s.ReadMBps, s.WriteMBps),
		fmt.Sprintf("| Avg latency (ms) | %.3f | %.3f |", s.ReadAvgLatencyMs, s.WriteAvgLatencyMs),
		fmt.Sprintf("| p95 latency (ms) | %.3f | %.3f |", s.ReadP95LatencyMs, s.WriteP95LatencyMs),
	}
}
