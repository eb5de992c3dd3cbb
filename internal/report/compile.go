// internal/report/compile.go
package report

import "fmt"

// Compile assembles the document from fully reduced inputs. It is
// deterministic and order-preserving: section order follows the supplied
// test sequence, which in turn follows execution order.
func Compile(title string, system, params []KV, tests []TestEntry, notes []string) *Document {
	doc := &Document{Title: title}

	doc.Sections = append(doc.Sections, Section{
		Heading: "System Information",
		Lines:   kvTable(system),
	})
	doc.Sections = append(doc.Sections, Section{
		Heading: "Benchmark Parameters",
		Lines:   kvTable(params),
	})

	results := Section{Heading: "Results"}
	for _, test := range tests {
		results.Lines = append(results.Lines, "### "+test.Name, "")
		results.Lines = append(results.Lines, summaryTable(test.Summary)...)
		for _, chart := range test.Charts {
			results.Lines = append(results.Lines, "", fmt.Sprintf("![%s](%s)", chart.Title, chart.Path))
		}
		results.Lines = append(results.Lines, "")
	}
	doc.Sections = append(doc.Sections, results)

	if len(notes) > 0 {
		var lines []string
		for _, note := range notes {
			lines = append(lines, "- "+note)
		}
		doc.Sections = append(doc.Sections, Section{Heading: "Notes", Lines: lines})
	}

	return doc
}
