// internal/render/render.go
// Package render probes the external collaborators and hands the composed
// document to pandoc. When no PDF engine is installed the run degrades to
// HTML output instead of failing.
package render

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mwiater/ioreport/internal/logging"
)

var (
	lookPath   = exec.LookPath
	runCommand = func(binary string, args []string) error {
		cmd := exec.Command(binary, args...)
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}
)

// pdfEngines are probed in preference order.
var pdfEngines = []string{"wkhtmltopdf", "weasyprint", "pdflatex"}

// Collaborator is one external tool and whether it was found.
type Collaborator struct {
	Name      string
	Available bool
}

// Capabilities is the startup probe result, decided once before any test
// executes.
type Capabilities struct {
	Fio       bool
	Pandoc    bool
	PDFEngine string
}

// Probe checks for the workload generator, the renderer and a usable PDF
// engine.
func Probe(fioBinary, pandocBinary string) Capabilities {
	caps := Capabilities{}
	if _, err := lookPath(fioBinary); err == nil {
		caps.Fio = true
	}
	if _, err := lookPath(pandocBinary); err == nil {
		caps.Pandoc = true
	}
	for _, engine := range pdfEngines {
		if _, err := lookPath(engine); err == nil {
			caps.PDFEngine = engine
			break
		}
	}
	return caps
}

// List returns the probe result as printable rows.
func (c Capabilities) List() []Collaborator {
	engineName := "pdf-engine"
	if c.PDFEngine != "" {
		engineName = "pdf-engine (" + c.PDFEngine + ")"
	}
	return []Collaborator{
		{Name: "fio", Available: c.Fio},
		{Name: "pandoc", Available: c.Pandoc},
		{Name: engineName, Available: c.PDFEngine != ""},
	}
}

// Check returns an error naming the missing required collaborators. A
// missing PDF engine is not an error; it only degrades the output format.
func (c Capabilities) Check() error {
	var missing []string
	if !c.Fio {
		missing = append(missing, "fio")
	}
	if !c.Pandoc {
		missing = append(missing, "pandoc")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required collaborators: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Render converts the composed document to its distributable form. With a
// PDF engine present the result is a PDF; otherwise standalone HTML is
// produced and degraded is true so the driver can surface the notice.
func Render(markdownPath, pandocBinary string, caps Capabilities) (outPath string, degraded bool, err error) {
	base := strings.TrimSuffix(markdownPath, filepath.Ext(markdownPath))

	if caps.PDFEngine != "" {
		outPath = base + ".pdf"
		args := []string{markdownPath, "-o", outPath, "--pdf-engine=" + caps.PDFEngine}
		if err := runCommand(pandocBinary, args); err != nil {
			return "", false, fmt.Errorf("render PDF: %w", err)
		}
		return outPath, false, nil
	}

	logging.LogEvent("[RENDER] No PDF engine available, falling back to HTML")
	outPath = base + ".html"
	args := []string{"-s", markdownPath, "-o", outPath}
	if err := runCommand(pandocBinary, args); err != nil {
		return "", false, fmt.Errorf("render HTML: %w", err)
	}
	return outPath, true, nil
}
