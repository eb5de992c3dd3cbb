package render

import (
	"errors"
	"strings"
	"testing"
)

func stubLookPath(t *testing.T, available ...string) {
	t.Helper()
	prev := lookPath
	t.Cleanup(func() { lookPath = prev })
	lookPath = func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func stubRunCommand(t *testing.T) *[][]string {
	t.Helper()
	prev := runCommand
	t.Cleanup(func() { runCommand = prev })
	var calls [][]string
	runCommand = func(binary string, args []string) error {
		calls = append(calls, append([]string{binary}, args...))
		return nil
	}
	return &calls
}

func TestProbeAllAvailable(t *testing.T) {
	stubLookPath(t, "fio", "pandoc", "weasyprint")
	caps := Probe("fio", "pandoc")
	if !caps.Fio || !caps.Pandoc {
		t.Fatalf("probe: %+v", caps)
	}
	if caps.PDFEngine != "weasyprint" {
		t.Fatalf("engine: %q", caps.PDFEngine)
	}
	if err := caps.Check(); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestProbeEnginePreferenceOrder(t *testing.T) {
	stubLookPath(t, "fio", "pandoc", "pdflatex", "wkhtmltopdf")
	caps := Probe("fio", "pandoc")
	if caps.PDFEngine != "wkhtmltopdf" {
		t.Fatalf("expected first engine in preference order, got %q", caps.PDFEngine)
	}
}

func TestCheckNamesMissingCollaborators(t *testing.T) {
	stubLookPath(t, "pandoc")
	caps := Probe("fio", "pandoc")
	err := caps.Check()
	if err == nil {
		t.Fatalf("expected missing collaborator error")
	}
	if !strings.Contains(err.Error(), "fio") {
		t.Fatalf("error should name fio: %v", err)
	}
}

func TestMissingEngineIsNotFatal(t *testing.T) {
	stubLookPath(t, "fio", "pandoc")
	caps := Probe("fio", "pandoc")
	if err := caps.Check(); err != nil {
		t.Fatalf("missing engine must not fail the check: %v", err)
	}
	rows := caps.List()
	if len(rows) != 3 || rows[2].Available {
		t.Fatalf("capability list: %+v", rows)
	}
}

func TestRenderPDF(t *testing.T) {
	calls := stubRunCommand(t)
	caps := Capabilities{Fio: true, Pandoc: true, PDFEngine: "wkhtmltopdf"}

	out, degraded, err := Render("run/report.md", "pandoc", caps)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if degraded {
		t.Fatalf("PDF render must not be degraded")
	}
	if out != "run/report.pdf" {
		t.Fatalf("out path: %q", out)
	}
	if len(*calls) != 1 || (*calls)[0][0] != "pandoc" {
		t.Fatalf("calls: %v", *calls)
	}
	if !strings.Contains(strings.Join((*calls)[0], " "), "--pdf-engine=wkhtmltopdf") {
		t.Fatalf("pdf engine flag missing: %v", (*calls)[0])
	}
}

func TestRenderFallsBackToHTML(t *testing.T) {
	calls := stubRunCommand(t)
	caps := Capabilities{Fio: true, Pandoc: true}

	out, degraded, err := Render("run/report.md", "pandoc", caps)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !degraded {
		t.Fatalf("HTML fallback must be flagged as degraded")
	}
	if out != "run/report.html" {
		t.Fatalf("out path: %q", out)
	}
	joined := strings.Join((*calls)[0], " ")
	if strings.Contains(joined, "pdf-engine") {
		t.Fatalf("fallback must not request a pdf engine: %s", joined)
	}
}

func TestRenderPropagatesFailure(t *testing.T) {
	prev := runCommand
	t.Cleanup(func() { runCommand = prev })
	runCommand = func(string, []string) error { return errors.New("exit status 83") }

	if _, _, err := Render("report.md", "pandoc", Capabilities{PDFEngine: "pdflatex"}); err == nil {
		t.Fatalf("expected renderer failure to propagate")
	}
}
