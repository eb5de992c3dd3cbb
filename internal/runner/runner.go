// internal/runner/runner.go
// Package runner sequences the full benchmark pipeline: capability probe,
// warm-up, the five standardized tests, aggregation, reconciliation, chart
// rendering, document compilation and the final render.
package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mwiater/ioreport/internal/appconfig"
	"github.com/mwiater/ioreport/internal/charts"
	"github.com/mwiater/ioreport/internal/fio"
	"github.com/mwiater/ioreport/internal/logging"
	"github.com/mwiater/ioreport/internal/metrics"
	"github.com/mwiater/ioreport/internal/render"
	"github.com/mwiater/ioreport/internal/report"
	"github.com/mwiater/ioreport/internal/sysinfo"
)

// Swappable for tests; the production values shell out to the external
// collaborators.
var (
	probeCaps   = render.Probe
	runWarmup   = fio.Warmup
	runTest     = fio.Run
	loadSeries  = fio.LoadWorkerSeries
	renderChart = charts.RenderLine
	renderDoc   = render.Render
	collectInfo = sysinfo.Collect
	timeNow     = time.Now
)

// Runner drives one complete benchmark run from an immutable configuration
// snapshot.
type Runner struct {
	cfg appconfig.Config
}

// New creates a Runner for the given configuration.
func New(cfg appconfig.Config) *Runner {
	return &Runner{cfg: cfg}
}

// Run executes the whole pipeline. Any failed stage aborts the run; no
// partial report is emitted.
func (r *Runner) Run() error {
	caps := probeCaps(r.cfg.FioPath(), r.cfg.PandocPath())
	PrintCapabilities(caps)
	if err := caps.Check(); err != nil {
		stageFail("probe", err)
		return err
	}
	stageDone("probe", "all required collaborators available")

	runDir := filepath.Join(r.cfg.OutputRoot(), timeNow().Format("run-20060102-150405"))
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return fmt.Errorf("create run directory: %w", err)
	}
	logging.LogEvent("[RUN] Output directory %s", runDir)

	opts := fio.Options{
		Binary:     r.cfg.FioPath(),
		Target:     r.cfg.Target,
		Size:       r.cfg.WorkingSetSize(),
		Runtime:    r.cfg.RuntimeDuration(),
		Workers:    r.cfg.WorkerCount(),
		QueueDepth: r.cfg.Depth(),
		Direct:     r.cfg.Direct,
		LogAvgMs:   r.cfg.LogInterval,
	}

	if err := runWarmup(opts, r.cfg.WarmupDuration()); err != nil {
		stageFail("warmup", err)
		return err
	}
	stageDone("warmup", "discarded priming pass complete")

	var entries []report.TestEntry
	for _, test := range fio.StandardTests() {
		entry, err := r.executeTest(test, opts, runDir)
		if err != nil {
			stageFail(test.Name, err)
			return err
		}
		stageDone(test.Name, fmt.Sprintf("read %.0f IOPS / write %.0f IOPS",
			entry.Summary.ReadIOPS, entry.Summary.WriteIOPS))
		entries = append(entries, entry)
	}

	manifest := Manifest{
		Title:  r.cfg.Title(),
		System: systemRows(collectInfo(), r.cfg.Target),
		Params: parameterRows(r.cfg),
		Tests:  entries,
		Notes:  append([]string(nil), r.cfg.Notes...),
	}
	if caps.PDFEngine == "" {
		manifest.Notes = append(manifest.Notes, "rendered as HTML: no PDF engine found")
	}
	if err := writeManifest(runDir, manifest); err != nil {
		return err
	}

	outPath, err := compileAndRender(runDir, manifest, r.cfg.PandocPath(), caps)
	if err != nil {
		stageFail("render", err)
		return err
	}
	stageDone("render", outPath)

	fmt.Println()
	fmt.Println(SummaryTable(entries))
	return nil
}

// executeTest runs one workload and reduces its output: raw record to
// summary, per-worker logs to combined series and charts.
func (r *Runner) executeTest(test fio.Test, opts fio.Options, runDir string) (report.TestEntry, error) {
	out, err := runTest(test, opts, runDir)
	if err != nil {
		return report.TestEntry{}, err
	}

	summary := metrics.Aggregate(out.WorkerMetrics())
	if err := writeSummary(runDir, test.Name, summary); err != nil {
		return report.TestEntry{}, err
	}

	chartRefs, err := r.buildCharts(test.Name, runDir)
	if err != nil {
		return report.TestEntry{}, err
	}

	return report.TestEntry{Name: test.Name, Summary: summary, Charts: chartRefs}, nil
}

var chartKinds = []struct {
	kind  fio.LogKind
	label string
}{
	{fio.LogIOPS, "IOPS"},
	{fio.LogBandwidth, "MB/s"},
	{fio.LogLatency, "latency (ms)"},
}

func (r *Runner) buildCharts(testName, runDir string) ([]report.Chart, error) {
	logBase := filepath.Join(runDir, testName)

	var refs []report.Chart
	for _, ck := range chartKinds {
		workerSeries, err := loadSeries(logBase, ck.kind)
		if err != nil {
			return nil, err
		}
		combined := metrics.Reconcile(workerSeries, ck.kind.CombineMode()).Scaled(ck.kind.SeriesDivisor())

		title := fmt.Sprintf("%s %s over time", testName, ck.label)
		fileName := fmt.Sprintf("%s_%s.png", testName, ck.kind)
		written, err := renderChart(combined, title, ck.label, filepath.Join(runDir, fileName))
		if err != nil {
			return nil, err
		}
		if written {
			// Path relative to the document source, which sits in runDir.
			refs = append(refs, report.Chart{Title: title, Path: fileName})
		}
	}
	return refs, nil
}

func writeSummary(runDir, testName string, summary metrics.TestSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(runDir, testName+".summary.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write summary for %s: %w", testName, err)
	}
	return nil
}

// compileAndRender turns the manifest into the document source and the
// distributable file. Shared by Run and Recompile.
func compileAndRender(runDir string, m Manifest, pandocBinary string, caps render.Capabilities) (string, error) {
	doc := report.Compile(m.Title, m.System, m.Params, m.Tests, m.Notes)
	mdPath := filepath.Join(runDir, "report.md")
	if err := os.WriteFile(mdPath, []byte(doc.Markdown()), 0o644); err != nil {
		return "", fmt.Errorf("write document source: %w", err)
	}

	outPath, degraded, err := renderDoc(mdPath, pandocBinary, caps)
	if err != nil {
		return "", err
	}
	if degraded {
		logging.LogEvent("[RENDER] Degraded output: %s", outPath)
	}
	return outPath, nil
}

// Recompile rebuilds and re-renders the document from a previous run's
// persisted manifest, without touching the workload generator.
func (r *Runner) Recompile(runDir string) error {
	manifest, err := loadManifest(runDir)
	if err != nil {
		return err
	}

	caps := probeCaps(r.cfg.FioPath(), r.cfg.PandocPath())
	if !caps.Pandoc {
		err := fmt.Errorf("missing required collaborators: pandoc")
		stageFail("probe", err)
		return err
	}

	outPath, err := compileAndRender(runDir, manifest, r.cfg.PandocPath(), caps)
	if err != nil {
		stageFail("render", err)
		return err
	}
	stageDone("render", outPath)
	return nil
}

func systemRows(info sysinfo.Info, target string) []report.KV {
	var rows []report.KV
	for _, row := range info.Rows() {
		rows = append(rows, report.KV{Key: row[0], Value: row[1]})
	}
	if model := sysinfo.DeviceModel(target); model != "" {
		rows = append(rows, report.KV{Key: "Device", Value: model})
	}
	return rows
}

func parameterRows(cfg appconfig.Config) []report.KV {
	direct := "buffered"
	if cfg.Direct {
		direct = "direct"
	}
	return []report.KV{
		{Key: "Target", Value: cfg.Target},
		{Key: "Working set", Value: cfg.WorkingSetSize()},
		{Key: "Runtime per test", Value: cfg.RuntimeDuration().String()},
		{Key: "Workers", Value: fmt.Sprintf("%d", cfg.WorkerCount())},
		{Key: "Queue depth", Value: fmt.Sprintf("%d", cfg.Depth())},
		{Key: "I/O mode", Value: direct},
	}
}
