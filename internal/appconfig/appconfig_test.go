package appconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `{"target": "/dev/test0"}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RuntimeDuration() != 60*time.Second {
		t.Fatalf("runtime default: %v", cfg.RuntimeDuration())
	}
	if cfg.WorkerCount() != 4 || cfg.Depth() != 32 {
		t.Fatalf("concurrency defaults: workers=%d depth=%d", cfg.WorkerCount(), cfg.Depth())
	}
	if cfg.FioPath() != "fio" || cfg.PandocPath() != "pandoc" {
		t.Fatalf("binary defaults: %s, %s", cfg.FioPath(), cfg.PandocPath())
	}
	if cfg.OutputRoot() != "reports" {
		t.Fatalf("output root default: %s", cfg.OutputRoot())
	}
	if cfg.ConfigPath != path {
		t.Fatalf("config path not recorded: %s", cfg.ConfigPath)
	}
}

func TestLoadExplicitValues(t *testing.T) {
	path := writeConfig(t, `{
		"target": "/mnt/bench/testfile",
		"size": "4g",
		"runtime": 120,
		"warmup": 30,
		"workers": 8,
		"queueDepth": 64,
		"direct": true,
		"reportTitle": "NVMe drive A"
	}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RuntimeDuration() != 120*time.Second || cfg.WarmupDuration() != 30*time.Second {
		t.Fatalf("durations: %v, %v", cfg.RuntimeDuration(), cfg.WarmupDuration())
	}
	if !cfg.Direct || cfg.WorkerCount() != 8 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Title() != "NVMe drive A" {
		t.Fatalf("title: %s", cfg.Title())
	}
}

func TestLoadRejectsMissingTarget(t *testing.T) {
	path := writeConfig(t, `{"size": "1g"}`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for config without target")
	}
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"wrong type":       `{"target": "/dev/test0", "runtime": "sixty"}`,
		"unknown property": `{"target": "/dev/test0", "runtme": 60}`,
		"bad notes":        `{"target": "/dev/test0", "notes": [1, 2]}`,
	}
	for name, content := range cases {
		path := writeConfig(t, content)
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected schema error", name)
		} else if !strings.Contains(err.Error(), "invalid configuration") {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
