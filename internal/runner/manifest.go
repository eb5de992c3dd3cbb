// internal/runner/manifest.go
package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mwiater/ioreport/internal/report"
)

const manifestName = "manifest.json"

// Manifest is the persisted input of one report compilation: everything
// needed to rebuild the document without re-running the workload generator.
type Manifest struct {
	Title  string             `json:"title"`
	System []report.KV        `json:"system"`
	Params []report.KV        `json:"parameters"`
	Tests  []report.TestEntry `json:"tests"`
	Notes  []string           `json:"notes,omitempty"`
}

func writeManifest(runDir string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(runDir, manifestName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

func loadManifest(runDir string) (Manifest, error) {
	path := filepath.Join(runDir, manifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return m, nil
}
