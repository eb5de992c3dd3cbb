// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultRuntime is the measured duration of each test when the config omits it.
	defaultRuntime = 60 * time.Second
	// defaultWarmup is the duration of the discarded priming pass.
	defaultWarmup = 10 * time.Second
	// defaultWorkers is the fio numjobs value when the config omits it.
	defaultWorkers = 4
	// defaultQueueDepth is the fio iodepth value when the config omits it.
	defaultQueueDepth = 32
)

// Config is the immutable snapshot of one run's parameters. It is built
// once at startup and passed into the run driver; nothing mutates it
// afterwards.
type Config struct {
	Target         string   `json:"target"`
	Size           string   `json:"size"`
	Runtime        int      `json:"runtime,omitempty"`
	Warmup         int      `json:"warmup,omitempty"`
	Workers        int      `json:"workers,omitempty"`
	QueueDepth     int      `json:"queueDepth,omitempty"`
	Direct         bool     `json:"direct"`
	LogInterval    int      `json:"logInterval,omitempty"`
	OutputDir      string   `json:"outputDir,omitempty"`
	FioBinary      string   `json:"fioBinary,omitempty"`
	PandocBinary   string   `json:"pandocBinary,omitempty"`
	ReportTitle    string   `json:"reportTitle,omitempty"`
	Notes          []string `json:"notes,omitempty"`
	LogFile        string   `json:"logFile,omitempty"`
	Debug          bool     `json:"debug"`
	ConfigPath     string   `json:"-"`
}

// RuntimeDuration returns the measured duration of each test.
func (c Config) RuntimeDuration() time.Duration {
	if c.Runtime <= 0 {
		return defaultRuntime
	}
	return time.Duration(c.Runtime) * time.Second
}

// WarmupDuration returns the duration of the discarded priming pass.
func (c Config) WarmupDuration() time.Duration {
	if c.Warmup <= 0 {
		return defaultWarmup
	}
	return time.Duration(c.Warmup) * time.Second
}

// WorkerCount returns the number of parallel workers per test.
func (c Config) WorkerCount() int {
	if c.Workers <= 0 {
		return defaultWorkers
	}
	return c.Workers
}

// Depth returns the queue depth per worker.
func (c Config) Depth() int {
	if c.QueueDepth <= 0 {
		return defaultQueueDepth
	}
	return c.QueueDepth
}

// WorkingSetSize returns the per-test target size.
func (c Config) WorkingSetSize() string {
	if strings.TrimSpace(c.Size) == "" {
		return "1g"
	}
	return c.Size
}

// FioPath returns the workload generator binary, defaulting to PATH lookup.
func (c Config) FioPath() string {
	if b := strings.TrimSpace(c.FioBinary); b != "" {
		return b
	}
	return "fio"
}

// PandocPath returns the document renderer binary.
func (c Config) PandocPath() string {
	if b := strings.TrimSpace(c.PandocBinary); b != "" {
		return b
	}
	return "pandoc"
}

// OutputRoot returns the directory under which timestamped run directories
// are created.
func (c Config) OutputRoot() string {
	if d := strings.TrimSpace(c.OutputDir); d != "" {
		return d
	}
	return "reports"
}

// Title returns the report heading.
func (c Config) Title() string {
	if t := strings.TrimSpace(c.ReportTitle); t != "" {
		return t
	}
	return "Storage Benchmark Report"
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "ioreport.log"
}

// Load reads and validates the application configuration from the specified path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}

	if err := Validate(data); err != nil {
		return Config{}, fmt.Errorf("config file %q: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	if strings.TrimSpace(config.Target) == "" {
		return Config{}, errors.New("config must name a benchmark target")
	}
	config.ConfigPath = path

	return config, nil
}
