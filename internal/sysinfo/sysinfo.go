// internal/sysinfo/sysinfo.go
// Package sysinfo collects static textual facts about the host for the
// report header. Collection is best-effort: a fact that cannot be read is
// reported as "unknown" rather than failing the run.
package sysinfo

import (
	"os"
	"strings"
)

var readFile = os.ReadFile

// Info holds the host facts rendered into the report's system section.
type Info struct {
	Hostname string
	Kernel   string
	CPUModel string
	MemTotal string
}

// Collect gathers host facts from /proc.
func Collect() Info {
	info := Info{
		Hostname: "unknown",
		Kernel:   "unknown",
		CPUModel: "unknown",
		MemTotal: "unknown",
	}

	if name, err := os.Hostname(); err == nil {
		info.Hostname = name
	}
	if data, err := readFile("/proc/sys/kernel/osrelease"); err == nil {
		info.Kernel = strings.TrimSpace(string(data))
	}
	if data, err := readFile("/proc/cpuinfo"); err == nil {
		if model := procField(string(data), "model name"); model != "" {
			info.CPUModel = model
		}
	}
	if data, err := readFile("/proc/meminfo"); err == nil {
		if total := procField(string(data), "MemTotal"); total != "" {
			info.MemTotal = total
		}
	}
	return info
}

// DeviceModel resolves the hardware model string for a block device path
// such as /dev/nvme0n1. Partitions resolve through their parent device. A
// target that is not a block device, or a device without a model entry,
// returns "".
func DeviceModel(target string) string {
	name := strings.TrimPrefix(target, "/dev/")
	if name == target || name == "" || strings.Contains(name, "/") {
		return ""
	}
	for _, dev := range []string{name, strings.TrimRight(name, "0123456789")} {
		if data, err := readFile("/sys/block/" + dev + "/device/model"); err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	return ""
}

// procField returns the value of the first "key : value" line in a
// /proc-style document.
func procField(doc, key string) string {
	for _, line := range strings.Split(doc, "\n") {
		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if strings.TrimSpace(name) == key {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// Rows returns the facts as ordered label/value pairs.
func (i Info) Rows() [][2]string {
	return [][2]string{
		{"Hostname", i.Hostname},
		{"Kernel", i.Kernel},
		{"CPU", i.CPUModel},
		{"Memory", i.MemTotal},
	}
}
