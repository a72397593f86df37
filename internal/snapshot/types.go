// Package snapshot defines the host metrics snapshot document and its loader.
//
// A snapshot is produced by an external collector and read exactly once per
// run. Every field is optional: missing or wrong-shaped values collapse to
// zero values at parse time and the renderer substitutes display defaults,
// so a sparse document never fails the run.
package snapshot

import (
	"encoding/json"

	"github.com/spf13/cast"
)

// Number is a float64 that tolerates JSON numbers, numeric strings,
// or anything else (which collapses to 0).
type Number float64

// UnmarshalJSON implements lenient decoding for Number.
func (n *Number) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		*n = 0
		return nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(f)
	return nil
}

// Count is a non-negative integer counter. Negative or non-numeric
// values collapse to 0.
type Count uint64

// UnmarshalJSON implements lenient decoding for Count.
func (c *Count) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		*c = 0
		return nil
	}
	u, err := cast.ToUint64E(v)
	if err != nil {
		*c = 0
		return nil
	}
	*c = Count(u)
	return nil
}

// Text is a string that also accepts JSON numbers (rendered in their
// natural form, e.g. 1.5 becomes "1.5"). Non-scalar values collapse
// to the empty string.
type Text string

// UnmarshalJSON implements lenient decoding for Text.
func (t *Text) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		*t = ""
		return nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		*t = ""
		return nil
	}
	*t = Text(s)
	return nil
}

// Or returns the string value, or def when the field was absent or empty.
func (t Text) Or(def string) string {
	if t == "" {
		return def
	}
	return string(t)
}

// Snapshot is one point-in-time measurement of host resources.
type Snapshot struct {
	Hostname   Text          `json:"hostname"`
	Timestamp  Text          `json:"timestamp"`
	CPU        CPU           `json:"cpu"`
	Memory     Memory        `json:"memory"`
	Disk       DiskList      `json:"disk"`
	GPU        GPU           `json:"gpu"`
	Network    InterfaceList `json:"network"`
	SystemLoad SystemLoad    `json:"system_load"`
}

// CPU holds processor metrics.
type CPU struct {
	UsagePercent Number `json:"cpu_usage_percent"`
	Cores        Count  `json:"cpu_cores"`
	Temperature  Text   `json:"cpu_temperature"`
	Model        Text   `json:"cpu_model"`
	LoadAverage  Text   `json:"load_average"`
}

// Memory holds RAM and swap metrics, sizes in megabytes.
type Memory struct {
	TotalMB          Number `json:"memory_total_mb"`
	UsedMB           Number `json:"memory_used_mb"`
	AvailableMB      Number `json:"memory_available_mb"`
	UsagePercent     Number `json:"memory_usage_percent"`
	SwapTotalMB      Number `json:"swap_total_mb"`
	SwapUsedMB       Number `json:"swap_used_mb"`
	SwapUsagePercent Number `json:"swap_usage_percent"`
}

// DiskEntry is one row of the collector's filesystem table. Sizes are
// pre-formatted strings (e.g. "233Gi") and passed through mostly verbatim.
type DiskEntry struct {
	Filesystem Text   `json:"filesystem"`
	Size       Text   `json:"size"`
	Used       Text   `json:"used"`
	Available  Text   `json:"available"`
	UsePercent Number `json:"use_percent"`
}

// GPU holds graphics metrics. Values are free-form collector output
// and are displayed verbatim.
type GPU struct {
	UsagePercent Text `json:"gpu_usage_percent"`
	Temperature  Text `json:"gpu_temperature"`
	Memory       Text `json:"gpu_memory"`
}

// Interface holds traffic counters for one network interface.
type Interface struct {
	Name      Text  `json:"interface"`
	IPAddress Text  `json:"ip_address"`
	RxBytes   Count `json:"rx_bytes"`
	TxBytes   Count `json:"tx_bytes"`
	RxPackets Count `json:"rx_packets"`
	TxPackets Count `json:"tx_packets"`
}

// SystemLoad holds load averages and uptime.
type SystemLoad struct {
	Uptime  Text   `json:"uptime"`
	Load1m  Number `json:"load_1min"`
	Load5m  Number `json:"load_5min"`
	Load15m Number `json:"load_15min"`
}

// DiskList decodes as a JSON array of disk entries; any other shape
// collapses to an empty list.
type DiskList []DiskEntry

// UnmarshalJSON implements lenient decoding for DiskList.
func (d *DiskList) UnmarshalJSON(data []byte) error {
	var entries []DiskEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		*d = nil
		return nil
	}
	*d = entries
	return nil
}

// InterfaceList decodes as a JSON array of interfaces; any other shape
// collapses to an empty list.
type InterfaceList []Interface

// UnmarshalJSON implements lenient decoding for InterfaceList.
func (l *InterfaceList) UnmarshalJSON(data []byte) error {
	var entries []Interface
	if err := json.Unmarshal(data, &entries); err != nil {
		*l = nil
		return nil
	}
	*l = entries
	return nil
}

// Sections that are objects tolerate wrong-shaped values the same way:
// a non-object collapses to the zero section instead of failing the parse.

// UnmarshalJSON implements lenient decoding for CPU.
func (c *CPU) UnmarshalJSON(data []byte) error {
	type plain CPU
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*c = CPU{}
		return nil
	}
	*c = CPU(p)
	return nil
}

// UnmarshalJSON implements lenient decoding for Memory.
func (m *Memory) UnmarshalJSON(data []byte) error {
	type plain Memory
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*m = Memory{}
		return nil
	}
	*m = Memory(p)
	return nil
}

// UnmarshalJSON implements lenient decoding for GPU.
func (g *GPU) UnmarshalJSON(data []byte) error {
	type plain GPU
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*g = GPU{}
		return nil
	}
	*g = GPU(p)
	return nil
}

// UnmarshalJSON implements lenient decoding for SystemLoad.
func (s *SystemLoad) UnmarshalJSON(data []byte) error {
	type plain SystemLoad
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*s = SystemLoad{}
		return nil
	}
	*s = SystemLoad(p)
	return nil
}
