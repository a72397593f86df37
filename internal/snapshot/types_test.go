package snapshot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_FullDocument(t *testing.T) {
	doc := `{
		"hostname": "build-host",
		"timestamp": "2024-03-01 14:00:00",
		"cpu": {
			"cpu_usage_percent": 37.5,
			"cpu_cores": 8,
			"cpu_temperature": "55 C",
			"cpu_model": "Apple M2",
			"load_average": "1.20 1.10 0.95"
		},
		"memory": {
			"memory_total_mb": 16384,
			"memory_used_mb": 8192,
			"memory_available_mb": 8192,
			"memory_usage_percent": 50,
			"swap_total_mb": 2048,
			"swap_used_mb": 100,
			"swap_usage_percent": 4.9
		},
		"disk": [
			{"filesystem": "/dev/disk3s1", "size": "233Gi", "used": "120Gi", "available": "113Gi", "use_percent": 52}
		],
		"gpu": {"gpu_usage_percent": "12%", "gpu_temperature": "48 C", "gpu_memory": "10 GB"},
		"network": [
			{"interface": "en0", "ip_address": "192.168.1.10", "rx_bytes": 1024, "tx_bytes": 2048, "rx_packets": 100, "tx_packets": 200}
		],
		"system_load": {"uptime": "3 days", "load_1min": 1.2, "load_5min": 1.1, "load_15min": 0.95}
	}`

	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(doc), &snap))

	assert.Equal(t, Text("build-host"), snap.Hostname)
	assert.Equal(t, Number(37.5), snap.CPU.UsagePercent)
	assert.Equal(t, Count(8), snap.CPU.Cores)
	assert.Equal(t, Text("Apple M2"), snap.CPU.Model)
	assert.Equal(t, Number(16384), snap.Memory.TotalMB)
	require.Len(t, snap.Disk, 1)
	assert.Equal(t, Number(52), snap.Disk[0].UsePercent)
	require.Len(t, snap.Network, 1)
	assert.Equal(t, Count(2048), snap.Network[0].TxBytes)
	assert.Equal(t, Number(0.95), snap.SystemLoad.Load15m)
}

func TestSnapshot_EmptyDocument(t *testing.T) {
	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(`{}`), &snap))

	assert.Equal(t, Text(""), snap.Hostname)
	assert.Equal(t, Number(0), snap.CPU.UsagePercent)
	assert.Empty(t, snap.Disk)
	assert.Empty(t, snap.Network)
}

func TestNumber_LenientDecoding(t *testing.T) {
	tests := []struct {
		name string
		json string
		want Number
	}{
		{name: "plain number", json: `42.5`, want: 42.5},
		{name: "numeric string", json: `"42.5"`, want: 42.5},
		{name: "integer", json: `7`, want: 7},
		{name: "garbage string collapses to zero", json: `"hot"`, want: 0},
		{name: "null collapses to zero", json: `null`, want: 0},
		{name: "object collapses to zero", json: `{"a":1}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.json), &n))
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestCount_LenientDecoding(t *testing.T) {
	tests := []struct {
		name string
		json string
		want Count
	}{
		{name: "plain integer", json: `1024`, want: 1024},
		{name: "numeric string", json: `"1024"`, want: 1024},
		{name: "negative collapses to zero", json: `-5`, want: 0},
		{name: "garbage collapses to zero", json: `"lots"`, want: 0},
		{name: "null collapses to zero", json: `null`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Count
			require.NoError(t, json.Unmarshal([]byte(tt.json), &c))
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestText_LenientDecoding(t *testing.T) {
	tests := []struct {
		name string
		json string
		want Text
	}{
		{name: "plain string", json: `"55 C"`, want: "55 C"},
		{name: "number keeps natural form", json: `1.5`, want: "1.5"},
		{name: "integer", json: `64`, want: "64"},
		{name: "null collapses to empty", json: `null`, want: ""},
		{name: "array collapses to empty", json: `[1,2]`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Text
			require.NoError(t, json.Unmarshal([]byte(tt.json), &s))
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestText_Or(t *testing.T) {
	assert.Equal(t, "N/A", Text("").Or("N/A"))
	assert.Equal(t, "55 C", Text("55 C").Or("N/A"))
}

func TestSnapshot_WrongShapedSectionsDegrade(t *testing.T) {
	// An otherwise-valid document with wrong-shaped sections parses to
	// zero values instead of failing.
	doc := `{
		"hostname": "h",
		"cpu": "not an object",
		"memory": [1, 2, 3],
		"disk": {"not": "an array"},
		"gpu": 5,
		"network": "nope",
		"system_load": false
	}`

	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(doc), &snap))

	assert.Equal(t, Text("h"), snap.Hostname)
	assert.Equal(t, CPU{}, snap.CPU)
	assert.Equal(t, Memory{}, snap.Memory)
	assert.Empty(t, snap.Disk)
	assert.Equal(t, GPU{}, snap.GPU)
	assert.Empty(t, snap.Network)
	assert.Equal(t, SystemLoad{}, snap.SystemLoad)
}
