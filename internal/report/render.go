package report

import (
	"bytes"
	"html/template"
	"time"

	"github.com/sysdash/sysdash/internal/errors"
	"github.com/sysdash/sysdash/internal/snapshot"
)

// DefaultTitle is the dashboard title when none is configured.
const DefaultTitle = "System Monitor Dashboard"

// footerTimeLayout formats the generation timestamp in the footer.
const footerTimeLayout = "2006-01-02 15:04:05"

// Renderer assembles the dashboard document from a snapshot.
// Clock is injectable so tests can pin the footer timestamp.
type Renderer struct {
	Title string
	Clock func() time.Time
}

// NewRenderer returns a Renderer with the given title (or DefaultTitle
// when empty) and a wall-clock Clock.
func NewRenderer(title string) *Renderer {
	if title == "" {
		title = DefaultTitle
	}
	return &Renderer{
		Title: title,
		Clock: time.Now,
	}
}

// pageData is the fully formatted view model handed to the templates.
// Every value is already a display string except progress-bar widths,
// which stay numeric for the CSS width attribute.
type pageData struct {
	Title       string
	Hostname    string
	Timestamp   string
	Uptime      string
	CPU         cpuView
	Memory      gaugeView
	HasSwap     bool
	Swap        gaugeView
	Disks       []diskRow
	GPU         gpuView
	Interfaces  []interfaceRow
	Load        loadView
	GeneratedAt string
}

type cpuView struct {
	Usage       string
	Width       float64
	Color       template.CSS
	Cores       uint64
	Temperature string
	LoadAverage string
	Model       string
}

// gaugeView backs both the memory and swap blocks: three sizes plus a
// colored usage badge and progress bar.
type gaugeView struct {
	Total     string
	Used      string
	Available string
	Usage     string
	Width     float64
	Color     template.CSS
}

type diskRow struct {
	Filesystem string
	Size       string
	Used       string
	Available  string
	Usage      string
	Color      template.CSS
}

type gpuView struct {
	Usage       string
	Temperature string
	Memory      string
}

type interfaceRow struct {
	Name      string
	IPAddress string
	RxBytes   string
	TxBytes   string
	RxPackets string
	TxPackets string
}

type loadView struct {
	Load1  string
	Load5  string
	Load15 string
	Uptime string
}

// Render produces the complete HTML document for a snapshot.
func (r *Renderer) Render(snap *snapshot.Snapshot) (string, error) {
	clock := r.Clock
	if clock == nil {
		clock = time.Now
	}

	data := pageData{
		Title:       r.Title,
		Hostname:    snap.Hostname.Or("Unknown"),
		Timestamp:   snap.Timestamp.Or("N/A"),
		Uptime:      snap.SystemLoad.Uptime.Or("N/A"),
		CPU:         cpuViewOf(snap.CPU),
		Memory:      gaugeViewOf(float64(snap.Memory.TotalMB), float64(snap.Memory.UsedMB), float64(snap.Memory.AvailableMB), float64(snap.Memory.UsagePercent)),
		HasSwap:     snap.Memory.SwapTotalMB > 0,
		Disks:       diskRowsOf(MainDisks(snap.Disk)),
		GPU:         gpuViewOf(snap.GPU),
		Interfaces:  interfaceRowsOf(ActiveInterfaces(snap.Network)),
		Load:        loadViewOf(snap.SystemLoad),
		GeneratedAt: clock().Format(footerTimeLayout),
	}

	if data.HasSwap {
		data.Swap = gaugeViewOf(float64(snap.Memory.SwapTotalMB), float64(snap.Memory.SwapUsedMB), 0, float64(snap.Memory.SwapUsagePercent))
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "page", data); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrRender,
			"Failed to assemble the dashboard document",
			"This is a bug in the dashboard templates")
	}
	return buf.String(), nil
}

func cpuViewOf(cpu snapshot.CPU) cpuView {
	usage := float64(cpu.UsagePercent)
	return cpuView{
		Usage: Percent(usage),
		// Width is passed through unclamped; the collector owns the 0-100 scale.
		Width:       usage,
		Color:       template.CSS(StatusColor(usage)),
		Cores:       uint64(cpu.Cores),
		Temperature: cpu.Temperature.Or("N/A"),
		LoadAverage: cpu.LoadAverage.Or("N/A"),
		Model:       cpu.Model.Or("Unknown"),
	}
}

func gaugeViewOf(totalMB, usedMB, availableMB, percent float64) gaugeView {
	return gaugeView{
		Total:     MegabytesAsGB(totalMB),
		Used:      MegabytesAsGB(usedMB),
		Available: MegabytesAsGB(availableMB),
		Usage:     Percent(percent),
		Width:     percent,
		Color:     template.CSS(StatusColor(percent)),
	}
}

func diskRowsOf(entries []snapshot.DiskEntry) []diskRow {
	var rows []diskRow
	for _, entry := range entries {
		usage := float64(entry.UsePercent)
		rows = append(rows, diskRow{
			Filesystem: entry.Filesystem.Or("N/A"),
			Size:       NormalizeSize(entry.Size.Or("N/A")),
			Used:       NormalizeSize(entry.Used.Or("N/A")),
			Available:  NormalizeSize(entry.Available.Or("N/A")),
			Usage:      TrimFloat(usage),
			Color:      template.CSS(StatusColor(usage)),
		})
	}
	return rows
}

func gpuViewOf(gpu snapshot.GPU) gpuView {
	return gpuView{
		Usage:       gpu.UsagePercent.Or("N/A"),
		Temperature: gpu.Temperature.Or("N/A"),
		Memory:      gpu.Memory.Or("N/A"),
	}
}

func interfaceRowsOf(entries []snapshot.Interface) []interfaceRow {
	var rows []interfaceRow
	for _, entry := range entries {
		rows = append(rows, interfaceRow{
			Name:      entry.Name.Or("N/A"),
			IPAddress: entry.IPAddress.Or("N/A"),
			RxBytes:   FormatBytes(uint64(entry.RxBytes)),
			TxBytes:   FormatBytes(uint64(entry.TxBytes)),
			RxPackets: Comma(uint64(entry.RxPackets)),
			TxPackets: Comma(uint64(entry.TxPackets)),
		})
	}
	return rows
}

func loadViewOf(load snapshot.SystemLoad) loadView {
	return loadView{
		Load1:  LoadFigure(float64(load.Load1m)),
		Load5:  LoadFigure(float64(load.Load5m)),
		Load15: LoadFigure(float64(load.Load15m)),
		Uptime: load.Uptime.Or("N/A"),
	}
}
