// Package report turns a metrics snapshot into a self-contained HTML
// dashboard: pure value formatting, row filtering, template assembly,
// and the output writer.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Status colors for percentage badges and progress bars.
const (
	ColorOK   = "#28a745" // green
	ColorWarn = "#ffc107" // yellow
	ColorCrit = "#dc3545" // red
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes converts a byte count to a readable string with two decimals
// and the smallest unit keeping the scaled value under 1024. Zero renders
// as "0 B"; PB is the ceiling unit.
func FormatBytes(n uint64) string {
	if n == 0 {
		return "0 B"
	}

	v := float64(n)
	for _, unit := range byteUnits {
		if v < 1024 {
			return fmt.Sprintf("%.2f %s", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.2f PB", v)
}

// StatusColor maps a usage percentage to a display color:
// green below 50, yellow from 50 to just under 80, red at 80 and above.
// These are rendering hints only, not alerts.
func StatusColor(percent float64) string {
	switch {
	case percent < 50:
		return ColorOK
	case percent < 80:
		return ColorWarn
	default:
		return ColorCrit
	}
}

// NormalizeSize relabels collector size strings ending in "Gi" to " GB".
// Cosmetic only; the numeric value is not rescaled.
func NormalizeSize(s string) string {
	if strings.HasSuffix(s, "Gi") {
		return strings.TrimSuffix(s, "Gi") + " GB"
	}
	return s
}

// Percent formats a percentage with exactly one decimal place.
func Percent(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// MegabytesAsGB converts a megabyte count to gigabytes with two decimals.
func MegabytesAsGB(mb float64) string {
	return fmt.Sprintf("%.2f GB", mb/1024)
}

// LoadFigure formats a load average with exactly two decimal places.
func LoadFigure(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Comma formats an integer with thousands separators (1234567 -> "1,234,567").
func Comma(n uint64) string {
	return humanize.Comma(int64(n))
}

// TrimFloat renders a float in its shortest exact form (45 -> "45", 45.2 -> "45.2").
// Used where the collector's precision should pass through untouched.
func TrimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
