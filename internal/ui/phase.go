package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// DividerWidth is the default width for divider lines.
const DividerWidth = 64

// PhaseDisplay renders step status lines to an output writer.
type PhaseDisplay struct {
	w io.Writer
}

// NewPhaseDisplay creates a new phase display writing to w.
func NewPhaseDisplay(w io.Writer) *PhaseDisplay {
	return &PhaseDisplay{w: w}
}

// RenderProgress renders a step in progress.
// Shows: ◐ Loading snapshot...
func (pd *PhaseDisplay) RenderProgress(name string) {
	style := lipgloss.NewStyle().Foreground(ColorSecondary)
	fmt.Fprintf(pd.w, "%s %s...\n", style.Render(SymbolProgress), name)
}

// RenderSuccess renders a completed step.
// Shows: ● Dashboard written (0.01s)
func (pd *PhaseDisplay) RenderSuccess(name string, duration time.Duration) {
	symbolStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	timingStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	fmt.Fprintf(pd.w, "%s %s %s\n",
		symbolStyle.Render(SymbolComplete),
		name,
		timingStyle.Render(formatDuration(duration)),
	)
}

// RenderFailed renders a failed step.
// Shows: ✗ Load failed
func (pd *PhaseDisplay) RenderFailed(name string) {
	style := lipgloss.NewStyle().Foreground(ColorError)
	fmt.Fprintf(pd.w, "%s %s\n", style.Render(SymbolFail), name)
}

// RenderSkipped renders a skipped step.
// Shows: ⊘ Render (no snapshot)
func (pd *PhaseDisplay) RenderSkipped(name string, reason string) {
	symbolStyle := lipgloss.NewStyle().Foreground(ColorWarning)
	reasonStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	if reason != "" {
		fmt.Fprintf(pd.w, "%s %s %s\n",
			symbolStyle.Render(SymbolSkipped),
			name,
			reasonStyle.Render("("+reason+")"),
		)
	} else {
		fmt.Fprintf(pd.w, "%s %s\n", symbolStyle.Render(SymbolSkipped), name)
	}
}

// RenderFileReference renders a browsable file reference line.
// Shows: ✓ Dashboard: file:///abs/path/dashboard.html
func (pd *PhaseDisplay) RenderFileReference(label, path string) {
	symbolStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	linkStyle := lipgloss.NewStyle().Foreground(ColorInfo)

	fmt.Fprintf(pd.w, "%s %s: %s\n",
		symbolStyle.Render(SymbolSuccess),
		label,
		linkStyle.Render("file://"+path),
	)
}

// ThinDivider renders a thin horizontal line.
func (pd *PhaseDisplay) ThinDivider() {
	style := lipgloss.NewStyle().Foreground(ColorMuted)
	fmt.Fprintf(pd.w, "%s\n", style.Render(strings.Repeat("─", DividerWidth)))
}

// Newline writes an empty line.
func (pd *PhaseDisplay) Newline() {
	fmt.Fprintln(pd.w)
}

// formatDuration formats a duration for display (e.g., "0.3s", "1.2s").
func formatDuration(d time.Duration) string {
	secs := d.Seconds()
	if secs < 0.1 {
		return fmt.Sprintf("(%.2fs)", secs)
	}
	return fmt.Sprintf("(%.1fs)", secs)
}
