package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/sysdash/sysdash/internal/config"
	"github.com/sysdash/sysdash/internal/report"
	"github.com/sysdash/sysdash/internal/snapshot"
	"github.com/sysdash/sysdash/internal/ui"
)

// Command-specific flags
var (
	renderInputFlag  string
	renderOutputFlag string
	renderTitleFlag  string
)

// renderCmd loads the metrics snapshot and writes the HTML dashboard.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the HTML dashboard from the metrics snapshot",
	Long: `Load the collected metrics snapshot and render it as a self-contained
HTML dashboard that can be opened in any browser.

Paths default to the collector layout (reports/metrics.json in,
reports/dashboard.html out) and can be changed in .sysdash.yaml or
overridden with flags.

Examples:
  sysdash render
  sysdash render --input /tmp/metrics.json
  sysdash render --output /var/www/dashboard.html --title "Build Host"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Render(RenderOptions{
			Input:  renderInputFlag,
			Output: renderOutputFlag,
			Title:  renderTitleFlag,
		})
	},
}

// RenderOptions holds options for the render command. Non-empty fields
// override the corresponding config values.
type RenderOptions struct {
	Input  string
	Output string
	Title  string

	// Out receives progress output; defaults to os.Stdout.
	Out io.Writer
}

// Render runs the full pipeline: config, load, assemble, write.
//
// Load failures (missing or malformed snapshot) are expected conditions:
// the diagnostic is printed and Render returns nil without writing the
// output file. Config and write failures are returned as errors.
func Render(opts RenderOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	pd := ui.NewPhaseDisplay(out)

	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	if cfg.Terminal.Color == "never" {
		ui.DisableColors()
	}

	input := cfg.Input
	if opts.Input != "" {
		input = opts.Input
	}
	output := cfg.Output
	if opts.Output != "" {
		output = opts.Output
	}
	title := cfg.Report.Title
	if opts.Title != "" {
		title = opts.Title
	}

	if verboseFlag {
		fmt.Fprintf(out, "Loading metrics from %s\n", input)
	}

	loadStart := time.Now()
	snap, err := snapshot.Load(input)
	if err != nil {
		// Expected condition, not a crash: report it, leave any existing
		// dashboard untouched, and end the run cleanly.
		pd.RenderFailed("Snapshot not loaded")
		fmt.Fprintln(out, err)
		pd.RenderSkipped("Render", "no snapshot")
		return nil
	}
	pd.RenderSuccess("Snapshot loaded", time.Since(loadStart))

	renderStart := time.Now()
	renderer := report.NewRenderer(title)
	doc, err := renderer.Render(snap)
	if err != nil {
		return err
	}
	pd.RenderSuccess("Dashboard generated", time.Since(renderStart))

	abs, err := report.Write(output, doc)
	if err != nil {
		return err
	}
	pd.RenderFileReference("Dashboard", abs)

	return nil
}

func init() {
	renderCmd.Flags().StringVar(&renderInputFlag, "input", "", "metrics snapshot path (overrides config)")
	renderCmd.Flags().StringVar(&renderOutputFlag, "output", "", "dashboard output path (overrides config)")
	renderCmd.Flags().StringVar(&renderTitleFlag, "title", "", "dashboard title (overrides config)")

	rootCmd.AddCommand(renderCmd)
}
