package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sysdash/sysdash/internal/ui"
)

// Global flags available to all subcommands
var (
	configFlag  string
	verboseFlag bool
	noColorFlag bool
)

// rootCmd is the base command for sysdash.
var rootCmd = &cobra.Command{
	Use:   "sysdash",
	Short: "Render an HTML dashboard from a host metrics snapshot",
	Long: `sysdash renders a self-contained HTML dashboard from a JSON snapshot
of host metrics (CPU, memory, disk, GPU, network, system load).

The snapshot is produced by an external collector; sysdash only reads it
and writes the dashboard. Run 'sysdash render' after collecting metrics,
then open the generated file in any browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColorFlag {
			ui.DisableColors()
		}
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Config returns the --config flag value.
func Config() string {
	return configFlag
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}
