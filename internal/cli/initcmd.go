package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sysdash/sysdash/internal/config"
	"github.com/sysdash/sysdash/internal/errors"
	"github.com/sysdash/sysdash/internal/ui"
)

var initForce bool

// initCmd creates a new .sysdash.yaml configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .sysdash.yaml configuration",
	Long: `Initialize a new sysdash configuration file.

Creates a .sysdash.yaml file in the current directory with the default
collector paths, ready to be edited.

Examples:
  sysdash init
  sysdash init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

const configHeader = `# sysdash configuration
# input:  metrics snapshot written by the collector
# output: rendered HTML dashboard
`

func initCommand(force bool) error {
	path := config.ConfigFileName

	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrConfig,
			path+" already exists",
			"Use --force to overwrite it")
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize default config",
			"This is a bug in sysdash")
	}

	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrWrite,
			"Failed to write "+path,
			"Check directory permissions")
	}

	pd := ui.NewPhaseDisplay(os.Stdout)
	pd.RenderSuccess("Created "+path, 0)
	fmt.Println("Edit it to change the snapshot and dashboard paths, then run 'sysdash render'.")

	return nil
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	rootCmd.AddCommand(initCmd)
}
