package config

import (
	"fmt"

	"github.com/sysdash/sysdash/internal/errors"
)

// colorModes are the accepted terminal color settings.
var colorModes = map[string]bool{
	"auto":   true,
	"always": true,
	"never":  true,
}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but sysdash only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Update sysdash, or set 'version' back to a supported value")
	}

	if cfg.Input == "" {
		return errors.New(errors.ErrConfig,
			"No input path configured",
			"Set 'input' in .sysdash.yaml or pass --input")
	}

	if cfg.Output == "" {
		return errors.New(errors.ErrConfig,
			"No output path configured",
			"Set 'output' in .sysdash.yaml or pass --output")
	}

	if !colorModes[cfg.Terminal.Color] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown color mode '%s'", cfg.Terminal.Color),
			"Use one of: auto, always, never")
	}

	return nil
}
