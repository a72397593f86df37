// Package cli implements the sysdash command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a workflow function for the actual work:
//
//	sysdash render       - Load the metrics snapshot and write the HTML dashboard
//	sysdash init         - Create a .sysdash.yaml config file
//	sysdash version      - Print version information
//	sysdash completion   - Generate shell completion scripts
//
// # Render Workflow
//
// The render command runs a strictly linear pipeline:
//
//  1. Load and validate config (explicit --config, project file, or defaults)
//  2. Read and parse the snapshot file
//  3. Assemble the HTML document from the snapshot
//  4. Write the document, creating the output directory as needed
//
// A missing or unparseable snapshot is an expected condition: the diagnostic
// is printed to stdout and the run ends without touching the output file.
// Config and write failures are fatal and exit non-zero.
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color) are defined on the root
// command and available to all subcommands. Command-specific flags like
// --input and --output are defined on individual commands and override
// the corresponding config values.
package cli
