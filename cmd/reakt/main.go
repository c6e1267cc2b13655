// Command reakt runs the bundled counter demo on an in-memory document,
// either once from the command line or behind the live inspector.
package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/reakt-dev/reakt/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬─┐┌─┐┌─┐┬┌─┌┬┐
  ├┬┘├┤ ├─┤├┴┐ │
  ┴└─└─┘┴ ┴┴ ┴ ┴
`

// globalFlags are shared by all subcommands.
type globalFlags struct {
	configDir string
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "reakt",
		Short: "A minimal declarative UI rendering engine",
		Long: `reakt materializes element trees into host node trees and keeps
function components' state in call-order hook slots.

The CLI mounts the bundled counter demo on an in-memory document:

  reakt run     render the demo, click it and print the result
  reakt serve   serve the demo behind the live inspector`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configDir, "config", "c", ".", "Directory containing reakt.json or reakt.yaml")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format: text or json")

	rootCmd.AddCommand(
		runCmd(&flags),
		serveCmd(&flags),
		versionCmd(),
	)
	return rootCmd
}

func main() {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		errors.DisableColors()
	}

	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
