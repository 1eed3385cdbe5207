// Package cli provides the Cobra command structure for docmorph.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/docmorph/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root docmorph command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "docmorph",
		Short: "Convert structured documents between Markdown, HTML, text, and PDF",
		Long: `docmorph converts structured documents between textual and markup
formats by translating them into a single in-memory document model and
re-serializing. Markdown, HTML, and plain text can be read and written;
PDF can be written.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	// Add subcommands.
	rootCmd.AddCommand(newConvertCommand(&configPath))
	rootCmd.AddCommand(newFormatsCommand())
	rootCmd.AddCommand(newServeCommand(&configPath))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
