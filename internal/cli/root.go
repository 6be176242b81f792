package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mdpress",
	Short: "Convert Markdown and plain-text files into standalone HTML pages",
	Long: `mdpress builds standalone HTML pages from Markdown and plain-text sources.

mdpress is build-only: it reads sources, writes HTML into an output directory,
and never edits the sources themselves.

Examples:
	# Show available commands and global flags
	mdpress --help

	# Build a folder of notes
	mdpress build notes --output site

	# Rebuild whenever a source changes
	mdpress watch notes

	# List the registered converters
	mdpress formats list

	# Print build info
	mdpress version

Output:
	By default, commands write human-readable output to stdout.
	The build command supports structured output via emitter flags
	(see "mdpress build --help").`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, "verbose", false, "Enable verbose logging (prints full error details)")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
