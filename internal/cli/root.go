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
	Use:   "licmedic",
	Short: "Scan a source tree and enforce license header boilerplate",
	Long: `LicMedic scans a project's source tree for files missing the standard
license boilerplate comment and either reports the omissions or inserts
the boilerplate in place.

Examples:
	# Show available commands and global flags
	licmedic --help

	# Insert missing headers (apply mode, the default)
	licmedic scan

	# Report missing headers without touching any file
	licmedic scan --check

	# Print the boilerplate that would be inserted
	licmedic header show

	# Print build info
	licmedic version

Output:
	By default, commands write human-readable output to stdout.
	Some commands support structured output via emitter flags (see each command's --help).`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, "verbose", false, "Enable verbose logging (prints every scanned file to stderr)")
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
		os.Exit(2)
	}
}
