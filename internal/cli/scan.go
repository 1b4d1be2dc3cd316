package cli

import (
	"context"
	"fmt"
	"os"

	"licmedic/internal/config"
	"licmedic/internal/engine"
	"licmedic/internal/flags"

	"github.com/spf13/cobra"
)

var cfg = config.New()
var cfgPath string

const scanHelpTemplate = `{{with (or .Long .Short)}}{{. | trimTrailingWhitespaces}}

{{end}}Usage:
  {{.UseLine}}

{{if .HasAvailableLocalFlags}}Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableInheritedFlags}}Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}Configuration:
	LicMedic is configured with built-in defaults, an optional YAML config
	file, and CLI flags. Precedence is defaults < file < flags.

	The config file is read from --config, or from .licmedic.yml in the
	working directory when present. Recognized fields:
	  year, owner, root, dirs, extensions, exclude

	Example .licmedic.yml:
	  year: "2025"
	  owner: Karesis
	  dirs: [src, include, tests]
	  extensions: [.c, .h]
	  exclude:
	    - src/third_party/

{{if .HasAvailableSubCommands}}Available Commands:
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasHelpSubCommands}}Additional help topics:
{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.
{{end}}`

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the source tree for missing license headers",
	Long: `Scan the configured directories for files missing the license boilerplate.

Apply mode is the default: missing headers are inserted in place, with two
blank lines between the header and the original content. With --check no
file is ever modified; missing headers are only reported.

Project root:
	The root defaults to two directory levels above the licmedic executable
	(the tool is expected to live in a subdirectory of the project). Use
	--root to scan an arbitrary tree.

Output:
	Console output is controlled by --console-format (default: text). In text
	format, compliant files are not listed; use --console-filter-status to
	change which statuses appear (OK, MISSING, FIXED, ERROR).
	Structured outputs can be written via:
	- --out / --out-format: write an aggregate JSON array or NDJSON stream to a file
	- --emit: write an additional structured stream to stdout (json or ndjson)
	- --report: write a Markdown report to a file
	- --no-console: suppress the console sink (use with --emit/--out for machine output)

	NDJSON mode emits one JSON object per line. Objects are lifecycle Events with a
	"type" field (run.started, file.result, run.finished). File results are
	represented as an Event with type "file.result" and a nested "result" object.

Exit codes:
	0 = clean run (apply mode always exits 0, even when individual writes failed)
	1 = check mode found at least one file missing the header
	2 = fatal error (scan did not run)

Examples:
  # Fix missing headers under the project the tool is deployed in
  licmedic scan

  # CI gate: fail the build when a header is missing
  licmedic scan --check --root .

  # Scan a different owner's tree, skipping vendored code
  licmedic scan --root ~/src/calico --owner "Acme Corp" --exclude src/third_party/

  # AI Agent: stream machine-readable events to stdout
  licmedic scan --check --no-console --emit ndjson
`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := loadConfigFileIfAny(cmd, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}

		eng := engine.NewEngine()
		os.Exit(eng.Run(context.Background(), cfg))
	},
}

// loadConfigFileIfAny merges an optional YAML config file into cfg. The file
// comes from --config, or from .licmedic.yml in the working directory when
// present. Values set explicitly via flags are never overridden.
func loadConfigFileIfAny(cmd *cobra.Command, cfg *config.Config) error {
	path := cfgPath
	if path == "" {
		if _, err := os.Stat(config.DefaultFileName); err != nil {
			return nil
		}
		path = config.DefaultFileName
	}

	fc, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	fc.Apply(cfg, cmd.Flags().Changed)
	return nil
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.SetHelpTemplate(scanHelpTemplate)

	// Targeting
	scanCmd.Flags().StringVar(&cfg.Targeting.Root, flags.FlagRoot, "", "Project root to scan under (default: derived from the executable's location)")
	scanCmd.Flags().StringSliceVar(&cfg.Targeting.Dirs, flags.FlagDirs, cfg.Targeting.Dirs, "Directory names to scan, relative to the project root (repeatable; comma-separated accepted)")
	scanCmd.Flags().StringSliceVar(&cfg.Targeting.Extensions, flags.FlagExt, cfg.Targeting.Extensions, "Target file extensions (repeatable; comma-separated accepted)")
	scanCmd.Flags().StringSliceVar(&cfg.Targeting.Exclude, flags.FlagExclude, nil, "Relative path prefixes to skip entirely, forward-slash separated (repeatable; comma-separated accepted)")

	// Header
	scanCmd.Flags().StringVar(&cfg.Header.Year, flags.FlagYear, cfg.Header.Year, "Copyright year rendered into the boilerplate")
	scanCmd.Flags().StringVar(&cfg.Header.Owner, flags.FlagOwner, cfg.Header.Owner, "Copyright owner rendered into the boilerplate")

	// Mode
	scanCmd.Flags().BoolVar(&cfg.Runtime.Check, flags.FlagCheck, false, "Report missing headers without modifying any file")

	// Config
	scanCmd.Flags().StringVar(&cfgPath, flags.FlagConfig, "", "Path to a YAML config file (default: .licmedic.yml if present)")

	// Output
	scanCmd.Flags().StringVar(&cfg.Output.ConsoleFormat, flags.FlagConsoleFormat, "text", "Console output format: text|json|ndjson (default: text)")
	scanCmd.Flags().StringSliceVar(&cfg.Output.ConsoleFilterStatus, flags.FlagConsoleFilterStatus, nil, "Filter console output by status (OK, MISSING, FIXED, ERROR). Comma-separated.")
	scanCmd.Flags().StringVar(&cfg.Output.Report, flags.FlagReport, "", "Write a Markdown report to this path")
	scanCmd.Flags().StringVar(&cfg.Output.Out, flags.FlagOut, "", "Write structured output to this path")
	scanCmd.Flags().StringVar(&cfg.Output.OutFormat, flags.FlagOutFormat, "", "Structured output format for --out: json|ndjson (default: inferred from file extension)")
	scanCmd.Flags().StringSliceVar(&cfg.Output.Emit, flags.FlagEmit, nil, "Emit additional structured stream to stdout: json|ndjson (repeatable; comma-separated accepted)")
	scanCmd.Flags().BoolVar(&cfg.Output.NoConsole, flags.FlagNoConsole, false, "Suppress console output (use with --emit/--out/--report)")
}
