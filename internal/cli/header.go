package cli

import (
	"fmt"

	"licmedic/internal/flags"
	"licmedic/internal/header"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var headerCmd = &cobra.Command{
	Use:   "header",
	Short: "Inspect the license header boilerplate",
	Long: `Inspect the license header boilerplate.

This command group shows what the scan checks for and what apply mode
inserts (see "licmedic scan --help").

Examples:
  # Print the boilerplate for the default year and owner
  licmedic header show
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var headerShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the rendered boilerplate",
	Long: `Print the exact boilerplate the scan checks for, rendered with the
configured copyright year and owner.

Files are compliant only when they start with this text byte-for-byte.

Examples:
  licmedic header show
  licmedic header show --year 2026 --owner "Acme Corp"
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bold := color.New(color.Bold)
		bold.Fprintf(cmd.OutOrStdout(), "Boilerplate (year=%s, owner=%s):\n", cfg.Header.Year, cfg.Header.Owner)
		fmt.Fprintln(cmd.OutOrStdout(), "----------------------------------------")
		fmt.Fprint(cmd.OutOrStdout(), header.New(cfg.Header.Year, cfg.Header.Owner).Text())
		fmt.Fprintln(cmd.OutOrStdout(), "----------------------------------------")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(headerCmd)
	headerCmd.AddCommand(headerShowCmd)
	headerShowCmd.Flags().StringVar(&cfg.Header.Year, flags.FlagYear, cfg.Header.Year, "Copyright year rendered into the boilerplate")
	headerShowCmd.Flags().StringVar(&cfg.Header.Owner, flags.FlagOwner, cfg.Header.Owner, "Copyright owner rendered into the boilerplate")
}
