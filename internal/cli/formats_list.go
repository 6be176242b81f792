package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mdpress/internal/convert"
)

var formatsListQuiet bool

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "Manage and list converters",
	Long: `Manage mdpress converters.

This command group helps you discover which source formats exist and what
each converter does. Converters are selected by file extension during builds
(see "mdpress build --help").

Examples:
  # List all available converters
  mdpress formats list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var formatsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available converters",
	Long: `List all converters currently registered in this build.

Converters are sorted by converter ID.

Examples:
  mdpress formats list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range convert.List() {
			if formatsListQuiet {
				fmt.Fprintln(cmd.OutOrStdout(), c.ID())
			} else {
				printConverter(cmd.OutOrStdout(), c)
			}
		}
		return nil
	},
}

var formatsShowCmd = &cobra.Command{
	Use:   "show [converter-id]",
	Short: "Show details of a specific converter",
	Long: `Show details of a specific converter by its ID.

Examples:
  mdpress formats show markdown
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ok := convert.Lookup(args[0])
		if !ok {
			return fmt.Errorf("converter not found: %s", args[0])
		}
		printConverter(cmd.OutOrStdout(), c)
		return nil
	},
}

func printConverter(w io.Writer, c convert.Converter) {
	bold := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	bold.Fprintf(w, "CONVERTER: %s\n", c.ID())
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintln(w, c.Title())
	fmt.Fprintln(w, c.Description())
	fmt.Fprintf(w, "Extensions: %s\n", strings.Join(c.Extensions(), ", "))
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(formatsCmd)
	formatsCmd.AddCommand(formatsListCmd)
	formatsListCmd.Flags().BoolVarP(&formatsListQuiet, "quiet", "q", false, "Only print converter IDs")
	formatsCmd.AddCommand(formatsShowCmd)
}
