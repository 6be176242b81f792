package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mdpress/internal/config"
	"mdpress/internal/engine"
	"mdpress/internal/flags"
)

var cfg = config.New()

var configFile string

var buildCmd = &cobra.Command{
	Use:   "build [path]",
	Short: "Convert a file or a folder of files to HTML",
	Long: `Convert a Markdown or plain-text file, or a folder of such files, into
standalone HTML pages.

Sources:
	A file argument is converted as-is. A directory argument is scanned for
	supported sources (.md, .markdown, .txt); use --recursive to descend into
	subdirectories and --include/--exclude to shape the set.

Page metadata:
	Markdown sources may start with a YAML frontmatter block:

	  ---
	  title: My Post
	  lang: fr
	  description: a short post
	  keywords: til, notes
	  stylesheet: per-page.css
	  ---

	Missing fields fall back to --title, --lang, and --stylesheet, and finally
	to the source file's base name.

Configuration:
	Settings come from defaults, then MDPRESS_* environment variables, then
	flags. A --config TOML file overrides the matching flags, so a project
	file stays authoritative:

	  output = "site"
	  stylesheet = "https://example.com/site.css"
	  recursive = true

Output:
	The output directory is deleted and recreated before each build unless
	--clean=false. Console output is controlled by --console-format
	(default: text). Structured outputs can be written via:
	- --out / --out-format: write an aggregate JSON array or NDJSON stream to a file
	- --emit: write an additional structured stream to stdout (json or ndjson)
	- --report: write a Markdown build report
	- --no-console: suppress the console sink (use with --emit/--out for machine output)

	NDJSON mode emits one JSON object per line. Objects are lifecycle Events
	with a "type" field (run.started, file.started, file.result,
	file.finished, run.finished). File results are represented as an Event
	with type "file.result" and a nested "result" object.

Exit codes:
	0 = all sources converted
	1 = some sources were skipped (unsupported extension)
	2 = partial failure (some sources errored)
	3 = fatal error (build did not run)

Examples:
	# Single file into the default output directory
	mdpress build notes/today.md

	# Folder build with a shared stylesheet
	mdpress build notes --output site --stylesheet https://cdnjs.cloudflare.com/ajax/libs/tufte-css/1.8.0/tufte.min.css

	# Project config file
	mdpress build notes --config mdpress.toml

	# AI agent: stream machine-readable events to stdout
	mdpress build notes --no-console --emit ndjson
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && cmd.Flags().NFlag() == 0 {
			_ = cmd.Help()
			return
		}
		if len(args) > 0 {
			cfg.Targeting.Input = args[0]
		}

		if err := applyConfigSources(cmd, cfg, configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(3)
		}

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(3)
		}

		eng := engine.NewEngine()
		os.Exit(eng.Run(context.Background(), cfg))
	},
}

// applyConfigSources finishes the config precedence chain. Flags are already
// bound to cfg; the environment fills fields no flag changed, and a --config
// file overrides everything it names.
func applyConfigSources(cmd *cobra.Command, cfg *config.Config, configFile string) error {
	if err := cfg.ApplyEnv(cmd.Flags().Changed); err != nil {
		return err
	}
	if configFile == "" {
		return nil
	}
	f, err := config.LoadFile(configFile)
	if err != nil {
		return err
	}
	f.Apply(cfg)
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)

	// Targeting
	buildCmd.Flags().StringSliceVar(&cfg.Targeting.Include, flags.FlagInclude, nil, "Include pattern(s) (repeatable; comma-separated accepted). Go path.Match style; if pattern contains '/', matches the relative path, else matches the base name")
	buildCmd.Flags().StringSliceVar(&cfg.Targeting.Exclude, flags.FlagExclude, nil, "Exclude pattern(s) (repeatable; comma-separated accepted). Same matching rules as --include")
	buildCmd.Flags().BoolVar(&cfg.Targeting.Recursive, flags.FlagRecursive, false, "Descend into subdirectories of the input directory")
	buildCmd.Flags().IntVar(&cfg.Targeting.MaxFiles, flags.FlagMaxFiles, 0, "Maximum number of sources to build (0 = unlimited)")
	buildCmd.Flags().BoolVar(&cfg.Targeting.DryRun, flags.FlagDryRun, false, "Resolve sources and print the build plan without converting")

	// Page
	buildCmd.Flags().StringVarP(&cfg.Page.Stylesheet, flags.FlagStylesheet, "s", "", "URL for a CSS stylesheet linked from every page")
	buildCmd.Flags().StringVar(&cfg.Page.Lang, flags.FlagLang, cfg.Page.Lang, "Page language used when frontmatter has none")
	buildCmd.Flags().StringVar(&cfg.Page.Title, flags.FlagTitle, "", "Fallback page title (default: source file base name)")

	// Config
	buildCmd.Flags().StringVarP(&configFile, flags.FlagConfig, "c", "", "TOML config file; its values override the matching flags")

	// Output
	buildCmd.Flags().StringVarP(&cfg.Output.Dir, flags.FlagOutput, "o", cfg.Output.Dir, "Output directory")
	buildCmd.Flags().BoolVar(&cfg.Output.Clean, flags.FlagClean, cfg.Output.Clean, "Delete and recreate the output directory before building")
	buildCmd.Flags().StringVar(&cfg.Output.ConsoleFormat, flags.FlagConsoleFormat, "text", "Console output format: text|json|ndjson (default: text)")
	buildCmd.Flags().StringSliceVar(&cfg.Output.ConsoleFilterStatus, flags.FlagConsoleFilterStatus, nil, "Filter console output by status (OK, SKIPPED, ERROR). Comma-separated.")
	buildCmd.Flags().StringVar(&cfg.Output.Report, flags.FlagReport, "", "Write a Markdown build report to this path")
	buildCmd.Flags().StringVar(&cfg.Output.Out, flags.FlagOut, "", "Write structured output to this path")
	buildCmd.Flags().StringVar(&cfg.Output.OutFormat, flags.FlagOutFormat, "", "Structured output format for --out: json|ndjson (default: inferred from file extension)")
	buildCmd.Flags().StringSliceVar(&cfg.Output.Emit, flags.FlagEmit, nil, "Emit additional structured stream to stdout: json|ndjson (repeatable; comma-separated accepted)")
	buildCmd.Flags().BoolVar(&cfg.Output.NoConsole, flags.FlagNoConsole, false, "Suppress console output (use with --emit/--out/--report)")

	// Runtime
	buildCmd.Flags().IntVar(&cfg.Runtime.Concurrency, flags.FlagConcurrency, cfg.Runtime.Concurrency, "Concurrent workers (default: 4)")
	buildCmd.Flags().DurationVar(&cfg.Runtime.Timeout, flags.FlagTimeout, cfg.Runtime.Timeout, "Global timeout (default: 5m)")
	buildCmd.Flags().BoolVar(&cfg.Runtime.FailFast, flags.FlagFailFast, false, "Stop on first conversion error (default: false)")
}
