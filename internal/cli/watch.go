package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"mdpress/internal/engine"
	"mdpress/internal/flags"
	"mdpress/internal/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Build, then rebuild whenever a source changes",
	Long: `Build the input once, then watch it and rebuild when sources change.

Rapid bursts of filesystem events (editors often write a file several times
per save) are coalesced into a single rebuild. Press Ctrl-C to stop.

Examples:
	mdpress watch notes
	mdpress watch notes --output site --recursive
	mdpress watch notes --debounce 1s`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg.Targeting.Input = args[0]

		if err := applyConfigSources(cmd, cfg, configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(3)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(3)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		eng := engine.NewEngine()
		rebuild := func() {
			fmt.Fprintf(os.Stderr, "[%s] Rebuilding...\n", time.Now().Format(time.RFC3339))
			if code := eng.Run(ctx, cfg); code != 0 {
				fmt.Fprintf(os.Stderr, "Build finished with exit code %d\n", code)
			}
		}

		rebuild()
		fmt.Fprintf(os.Stderr, "Watching %s for changes\n", cfg.Targeting.Input)

		if err := watch.Watch(ctx, cfg.Targeting.Input, cfg.Output.Dir, cfg.Targeting.Recursive, watchDebounce, rebuild); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch sources: %v\n", err)
			os.Exit(3)
		}
		fmt.Fprintln(os.Stderr, "\nShutting down...")
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringSliceVar(&cfg.Targeting.Include, flags.FlagInclude, nil, "Include pattern(s) (repeatable; comma-separated accepted)")
	watchCmd.Flags().StringSliceVar(&cfg.Targeting.Exclude, flags.FlagExclude, nil, "Exclude pattern(s) (repeatable; comma-separated accepted)")
	watchCmd.Flags().BoolVar(&cfg.Targeting.Recursive, flags.FlagRecursive, false, "Descend into subdirectories of the input directory")
	watchCmd.Flags().StringVarP(&cfg.Page.Stylesheet, flags.FlagStylesheet, "s", "", "URL for a CSS stylesheet linked from every page")
	watchCmd.Flags().StringVar(&cfg.Page.Lang, flags.FlagLang, cfg.Page.Lang, "Page language used when frontmatter has none")
	watchCmd.Flags().StringVarP(&configFile, flags.FlagConfig, "c", "", "TOML config file; its values override the matching flags")
	watchCmd.Flags().StringVarP(&cfg.Output.Dir, flags.FlagOutput, "o", cfg.Output.Dir, "Output directory")
	watchCmd.Flags().BoolVar(&cfg.Output.Clean, flags.FlagClean, cfg.Output.Clean, "Delete and recreate the output directory before each build")
	watchCmd.Flags().IntVar(&cfg.Runtime.Concurrency, flags.FlagConcurrency, cfg.Runtime.Concurrency, "Concurrent workers (default: 4)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 250*time.Millisecond, "Quiet period before rebuilding after a change")
}
