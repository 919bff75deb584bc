package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/localeguard/internal/config"
	"github.com/conneroisu/localeguard/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:     "watch [dir]",
	Aliases: []string{"w"},
	Short:   "Re-validate locales whenever a locale file changes",
	Long: `Validate the locales once, then watch the directory and validate again
after every burst of changes to locale files. Editor swap files are ignored.

Examples:
  localeguard watch
  localeguard watch --debounce 1s
  localeguard watch --verbose     # List the changed files`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

var (
	watchVerbose  bool
	watchDebounce time.Duration
	watchFlags    *LocaleFlags
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchFlags = AddLocaleFlags(watchCmd)
	watchCmd.Flags().BoolVarP(&watchVerbose, "verbose", "v", false, "List changed files")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "Quiet period before re-validating (default from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	env, err := prepare(cmd, args, watchFlags, func(cfg *config.Config) {
		if cmd.Flags().Changed("debounce") {
			cfg.Watch.Debounce = watchDebounce
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	fileWatcher, err := newLocaleWatcher(env, out, watchVerbose)
	if err != nil {
		return err
	}
	defer fileWatcher.Stop()

	revalidate(ctx, env, out)

	if err := fileWatcher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	fmt.Fprintf(out, "👀 Watching %s for changes... (Press Ctrl+C to stop)\n", env.cfg.Locales.Dir)

	<-ctx.Done()
	fmt.Fprintln(out, "\n🛑 Stopping file watcher...")

	return nil
}

// newLocaleWatcher watches the locales directory and re-validates on every
// debounced batch of locale file changes.
func newLocaleWatcher(env *runEnv, out io.Writer, verbose bool) (*watcher.FileWatcher, error) {
	fileWatcher, err := watcher.NewFileWatcher(env.cfg.Watch.Debounce, env.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	fileWatcher.AddFilter(watcher.ExtensionFilter(env.cfg.Locales.Extension))
	fileWatcher.AddFilter(watcher.NoEditorTempFilter)
	fileWatcher.AddFilter(watcher.NoGitFilter)

	fileWatcher.AddHandler(func(ctx context.Context, events []watcher.ChangeEvent) error {
		if verbose {
			fmt.Fprintln(out, "📁 File changes detected:")
			for _, event := range events {
				fmt.Fprintf(out, "   %s: %s\n", event.Type, event.Path)
			}
		} else {
			fmt.Fprintf(out, "📁 %d file(s) changed\n", len(events))
		}

		revalidate(ctx, env, out)

		return nil
	})

	if err := fileWatcher.AddPath(env.cfg.Locales.Dir); err != nil {
		fileWatcher.Stop()
		return nil, fmt.Errorf("failed to watch %s: %w", env.cfg.Locales.Dir, err)
	}

	return fileWatcher, nil
}

// revalidate runs one validation and prints its outcome. Failures are shown
// and watching continues.
func revalidate(ctx context.Context, env *runEnv, out io.Writer) {
	report, err := env.validate(ctx)
	if err != nil {
		fmt.Fprintf(out, "✗ Validation failed: %v\n", err)
		return
	}

	fmt.Fprint(out, report.Summary())
}
