package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/localeguard/internal/bundle"
	"github.com/conneroisu/localeguard/internal/generate"
)

const smokeSampleKeys = 5

var smokeCmd = &cobra.Command{
	Use:   "smoke [dir]",
	Short: "Resolve every canonical key in every language through go-i18n",
	Long: `Validate the locales, load them into a go-i18n bundle keyed by the
language tag in each file name, and resolve every canonical key in every
language. Files whose name is not a language tag are skipped.

Examples:
  localeguard smoke
  localeguard smoke web/locales`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSmoke,
}

var smokeFlags *LocaleFlags

func init() {
	rootCmd.AddCommand(smokeCmd)

	smokeFlags = AddLocaleFlags(smokeCmd)
}

func runSmoke(cmd *cobra.Command, args []string) error {
	env, err := prepare(cmd, args, smokeFlags)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	report, err := env.validate(ctx)
	if err != nil {
		return fail(cmd, "Smoke test failed", err)
	}

	canonical := report.CanonicalLocale()
	result, err := bundle.Smoke(ctx, canonical, report.Locales, env.cfg.Locales.Extension, env.logger)
	if err != nil {
		return fail(cmd, "Smoke test failed", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== Smoke Test ===")
	fmt.Fprintf(out, "Languages: %d\n", result.Languages)
	fmt.Fprintf(out, "Messages resolved: %d\n", result.Messages)
	if result.Empty > 0 {
		fmt.Fprintf(out, "Empty values: %d\n", result.Empty)
	}
	if len(result.Skipped) > 0 {
		fmt.Fprintf(out, "Skipped: %s\n", strings.Join(result.Skipped, ", "))
	}

	keys := generate.Keys(canonical.Flattened)
	if len(keys) > smokeSampleKeys {
		keys = keys[:smokeSampleKeys]
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Sample keys:")
	for _, key := range keys {
		fmt.Fprintf(out, "  - %s\n", key)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "✓ Smoke test passed")

	return nil
}
