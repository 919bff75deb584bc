package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/localeguard/internal/config"
	"github.com/conneroisu/localeguard/internal/generate"
)

var generateCmd = &cobra.Command{
	Use:     "generate [dir]",
	Aliases: []string{"gen", "g"},
	Short:   "Generate translation key definitions from the canonical locale",
	Long: `Validate the locales, then write the canonical keys as source code.

With --lang go the output declares a TranslationKey type, one constant per
key, a sorted TranslationKeys slice and one map per locale. With --lang ts
it declares the TranslationKey union and the translationKeys array.

Examples:
  localeguard generate                                 # Go, translations/keys_gen.go
  localeguard generate --lang ts                       # src/generated/translation-keys.ts
  localeguard generate --package i18n -o i18n/keys.go`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

var (
	generateLang    string
	generateOutput  string
	generatePackage string
	generateFlags   *LocaleFlags
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateFlags = AddLocaleFlags(generateCmd)
	generateCmd.Flags().StringVar(&generateLang, "lang", config.DefaultGenerateLang, "Output language (go, ts)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file (default depends on --lang)")
	generateCmd.Flags().StringVar(&generatePackage, "package", config.DefaultPackage, "Go package name")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	env, err := prepare(cmd, args, generateFlags, func(cfg *config.Config) {
		fs := cmd.Flags()
		if fs.Changed("lang") {
			cfg.Generate.Lang = generateLang
		}
		if fs.Changed("package") {
			cfg.Generate.Package = generatePackage
		}
		switch {
		case fs.Changed("output"):
			cfg.Generate.Output = generateOutput
		case fs.Changed("lang") || fs.Changed("package"):
			cfg.Generate.Output = config.DefaultGenerateOutput(cfg.Generate.Lang, cfg.Generate.Package)
		}
	})
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	report, err := env.validate(ctx)
	if err != nil {
		return fail(cmd, "Generation failed", err)
	}

	canonical := report.CanonicalLocale()
	keys := generate.Keys(canonical.Flattened)

	var src []byte
	switch env.cfg.Generate.Lang {
	case "ts":
		src = generate.TypeScript(keys)
	default:
		src, err = generate.GoSource(generate.GoOptions{
			Package:   env.cfg.Generate.Package,
			Extension: env.cfg.Locales.Extension,
		}, canonical, report.Locales)
		if err != nil {
			return fail(cmd, "Generation failed", err)
		}
	}

	if err := generate.WriteFile(env.cfg.Generate.Output, src); err != nil {
		return fail(cmd, "Generation failed", err)
	}

	env.logger.Debug(ctx, "Wrote generated keys", "path", env.cfg.Generate.Output, "lang", env.cfg.Generate.Lang)
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Generated translation keys: %d keys -> %s\n", len(keys), env.cfg.Generate.Output)

	return nil
}
