package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/localeguard/internal/config"
	"github.com/conneroisu/localeguard/internal/generate"
)

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Export validated locales as json, yaml or toml",
	Long: `Validate the locales, then write every locale to the output directory as
<tag>.<format>. JSON and YAML keep the key order of the source file.

Examples:
  localeguard export                          # dist/locales/*.json
  localeguard export --format yaml -o build   # build/*.yaml
  localeguard export --format toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var (
	exportFormat string
	exportOutput string
	exportFlags  *LocaleFlags
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportFlags = AddLocaleFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", config.DefaultExportFormat, "Export format (json, yaml, toml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output directory (default dist/locales)")
}

func runExport(cmd *cobra.Command, args []string) error {
	env, err := prepare(cmd, args, exportFlags, func(cfg *config.Config) {
		if cmd.Flags().Changed("format") {
			cfg.Export.Format = exportFormat
		}
		if cmd.Flags().Changed("output") {
			cfg.Export.Output = exportOutput
		}
	})
	if err != nil {
		return err
	}
	if err := env.cfg.CheckExport(); err != nil {
		return fail(cmd, "Export failed", err)
	}

	ctx := commandContext(cmd)
	report, err := env.validate(ctx)
	if err != nil {
		return fail(cmd, "Export failed", err)
	}

	paths, err := generate.ExportAll(env.cfg.Export.Output, env.cfg.Export.Format, env.cfg.Locales.Extension, report.Locales)
	if err != nil {
		return fail(cmd, "Export failed", err)
	}

	for _, p := range paths {
		env.logger.Debug(ctx, "Exported locale", "path", p)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d locale file(s) as %s to %s\n",
		len(paths), env.cfg.Export.Format, env.cfg.Export.Output)

	return nil
}
