package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/localeguard/internal/config"
	"github.com/conneroisu/localeguard/internal/generate"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage localeguard configuration",
	Long: `Manage localeguard configuration files and settings.

Examples:
  localeguard config init                      # Write a default .localeguard.yml
  localeguard config validate                  # Validate current configuration
  localeguard config validate --file ci.yml    # Validate a specific file
  localeguard config show --format json        # Show resolved configuration`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the configuration after loading the file, applying LOCALEGUARD_*
environment overrides and filling in defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var (
	configOutput string
	configForce  bool
	configFile   string
	configFormat string
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().StringVarP(&configOutput, "output", "o", ".localeguard.yml", "Output configuration file")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")

	configValidateCmd.Flags().StringVarP(&configFile, "file", "f", "", "Configuration file to validate (default: the loaded one)")

	configShowCmd.Flags().StringVar(&configFormat, "format", "yaml", "Output format (yaml, json)")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(configOutput); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configOutput)
	}

	data, err := config.Default().YAML()
	if err != nil {
		return err
	}
	if err := generate.WriteFile(configOutput, data); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", configOutput)

	return nil
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read %s: %w", configFile, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fail(cmd, "Configuration invalid", err)
	}

	result := config.ValidateWithDetails(cfg)
	if result.HasErrors() || result.HasWarnings() {
		fmt.Fprint(cmd.ErrOrStderr(), result.String())
	}
	if !result.Valid {
		return fail(cmd, "Configuration invalid", fmt.Errorf("%d error(s)", len(result.Errors)))
	}

	name := viper.ConfigFileUsed()
	if name == "" {
		name = "defaults"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuration is valid (%s)\n", name)

	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	switch configFormat {
	case "yaml", "yml":
		data, err := cfg.YAML()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)

		return err
	case "json":
		return writeJSON(cmd.OutOrStdout(), cfg)
	default:
		return fmt.Errorf("unsupported format: %s (supported: yaml, json)", configFormat)
	}
}
