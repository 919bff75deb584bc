// Package cmd provides the command-line interface for localeguard with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--config, --log-level, --format, etc.) - highest priority
//	2. Individual environment variables (LOCALEGUARD_LOCALES_DIR, etc.), also read from .env
//	3. Configuration files (.localeguard.yml or LOCALEGUARD_CONFIG_FILE) - lowest priority
//
// Environment Variables:
//
//	LOCALEGUARD_CONFIG_FILE: Path to custom configuration file
//	LOCALEGUARD_LOCALES_DIR: Override the locales directory
//	LOCALEGUARD_LOCALES_CANONICAL: Override the canonical locale file
//	And the rest following the LOCALEGUARD_<SECTION>_<OPTION> pattern
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/localeguard/internal/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "localeguard",
	Short: "Validate locale files against a canonical locale",
	Long: `localeguard validates a directory of JSON locale files against a canonical
locale (en.json by default) and derives artifacts from a green validation.

Checks:
  • Every file is a JSON object whose leaves are strings
  • {{placeholder}} markers are well-formed and unique per value
  • Every locale has exactly the canonical keys
  • The nesting shape matches the canonical locale
  • Every value uses the canonical value's placeholders

Quick Start:
  localeguard validate            Validate src/locales
  localeguard generate --lang ts  Write the TranslationKey union
  localeguard export --format yaml
  localeguard smoke               Resolve every key through go-i18n
  localeguard watch               Re-validate on every change`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Failures not already reported by a command are printed to
// stderr.
func Execute() error {
	err := rootCmd.Execute()

	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}

	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .localeguard.yml, can also use LOCALEGUARD_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
}

// initConfig initializes the configuration system.
//
// Configuration file priority (highest to lowest):
//  1. --config flag
//  2. LOCALEGUARD_CONFIG_FILE environment variable
//  3. .localeguard.yml in the current directory
//
// A .env file in the current directory is loaded first, so LOCALEGUARD_*
// variables can be kept next to the project. Variables already set in the
// environment win over .env.
func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Warning: failed to load .env:", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("LOCALEGUARD_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".localeguard")
	}

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	if err := config.BindEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}

	// A missing or unreadable file leaves the defaults in place.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// reportedError marks a failure the command already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// fail prints "<prefix>: <err>" to the command's stderr and returns err
// marked as reported.
func fail(cmd *cobra.Command, prefix string, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", prefix, err)

	return &reportedError{err: err}
}
