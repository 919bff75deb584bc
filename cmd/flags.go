package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/conneroisu/localeguard/internal/config"
	"github.com/conneroisu/localeguard/internal/locale"
	"github.com/conneroisu/localeguard/internal/logging"
)

// LocaleFlags are shared by every command that validates a directory.
type LocaleFlags struct {
	Canonical   string
	Extension   string
	Concurrency int
}

// AddLocaleFlags registers the locale flags on cmd. Unset flags leave the
// configured values alone.
func AddLocaleFlags(cmd *cobra.Command) *LocaleFlags {
	flags := &LocaleFlags{}
	fs := cmd.Flags()

	fs.StringVar(&flags.Canonical, "canonical", config.DefaultCanonical, "Canonical locale file name")
	fs.StringVar(&flags.Extension, "extension", config.DefaultExtension, "Locale file extension")
	fs.IntVar(&flags.Concurrency, "concurrency", config.DefaultConcurrency, "Number of files read in parallel")

	return flags
}

func (f *LocaleFlags) apply(fs *pflag.FlagSet, cfg *config.LocalesConfig) {
	if fs.Changed("extension") {
		cfg.Extension = f.Extension
		if !fs.Changed("canonical") {
			cfg.Canonical = "en" + f.Extension
		}
	}
	if fs.Changed("canonical") {
		cfg.Canonical = f.Canonical
	}
	if fs.Changed("concurrency") {
		cfg.Concurrency = f.Concurrency
	}
}

// runEnv is the resolved configuration of one command invocation.
type runEnv struct {
	cfg    *config.Config
	logger logging.Logger
}

// prepare loads the configuration, applies flags and the optional [dir]
// argument, and builds the logger.
func prepare(cmd *cobra.Command, args []string, flags *LocaleFlags, overrides ...func(*config.Config)) (*runEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if flags != nil {
		flags.apply(cmd.Flags(), &cfg.Locales)
	}
	if len(args) > 0 {
		cfg.Locales.Dir = args[0]
	}
	for _, override := range overrides {
		override(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := logging.ParseLevel(cfg.Log.Level)
	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:     level,
		Format:    cfg.Log.Format,
		Output:    cmd.ErrOrStderr(),
		Component: cmd.Name(),
	})

	return &runEnv{cfg: cfg, logger: logger}, nil
}

func (e *runEnv) validator() *locale.Validator {
	return locale.NewValidator(locale.Options{
		Extension:   e.cfg.Locales.Extension,
		Canonical:   e.cfg.Locales.Canonical,
		Concurrency: e.cfg.Locales.Concurrency,
		Logger:      e.logger,
	})
}

func (e *runEnv) validate(ctx context.Context) (*locale.Report, error) {
	return e.validator().Validate(ctx, e.cfg.Locales.Dir)
}
