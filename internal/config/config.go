// Package config provides configuration management for localeguard using
// Viper for flexible loading from files, environment variables, and
// command-line flags.
//
// The configuration supports a .localeguard.yml file, environment variable
// overrides with the LOCALEGUARD_ prefix, and validation of every value. It
// covers where locales live, which file is canonical, and where generated
// artifacts and exports are written.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/localeguard/internal/logging"
)

type Config struct {
	Locales  LocalesConfig  `mapstructure:"locales" yaml:"locales" json:"locales"`
	Generate GenerateConfig `mapstructure:"generate" yaml:"generate" json:"generate"`
	Export   ExportConfig   `mapstructure:"export" yaml:"export" json:"export"`
	Watch    WatchConfig    `mapstructure:"watch" yaml:"watch" json:"watch"`
	Log      LogConfig      `mapstructure:"log" yaml:"log" json:"log"`
}

type LocalesConfig struct {
	Dir         string `mapstructure:"dir" yaml:"dir" json:"dir"`
	Canonical   string `mapstructure:"canonical" yaml:"canonical" json:"canonical"`
	Extension   string `mapstructure:"extension" yaml:"extension" json:"extension"`
	Concurrency int    `mapstructure:"concurrency" yaml:"concurrency" json:"concurrency"`
}

type GenerateConfig struct {
	Output  string `mapstructure:"output" yaml:"output" json:"output"`
	Package string `mapstructure:"package" yaml:"package" json:"package"`
	Lang    string `mapstructure:"lang" yaml:"lang" json:"lang"`
}

type ExportConfig struct {
	Output string `mapstructure:"output" yaml:"output" json:"output"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce" json:"debounce"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// Default values.
const (
	DefaultLocalesDir    = "src/locales"
	DefaultCanonical     = "en.json"
	DefaultExtension     = ".json"
	DefaultConcurrency   = 4
	DefaultGenerateLang  = "go"
	DefaultPackage       = "translations"
	DefaultExportFormat  = "json"
	DefaultExportOutput  = "dist/locales"
	DefaultWatchDebounce = 300 * time.Millisecond
)

// EnvPrefix prefixes environment overrides, e.g. LOCALEGUARD_LOCALES_DIR.
const EnvPrefix = "LOCALEGUARD"

// EnvKeyReplacer maps config keys to environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Keys lists every configuration key.
var Keys = []string{
	"locales.dir", "locales.canonical", "locales.extension", "locales.concurrency",
	"generate.output", "generate.package", "generate.lang",
	"export.output", "export.format",
	"watch.debounce",
	"log.level", "log.format",
}

var (
	generateLangs = []string{"go", "ts"}
	exportFormats = []string{"json", "yaml", "toml"}
	logFormats    = []string{"text", "json"}
)

// Load reads the configuration from the global viper instance, applies
// defaults and validates the result.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// BindEnv enables LOCALEGUARD_* overrides for every key on the global viper
// instance. AutomaticEnv alone is not seen by Unmarshal for unset keys.
func BindEnv() error {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.AutomaticEnv()

	for _, key := range Keys {
		if err := viper.BindEnv(key); err != nil {
			return fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	return nil
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	var config Config
	applyDefaults(&config)

	return &config
}

// YAML encodes the configuration in the .localeguard.yml layout.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func applyDefaults(config *Config) {
	if config.Locales.Dir == "" {
		config.Locales.Dir = DefaultLocalesDir
	}
	if config.Locales.Extension == "" {
		config.Locales.Extension = DefaultExtension
	}
	if config.Locales.Canonical == "" {
		config.Locales.Canonical = "en" + config.Locales.Extension
	}
	if config.Locales.Concurrency == 0 {
		config.Locales.Concurrency = DefaultConcurrency
	}

	if config.Generate.Lang == "" {
		config.Generate.Lang = DefaultGenerateLang
	}
	if config.Generate.Package == "" {
		config.Generate.Package = DefaultPackage
	}
	if config.Generate.Output == "" {
		config.Generate.Output = DefaultGenerateOutput(config.Generate.Lang, config.Generate.Package)
	}

	if config.Export.Format == "" {
		config.Export.Format = DefaultExportFormat
	}
	if config.Export.Output == "" {
		config.Export.Output = DefaultExportOutput
	}

	if config.Watch.Debounce == 0 {
		config.Watch.Debounce = DefaultWatchDebounce
	}

	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
}

// DefaultGenerateOutput returns the output file used when none is configured.
func DefaultGenerateOutput(lang, pkg string) string {
	if lang == "ts" {
		return "src/generated/translation-keys.ts"
	}

	return filepath.Join(pkg, "keys_gen.go")
}

// ErrExportOverwritesSources is returned by CheckExport.
var ErrExportOverwritesSources = errors.New("export would overwrite the source locale files")

// CheckExport fails when exporting would write <tag>.<format> files over the
// source locale files.
func (c *Config) CheckExport() error {
	if samePath(c.Export.Output, c.Locales.Dir) && "."+c.Export.Format == c.Locales.Extension {
		return ErrExportOverwritesSources
	}

	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}

	return absA == absB
}

// Validate re-checks the configuration, e.g. after flag overrides.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// validateConfig validates configuration values for security and correctness
func validateConfig(config *Config) error {
	if err := validateLocalesConfig(&config.Locales); err != nil {
		return fmt.Errorf("locales config: %w", err)
	}

	if err := validateGenerateConfig(&config.Generate); err != nil {
		return fmt.Errorf("generate config: %w", err)
	}

	if err := validateExportConfig(&config.Export); err != nil {
		return fmt.Errorf("export config: %w", err)
	}

	if config.Watch.Debounce < 0 {
		return fmt.Errorf("watch config: debounce must be positive, got %s", config.Watch.Debounce)
	}

	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("log config: %w", err)
	}
	if !contains(logFormats, config.Log.Format) {
		return fmt.Errorf("log config: unsupported format %q", config.Log.Format)
	}

	return nil
}

func validateLocalesConfig(config *LocalesConfig) error {
	if err := validatePath(config.Dir); err != nil {
		return fmt.Errorf("invalid dir '%s': %w", config.Dir, err)
	}

	if !strings.HasPrefix(config.Extension, ".") || len(config.Extension) < 2 {
		return fmt.Errorf("extension must start with a dot: %q", config.Extension)
	}

	if strings.ContainsAny(config.Canonical, `/\`) {
		return fmt.Errorf("canonical must be a file name, got %q", config.Canonical)
	}
	if !strings.HasSuffix(config.Canonical, config.Extension) {
		return fmt.Errorf("canonical %q does not end with extension %q", config.Canonical, config.Extension)
	}

	if config.Concurrency < 1 || config.Concurrency > 64 {
		return fmt.Errorf("concurrency %d is not in valid range 1-64", config.Concurrency)
	}

	return nil
}

func validateGenerateConfig(config *GenerateConfig) error {
	if !contains(generateLangs, config.Lang) {
		return fmt.Errorf("unsupported lang %q (want one of %s)", config.Lang, strings.Join(generateLangs, ", "))
	}

	if err := validateOutputPath(config.Output); err != nil {
		return fmt.Errorf("invalid output '%s': %w", config.Output, err)
	}

	if !isIdentifier(config.Package) {
		return fmt.Errorf("package %q is not a valid Go identifier", config.Package)
	}

	return nil
}

func validateExportConfig(config *ExportConfig) error {
	if !contains(exportFormats, config.Format) {
		return fmt.Errorf("unsupported format %q (want one of %s)", config.Format, strings.Join(exportFormats, ", "))
	}

	if err := validateOutputPath(config.Output); err != nil {
		return fmt.Errorf("invalid output '%s': %w", config.Output, err)
	}

	return nil
}

// validatePath validates a file path for security
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)

	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'"}
	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}

// validateOutputPath additionally keeps generated files inside the working
// directory.
func validateOutputPath(path string) error {
	if err := validatePath(path); err != nil {
		return err
	}

	cleanPath := filepath.Clean(path)
	if strings.HasPrefix(cleanPath, "..") {
		return fmt.Errorf("path contains traversal: %s", path)
	}
	if filepath.IsAbs(cleanPath) {
		return fmt.Errorf("path should be relative: %s", path)
	}

	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}

	return false
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}
